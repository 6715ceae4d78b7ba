package auth

import (
	"errors"
	"fmt"
	"time"

	"bugbounty-platform-backend/internal/config"
	"bugbounty-platform-backend/internal/database/models"
	apperrors "bugbounty-platform-backend/internal/errors"
	"bugbounty-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Principal kinds carried in JWT claims
const (
	KindHacker  = "hacker"
	KindCompany = "company"
)

// AuthClaims represents JWT token claims. Principal is the username for
// hackers and the email for companies; downstream caller resolution
// probes both.
type AuthClaims struct {
	Principal string `json:"principal"`
	Kind      string `json:"kind"`
	jwt.RegisteredClaims
}

// AuthService provides signup, login and token handling for hackers and
// companies
type AuthService struct {
	userRepo    repository.UserRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	jwtSecret   string
	tokenTTL    time.Duration
	validator   *validator.Validate
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repository.UserRepositoryInterface,
	companyRepo repository.CompanyRepositoryInterface,
	cfg *config.Config,
	validator *validator.Validate,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtSecret:   cfg.JWTSecret,
		tokenTTL:    time.Duration(cfg.JWTExpiryHours) * time.Hour,
		validator:   validator,
	}
}

// HackerSignupRequest is the payload for hacker registration
type HackerSignupRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=40"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Country   string `json:"country" validate:"max=50"`
}

// CompanySignupRequest is the payload for company registration
type CompanySignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Website  string `json:"website" validate:"max=200"`
}

// LoginRequest is the payload for both login endpoints. Identifier is
// the username for hackers and the email for companies.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// TokenResponse carries an issued JWT
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Kind        string `json:"kind"`
}

// SignupHacker registers a hacker account. Username and email must both
// be unused.
func (s *AuthService) SignupHacker(req *HackerSignupRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, apperrors.ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Country:      req.Country,
		Activated:    true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user.Username, KindHacker)
}

// LoginHacker authenticates a hacker by username and password
func (s *AuthService) LoginHacker(req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.userRepo.GetByUsername(req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user.Username, KindHacker)
}

// SignupCompany registers a company account. The email must be unused.
func (s *AuthService) SignupCompany(req *CompanySignupRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.companyRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrCompanyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check company email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	company := &models.Company{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Website:      req.Website,
		Approved:     true,
	}
	if err := s.companyRepo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return s.issueToken(company.Email, KindCompany)
}

// LoginCompany authenticates a company by email and password
func (s *AuthService) LoginCompany(req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	company, err := s.companyRepo.GetByEmail(req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(company.Email, KindCompany)
}

// issueToken generates a signed JWT for the principal
func (s *AuthService) issueToken(principal, kind string) (*TokenResponse, error) {
	now := time.Now()
	claims := &AuthClaims{
		Principal: principal,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "bugbounty-platform-backend",
			Subject:   principal,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
		Kind:        kind,
	}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
