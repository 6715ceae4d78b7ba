package auth

import (
	"testing"

	"bugbounty-platform-backend/internal/config"
	"bugbounty-platform-backend/internal/database/models"
	apperrors "bugbounty-platform-backend/internal/errors"
	"bugbounty-platform-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestAuthService(t *testing.T) (*AuthService, *mocks.MockUserRepositoryInterface, *mocks.MockCompanyRepositoryInterface) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	companyRepo := mocks.NewMockCompanyRepositoryInterface(ctrl)
	cfg := &config.Config{
		JWTSecret:      "test-signing-key",
		JWTExpiryHours: 1,
	}
	return NewAuthService(userRepo, companyRepo, cfg, validator.New()), userRepo, companyRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestSignupHacker(t *testing.T) {
	validRequest := func() *HackerSignupRequest {
		return &HackerSignupRequest{
			Username:  "h4x0r",
			Email:     "h4x0r@example.com",
			Password:  "correct-horse",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Country:   "UK",
		}
	}

	t.Run("success issues hacker token", func(t *testing.T) {
		service, userRepo, _ := newTestAuthService(t)
		userRepo.EXPECT().GetByUsername("h4x0r").Return(nil, gorm.ErrRecordNotFound)
		userRepo.EXPECT().GetByEmail("h4x0r@example.com").Return(nil, gorm.ErrRecordNotFound)
		userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
			assert.Equal(t, "h4x0r", u.Username)
			assert.True(t, u.Activated)
			// Stored hash must verify against the submitted password
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse")))
			return nil
		})

		resp, err := service.SignupHacker(validRequest())
		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, KindHacker, resp.Kind)
		assert.Equal(t, int64(3600), resp.ExpiresIn)

		claims, err := service.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "h4x0r", claims.Principal)
		assert.Equal(t, KindHacker, claims.Kind)
	})

	t.Run("duplicate username", func(t *testing.T) {
		service, userRepo, _ := newTestAuthService(t)
		userRepo.EXPECT().GetByUsername("h4x0r").Return(&models.User{Username: "h4x0r"}, nil)

		resp, err := service.SignupHacker(validRequest())
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
		assert.True(t, apperrors.IsAlreadyExists(err))
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, userRepo, _ := newTestAuthService(t)
		userRepo.EXPECT().GetByUsername("h4x0r").Return(nil, gorm.ErrRecordNotFound)
		userRepo.EXPECT().GetByEmail("h4x0r@example.com").Return(&models.User{Email: "h4x0r@example.com"}, nil)

		resp, err := service.SignupHacker(validRequest())
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrEmailExists)
	})

	t.Run("short password rejected", func(t *testing.T) {
		service, _, _ := newTestAuthService(t)
		req := validRequest()
		req.Password = "short"

		resp, err := service.SignupHacker(req)
		assert.Nil(t, resp)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestLoginHacker(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, userRepo, _ := newTestAuthService(t)
		userRepo.EXPECT().GetByUsername("h4x0r").Return(&models.User{
			Username:     "h4x0r",
			PasswordHash: hashPassword(t, "correct-horse"),
		}, nil)

		resp, err := service.LoginHacker(&LoginRequest{Identifier: "h4x0r", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, KindHacker, resp.Kind)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, userRepo, _ := newTestAuthService(t)
		userRepo.EXPECT().GetByUsername("h4x0r").Return(&models.User{
			Username:     "h4x0r",
			PasswordHash: hashPassword(t, "correct-horse"),
		}, nil)

		resp, err := service.LoginHacker(&LoginRequest{Identifier: "h4x0r", Password: "wrong"})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown username maps to invalid credentials", func(t *testing.T) {
		service, userRepo, _ := newTestAuthService(t)
		userRepo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

		resp, err := service.LoginHacker(&LoginRequest{Identifier: "ghost", Password: "whatever"})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestSignupCompany(t *testing.T) {
	validRequest := func() *CompanySignupRequest {
		return &CompanySignupRequest{
			Name:     "Acme Corp",
			Email:    "security@acme.io",
			Password: "correct-horse",
			Website:  "https://acme.io",
		}
	}

	t.Run("success issues company token", func(t *testing.T) {
		service, _, companyRepo := newTestAuthService(t)
		companyRepo.EXPECT().GetByEmail("security@acme.io").Return(nil, gorm.ErrRecordNotFound)
		companyRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Company) error {
			assert.Equal(t, "Acme Corp", c.Name)
			assert.True(t, c.Approved)
			return nil
		})

		resp, err := service.SignupCompany(validRequest())
		require.NoError(t, err)
		assert.Equal(t, KindCompany, resp.Kind)

		claims, err := service.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "security@acme.io", claims.Principal)
		assert.Equal(t, KindCompany, claims.Kind)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, _, companyRepo := newTestAuthService(t)
		companyRepo.EXPECT().GetByEmail("security@acme.io").Return(&models.Company{Email: "security@acme.io"}, nil)

		resp, err := service.SignupCompany(validRequest())
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrCompanyExists)
	})
}

func TestLoginCompany(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, _, companyRepo := newTestAuthService(t)
		companyRepo.EXPECT().GetByEmail("security@acme.io").Return(&models.Company{
			Email:        "security@acme.io",
			PasswordHash: hashPassword(t, "correct-horse"),
		}, nil)

		resp, err := service.LoginCompany(&LoginRequest{Identifier: "security@acme.io", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, KindCompany, resp.Kind)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, _, companyRepo := newTestAuthService(t)
		companyRepo.EXPECT().GetByEmail("security@acme.io").Return(&models.Company{
			Email:        "security@acme.io",
			PasswordHash: hashPassword(t, "correct-horse"),
		}, nil)

		resp, err := service.LoginCompany(&LoginRequest{Identifier: "security@acme.io", Password: "wrong"})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestValidateJWT(t *testing.T) {
	service, _, _ := newTestAuthService(t)

	t.Run("rejects garbage", func(t *testing.T) {
		claims, err := service.ValidateJWT("not-a-token")
		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("rejects token signed with another key", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{Principal: "h4x0r", Kind: KindHacker})
		signed, err := token.SignedString([]byte("some-other-key"))
		require.NoError(t, err)

		claims, err := service.ValidateJWT(signed)
		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}
