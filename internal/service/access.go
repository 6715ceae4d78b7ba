package service

import (
	"errors"

	"bugbounty-platform-backend/internal/database/models"
	apperrors "bugbounty-platform-backend/internal/errors"
	"bugbounty-platform-backend/internal/repository"

	"gorm.io/gorm"
)

// Caller is the resolved identity making a request: exactly one of the
// two fields is set
type Caller struct {
	User    *models.User
	Company *models.Company
}

// IsHacker reports whether the caller is a hacker account
func (c *Caller) IsHacker() bool {
	return c != nil && c.User != nil
}

// IsCompany reports whether the caller is a company account
func (c *Caller) IsCompany() bool {
	return c != nil && c.Company != nil
}

// Name returns the caller's principal name for logging
func (c *Caller) Name() string {
	if c.IsHacker() {
		return c.User.Username
	}
	if c.IsCompany() {
		return c.Company.Email
	}
	return ""
}

// AccessService resolves authenticated principals to callers and
// enforces ownership before mutations. All checks are pure: the entities
// are loaded by the caller.
type AccessService struct {
	userRepo    repository.UserRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
}

// NewAccessService creates a new access service
func NewAccessService(userRepo repository.UserRepositoryInterface, companyRepo repository.CompanyRepositoryInterface) *AccessService {
	return &AccessService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

// ResolveCaller maps a principal name to a hacker or company identity.
// Hacker resolution is probed first; a principal with no hacker account
// falls through to company resolution by email.
func (s *AccessService) ResolveCaller(principal string) (*Caller, error) {
	if principal == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByUsername(principal)
	if err == nil {
		return &Caller{User: user}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company, err := s.companyRepo.GetByEmail(principal)
	if err == nil {
		return &Caller{Company: company}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, apperrors.ErrPrincipalNotRecognized
}

// RequireReportOwnership passes iff the caller is the report's
// submitting hacker or the company owning the report's program
func (s *AccessService) RequireReportOwnership(caller *Caller, report *models.Report, program *models.Program) error {
	if caller.IsHacker() && report.UserID == caller.User.ID {
		return nil
	}
	if caller.IsCompany() && program != nil && program.CompanyID == caller.Company.ID {
		return nil
	}
	return apperrors.ErrNotReportOwner
}

// RequireProgramOwnership passes iff the caller is the company owning
// the program
func (s *AccessService) RequireProgramOwnership(caller *Caller, program *models.Program) error {
	if caller.IsCompany() && program.CompanyID == caller.Company.ID {
		return nil
	}
	return apperrors.ErrNotProgramOwner
}
