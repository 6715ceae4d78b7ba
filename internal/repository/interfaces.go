package repository

import (
	"time"

	"bugbounty-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines data access for hacker accounts
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// CompanyRepositoryInterface defines data access for companies
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByEmail(email string) (*models.Company, error)
}

// ProgramRepositoryInterface defines data access for bug-bounty programs
type ProgramRepositoryInterface interface {
	Create(program *models.Program) error
	GetByID(id uuid.UUID) (*models.Program, error)
	GetWithDetails(id uuid.UUID) (*models.Program, error)
	GetByCompanyID(companyID uuid.UUID) ([]models.Program, error)
	GetByReportID(reportID uuid.UUID) (*models.Program, error)
	ReplaceForCompany(companyID uuid.UUID, program *models.Program) error
	ReplaceAggregate(programID uuid.UUID, asset *models.ProgramAsset) error
	Delete(id uuid.UUID) error
}

// ReportRepositoryInterface defines data access for reports
type ReportRepositoryInterface interface {
	Create(report *models.Report) error
	GetByID(id uuid.UUID) (*models.Report, error)
	GetWithDetails(id uuid.UUID) (*models.Report, error)
	ListByUser(userID uuid.UUID, statuses []models.ReportStatus) ([]models.Report, error)
	ListByCompany(companyID uuid.UUID, statuses []models.ReportStatus) ([]models.Report, error)
	ListByDateRange(start, end time.Time) ([]models.Report, error)
	ListAll() ([]models.Report, error)
	UpdateStatus(reportID uuid.UUID, from, to models.ReportStatus) error
	Delete(id uuid.UUID) error
}

// AttachmentRepositoryInterface defines data access for report media blobs
type AttachmentRepositoryInterface interface {
	SaveAll(attachments []models.ReportAttachment) error
	GetByReportID(reportID uuid.UUID) ([]models.ReportAttachment, error)
	GetByID(id uuid.UUID) (*models.ReportAttachment, error)
}
