package testutils

import (
	"time"

	"bugbounty-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test hacker accounts
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Username and email are
// derived from the generated id so parallel fixtures never collide.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "hacker-" + id.String()[:8],
		Email:        "hacker-" + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FirstName:    "Jane",
		LastName:     "Doe",
		Country:      "NL",
		Activated:    true,
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// CompanyFactory provides methods to create test companies
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Company",
		Email:        "company-" + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Website:      "https://example.com",
		Approved:     true,
	}
}

// ProgramFactory provides methods to create test programs
type ProgramFactory struct{}

// NewProgramFactory creates a new ProgramFactory
func NewProgramFactory() *ProgramFactory {
	return &ProgramFactory{}
}

// Create creates a test Program owned by the given company, with a full
// four-tier aggregate and one prohibited action
func (f *ProgramFactory) Create(companyID uuid.UUID) *models.Program {
	program := &models.Program{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:  companyID,
		FromDate:   time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour),
		ToDate:     time.Now().AddDate(0, 3, 0).Truncate(24 * time.Hour),
		Policy:     "Test in scope only. Report everything responsibly.",
		Notes:      "Created by test factory",
		InScope:    []string{"*.example.com"},
		OutOfScope: []string{"legacy.example.com"},
		Prohibits: []models.ProhibitedAction{
			{Rule: "No denial of service testing"},
		},
		Asset: &models.ProgramAsset{},
	}
	prices := map[models.SeverityLevel]float64{
		models.SeverityLow:      100,
		models.SeverityMedium:   500,
		models.SeverityHigh:     2000,
		models.SeverityCritical: 10000,
	}
	for _, level := range models.SeverityLevels {
		program.Asset.Buckets = append(program.Asset.Buckets, models.SeverityBucket{
			Level: level,
			Price: prices[level],
			Assets: []models.Asset{
				{Type: "domain", Names: []string{string(level) + ".example.com"}},
			},
		})
	}
	return program
}

// Bare creates a minimal program without aggregate or prohibited actions
func (f *ProgramFactory) Bare(companyID uuid.UUID) *models.Program {
	return &models.Program{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: companyID,
		FromDate:  time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour),
		ToDate:    time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour),
		Policy:    "Minimal test policy",
	}
}

// ReportFactory provides methods to create test reports
type ReportFactory struct{}

// NewReportFactory creates a new ReportFactory
func NewReportFactory() *ReportFactory {
	return &ReportFactory{}
}

// CreateManual creates a manual report in the submitted state
func (f *ReportFactory) CreateManual(userID, programID uuid.UUID) *models.Report {
	return &models.Report{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:    userID,
		ProgramID: programID,
		Kind:      models.ReportKindManual,
		Status:    models.StatusSubmitted,
		Title:     "Stored XSS in profile page",
		Room:      uuid.NewString(),
		Manual: &models.ReportManualDetails{
			Narrative: "The display name field is rendered without escaping.",
		},
	}
}

// CreateCVSS creates a CVSS-scored report in the submitted state
func (f *ReportFactory) CreateCVSS(userID, programID uuid.UUID) *models.Report {
	return &models.Report{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:    userID,
		ProgramID: programID,
		Kind:      models.ReportKindCVSS,
		Status:    models.StatusSubmitted,
		Title:     "SQL injection in search endpoint",
		Room:      uuid.NewString(),
		CVSS: &models.ReportCVSSDetails{
			Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
			Score:  9.8,
		},
	}
}

// WithStatus returns the report moved to the given status
func (f *ReportFactory) WithStatus(report *models.Report, status models.ReportStatus) *models.Report {
	report.Status = status
	return report
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Company *CompanyFactory
	Program *ProgramFactory
	Report  *ReportFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Company: NewCompanyFactory(),
		Program: NewProgramFactory(),
		Report:  NewReportFactory(),
	}
}
