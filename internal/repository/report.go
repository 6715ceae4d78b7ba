package repository

import (
	"time"

	"bugbounty-platform-backend/internal/database/models"
	apperrors "bugbounty-platform-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository handles database operations for reports and their
// variant detail rows
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create persists a report together with its variant details
func (r *ReportRepository) Create(report *models.Report) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(report).Error
	})
}

// GetByID retrieves a report by ID
func (r *ReportRepository) GetByID(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	err := r.db.First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetWithDetails retrieves a report with its variant details, owner and
// program
func (r *ReportRepository) GetWithDetails(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	err := r.db.
		Preload("Manual").
		Preload("CVSS").
		Preload("Attachments").
		Preload("User").
		Preload("Program").
		First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListByUser retrieves a hacker's reports, optionally narrowed to a set
// of statuses
func (r *ReportRepository) ListByUser(userID uuid.UUID, statuses []models.ReportStatus) ([]models.Report, error) {
	query := r.db.
		Preload("Manual").
		Preload("CVSS").
		Preload("Program").
		Where("user_id = ?", userID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var reports []models.Report
	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListByCompany retrieves all reports submitted against a company's
// programs, optionally narrowed to a set of statuses
func (r *ReportRepository) ListByCompany(companyID uuid.UUID, statuses []models.ReportStatus) ([]models.Report, error) {
	query := r.db.
		Preload("Manual").
		Preload("CVSS").
		Preload("User").
		Joins("JOIN programs ON programs.id = reports.program_id").
		Where("programs.company_id = ?", companyID)
	if len(statuses) > 0 {
		query = query.Where("reports.status IN ?", statuses)
	}

	var reports []models.Report
	if err := query.Order("reports.created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListByDateRange retrieves reports created within [start, end]
func (r *ReportRepository) ListByDateRange(start, end time.Time) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// ListAll retrieves every report
func (r *ReportRepository) ListAll() ([]models.Report, error) {
	var reports []models.Report
	if err := r.db.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateStatus applies a status transition with a compare-and-swap on
// the current status, so a stale transition cannot overwrite a
// concurrent one. Zero rows affected means the report either does not
// exist or is no longer in the expected state.
func (r *ReportRepository) UpdateStatus(reportID uuid.UUID, from, to models.ReportStatus) error {
	result := r.db.Model(&models.Report{}).
		Where("id = ? AND status = ?", reportID, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrStatusConflict
	}
	return nil
}

// Delete removes a report, its variant detail rows and attachments in a
// single transaction
func (r *ReportRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteReportTx(tx, id)
	})
}

// deleteReportTx deletes the variant-specific child rows before the
// report row; all or nothing within the surrounding transaction
func deleteReportTx(tx *gorm.DB, reportID uuid.UUID) error {
	if err := tx.Where("report_id = ?", reportID).Delete(&models.ReportManualDetails{}).Error; err != nil {
		return err
	}
	if err := tx.Where("report_id = ?", reportID).Delete(&models.ReportCVSSDetails{}).Error; err != nil {
		return err
	}
	if err := tx.Where("report_id = ?", reportID).Delete(&models.ReportAttachment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Report{}, "id = ?", reportID).Error
}
