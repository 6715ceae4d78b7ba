package repository

import (
	"bugbounty-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentRepository handles database operations for report media
// blobs. The blobs live in their own table addressed by report id, so
// binding them never blocks report creation.
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// SaveAll persists a batch of attachments
func (r *AttachmentRepository) SaveAll(attachments []models.ReportAttachment) error {
	if len(attachments) == 0 {
		return nil
	}
	return r.db.Create(&attachments).Error
}

// GetByReportID retrieves all attachments bound to a report
func (r *AttachmentRepository) GetByReportID(reportID uuid.UUID) ([]models.ReportAttachment, error) {
	var attachments []models.ReportAttachment
	err := r.db.Where("report_id = ?", reportID).Order("created_at").Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

// GetByID retrieves a single attachment with its blob
func (r *AttachmentRepository) GetByID(id uuid.UUID) (*models.ReportAttachment, error) {
	var attachment models.ReportAttachment
	err := r.db.First(&attachment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}
