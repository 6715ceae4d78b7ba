package repository

import (
	"bugbounty-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramRepository handles database operations for bug-bounty programs
// and their asset aggregates
type ProgramRepository struct {
	db *gorm.DB
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// Create creates a program with its prohibited actions and asset
// aggregate in a single transaction
func (r *ProgramRepository) Create(program *models.Program) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(program).Error
	})
}

// GetByID retrieves a program by ID
func (r *ProgramRepository) GetByID(id uuid.UUID) (*models.Program, error) {
	var program models.Program
	err := r.db.First(&program, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// GetWithDetails retrieves a program with its aggregate, buckets, assets
// and prohibited actions
func (r *ProgramRepository) GetWithDetails(id uuid.UUID) (*models.Program, error) {
	var program models.Program
	err := r.db.
		Preload("Prohibits").
		Preload("Asset.Buckets.Assets").
		First(&program, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// GetByCompanyID retrieves all programs owned by a company
func (r *ProgramRepository) GetByCompanyID(companyID uuid.UUID) ([]models.Program, error) {
	var programs []models.Program
	err := r.db.
		Preload("Prohibits").
		Preload("Asset.Buckets.Assets").
		Where("company_id = ?", companyID).
		Find(&programs).Error
	if err != nil {
		return nil, err
	}
	return programs, nil
}

// GetByReportID retrieves the program a report was submitted against
func (r *ProgramRepository) GetByReportID(reportID uuid.UUID) (*models.Program, error) {
	var program models.Program
	err := r.db.
		Joins("JOIN reports ON reports.program_id = programs.id").
		Where("reports.id = ?", reportID).
		First(&program).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// ReplaceForCompany deletes the company's existing program, if any, and
// creates the new one inside the same transaction. A half-replaced
// program is never observable.
func (r *ProgramRepository) ReplaceForCompany(companyID uuid.UUID, program *models.Program) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.Program
		if err := tx.Where("company_id = ?", companyID).Find(&existing).Error; err != nil {
			return err
		}
		for i := range existing {
			if err := deleteProgramTx(tx, existing[i].ID); err != nil {
				return err
			}
		}
		return tx.Create(program).Error
	})
}

// ReplaceAggregate swaps a program's asset aggregate for a new one.
// The old aggregate, its buckets and assets are deleted and the new
// graph created in one transaction.
func (r *ProgramRepository) ReplaceAggregate(programID uuid.UUID, asset *models.ProgramAsset) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteAggregateTx(tx, programID); err != nil {
			return err
		}
		asset.ProgramID = programID
		return tx.Create(asset).Error
	})
}

// Delete removes a program and cascades to its aggregate, prohibited
// actions and reports
func (r *ProgramRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteProgramTx(tx, id)
	})
}

// deleteProgramTx detaches and deletes everything a program owns before
// deleting the program row itself, so no orphan references survive a
// partial failure.
func deleteProgramTx(tx *gorm.DB, programID uuid.UUID) error {
	var reports []models.Report
	if err := tx.Where("program_id = ?", programID).Find(&reports).Error; err != nil {
		return err
	}
	for i := range reports {
		if err := deleteReportTx(tx, reports[i].ID); err != nil {
			return err
		}
	}
	if err := deleteAggregateTx(tx, programID); err != nil {
		return err
	}
	if err := tx.Where("program_id = ?", programID).Delete(&models.ProhibitedAction{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Program{}, "id = ?", programID).Error
}

// deleteAggregateTx removes a program's asset aggregate with all buckets
// and assets
func deleteAggregateTx(tx *gorm.DB, programID uuid.UUID) error {
	var aggregate models.ProgramAsset
	err := tx.First(&aggregate, "program_id = ?", programID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	var buckets []models.SeverityBucket
	if err := tx.Where("program_asset_id = ?", aggregate.ID).Find(&buckets).Error; err != nil {
		return err
	}
	for i := range buckets {
		if err := tx.Where("bucket_id = ?", buckets[i].ID).Delete(&models.Asset{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("program_asset_id = ?", aggregate.ID).Delete(&models.SeverityBucket{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.ProgramAsset{}, "id = ?", aggregate.ID).Error
}
