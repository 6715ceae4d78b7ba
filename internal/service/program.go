package service

import (
	"errors"
	"fmt"
	"time"

	"bugbounty-platform-backend/internal/database/models"
	apperrors "bugbounty-platform-backend/internal/errors"
	"bugbounty-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProgramService provides program and asset-aggregate business logic
type ProgramService struct {
	programRepo repository.ProgramRepositoryInterface
	access      *AccessService
	validator   *validator.Validate
}

// Ensure ProgramService implements ProgramServiceInterface
var _ ProgramServiceInterface = (*ProgramService)(nil)

// NewProgramService creates a new ProgramService
func NewProgramService(programRepo repository.ProgramRepositoryInterface, access *AccessService, validator *validator.Validate) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		access:      access,
		validator:   validator,
	}
}

// AssetEntryPayload is one named target entry inside a severity tier
type AssetEntryPayload struct {
	Type  string   `json:"type" validate:"required,max=40"`
	Names []string `json:"names" validate:"required,min=1,dive,required"`
}

// BucketPayload carries the price and asset entries of one severity tier
type BucketPayload struct {
	Price  float64             `json:"price" validate:"gte=0"`
	Assets []AssetEntryPayload `json:"assets" validate:"dive"`
}

// AggregatePayload is the full four-tier pricing aggregate of a program.
// Omitted tiers get an empty bucket at price zero so the aggregate is
// always complete.
type AggregatePayload struct {
	Low      *BucketPayload `json:"low"`
	Medium   *BucketPayload `json:"medium"`
	High     *BucketPayload `json:"high"`
	Critical *BucketPayload `json:"critical"`
}

// CreateProgramRequest is the payload for creating or replacing the
// calling company's program
type CreateProgramRequest struct {
	FromDate   string            `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate     string            `json:"to_date" validate:"required,datetime=2006-01-02"`
	Policy     string            `json:"policy" validate:"required"`
	Notes      string            `json:"notes"`
	InScope    []string          `json:"in_scope"`
	OutOfScope []string          `json:"out_of_scope"`
	Prohibits  []string          `json:"prohibits" validate:"dive,required,max=300"`
	Asset      *AggregatePayload `json:"asset"`
}

// BucketResponse represents one severity tier in API responses
type BucketResponse struct {
	Level  models.SeverityLevel `json:"level"`
	Price  float64              `json:"price"`
	Assets []AssetEntryPayload  `json:"assets"`
}

// ProgramResponse represents a program in API responses
type ProgramResponse struct {
	ID         uuid.UUID        `json:"id"`
	CompanyID  uuid.UUID        `json:"company_id"`
	FromDate   string           `json:"from_date"`
	ToDate     string           `json:"to_date"`
	Policy     string           `json:"policy"`
	Notes      string           `json:"notes,omitempty"`
	InScope    []string         `json:"in_scope"`
	OutOfScope []string         `json:"out_of_scope"`
	Prohibits  []string         `json:"prohibits"`
	Buckets    []BucketResponse `json:"buckets"`
	CreatedAt  time.Time        `json:"created_at"`
}

// Replace creates the calling company's program, replacing a prior one
// if it exists. The whole graph, program, prohibited actions, aggregate,
// buckets and assets, is written in one transaction.
func (s *ProgramService) Replace(caller *Caller, req *CreateProgramRequest) (*ProgramResponse, error) {
	if !caller.IsCompany() {
		return nil, apperrors.ErrNotProgramOwner
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	fromDate, _ := time.Parse("2006-01-02", req.FromDate)
	toDate, _ := time.Parse("2006-01-02", req.ToDate)
	if toDate.Before(fromDate) {
		return nil, apperrors.NewValidationError("to_date", "must not be before from_date")
	}

	aggregate, err := buildAggregate(req.Asset)
	if err != nil {
		return nil, err
	}

	program := &models.Program{
		CompanyID:  caller.Company.ID,
		FromDate:   fromDate,
		ToDate:     toDate,
		Policy:     req.Policy,
		Notes:      req.Notes,
		InScope:    req.InScope,
		OutOfScope: req.OutOfScope,
		Asset:      aggregate,
	}
	for _, rule := range req.Prohibits {
		program.Prohibits = append(program.Prohibits, models.ProhibitedAction{Rule: rule})
	}

	if err := s.programRepo.ReplaceForCompany(caller.Company.ID, program); err != nil {
		return nil, fmt.Errorf("failed to replace program: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"program_id": program.ID,
		"company":    caller.Company.Email,
	}).Info("program replaced")

	return s.toResponse(program), nil
}

// GetByID retrieves a program with its aggregate and prohibited actions.
// Programs are readable by any authenticated caller; hackers need the
// scope and pricing to submit against it.
func (s *ProgramService) GetByID(id uuid.UUID) (*ProgramResponse, error) {
	program, err := s.programRepo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}
	return s.toResponse(program), nil
}

// ListForCompany retrieves the calling company's programs
func (s *ProgramService) ListForCompany(caller *Caller) ([]ProgramResponse, error) {
	if !caller.IsCompany() {
		return nil, apperrors.ErrNotProgramOwner
	}
	programs, err := s.programRepo.GetByCompanyID(caller.Company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	responses := make([]ProgramResponse, len(programs))
	for i := range programs {
		responses[i] = *s.toResponse(&programs[i])
	}
	return responses, nil
}

// GetAllAssets flattens the asset entries of all four tiers of a
// program's aggregate into one list
func (s *ProgramService) GetAllAssets(programID uuid.UUID) ([]AssetEntryPayload, error) {
	program, err := s.programRepo.GetWithDetails(programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}

	entries := []AssetEntryPayload{}
	if program.Asset != nil {
		for _, asset := range program.Asset.AllAssets() {
			entries = append(entries, AssetEntryPayload{Type: asset.Type, Names: asset.Names})
		}
	}
	return entries, nil
}

// ReplaceAggregate swaps the program's pricing aggregate for a new one.
// Only the owning company may do this.
func (s *ProgramService) ReplaceAggregate(caller *Caller, programID uuid.UUID, payload *AggregatePayload) (*ProgramResponse, error) {
	program, err := s.programRepo.GetByID(programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}
	if err := s.access.RequireProgramOwnership(caller, program); err != nil {
		return nil, err
	}

	aggregate, err := buildAggregate(payload)
	if err != nil {
		return nil, err
	}
	if err := s.programRepo.ReplaceAggregate(programID, aggregate); err != nil {
		return nil, fmt.Errorf("failed to replace aggregate: %w", err)
	}

	return s.GetByID(programID)
}

// Delete removes the program with its aggregate, prohibited actions and
// all reports submitted against it
func (s *ProgramService) Delete(caller *Caller, id uuid.UUID) error {
	program, err := s.programRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("failed to get program: %w", err)
	}
	if err := s.access.RequireProgramOwnership(caller, program); err != nil {
		return err
	}

	if err := s.programRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"program_id": id,
		"company":    caller.Company.Email,
	}).Info("program deleted")
	return nil
}

// buildAggregate materializes the payload into a full four-tier
// aggregate. Asset names are deduplicated within each entry; a nil
// payload yields four empty buckets at price zero.
func buildAggregate(payload *AggregatePayload) (*models.ProgramAsset, error) {
	tiers := map[models.SeverityLevel]*BucketPayload{
		models.SeverityLow:      nil,
		models.SeverityMedium:   nil,
		models.SeverityHigh:     nil,
		models.SeverityCritical: nil,
	}
	if payload != nil {
		tiers[models.SeverityLow] = payload.Low
		tiers[models.SeverityMedium] = payload.Medium
		tiers[models.SeverityHigh] = payload.High
		tiers[models.SeverityCritical] = payload.Critical
	}

	aggregate := &models.ProgramAsset{}
	for _, level := range models.SeverityLevels {
		bucket := models.SeverityBucket{Level: level}
		if tier := tiers[level]; tier != nil {
			if tier.Price < 0 {
				return nil, apperrors.NewValidationError(string(level), "price must not be negative")
			}
			bucket.Price = tier.Price
			for _, entry := range tier.Assets {
				if entry.Type == "" {
					return nil, apperrors.NewValidationError(string(level), "asset type is required")
				}
				names := dedupeNames(entry.Names)
				if len(names) == 0 {
					return nil, apperrors.NewValidationError(string(level), "asset entry needs at least one name")
				}
				bucket.Assets = append(bucket.Assets, models.Asset{Type: entry.Type, Names: names})
			}
		}
		aggregate.Buckets = append(aggregate.Buckets, bucket)
	}
	return aggregate, nil
}

// dedupeNames drops blank and repeated names, keeping first-seen order
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// toResponse converts a Program model to API response
func (s *ProgramService) toResponse(program *models.Program) *ProgramResponse {
	resp := &ProgramResponse{
		ID:         program.ID,
		CompanyID:  program.CompanyID,
		FromDate:   program.FromDate.Format("2006-01-02"),
		ToDate:     program.ToDate.Format("2006-01-02"),
		Policy:     program.Policy,
		Notes:      program.Notes,
		InScope:    program.InScope,
		OutOfScope: program.OutOfScope,
		Prohibits:  []string{},
		Buckets:    []BucketResponse{},
	}
	resp.CreatedAt = program.CreatedAt
	for _, p := range program.Prohibits {
		resp.Prohibits = append(resp.Prohibits, p.Rule)
	}
	if program.Asset != nil {
		for _, level := range models.SeverityLevels {
			bucket := program.Asset.Bucket(level)
			if bucket == nil {
				continue
			}
			br := BucketResponse{Level: level, Price: bucket.Price, Assets: []AssetEntryPayload{}}
			for _, asset := range bucket.Assets {
				br.Assets = append(br.Assets, AssetEntryPayload{Type: asset.Type, Names: asset.Names})
			}
			resp.Buckets = append(resp.Buckets, br)
		}
	}
	return resp
}
