package service

import (
	"bugbounty-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

// ReportServiceInterface defines the business logic contract for reports
type ReportServiceInterface interface {
	SubmitManual(caller *Caller, req *SubmitManualReportRequest, uploads []AttachmentUpload) (*ReportResponse, error)
	SubmitCVSS(caller *Caller, req *SubmitCVSSReportRequest, uploads []AttachmentUpload) (*ReportResponse, error)
	GetByID(caller *Caller, id uuid.UUID) (*ReportResponse, error)
	Review(caller *Caller, id uuid.UUID) (*ReportResponse, error)
	Accept(caller *Caller, id uuid.UUID) (*ReportResponse, error)
	Reject(caller *Caller, id uuid.UUID) (*ReportResponse, error)
	ListForUser(caller *Caller, statusFilter string) ([]ReportResponse, error)
	ListForCompany(caller *Caller, statusFilter string) ([]GroupedReportsResponse, error)
	ListByDateRange(startDate, endDate string) ([]ReportResponse, error)
	Delete(caller *Caller, id uuid.UUID) error
	GetAttachment(caller *Caller, reportID, attachmentID uuid.UUID) (*models.ReportAttachment, error)
}

// ProgramServiceInterface defines the business logic contract for programs
type ProgramServiceInterface interface {
	Replace(caller *Caller, req *CreateProgramRequest) (*ProgramResponse, error)
	GetByID(id uuid.UUID) (*ProgramResponse, error)
	ListForCompany(caller *Caller) ([]ProgramResponse, error)
	GetAllAssets(programID uuid.UUID) ([]AssetEntryPayload, error)
	ReplaceAggregate(caller *Caller, programID uuid.UUID, payload *AggregatePayload) (*ProgramResponse, error)
	Delete(caller *Caller, id uuid.UUID) error
}

// AccessServiceInterface defines caller resolution and ownership checks
type AccessServiceInterface interface {
	ResolveCaller(principal string) (*Caller, error)
	RequireReportOwnership(caller *Caller, report *models.Report, program *models.Program) error
	RequireProgramOwnership(caller *Caller, program *models.Program) error
}

// Ensure AccessService implements AccessServiceInterface
var _ AccessServiceInterface = (*AccessService)(nil)
