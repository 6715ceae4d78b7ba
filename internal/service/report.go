package service

import (
	"errors"
	"fmt"
	"time"

	"bugbounty-platform-backend/internal/database/models"
	apperrors "bugbounty-platform-backend/internal/errors"
	"bugbounty-platform-backend/internal/notification"
	"bugbounty-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReportService provides report submission, lifecycle and listing logic
type ReportService struct {
	reportRepo     repository.ReportRepositoryInterface
	programRepo    repository.ProgramRepositoryInterface
	attachmentRepo repository.AttachmentRepositoryInterface
	access         *AccessService
	notifier       notification.Sender
	validator      *validator.Validate
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// NewReportService creates a new ReportService
func NewReportService(
	reportRepo repository.ReportRepositoryInterface,
	programRepo repository.ProgramRepositoryInterface,
	attachmentRepo repository.AttachmentRepositoryInterface,
	access *AccessService,
	notifier notification.Sender,
	validator *validator.Validate,
) *ReportService {
	return &ReportService{
		reportRepo:     reportRepo,
		programRepo:    programRepo,
		attachmentRepo: attachmentRepo,
		access:         access,
		notifier:       notifier,
		validator:      validator,
	}
}

// SubmitManualReportRequest is the payload for a manual report submission
type SubmitManualReportRequest struct {
	ProgramID uuid.UUID `json:"program_id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=200"`
	Narrative string    `json:"narrative" validate:"required"`
}

// SubmitCVSSReportRequest is the payload for a CVSS-scored report submission
type SubmitCVSSReportRequest struct {
	ProgramID uuid.UUID `json:"program_id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=200"`
	Vector    string    `json:"vector" validate:"required"`
	Score     float64   `json:"score" validate:"gte=0,lte=10"`
}

// AttachmentUpload is one media file received with a submission
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// AttachmentResponse describes a stored attachment without its blob
type AttachmentResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
}

// ReportResponse represents a report in API responses. Both status
// projections are included so each audience reads its own axis.
type ReportResponse struct {
	ID               uuid.UUID            `json:"id"`
	ProgramID        uuid.UUID            `json:"program_id"`
	UserID           uuid.UUID            `json:"user_id"`
	Kind             models.ReportKind    `json:"kind"`
	Title            string               `json:"title"`
	Room             string               `json:"room"`
	StatusForUser    models.UserStatus    `json:"status_for_user"`
	StatusForCompany models.CompanyStatus `json:"status_for_company"`
	Narrative        string               `json:"narrative,omitempty"`
	Vector           string               `json:"vector,omitempty"`
	Score            *float64             `json:"score,omitempty"`
	Attachments      []AttachmentResponse `json:"attachments,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
}

// UserSummary identifies a hacker in grouped report listings
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// GroupedReportsResponse is one hacker's slice of a company listing
type GroupedReportsResponse struct {
	User    UserSummary      `json:"user"`
	Reports []ReportResponse `json:"reports"`
}

// SubmitManual creates a manual report for the calling hacker and moves
// it into the submitted state. Attachment binding is best effort: a
// failed save is logged and the submission still succeeds.
func (s *ReportService) SubmitManual(caller *Caller, req *SubmitManualReportRequest, uploads []AttachmentUpload) (*ReportResponse, error) {
	if !caller.IsHacker() {
		return nil, apperrors.ErrNotReportOwner
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	report := &models.Report{
		UserID:    caller.User.ID,
		ProgramID: req.ProgramID,
		Kind:      models.ReportKindManual,
		Title:     req.Title,
		Manual:    &models.ReportManualDetails{Narrative: req.Narrative},
	}
	return s.submit(caller, report, uploads)
}

// SubmitCVSS creates a CVSS-scored report for the calling hacker
func (s *ReportService) SubmitCVSS(caller *Caller, req *SubmitCVSSReportRequest, uploads []AttachmentUpload) (*ReportResponse, error) {
	if !caller.IsHacker() {
		return nil, apperrors.ErrNotReportOwner
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := ValidateCVSSVector(req.Vector); err != nil {
		return nil, err
	}

	report := &models.Report{
		UserID:    caller.User.ID,
		ProgramID: req.ProgramID,
		Kind:      models.ReportKindCVSS,
		Title:     req.Title,
		CVSS:      &models.ReportCVSSDetails{Vector: req.Vector, Score: req.Score},
	}
	return s.submit(caller, report, uploads)
}

// submit runs the shared tail of both submission variants: resolve the
// target program, persist the report in the submitted state with a
// fresh collaboration room, then bind attachments.
func (s *ReportService) submit(caller *Caller, report *models.Report, uploads []AttachmentUpload) (*ReportResponse, error) {
	program, err := s.programRepo.GetByID(report.ProgramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}

	report.Status = models.StatusSubmitted
	report.Room = uuid.NewString()

	if err := s.reportRepo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	if len(uploads) > 0 {
		attachments := make([]models.ReportAttachment, len(uploads))
		for i, u := range uploads {
			attachments[i] = models.ReportAttachment{
				ReportID:    report.ID,
				FileName:    u.FileName,
				ContentType: u.ContentType,
				Data:        u.Data,
			}
		}
		if err := s.attachmentRepo.SaveAll(attachments); err != nil {
			logrus.WithFields(logrus.Fields{
				"report_id": report.ID,
				"count":     len(attachments),
			}).WithError(err).Warn("failed to bind report attachments")
		} else {
			report.Attachments = attachments
		}
	}

	logrus.WithFields(logrus.Fields{
		"report_id":  report.ID,
		"program_id": program.ID,
		"user":       caller.User.Username,
		"kind":       report.Kind,
	}).Info("report submitted")

	return s.toResponse(report), nil
}

// GetByID retrieves a report with its details. Only the submitting
// hacker and the program's owning company may read it.
func (s *ReportService) GetByID(caller *Caller, id uuid.UUID) (*ReportResponse, error) {
	report, err := s.reportRepo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if err := s.access.RequireReportOwnership(caller, report, report.Program); err != nil {
		return nil, err
	}
	return s.toResponse(report), nil
}

// Review moves a report from submitted to under review
func (s *ReportService) Review(caller *Caller, id uuid.UUID) (*ReportResponse, error) {
	return s.applyTransition(caller, id, models.StatusUnderReview)
}

// Accept moves a report from under review to the accepted terminal state
func (s *ReportService) Accept(caller *Caller, id uuid.UUID) (*ReportResponse, error) {
	return s.applyTransition(caller, id, models.StatusAccepted)
}

// Reject moves a report from under review to the rejected terminal state
func (s *ReportService) Reject(caller *Caller, id uuid.UUID) (*ReportResponse, error) {
	return s.applyTransition(caller, id, models.StatusRejected)
}

// applyTransition enforces the lifecycle order: existence, ownership,
// transition legality, then a compare-and-swap write. The status read
// here is the compare value, so two racing transitions cannot both win.
func (s *ReportService) applyTransition(caller *Caller, id uuid.UUID, target models.ReportStatus) (*ReportResponse, error) {
	report, err := s.reportRepo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	// Only the program's owning company drives the lifecycle
	if report.Program == nil {
		return nil, apperrors.ErrProgramNotFound
	}
	if err := s.access.RequireProgramOwnership(caller, report.Program); err != nil {
		return nil, err
	}

	if !report.Status.CanTransitionTo(target) {
		return nil, apperrors.NewInvalidTransitionError(string(report.Status), string(target))
	}

	if err := s.reportRepo.UpdateStatus(id, report.Status, target); err != nil {
		return nil, err
	}
	report.Status = target

	s.notifyStatusChange(report)

	logrus.WithFields(logrus.Fields{
		"report_id": report.ID,
		"status":    target,
		"company":   caller.Company.Email,
	}).Info("report status updated")

	return s.toResponse(report), nil
}

// notifyStatusChange mails the submitting hacker about the new status.
// Failures are logged, never propagated.
func (s *ReportService) notifyStatusChange(report *models.Report) {
	if report.User == nil || report.User.Email == "" {
		return
	}
	subject := fmt.Sprintf("Your report %q is now %s", report.Title, report.Status.ForUser())
	body := fmt.Sprintf("Hello %s,\n\nthe status of your report %q changed to %s.\n",
		report.User.FirstName, report.Title, report.Status.ForUser())
	if err := s.notifier.Send(report.User.Email, subject, body); err != nil {
		logrus.WithField("report_id", report.ID).WithError(err).Warn("failed to send status notification")
	}
}

// ListForUser retrieves the calling hacker's reports, optionally
// filtered on the hacker-facing status axis. An unknown filter value is
// rejected, not treated as empty.
func (s *ReportService) ListForUser(caller *Caller, statusFilter string) ([]ReportResponse, error) {
	if !caller.IsHacker() {
		return nil, apperrors.ErrNotReportOwner
	}

	var statuses []models.ReportStatus
	if statusFilter != "" {
		userStatus, err := models.ParseUserStatus(statusFilter)
		if err != nil {
			return nil, apperrors.NewValidationError("status", err.Error())
		}
		statuses = models.StatusesForUser(userStatus)
	}

	reports, err := s.reportRepo.ListByUser(caller.User.ID, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return s.toResponses(reports), nil
}

// ListForCompany retrieves all reports against the calling company's
// programs grouped by submitting hacker, optionally filtered on the
// company-facing status axis. The ASSESSED filter selects both terminal
// outcomes.
func (s *ReportService) ListForCompany(caller *Caller, statusFilter string) ([]GroupedReportsResponse, error) {
	if !caller.IsCompany() {
		return nil, apperrors.ErrNotProgramOwner
	}

	var statuses []models.ReportStatus
	if statusFilter != "" {
		companyStatus, err := models.ParseCompanyStatus(statusFilter)
		if err != nil {
			return nil, apperrors.NewValidationError("status", err.Error())
		}
		statuses = models.StatusesForCompany(companyStatus)
	}

	reports, err := s.reportRepo.ListByCompany(caller.Company.ID, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	// Group by hacker, preserving the listing order within each group
	groups := make(map[uuid.UUID]*GroupedReportsResponse)
	var order []uuid.UUID
	for i := range reports {
		r := &reports[i]
		group, ok := groups[r.UserID]
		if !ok {
			summary := UserSummary{ID: r.UserID}
			if r.User != nil {
				summary.Username = r.User.Username
				summary.FirstName = r.User.FirstName
				summary.LastName = r.User.LastName
			}
			group = &GroupedReportsResponse{User: summary}
			groups[r.UserID] = group
			order = append(order, r.UserID)
		}
		group.Reports = append(group.Reports, *s.toResponse(r))
	}

	result := make([]GroupedReportsResponse, len(order))
	for i, id := range order {
		result[i] = *groups[id]
	}
	return result, nil
}

// ListByDateRange retrieves reports created within [start, end], both
// given as calendar dates. The end date is inclusive.
func (s *ReportService) ListByDateRange(startDate, endDate string) ([]ReportResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start_date", "must be a date in the form YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, apperrors.NewValidationError("end_date", "must be a date in the form YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("end_date", "must not be before start_date")
	}

	reports, err := s.reportRepo.ListByDateRange(start, end.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return s.toResponses(reports), nil
}

// Delete removes a report with its variant details and attachments.
// The submitting hacker and the program's owning company may delete.
func (s *ReportService) Delete(caller *Caller, id uuid.UUID) error {
	report, err := s.reportRepo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrReportNotFound
		}
		return fmt.Errorf("failed to get report: %w", err)
	}
	if err := s.access.RequireReportOwnership(caller, report, report.Program); err != nil {
		return err
	}

	if err := s.reportRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"report_id": id,
		"caller":    caller.Name(),
	}).Info("report deleted")
	return nil
}

// GetAttachment retrieves one attachment blob for download, subject to
// the same ownership rule as the report itself
func (s *ReportService) GetAttachment(caller *Caller, reportID, attachmentID uuid.UUID) (*models.ReportAttachment, error) {
	report, err := s.reportRepo.GetWithDetails(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if err := s.access.RequireReportOwnership(caller, report, report.Program); err != nil {
		return nil, err
	}

	attachment, err := s.attachmentRepo.GetByID(attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	if attachment.ReportID != reportID {
		return nil, apperrors.ErrAttachmentNotFound
	}
	return attachment, nil
}

// toResponse converts a Report model to API response
func (s *ReportService) toResponse(report *models.Report) *ReportResponse {
	resp := &ReportResponse{
		ID:               report.ID,
		ProgramID:        report.ProgramID,
		UserID:           report.UserID,
		Kind:             report.Kind,
		Title:            report.Title,
		Room:             report.Room,
		StatusForUser:    report.StatusForUser(),
		StatusForCompany: report.StatusForCompany(),
		CreatedAt:        report.CreatedAt,
	}
	if report.Manual != nil {
		resp.Narrative = report.Manual.Narrative
	}
	if report.CVSS != nil {
		resp.Vector = report.CVSS.Vector
		score := report.CVSS.Score
		resp.Score = &score
	}
	for i := range report.Attachments {
		a := &report.Attachments[i]
		resp.Attachments = append(resp.Attachments, AttachmentResponse{
			ID:          a.ID,
			FileName:    a.FileName,
			ContentType: a.ContentType,
			Size:        len(a.Data),
		})
	}
	return resp
}

func (s *ReportService) toResponses(reports []models.Report) []ReportResponse {
	responses := make([]ReportResponse, len(reports))
	for i := range reports {
		responses[i] = *s.toResponse(&reports[i])
	}
	return responses
}
