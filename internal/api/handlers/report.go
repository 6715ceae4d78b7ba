package handlers

import (
	"io"
	"net/http"
	"strconv"

	"bugbounty-platform-backend/internal/auth"
	"bugbounty-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles HTTP requests for report operations
type ReportHandler struct {
	reportService service.ReportServiceInterface
	accessService service.AccessServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface, accessService service.AccessServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		accessService: accessService,
	}
}

// SubmitManual handles POST /reports/manual
// @Summary Submit a manual report
// @Description Submit a free-text vulnerability report against a program, optionally with media attachments
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param program_id formData string true "Target program ID"
// @Param title formData string true "Report title"
// @Param narrative formData string true "Vulnerability narrative"
// @Param attachments formData file false "Media attachments"
// @Success 201 {object} service.ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Program not found"
// @Security BearerAuth
// @Router /reports/manual [post]
func (h *ReportHandler) SubmitManual(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}

	programID, err := uuid.Parse(c.PostForm("program_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "program_id must be a valid UUID"})
		return
	}

	req := &service.SubmitManualReportRequest{
		ProgramID: programID,
		Title:     c.PostForm("title"),
		Narrative: c.PostForm("narrative"),
	}

	uploads, err := readUploads(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read attachments", "details": err.Error()})
		return
	}

	resp, err := h.reportService.SubmitManual(caller, req, uploads)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SubmitCVSS handles POST /reports/cvss
// @Summary Submit a CVSS-scored report
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param program_id formData string true "Target program ID"
// @Param title formData string true "Report title"
// @Param vector formData string true "CVSS v3 vector"
// @Param score formData number true "CVSS score in [0,10]"
// @Param attachments formData file false "Media attachments"
// @Success 201 {object} service.ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Program not found"
// @Security BearerAuth
// @Router /reports/cvss [post]
func (h *ReportHandler) SubmitCVSS(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}

	programID, err := uuid.Parse(c.PostForm("program_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "program_id must be a valid UUID"})
		return
	}
	score, err := strconv.ParseFloat(c.PostForm("score"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score must be a number"})
		return
	}

	req := &service.SubmitCVSSReportRequest{
		ProgramID: programID,
		Title:     c.PostForm("title"),
		Vector:    c.PostForm("vector"),
		Score:     score,
	}

	uploads, err := readUploads(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read attachments", "details": err.Error()})
		return
	}

	resp, err := h.reportService.SubmitCVSS(caller, req, uploads)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetReport handles GET /reports/:id
// @Summary Get a report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} service.ReportResponse
// @Failure 403 {object} ErrorResponse "Caller does not own the report"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	resp, err := h.reportService.GetByID(caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Review handles PATCH /reports/:id/review
// @Summary Move a report under review
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} service.ReportResponse
// @Failure 403 {object} ErrorResponse "Caller does not own the program"
// @Failure 409 {object} ErrorResponse "Transition not defined from the current state"
// @Security BearerAuth
// @Router /reports/{id}/review [patch]
func (h *ReportHandler) Review(c *gin.Context) {
	h.transition(c, h.reportService.Review)
}

// Accept handles PATCH /reports/:id/accept
// @Summary Accept a report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} service.ReportResponse
// @Failure 409 {object} ErrorResponse "Transition not defined from the current state"
// @Security BearerAuth
// @Router /reports/{id}/accept [patch]
func (h *ReportHandler) Accept(c *gin.Context) {
	h.transition(c, h.reportService.Accept)
}

// Reject handles PATCH /reports/:id/reject
// @Summary Reject a report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} service.ReportResponse
// @Failure 409 {object} ErrorResponse "Transition not defined from the current state"
// @Security BearerAuth
// @Router /reports/{id}/reject [patch]
func (h *ReportHandler) Reject(c *gin.Context) {
	h.transition(c, h.reportService.Reject)
}

func (h *ReportHandler) transition(c *gin.Context, apply func(*service.Caller, uuid.UUID) (*service.ReportResponse, error)) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	resp, err := apply(caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMine handles GET /reports
// @Summary List the calling hacker's reports
// @Description List the caller's reports, optionally filtered by the hacker-facing status axis
// @Tags reports
// @Produce json
// @Param status query string false "Filter: SUBMITTED, UNDER_REVIEW, ACCEPTED or REJECTED"
// @Success 200 {array} service.ReportResponse
// @Failure 400 {object} ErrorResponse "Unknown status filter"
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) ListMine(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}

	resp, err := h.reportService.ListForUser(caller, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListForCompany handles GET /reports/company
// @Summary List reports against the calling company's programs
// @Description Reports are grouped by submitting hacker and optionally filtered by the company-facing status axis
// @Tags reports
// @Produce json
// @Param status query string false "Filter: UNREVIEWED, REVIEWED or ASSESSED"
// @Success 200 {array} service.GroupedReportsResponse
// @Failure 400 {object} ErrorResponse "Unknown status filter"
// @Security BearerAuth
// @Router /reports/company [get]
func (h *ReportHandler) ListForCompany(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}

	resp, err := h.reportService.ListForCompany(caller, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListByDateRange handles GET /reports/range
// @Summary List reports created within a date range
// @Tags reports
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD), inclusive"
// @Success 200 {array} service.ReportResponse
// @Failure 400 {object} ErrorResponse "Malformed date"
// @Security BearerAuth
// @Router /reports/range [get]
func (h *ReportHandler) ListByDateRange(c *gin.Context) {
	if _, ok := resolveCaller(c, h.accessService, auth.Principal(c)); !ok {
		return
	}

	resp, err := h.reportService.ListByDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteReport handles DELETE /reports/:id
// @Summary Delete a report
// @Description Deletes the report with its variant details and attachments
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 204 "Report deleted"
// @Failure 403 {object} ErrorResponse "Caller does not own the report"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.reportService.Delete(caller, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadAttachment handles GET /reports/:id/attachments/:attachmentID
// @Summary Download a report attachment
// @Tags reports
// @Produce octet-stream
// @Param id path string true "Report ID"
// @Param attachmentID path string true "Attachment ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Attachment not found"
// @Security BearerAuth
// @Router /reports/{id}/attachments/{attachmentID} [get]
func (h *ReportHandler) DownloadAttachment(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}
	attachmentID, err := uuid.Parse(c.Param("attachmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "attachmentID must be a valid UUID"})
		return
	}

	attachment, err := h.reportService.GetAttachment(caller, reportID, attachmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := attachment.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `attachment; filename="`+attachment.FileName+`"`)
	c.Data(http.StatusOK, contentType, attachment.Data)
}

// readUploads collects the multipart attachments of a submission. A
// request without a multipart body simply has no attachments.
func readUploads(c *gin.Context) ([]service.AttachmentUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var uploads []service.AttachmentUpload
	for _, header := range form.File["attachments"] {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, service.AttachmentUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}
