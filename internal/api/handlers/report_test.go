package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bugbounty-platform-backend/internal/api/handlers"
	"bugbounty-platform-backend/internal/auth"
	"bugbounty-platform-backend/internal/database/models"
	apperrors "bugbounty-platform-backend/internal/errors"
	"bugbounty-platform-backend/internal/mocks"
	"bugbounty-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockReportSv  *mocks.MockReportServiceInterface
	mockAccessSv  *mocks.MockAccessServiceInterface
	handler       *handlers.ReportHandler
	router        *gin.Engine
	hacker        *service.Caller
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReportSv = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.mockAccessSv = mocks.NewMockAccessServiceInterface(suite.ctrl)
	suite.handler = handlers.NewReportHandler(suite.mockReportSv, suite.mockAccessSv)

	suite.hacker = &service.Caller{User: &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "h4x0r",
	}}

	suite.router = gin.New()
	// Stand-in for the JWT middleware: requests carry the principal in a
	// plain header
	suite.router.Use(func(c *gin.Context) {
		if p := c.GetHeader("X-Test-Principal"); p != "" {
			c.Set(auth.ContextPrincipal, p)
		}
	})
	suite.router.POST("/reports/manual", suite.handler.SubmitManual)
	suite.router.POST("/reports/cvss", suite.handler.SubmitCVSS)
	suite.router.GET("/reports", suite.handler.ListMine)
	suite.router.GET("/reports/range", suite.handler.ListByDateRange)
	suite.router.GET("/reports/:id", suite.handler.GetReport)
	suite.router.DELETE("/reports/:id", suite.handler.DeleteReport)
	suite.router.PATCH("/reports/:id/review", suite.handler.Review)
	suite.router.GET("/reports/:id/attachments/:attachmentID", suite.handler.DownloadAttachment)
}

func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportHandlerTestSuite) expectCaller() {
	suite.mockAccessSv.EXPECT().ResolveCaller("h4x0r").Return(suite.hacker, nil)
}

func (suite *ReportHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("X-Test-Principal", "h4x0r")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func multipartBody(t *testing.T, fields map[string]string, attachments map[string][]byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for name, data := range attachments {
		part, err := writer.CreateFormFile("attachments", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func (suite *ReportHandlerTestSuite) TestSubmitManual_Success() {
	suite.expectCaller()
	programID := uuid.New()

	suite.mockReportSv.EXPECT().
		SubmitManual(suite.hacker, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *service.Caller, req *service.SubmitManualReportRequest, uploads []service.AttachmentUpload) (*service.ReportResponse, error) {
			assert.Equal(suite.T(), programID, req.ProgramID)
			assert.Equal(suite.T(), "XSS in search", req.Title)
			assert.Len(suite.T(), uploads, 1)
			assert.Equal(suite.T(), "poc.png", uploads[0].FileName)
			return &service.ReportResponse{
				ID:               uuid.New(),
				ProgramID:        programID,
				Kind:             models.ReportKindManual,
				Title:            req.Title,
				StatusForUser:    models.UserStatusSubmitted,
				StatusForCompany: models.CompanyStatusUnreviewed,
			}, nil
		})

	body, contentType := multipartBody(suite.T(), map[string]string{
		"program_id": programID.String(),
		"title":      "XSS in search",
		"narrative":  "Reflected XSS via the q parameter.",
	}, map[string][]byte{"poc.png": []byte("fake-png")})

	req := httptest.NewRequest(http.MethodPost, "/reports/manual", body)
	req.Header.Set("Content-Type", contentType)
	w := suite.serve(req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ReportResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.UserStatusSubmitted, got.StatusForUser)
	assert.Equal(suite.T(), models.CompanyStatusUnreviewed, got.StatusForCompany)
}

func (suite *ReportHandlerTestSuite) TestSubmitManual_BadProgramID() {
	suite.expectCaller()

	body, contentType := multipartBody(suite.T(), map[string]string{
		"program_id": "not-a-uuid",
		"title":      "XSS in search",
		"narrative":  "details",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/reports/manual", body)
	req.Header.Set("Content-Type", contentType)
	w := suite.serve(req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ReportHandlerTestSuite) TestSubmitManual_Unauthenticated() {
	suite.mockAccessSv.EXPECT().ResolveCaller("").Return(nil, apperrors.ErrUnauthenticated)

	body, contentType := multipartBody(suite.T(), map[string]string{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/reports/manual", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *ReportHandlerTestSuite) TestSubmitCVSS_Success() {
	suite.expectCaller()
	programID := uuid.New()

	suite.mockReportSv.EXPECT().
		SubmitCVSS(suite.hacker, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *service.Caller, req *service.SubmitCVSSReportRequest, _ []service.AttachmentUpload) (*service.ReportResponse, error) {
			assert.Equal(suite.T(), "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", req.Vector)
			assert.Equal(suite.T(), 9.8, req.Score)
			return &service.ReportResponse{ID: uuid.New(), Kind: models.ReportKindCVSS}, nil
		})

	body, contentType := multipartBody(suite.T(), map[string]string{
		"program_id": programID.String(),
		"title":      "RCE in upload",
		"vector":     "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		"score":      "9.8",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/reports/cvss", body)
	req.Header.Set("Content-Type", contentType)
	w := suite.serve(req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *ReportHandlerTestSuite) TestSubmitCVSS_BadScore() {
	suite.expectCaller()

	body, contentType := multipartBody(suite.T(), map[string]string{
		"program_id": uuid.New().String(),
		"title":      "RCE in upload",
		"vector":     "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		"score":      "critical",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/reports/cvss", body)
	req.Header.Set("Content-Type", contentType)
	w := suite.serve(req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ReportHandlerTestSuite) TestGetReport_NotFound() {
	suite.expectCaller()
	id := uuid.New()
	suite.mockReportSv.EXPECT().GetByID(suite.hacker, id).Return(nil, apperrors.ErrReportNotFound)

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/reports/"+id.String(), nil))

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ReportHandlerTestSuite) TestGetReport_BadID() {
	suite.expectCaller()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/reports/not-a-uuid", nil))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ReportHandlerTestSuite) TestReview_Success() {
	suite.expectCaller()
	id := uuid.New()
	suite.mockReportSv.EXPECT().Review(suite.hacker, id).Return(&service.ReportResponse{
		ID:               id,
		StatusForUser:    models.UserStatusUnderReview,
		StatusForCompany: models.CompanyStatusReviewed,
	}, nil)

	w := suite.serve(httptest.NewRequest(http.MethodPatch, "/reports/"+id.String()+"/review", nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ReportResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.UserStatusUnderReview, got.StatusForUser)
}

func (suite *ReportHandlerTestSuite) TestReview_InvalidTransition() {
	suite.expectCaller()
	id := uuid.New()
	suite.mockReportSv.EXPECT().Review(suite.hacker, id).
		Return(nil, apperrors.NewInvalidTransitionError("accepted", "under_review"))

	w := suite.serve(httptest.NewRequest(http.MethodPatch, "/reports/"+id.String()+"/review", nil))

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ReportHandlerTestSuite) TestReview_Forbidden() {
	suite.expectCaller()
	id := uuid.New()
	suite.mockReportSv.EXPECT().Review(suite.hacker, id).Return(nil, apperrors.ErrNotProgramOwner)

	w := suite.serve(httptest.NewRequest(http.MethodPatch, "/reports/"+id.String()+"/review", nil))

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *ReportHandlerTestSuite) TestListMine_PassesStatusFilter() {
	suite.expectCaller()
	suite.mockReportSv.EXPECT().ListForUser(suite.hacker, "ACCEPTED").Return([]service.ReportResponse{}, nil)

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/reports?status=ACCEPTED", nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ReportHandlerTestSuite) TestListByDateRange_BadDates() {
	suite.expectCaller()
	suite.mockReportSv.EXPECT().ListByDateRange("2026-13-01", "2026-01-31").
		Return(nil, apperrors.NewValidationError("start_date", "must be YYYY-MM-DD"))

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/reports/range?start_date=2026-13-01&end_date=2026-01-31", nil))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ReportHandlerTestSuite) TestDeleteReport_NoContent() {
	suite.expectCaller()
	id := uuid.New()
	suite.mockReportSv.EXPECT().Delete(suite.hacker, id).Return(nil)

	w := suite.serve(httptest.NewRequest(http.MethodDelete, "/reports/"+id.String(), nil))

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *ReportHandlerTestSuite) TestDownloadAttachment_Success() {
	suite.expectCaller()
	reportID := uuid.New()
	attachmentID := uuid.New()
	suite.mockReportSv.EXPECT().GetAttachment(suite.hacker, reportID, attachmentID).Return(&models.ReportAttachment{
		BaseModel:   models.BaseModel{ID: attachmentID},
		ReportID:    reportID,
		FileName:    "poc.png",
		ContentType: "image/png",
		Data:        []byte("fake-png"),
	}, nil)

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/reports/"+reportID.String()+"/attachments/"+attachmentID.String(), nil))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "image/png", w.Header().Get("Content-Type"))
	assert.Contains(suite.T(), w.Header().Get("Content-Disposition"), "poc.png")
	assert.Equal(suite.T(), []byte("fake-png"), w.Body.Bytes())
}

func (suite *ReportHandlerTestSuite) TestDownloadAttachment_WrongReport() {
	suite.expectCaller()
	reportID := uuid.New()
	attachmentID := uuid.New()
	suite.mockReportSv.EXPECT().GetAttachment(suite.hacker, reportID, attachmentID).
		Return(nil, apperrors.ErrAttachmentNotFound)

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/reports/"+reportID.String()+"/attachments/"+attachmentID.String(), nil))

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
