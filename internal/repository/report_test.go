//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"bugbounty-platform-backend/internal/database/models"
	apperrors "bugbounty-platform-backend/internal/errors"
	"bugbounty-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReportRepositoryTestSuite tests the ReportRepository
type ReportRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ReportRepository
	userRepo      *UserRepository
	companyRepo   *CompanyRepository
	programRepo   *ProgramRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ReportRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewReportRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.companyRepo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.programRepo = NewProgramRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ReportRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ReportRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ReportRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createFixtures creates a hacker, a company and a program to report against
func (suite *ReportRepositoryTestSuite) createFixtures() (*models.User, *models.Program) {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	company := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(company))
	program := suite.factories.Program.Bare(company.ID)
	suite.NoError(suite.programRepo.Create(program))
	return user, program
}

// TestCreateManual tests creating a manual report with its detail row
func (suite *ReportRepositoryTestSuite) TestCreateManual() {
	user, program := suite.createFixtures()
	report := suite.factories.Report.CreateManual(user.ID, program.ID)

	err := suite.repo.Create(report)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, report.ID)
	suite.NotEqual(uuid.Nil, report.Manual.ID)
}

// TestGetWithDetails tests that variant details and owner are preloaded
func (suite *ReportRepositoryTestSuite) TestGetWithDetails() {
	user, program := suite.createFixtures()
	report := suite.factories.Report.CreateCVSS(user.ID, program.ID)
	suite.NoError(suite.repo.Create(report))

	found, err := suite.repo.GetWithDetails(report.ID)

	suite.NoError(err)
	suite.Equal(report.ID, found.ID)
	suite.Nil(found.Manual)
	suite.NotNil(found.CVSS)
	suite.Equal(9.8, found.CVSS.Score)
	suite.Equal(user.Username, found.User.Username)
	suite.Equal(program.ID, found.Program.ID)
}

// TestListByUser tests the status narrowing of a hacker listing
func (suite *ReportRepositoryTestSuite) TestListByUser() {
	user, program := suite.createFixtures()
	submitted := suite.factories.Report.CreateManual(user.ID, program.ID)
	suite.NoError(suite.repo.Create(submitted))
	accepted := suite.factories.Report.WithStatus(
		suite.factories.Report.CreateManual(user.ID, program.ID), models.StatusAccepted)
	suite.NoError(suite.repo.Create(accepted))

	all, err := suite.repo.ListByUser(user.ID, nil)
	suite.NoError(err)
	suite.Len(all, 2)

	onlyAccepted, err := suite.repo.ListByUser(user.ID, []models.ReportStatus{models.StatusAccepted})
	suite.NoError(err)
	suite.Len(onlyAccepted, 1)
	suite.Equal(accepted.ID, onlyAccepted[0].ID)
}

// TestListByCompany tests the join onto the company's programs
func (suite *ReportRepositoryTestSuite) TestListByCompany() {
	user, program := suite.createFixtures()
	report := suite.factories.Report.CreateManual(user.ID, program.ID)
	suite.NoError(suite.repo.Create(report))

	// A report against another company's program stays invisible
	otherCompany := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(otherCompany))
	otherProgram := suite.factories.Program.Bare(otherCompany.ID)
	suite.NoError(suite.programRepo.Create(otherProgram))
	otherReport := suite.factories.Report.CreateManual(user.ID, otherProgram.ID)
	suite.NoError(suite.repo.Create(otherReport))

	reports, err := suite.repo.ListByCompany(program.CompanyID, nil)

	suite.NoError(err)
	suite.Len(reports, 1)
	suite.Equal(report.ID, reports[0].ID)
	suite.Equal(user.Username, reports[0].User.Username)

	// Terminal statuses only
	assessed, err := suite.repo.ListByCompany(program.CompanyID, []models.ReportStatus{
		models.StatusAccepted, models.StatusRejected,
	})
	suite.NoError(err)
	suite.Len(assessed, 0)
}

// TestListByDateRange tests the inclusive window
func (suite *ReportRepositoryTestSuite) TestListByDateRange() {
	user, program := suite.createFixtures()
	report := suite.factories.Report.CreateManual(user.ID, program.ID)
	suite.NoError(suite.repo.Create(report))

	now := time.Now()
	inWindow, err := suite.repo.ListByDateRange(now.Add(-time.Hour), now.Add(time.Hour))
	suite.NoError(err)
	suite.Len(inWindow, 1)

	outOfWindow, err := suite.repo.ListByDateRange(now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	suite.NoError(err)
	suite.Len(outOfWindow, 0)
}

// TestUpdateStatus tests the compare-and-swap transition
func (suite *ReportRepositoryTestSuite) TestUpdateStatus() {
	user, program := suite.createFixtures()
	report := suite.factories.Report.CreateManual(user.ID, program.ID)
	suite.NoError(suite.repo.Create(report))

	err := suite.repo.UpdateStatus(report.ID, models.StatusSubmitted, models.StatusUnderReview)
	suite.NoError(err)

	found, err := suite.repo.GetByID(report.ID)
	suite.NoError(err)
	suite.Equal(models.StatusUnderReview, found.Status)
}

// TestUpdateStatusStale tests that a stale expected status is rejected
func (suite *ReportRepositoryTestSuite) TestUpdateStatusStale() {
	user, program := suite.createFixtures()
	report := suite.factories.Report.CreateManual(user.ID, program.ID)
	suite.NoError(suite.repo.Create(report))
	suite.NoError(suite.repo.UpdateStatus(report.ID, models.StatusSubmitted, models.StatusUnderReview))

	// The report already left submitted, so the swap finds zero rows
	err := suite.repo.UpdateStatus(report.ID, models.StatusSubmitted, models.StatusUnderReview)
	suite.ErrorIs(err, apperrors.ErrStatusConflict)

	found, err := suite.repo.GetByID(report.ID)
	suite.NoError(err)
	suite.Equal(models.StatusUnderReview, found.Status)
}

// TestDelete tests that deletion removes detail and attachment rows
func (suite *ReportRepositoryTestSuite) TestDelete() {
	user, program := suite.createFixtures()
	report := suite.factories.Report.CreateManual(user.ID, program.ID)
	suite.NoError(suite.repo.Create(report))

	attachmentRepo := NewAttachmentRepository(suite.baseTestSuite.DB)
	suite.NoError(attachmentRepo.SaveAll([]models.ReportAttachment{
		{ReportID: report.ID, FileName: "poc.png", ContentType: "image/png", Data: []byte("fake-png")},
	}))

	suite.NoError(suite.repo.Delete(report.ID))

	_, err := suite.repo.GetByID(report.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.baseTestSuite.DB.Model(&models.ReportManualDetails{}).Where("report_id = ?", report.ID).Count(&count)
	suite.Equal(int64(0), count)
	suite.baseTestSuite.DB.Model(&models.ReportAttachment{}).Where("report_id = ?", report.ID).Count(&count)
	suite.Equal(int64(0), count)
}

// TestAttachmentRoundTrip tests saving and retrieving attachment blobs
func (suite *ReportRepositoryTestSuite) TestAttachmentRoundTrip() {
	user, program := suite.createFixtures()
	report := suite.factories.Report.CreateManual(user.ID, program.ID)
	suite.NoError(suite.repo.Create(report))

	attachmentRepo := NewAttachmentRepository(suite.baseTestSuite.DB)
	suite.NoError(attachmentRepo.SaveAll([]models.ReportAttachment{
		{ReportID: report.ID, FileName: "poc.png", ContentType: "image/png", Data: []byte("fake-png")},
		{ReportID: report.ID, FileName: "notes.txt", ContentType: "text/plain", Data: []byte("steps")},
	}))

	attachments, err := attachmentRepo.GetByReportID(report.ID)
	suite.NoError(err)
	suite.Len(attachments, 2)

	single, err := attachmentRepo.GetByID(attachments[0].ID)
	suite.NoError(err)
	suite.Equal([]byte("fake-png"), single.Data)
}

func TestReportRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReportRepositoryTestSuite))
}
