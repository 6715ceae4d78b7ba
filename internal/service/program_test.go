package service_test

import (
	"testing"

	"bugbounty-platform-backend/internal/database/models"
	apperrors "bugbounty-platform-backend/internal/errors"
	"bugbounty-platform-backend/internal/mocks"
	"bugbounty-platform-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ProgramServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProgramRepo *mocks.MockProgramRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	programService  *service.ProgramService

	company *service.Caller
	hacker  *service.Caller
}

func (suite *ProgramServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProgramRepo = mocks.NewMockProgramRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)

	access := service.NewAccessService(suite.mockUserRepo, suite.mockCompanyRepo)
	suite.programService = service.NewProgramService(suite.mockProgramRepo, access, validator.New())

	suite.company = &service.Caller{Company: &models.Company{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "security@acme.io",
	}}
	suite.hacker = &service.Caller{User: &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "reporter",
	}}
}

func (suite *ProgramServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validProgramRequest() *service.CreateProgramRequest {
	return &service.CreateProgramRequest{
		FromDate:   "2026-01-01",
		ToDate:     "2026-06-30",
		Policy:     "Only targets listed in scope may be tested.",
		InScope:    []string{"*.acme.io"},
		OutOfScope: []string{"status.acme.io"},
		Prohibits:  []string{"No social engineering"},
		Asset: &service.AggregatePayload{
			Low:      &service.BucketPayload{Price: 100},
			Critical: &service.BucketPayload{
				Price: 10000,
				Assets: []service.AssetEntryPayload{
					{Type: "domain", Names: []string{"api.acme.io", "api.acme.io", "www.acme.io"}},
				},
			},
		},
	}
}

func (suite *ProgramServiceTestSuite) TestReplace_Success() {
	req := validProgramRequest()

	var created *models.Program
	suite.mockProgramRepo.EXPECT().
		ReplaceForCompany(suite.company.Company.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, p *models.Program) error {
			p.ID = uuid.New()
			created = p
			return nil
		})

	resp, err := suite.programService.Replace(suite.company, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.company.Company.ID, resp.CompanyID)
	assert.Equal(suite.T(), "2026-01-01", resp.FromDate)
	assert.Len(suite.T(), resp.Prohibits, 1)

	// The aggregate is always complete: all four tiers exist even when
	// the payload omits some
	assert.Len(suite.T(), created.Asset.Buckets, 4)
	critical := created.Asset.Bucket(models.SeverityCritical)
	assert.Equal(suite.T(), float64(10000), critical.Price)
	// Duplicate asset names are dropped
	assert.Equal(suite.T(), []string{"api.acme.io", "www.acme.io"}, critical.Assets[0].Names)
	medium := created.Asset.Bucket(models.SeverityMedium)
	assert.Equal(suite.T(), float64(0), medium.Price)
	assert.Empty(suite.T(), medium.Assets)
}

func (suite *ProgramServiceTestSuite) TestReplace_HackerForbidden() {
	resp, err := suite.programService.Replace(suite.hacker, validProgramRequest())

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *ProgramServiceTestSuite) TestReplace_DateOrderValidated() {
	req := validProgramRequest()
	req.FromDate = "2026-06-30"
	req.ToDate = "2026-01-01"

	resp, err := suite.programService.Replace(suite.company, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ProgramServiceTestSuite) TestReplace_MalformedDate() {
	req := validProgramRequest()
	req.FromDate = "01/06/2026"

	resp, err := suite.programService.Replace(suite.company, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ProgramServiceTestSuite) TestReplace_MissingPolicy() {
	req := validProgramRequest()
	req.Policy = ""

	resp, err := suite.programService.Replace(suite.company, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ProgramServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockProgramRepo.EXPECT().GetWithDetails(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.programService.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProgramNotFound)
}

func (suite *ProgramServiceTestSuite) TestGetAllAssets_Flattens() {
	program := &models.Program{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.company.Company.ID,
		Asset: &models.ProgramAsset{
			Buckets: []models.SeverityBucket{
				{Level: models.SeverityLow, Assets: []models.Asset{{Type: "domain", Names: []string{"a.acme.io"}}}},
				{Level: models.SeverityMedium},
				{Level: models.SeverityHigh, Assets: []models.Asset{{Type: "ip", Names: []string{"10.0.0.1"}}}},
				{Level: models.SeverityCritical},
			},
		},
	}
	suite.mockProgramRepo.EXPECT().GetWithDetails(program.ID).Return(program, nil)

	entries, err := suite.programService.GetAllAssets(program.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), entries, 2)
	assert.Equal(suite.T(), "domain", entries[0].Type)
	assert.Equal(suite.T(), "ip", entries[1].Type)
}

func (suite *ProgramServiceTestSuite) TestReplaceAggregate_OwnershipEnforced() {
	program := &models.Program{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: uuid.New(), // another company
	}
	suite.mockProgramRepo.EXPECT().GetByID(program.ID).Return(program, nil)

	resp, err := suite.programService.ReplaceAggregate(suite.company, program.ID, &service.AggregatePayload{})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *ProgramServiceTestSuite) TestDelete_Success() {
	program := &models.Program{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.company.Company.ID,
	}
	suite.mockProgramRepo.EXPECT().GetByID(program.ID).Return(program, nil)
	suite.mockProgramRepo.EXPECT().Delete(program.ID).Return(nil)

	assert.NoError(suite.T(), suite.programService.Delete(suite.company, program.ID))
}

func (suite *ProgramServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockProgramRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.programService.Delete(suite.company, id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProgramNotFound)
}

func TestProgramServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProgramServiceTestSuite))
}
