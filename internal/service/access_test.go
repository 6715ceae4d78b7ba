package service_test

import (
	"testing"

	"bugbounty-platform-backend/internal/database/models"
	apperrors "bugbounty-platform-backend/internal/errors"
	"bugbounty-platform-backend/internal/mocks"
	"bugbounty-platform-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AccessServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	accessService   *service.AccessService
}

func (suite *AccessServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.accessService = service.NewAccessService(suite.mockUserRepo, suite.mockCompanyRepo)
}

func (suite *AccessServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccessServiceTestSuite) TestResolveCaller_Hacker() {
	user := &models.User{Username: "h4x0r"}
	suite.mockUserRepo.EXPECT().GetByUsername("h4x0r").Return(user, nil)

	caller, err := suite.accessService.ResolveCaller("h4x0r")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), caller.IsHacker())
	assert.False(suite.T(), caller.IsCompany())
	assert.Equal(suite.T(), "h4x0r", caller.Name())
}

func (suite *AccessServiceTestSuite) TestResolveCaller_CompanyFallback() {
	// No hacker account for the principal, falls through to company lookup
	company := &models.Company{Email: "security@acme.io"}
	suite.mockUserRepo.EXPECT().GetByUsername("security@acme.io").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCompanyRepo.EXPECT().GetByEmail("security@acme.io").Return(company, nil)

	caller, err := suite.accessService.ResolveCaller("security@acme.io")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), caller.IsCompany())
	assert.Equal(suite.T(), "security@acme.io", caller.Name())
}

func (suite *AccessServiceTestSuite) TestResolveCaller_EmptyPrincipal() {
	caller, err := suite.accessService.ResolveCaller("")

	assert.Nil(suite.T(), caller)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthenticated)
}

func (suite *AccessServiceTestSuite) TestResolveCaller_UnknownPrincipal() {
	suite.mockUserRepo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCompanyRepo.EXPECT().GetByEmail("ghost").Return(nil, gorm.ErrRecordNotFound)

	caller, err := suite.accessService.ResolveCaller("ghost")

	assert.Nil(suite.T(), caller)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPrincipalNotRecognized)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

func (suite *AccessServiceTestSuite) TestRequireReportOwnership() {
	hackerID := uuid.New()
	companyID := uuid.New()
	report := &models.Report{UserID: hackerID}
	program := &models.Program{CompanyID: companyID}

	owner := &service.Caller{User: &models.User{BaseModel: models.BaseModel{ID: hackerID}}}
	otherHacker := &service.Caller{User: &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}}
	owningCompany := &service.Caller{Company: &models.Company{BaseModel: models.BaseModel{ID: companyID}}}
	otherCompany := &service.Caller{Company: &models.Company{BaseModel: models.BaseModel{ID: uuid.New()}}}

	assert.NoError(suite.T(), suite.accessService.RequireReportOwnership(owner, report, program))
	assert.NoError(suite.T(), suite.accessService.RequireReportOwnership(owningCompany, report, program))

	err := suite.accessService.RequireReportOwnership(otherHacker, report, program)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotReportOwner)
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	assert.ErrorIs(suite.T(), suite.accessService.RequireReportOwnership(otherCompany, report, program), apperrors.ErrNotReportOwner)
}

func (suite *AccessServiceTestSuite) TestRequireProgramOwnership() {
	companyID := uuid.New()
	program := &models.Program{CompanyID: companyID}

	owner := &service.Caller{Company: &models.Company{BaseModel: models.BaseModel{ID: companyID}}}
	hacker := &service.Caller{User: &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}}
	otherCompany := &service.Caller{Company: &models.Company{BaseModel: models.BaseModel{ID: uuid.New()}}}

	assert.NoError(suite.T(), suite.accessService.RequireProgramOwnership(owner, program))
	assert.ErrorIs(suite.T(), suite.accessService.RequireProgramOwnership(hacker, program), apperrors.ErrNotProgramOwner)
	assert.ErrorIs(suite.T(), suite.accessService.RequireProgramOwnership(otherCompany, program), apperrors.ErrNotProgramOwner)
}

func TestAccessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccessServiceTestSuite))
}
