package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/NidhiSetu/fund_management_app/internal/apperrors"
	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	portssvc "github.com/NidhiSetu/fund_management_app/internal/core/ports/services"
	"github.com/NidhiSetu/fund_management_app/internal/core/services"
	"github.com/NidhiSetu/fund_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type WorkServiceTestSuite struct {
	suite.Suite
	mockWorkRepo   *MockWorkRepository
	mockDemandRepo *MockDemandRepository
	mockVendorRepo *MockVendorRepository
	service        portssvc.WorkSvcFacade
	userID         string
}

func (suite *WorkServiceTestSuite) SetupTest() {
	suite.mockWorkRepo = new(MockWorkRepository)
	suite.mockDemandRepo = new(MockDemandRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.service = services.NewWorkService(suite.mockWorkRepo, suite.mockDemandRepo, suite.mockVendorRepo)
	suite.userID = uuid.NewString()
}

func (suite *WorkServiceTestSuite) baseRequest() dto.CreateWorkRequest {
	return dto.CreateWorkRequest{
		SchemeName:          "Rural Roads Phase II",
		Name:                "Culvert construction, km 14",
		SanctionedDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		FinancialYear:       "2024-2025",
		AdminApprovedAmount: decimal.NewFromInt(1500000),
		WorkPortionAmount:   decimal.NewFromInt(1200000),
		TaxDeductionAmount:  decimal.NewFromInt(250000),
	}
}

// --- CreateWork ---

func (suite *WorkServiceTestSuite) TestCreateWork_Success() {
	ctx := context.Background()
	req := suite.baseRequest()

	suite.mockWorkRepo.On("SaveWork", ctx, mock.AnythingOfType("domain.Work")).Return(nil).Once()

	work, err := suite.service.CreateWork(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(work)
	suite.NotEmpty(work.WorkID)
	suite.Equal("Pending", work.Status)
	suite.Equal("", work.VendorName)
	suite.Equal(suite.userID, work.CreatedBy)
	suite.True(decimal.NewFromInt(1450000).Equal(work.GrossTotal()))
	suite.mockWorkRepo.AssertExpectations(suite.T())
}

func (suite *WorkServiceTestSuite) TestCreateWork_ResolvesVendorName() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	req := suite.baseRequest()
	req.VendorID = &vendorID

	vendor := domain.Vendor{VendorID: vendorID, Name: "Shree Constructions", IsActive: true}
	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(&vendor, nil).Once()
	suite.mockWorkRepo.On("SaveWork", ctx, mock.AnythingOfType("domain.Work")).Return(nil).Once()

	work, err := suite.service.CreateWork(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Shree Constructions", work.VendorName)
	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func (suite *WorkServiceTestSuite) TestCreateWork_UnknownVendor() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	req := suite.baseRequest()
	req.VendorID = &vendorID

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(nil, apperrors.ErrNotFound).Once()

	work, err := suite.service.CreateWork(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(work)
	suite.mockWorkRepo.AssertNotCalled(suite.T(), "SaveWork", mock.Anything, mock.Anything)
}

func (suite *WorkServiceTestSuite) TestCreateWork_NegativeAmount() {
	ctx := context.Background()
	req := suite.baseRequest()
	req.TaxDeductionAmount = decimal.NewFromInt(-1)

	work, err := suite.service.CreateWork(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(work)
	suite.mockWorkRepo.AssertNotCalled(suite.T(), "SaveWork", mock.Anything, mock.Anything)
}

// --- GetWorkSummary ---

func (suite *WorkServiceTestSuite) TestGetWorkSummary_RecomputesFromDemands() {
	ctx := context.Background()
	work := domain.Work{
		WorkID:             uuid.NewString(),
		WorkPortionAmount:  decimal.NewFromInt(1200000),
		TaxDeductionAmount: decimal.NewFromInt(250000),
	}
	demands := []domain.Demand{
		{DemandID: uuid.NewString(), WorkID: work.WorkID, Amount: decimal.NewFromInt(200000), Status: domain.DemandApproved},
		{DemandID: uuid.NewString(), WorkID: work.WorkID, Amount: decimal.NewFromInt(150000), Status: domain.DemandRejected},
	}

	suite.mockWorkRepo.On("FindWorkByID", ctx, work.WorkID).Return(&work, nil).Once()
	suite.mockDemandRepo.On("FindDemandsByWorkID", ctx, work.WorkID).Return(demands, nil).Once()

	got, aggregates, err := suite.service.GetWorkSummary(ctx, work.WorkID)

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.True(decimal.NewFromInt(1450000).Equal(aggregates.GrossTotal))
	// Rejected demands still count toward the total demanded.
	suite.True(decimal.NewFromInt(350000).Equal(aggregates.TotalDemanded))
	suite.True(decimal.NewFromInt(1100000).Equal(aggregates.Balance))
}

func (suite *WorkServiceTestSuite) TestGetWorkSummary_WorkNotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()

	suite.mockWorkRepo.On("FindWorkByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.GetWorkSummary(ctx, missingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDemandRepo.AssertNotCalled(suite.T(), "FindDemandsByWorkID", mock.Anything, mock.Anything)
}

func TestWorkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkServiceTestSuite))
}
