package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/NidhiSetu/fund_management_app/internal/apperrors"
	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	portsrepo "github.com/NidhiSetu/fund_management_app/internal/core/ports/repositories"
	portssvc "github.com/NidhiSetu/fund_management_app/internal/core/ports/services"
	"github.com/NidhiSetu/fund_management_app/internal/core/services"
	"github.com/NidhiSetu/fund_management_app/internal/dto"
	"github.com/NidhiSetu/fund_management_app/internal/utils/funding"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DemandRepository ---
type MockDemandRepository struct {
	mock.Mock
}

// Ensure MockDemandRepository implements portsrepo.DemandRepositoryWithTx
var _ portsrepo.DemandRepositoryWithTx = (*MockDemandRepository)(nil)

func (m *MockDemandRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockDemandRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDemandRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockDemandRepository) FindDemandByID(ctx context.Context, demandID string) (*domain.Demand, error) {
	args := m.Called(ctx, demandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Demand), args.Error(1)
}

func (m *MockDemandRepository) FindDemandsByWorkID(ctx context.Context, workID string) ([]domain.Demand, error) {
	args := m.Called(ctx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Demand), args.Error(1)
}

func (m *MockDemandRepository) FindDemandsByVendorID(ctx context.Context, vendorID string) ([]domain.Demand, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Demand), args.Error(1)
}

func (m *MockDemandRepository) FindDemandsByWorkIDTx(ctx context.Context, tx pgx.Tx, workID string) ([]domain.Demand, error) {
	args := m.Called(ctx, tx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Demand), args.Error(1)
}

func (m *MockDemandRepository) SaveDemandTx(ctx context.Context, tx pgx.Tx, demand domain.Demand) error {
	args := m.Called(ctx, tx, demand)
	return args.Error(0)
}

func (m *MockDemandRepository) UpdateDemandStatus(ctx context.Context, demandID string, expectedStatus, newStatus domain.DemandStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, demandID, expectedStatus, newStatus, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock WorkRepository ---
type MockWorkRepository struct {
	mock.Mock
}

var _ portsrepo.WorkRepositoryFacade = (*MockWorkRepository)(nil)

func (m *MockWorkRepository) FindWorkByID(ctx context.Context, workID string) (*domain.Work, error) {
	args := m.Called(ctx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *MockWorkRepository) ListWorks(ctx context.Context, limit int, offset int) ([]domain.Work, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Work), args.Error(1)
}

func (m *MockWorkRepository) SaveWork(ctx context.Context, work domain.Work) error {
	args := m.Called(ctx, work)
	return args.Error(0)
}

func (m *MockWorkRepository) FindWorkByIDForUpdate(ctx context.Context, tx pgx.Tx, workID string) (*domain.Work, error) {
	args := m.Called(ctx, tx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

// --- Mock VendorRepository ---
type MockVendorRepository struct {
	mock.Mock
}

var _ portsrepo.VendorRepositoryFacade = (*MockVendorRepository)(nil)

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

// --- Mock TaxRateRepository ---
type MockTaxRateRepository struct {
	mock.Mock
}

var _ portsrepo.TaxRateRepositoryFacade = (*MockTaxRateRepository)(nil)

func (m *MockTaxRateRepository) FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	args := m.Called(ctx, taxRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}

func (m *MockTaxRateRepository) SaveTaxRate(ctx context.Context, rate domain.TaxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Test Suite Setup ---
type DemandServiceTestSuite struct {
	suite.Suite
	mockDemandRepo *MockDemandRepository
	mockWorkRepo   *MockWorkRepository
	mockVendorRepo *MockVendorRepository
	mockTaxRepo    *MockTaxRateRepository
	service        portssvc.DemandSvcFacade
	work           domain.Work
	gstRate        domain.TaxRate
	userID         string
}

func (suite *DemandServiceTestSuite) SetupTest() {
	suite.mockDemandRepo = new(MockDemandRepository)
	suite.mockWorkRepo = new(MockWorkRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.mockTaxRepo = new(MockTaxRateRepository)
	suite.service = services.NewDemandService(suite.mockDemandRepo, suite.mockWorkRepo, suite.mockVendorRepo, suite.mockTaxRepo)

	suite.userID = uuid.NewString()

	vendorID := uuid.NewString()
	suite.work = domain.Work{
		WorkID:             uuid.NewString(),
		SchemeName:         "Rural Roads Phase II",
		Name:               "Culvert construction, km 14",
		SanctionedDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		FinancialYear:      "2024-2025",
		WorkPortionAmount:  decimal.NewFromInt(1200000),
		TaxDeductionAmount: decimal.NewFromInt(250000),
		VendorID:           &vendorID,
		VendorName:         "Shree Constructions",
		Status:             "InProgress",
	}
	suite.gstRate = domain.TaxRate{
		TaxRateID:  uuid.NewString(),
		Name:       "GST",
		Percentage: decimal.NewFromInt(18),
		IsActive:   true,
	}
}

func (suite *DemandServiceTestSuite) catalog() []domain.TaxRate {
	return []domain.TaxRate{suite.gstRate}
}

// --- RaiseDemand ---

func (suite *DemandServiceTestSuite) TestRaiseDemand_Success() {
	ctx := context.Background()
	req := dto.RaiseDemandRequest{
		Amount:     "200000",
		TaxRateIDs: []string{suite.gstRate.TaxRateID},
		Remarks:    "First running bill",
	}

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(suite.catalog(), nil).Once()
	suite.mockDemandRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockWorkRepo.On("FindWorkByIDForUpdate", ctx, mock.Anything, suite.work.WorkID).Return(&suite.work, nil).Once()
	suite.mockDemandRepo.On("FindDemandsByWorkIDTx", ctx, mock.Anything, suite.work.WorkID).Return([]domain.Demand{}, nil).Once()
	suite.mockDemandRepo.On("SaveDemandTx", ctx, mock.Anything, mock.AnythingOfType("domain.Demand")).Return(nil).Once()
	suite.mockDemandRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockDemandRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	demand, outcome, err := suite.service.RaiseDemand(ctx, suite.work.WorkID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(demand)
	suite.Equal(funding.OutcomeOk, outcome.Kind)
	suite.NotEmpty(demand.DemandID)
	suite.Equal("FD-0001", demand.DemandCode)
	suite.Equal(suite.work.WorkID, demand.WorkID)
	suite.Equal("Shree Constructions", demand.VendorName)
	suite.Equal(domain.DemandPending, demand.Status)
	suite.True(decimal.NewFromInt(200000).Equal(demand.Amount))
	suite.Require().NotNil(demand.NetPayable)
	suite.True(decimal.NewFromInt(164000).Equal(*demand.NetPayable))
	suite.Require().Len(demand.Taxes, 1)
	suite.True(decimal.NewFromInt(36000).Equal(demand.Taxes[0].Amount))
	suite.Equal(demand.DemandID, demand.Taxes[0].DemandID)
	suite.Equal(suite.userID, demand.CreatedBy)

	suite.mockDemandRepo.AssertExpectations(suite.T())
	suite.mockWorkRepo.AssertExpectations(suite.T())
	suite.mockTaxRepo.AssertExpectations(suite.T())
}

func (suite *DemandServiceTestSuite) TestRaiseDemand_ExceedsBalance_NoAppend() {
	ctx := context.Background()

	// One earlier demand of 200000 leaves a balance of 1250000.
	existing := []domain.Demand{{
		DemandID: uuid.NewString(),
		WorkID:   suite.work.WorkID,
		Amount:   decimal.NewFromInt(200000),
		Status:   domain.DemandPending,
	}}
	req := dto.RaiseDemandRequest{
		Amount:  "1300000",
		Remarks: "Second running bill",
	}

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(suite.catalog(), nil).Once()
	suite.mockDemandRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockWorkRepo.On("FindWorkByIDForUpdate", ctx, mock.Anything, suite.work.WorkID).Return(&suite.work, nil).Once()
	suite.mockDemandRepo.On("FindDemandsByWorkIDTx", ctx, mock.Anything, suite.work.WorkID).Return(existing, nil).Once()
	suite.mockDemandRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	demand, outcome, err := suite.service.RaiseDemand(ctx, suite.work.WorkID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(demand)
	suite.Equal(funding.OutcomeExceedsBalance, outcome.Kind)
	suite.Contains(outcome.Message, "1250000")

	suite.mockDemandRepo.AssertNotCalled(suite.T(), "SaveDemandTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockDemandRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *DemandServiceTestSuite) TestRaiseDemand_NearBalance_Advisory() {
	ctx := context.Background()
	req := dto.RaiseDemandRequest{
		Amount:  "1400000", // above 0.9 x 1450000, below the balance
		Remarks: "Final bill",
	}

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(suite.catalog(), nil).Once()
	suite.mockDemandRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockWorkRepo.On("FindWorkByIDForUpdate", ctx, mock.Anything, suite.work.WorkID).Return(&suite.work, nil).Once()
	suite.mockDemandRepo.On("FindDemandsByWorkIDTx", ctx, mock.Anything, suite.work.WorkID).Return([]domain.Demand{}, nil).Once()
	suite.mockDemandRepo.On("SaveDemandTx", ctx, mock.Anything, mock.AnythingOfType("domain.Demand")).Return(nil).Once()
	suite.mockDemandRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockDemandRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	demand, outcome, err := suite.service.RaiseDemand(ctx, suite.work.WorkID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(demand)
	suite.Equal(funding.OutcomeNearBalance, outcome.Kind)
	suite.mockDemandRepo.AssertExpectations(suite.T())
}

func (suite *DemandServiceTestSuite) TestRaiseDemand_MissingRemarks() {
	ctx := context.Background()
	req := dto.RaiseDemandRequest{
		Amount:  "50000",
		Remarks: "   ",
	}

	demand, _, err := suite.service.RaiseDemand(ctx, suite.work.WorkID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrMissingRemarks)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(demand)
	suite.mockTaxRepo.AssertNotCalled(suite.T(), "ListTaxRates", mock.Anything, mock.Anything)
	suite.mockDemandRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *DemandServiceTestSuite) TestRaiseDemand_UnknownTaxRate() {
	ctx := context.Background()
	req := dto.RaiseDemandRequest{
		Amount:     "50000",
		TaxRateIDs: []string{uuid.NewString()},
		Remarks:    "First bill",
	}

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(suite.catalog(), nil).Once()

	demand, _, err := suite.service.RaiseDemand(ctx, suite.work.WorkID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnknownTaxRate)
	suite.Nil(demand)
	suite.mockDemandRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *DemandServiceTestSuite) TestRaiseDemand_NonNumericAmount() {
	ctx := context.Background()
	req := dto.RaiseDemandRequest{
		Amount:  "abc",
		Remarks: "First bill",
	}

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(suite.catalog(), nil).Once()
	suite.mockDemandRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockWorkRepo.On("FindWorkByIDForUpdate", ctx, mock.Anything, suite.work.WorkID).Return(&suite.work, nil).Once()
	suite.mockDemandRepo.On("FindDemandsByWorkIDTx", ctx, mock.Anything, suite.work.WorkID).Return([]domain.Demand{}, nil).Once()
	suite.mockDemandRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	demand, outcome, err := suite.service.RaiseDemand(ctx, suite.work.WorkID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(demand)
	suite.Equal(funding.OutcomeInvalid, outcome.Kind)
	suite.mockDemandRepo.AssertNotCalled(suite.T(), "SaveDemandTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DemandServiceTestSuite) TestRaiseDemand_WorkNotFound() {
	ctx := context.Background()
	req := dto.RaiseDemandRequest{
		Amount:  "50000",
		Remarks: "First bill",
	}
	missingID := uuid.NewString()

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(suite.catalog(), nil).Once()
	suite.mockDemandRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockWorkRepo.On("FindWorkByIDForUpdate", ctx, mock.Anything, missingID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockDemandRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	demand, _, err := suite.service.RaiseDemand(ctx, missingID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(demand)
}

func (suite *DemandServiceTestSuite) TestRaiseDemand_SequentialDemandCode() {
	ctx := context.Background()
	existing := []domain.Demand{
		{DemandID: uuid.NewString(), WorkID: suite.work.WorkID, Amount: decimal.NewFromInt(100000), Status: domain.DemandApproved},
		{DemandID: uuid.NewString(), WorkID: suite.work.WorkID, Amount: decimal.NewFromInt(50000), Status: domain.DemandRejected},
	}
	req := dto.RaiseDemandRequest{
		Amount:  "25000",
		Remarks: "Third bill",
	}

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(suite.catalog(), nil).Once()
	suite.mockDemandRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockWorkRepo.On("FindWorkByIDForUpdate", ctx, mock.Anything, suite.work.WorkID).Return(&suite.work, nil).Once()
	suite.mockDemandRepo.On("FindDemandsByWorkIDTx", ctx, mock.Anything, suite.work.WorkID).Return(existing, nil).Once()
	suite.mockDemandRepo.On("SaveDemandTx", ctx, mock.Anything, mock.AnythingOfType("domain.Demand")).Return(nil).Once()
	suite.mockDemandRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockDemandRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	demand, _, err := suite.service.RaiseDemand(ctx, suite.work.WorkID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("FD-0003", demand.DemandCode)
}

// --- Approval workflow ---

func (suite *DemandServiceTestSuite) TestApproveDemand_Success() {
	ctx := context.Background()
	demandID := uuid.NewString()

	suite.mockDemandRepo.On("UpdateDemandStatus", ctx, demandID, domain.DemandPending, domain.DemandApproved, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ApproveDemand(ctx, demandID, suite.userID)

	suite.Require().NoError(err)
	suite.mockDemandRepo.AssertExpectations(suite.T())
}

func (suite *DemandServiceTestSuite) TestRejectDemand_Success() {
	ctx := context.Background()
	demandID := uuid.NewString()

	suite.mockDemandRepo.On("UpdateDemandStatus", ctx, demandID, domain.DemandPending, domain.DemandRejected, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.RejectDemand(ctx, demandID, suite.userID)

	suite.Require().NoError(err)
	suite.mockDemandRepo.AssertExpectations(suite.T())
}

func (suite *DemandServiceTestSuite) TestApproveDemand_AlreadyDecided() {
	ctx := context.Background()
	demandID := uuid.NewString()

	suite.mockDemandRepo.On("UpdateDemandStatus", ctx, demandID, domain.DemandPending, domain.DemandApproved, suite.userID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrConflict).Once()

	err := suite.service.ApproveDemand(ctx, demandID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- PreviewTaxes ---

func (suite *DemandServiceTestSuite) TestPreviewTaxes_Success() {
	ctx := context.Background()
	req := dto.PreviewTaxesRequest{
		Amount:     "200000",
		TaxRateIDs: []string{suite.gstRate.TaxRateID},
	}

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(suite.catalog(), nil).Once()

	preview, outcome, err := suite.service.PreviewTaxes(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(funding.OutcomeOk, outcome.Kind)
	suite.Require().Len(preview.Lines, 1)
	suite.True(decimal.NewFromInt(36000).Equal(preview.TotalTax))
	suite.True(decimal.NewFromInt(164000).Equal(preview.NetPayable))
}

func (suite *DemandServiceTestSuite) TestPreviewTaxes_RoundsHalfUp() {
	ctx := context.Background()
	req := dto.PreviewTaxesRequest{
		Amount:     "1225", // 18% of 1225 = 220.5, rounds to 221
		TaxRateIDs: []string{suite.gstRate.TaxRateID},
	}

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(suite.catalog(), nil).Once()

	preview, _, err := suite.service.PreviewTaxes(ctx, req)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(221).Equal(preview.TotalTax))
	suite.True(decimal.NewFromInt(1004).Equal(preview.NetPayable))
}

func (suite *DemandServiceTestSuite) TestPreviewTaxes_InvalidAmount() {
	ctx := context.Background()
	req := dto.PreviewTaxesRequest{
		Amount: "-100",
	}

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(suite.catalog(), nil).Once()

	_, outcome, err := suite.service.PreviewTaxes(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(funding.OutcomeInvalid, outcome.Kind)
}

// --- GetVendorTotals ---

func (suite *DemandServiceTestSuite) TestGetVendorTotals_ApprovedOnly() {
	ctx := context.Background()
	vendorID := *suite.work.VendorID
	vendor := domain.Vendor{VendorID: vendorID, Name: "Shree Constructions", IsActive: true}

	netA := decimal.NewFromInt(164000)
	demands := []domain.Demand{
		{
			DemandID:   uuid.NewString(),
			Amount:     decimal.NewFromInt(200000),
			NetPayable: &netA,
			Status:     domain.DemandApproved,
			Taxes:      []domain.TaxLine{{Name: "GST", Percentage: decimal.NewFromInt(18), Amount: decimal.NewFromInt(36000)}},
		},
		{DemandID: uuid.NewString(), Amount: decimal.NewFromInt(98000), Status: domain.DemandApproved}, // no net payable recorded
		{DemandID: uuid.NewString(), Amount: decimal.NewFromInt(500000), Status: domain.DemandPending},
		{DemandID: uuid.NewString(), Amount: decimal.NewFromInt(70000), Status: domain.DemandRejected},
	}

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(&vendor, nil).Once()
	suite.mockDemandRepo.On("FindDemandsByVendorID", ctx, vendorID).Return(demands, nil).Once()

	totals, err := suite.service.GetVendorTotals(ctx, vendorID)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(262000).Equal(totals.TotalFundReceived)) // 164000 + 98000
	suite.True(decimal.NewFromInt(36000).Equal(totals.TotalTaxDeducted))

}

func (suite *DemandServiceTestSuite) TestGetVendorTotals_VendorNotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()

	suite.mockVendorRepo.On("FindVendorByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetVendorTotals(ctx, missingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDemandRepo.AssertNotCalled(suite.T(), "FindDemandsByVendorID", mock.Anything, mock.Anything)
}

func TestDemandServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DemandServiceTestSuite))
}
