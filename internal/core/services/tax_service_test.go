package services_test

import (
	"context"
	"testing"

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

type TaxRateServiceTestSuite struct {
	suite.Suite
	mockTaxRepo *MockTaxRateRepository
	service     portssvc.TaxRateSvcFacade
	userID      string
}

func (suite *TaxRateServiceTestSuite) SetupTest() {
	suite.mockTaxRepo = new(MockTaxRateRepository)
	suite.service = services.NewTaxRateService(suite.mockTaxRepo)
	suite.userID = uuid.NewString()
}

func (suite *TaxRateServiceTestSuite) TestCreateTaxRate_Success() {
	ctx := context.Background()
	req := dto.CreateTaxRateRequest{
		Name:       "GST",
		Percentage: decimal.NewFromInt(18),
	}

	suite.mockTaxRepo.On("SaveTaxRate", ctx, mock.AnythingOfType("domain.TaxRate")).Return(nil).Once()

	rate, err := suite.service.CreateTaxRate(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.NotEmpty(rate.TaxRateID)
	suite.True(rate.IsActive)
	suite.Equal(suite.userID, rate.CreatedBy)
	suite.mockTaxRepo.AssertExpectations(suite.T())
}

func (suite *TaxRateServiceTestSuite) TestCreateTaxRate_PercentageOutOfRange() {
	ctx := context.Background()

	for _, pct := range []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-5),
		decimal.NewFromInt(101),
	} {
		req := dto.CreateTaxRateRequest{Name: "Bad", Percentage: pct}
		rate, err := suite.service.CreateTaxRate(ctx, req, suite.userID)

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(rate)
	}
	suite.mockTaxRepo.AssertNotCalled(suite.T(), "SaveTaxRate", mock.Anything, mock.Anything)
}

func (suite *TaxRateServiceTestSuite) TestListTaxRates_ActiveOnly() {
	ctx := context.Background()
	catalog := []domain.TaxRate{
		{TaxRateID: uuid.NewString(), Name: "GST", Percentage: decimal.NewFromInt(18), IsActive: true},
	}

	suite.mockTaxRepo.On("ListTaxRates", ctx, true).Return(catalog, nil).Once()

	rates, err := suite.service.ListTaxRates(ctx, true)

	suite.Require().NoError(err)
	suite.Len(rates, 1)
	suite.mockTaxRepo.AssertExpectations(suite.T())
}

func TestTaxRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaxRateServiceTestSuite))
}
