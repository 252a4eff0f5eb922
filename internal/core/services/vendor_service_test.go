package services_test

import (
	"context"
	"testing"

	"github.com/NidhiSetu/fund_management_app/internal/apperrors"
	portssvc "github.com/NidhiSetu/fund_management_app/internal/core/ports/services"
	"github.com/NidhiSetu/fund_management_app/internal/core/services"
	"github.com/NidhiSetu/fund_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VendorServiceTestSuite struct {
	suite.Suite
	mockVendorRepo *MockVendorRepository
	service        portssvc.VendorSvcFacade
	userID         string
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.service = services.NewVendorService(suite.mockVendorRepo)
	suite.userID = uuid.NewString()
}

func (suite *VendorServiceTestSuite) TestCreateVendor_Success() {
	ctx := context.Background()
	req := dto.CreateVendorRequest{
		Name:          "Shree Constructions",
		AadhaarNumber: "123456789012",
		ContactNumber: "9876543210",
	}

	suite.mockVendorRepo.On("SaveVendor", ctx, mock.AnythingOfType("domain.Vendor")).Return(nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(vendor)
	suite.NotEmpty(vendor.VendorID)
	suite.True(vendor.IsActive)
	suite.Equal("123456789012", vendor.AadhaarNumber)
	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestCreateVendor_DuplicateAadhaar() {
	ctx := context.Background()
	req := dto.CreateVendorRequest{
		Name:          "Shree Constructions",
		AadhaarNumber: "123456789012",
	}

	suite.mockVendorRepo.On("SaveVendor", ctx, mock.AnythingOfType("domain.Vendor")).Return(apperrors.ErrDuplicate).Once()

	vendor, err := suite.service.CreateVendor(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(vendor)
}

func TestVendorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}
