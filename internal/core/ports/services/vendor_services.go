package services

import (
	"context"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	"github.com/NidhiSetu/fund_management_app/internal/dto"
)

// VendorReaderSvc defines read operations for the vendor registry.
type VendorReaderSvc interface {
	// GetVendorByID retrieves a specific vendor by its ID.
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves a paginated list of vendors.
	ListVendors(ctx context.Context, params dto.ListVendorsParams) ([]domain.Vendor, error)
}

// VendorWriterSvc defines write operations for the vendor registry.
type VendorWriterSvc interface {
	// CreateVendor registers a new vendor.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)
}

// VendorSvcFacade combines all vendor-related service interfaces.
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}
