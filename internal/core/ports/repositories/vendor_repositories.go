package repositories

import (
	"context"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
)

// VendorReader defines read operations for vendor registry data.
type VendorReader interface {
	// FindVendorByID retrieves a specific vendor by its unique identifier.
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves a paginated list of vendors.
	ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendor registry data.
type VendorWriter interface {
	// SaveVendor persists a new vendor.
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
}

// VendorRepositoryFacade combines all vendor-related repository interfaces.
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}
