package repositories

import (
	"context"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
)

// TaxRateReader defines read operations for the tax catalog.
type TaxRateReader interface {
	// FindTaxRateByID retrieves a specific tax rate by its unique identifier.
	FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error)

	// ListTaxRates retrieves the catalog. The catalog is small; no pagination.
	ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error)
}

// TaxRateWriter defines write operations for the tax catalog.
type TaxRateWriter interface {
	// SaveTaxRate persists a new tax rate.
	SaveTaxRate(ctx context.Context, rate domain.TaxRate) error
}

// TaxRateRepositoryFacade combines all tax-catalog repository interfaces.
type TaxRateRepositoryFacade interface {
	TaxRateReader
	TaxRateWriter
}
