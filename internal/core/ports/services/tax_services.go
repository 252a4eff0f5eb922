package services

import (
	"context"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	"github.com/NidhiSetu/fund_management_app/internal/dto"
)

// TaxRateReaderSvc defines read operations for the tax catalog.
type TaxRateReaderSvc interface {
	// GetTaxRateByID retrieves a specific tax rate by its ID.
	GetTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error)

	// ListTaxRates retrieves the catalog.
	ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error)
}

// TaxRateWriterSvc defines write operations for the tax catalog.
type TaxRateWriterSvc interface {
	// CreateTaxRate adds a new tax catalog entry.
	CreateTaxRate(ctx context.Context, req dto.CreateTaxRateRequest, creatorUserID string) (*domain.TaxRate, error)
}

// TaxRateSvcFacade combines all tax-catalog service interfaces.
type TaxRateSvcFacade interface {
	TaxRateReaderSvc
	TaxRateWriterSvc
}
