package services

import (
	"context"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	"github.com/NidhiSetu/fund_management_app/internal/dto"
	"github.com/NidhiSetu/fund_management_app/internal/utils/funding"
)

// DemandReaderSvc defines read operations for fund demands.
type DemandReaderSvc interface {
	// GetDemandByID retrieves a specific demand with its tax lines.
	GetDemandByID(ctx context.Context, demandID string) (*domain.Demand, error)

	// ListDemandsByWork retrieves all demands raised against a work.
	ListDemandsByWork(ctx context.Context, workID string) ([]domain.Demand, error)
}

// DemandWriterSvc defines write operations for fund demands.
type DemandWriterSvc interface {
	// RaiseDemand validates and appends a new demand against the work's
	// remaining balance. The returned outcome carries any non-blocking
	// advisory (ExactBalance / NearBalance); blocking outcomes surface as a
	// validation error and no demand is created.
	RaiseDemand(ctx context.Context, workID string, req dto.RaiseDemandRequest, creatorUserID string) (*domain.Demand, funding.AmountOutcome, error)

	// ApproveDemand transitions a pending demand to Approved.
	ApproveDemand(ctx context.Context, demandID string, approverUserID string) error

	// RejectDemand transitions a pending demand to Rejected.
	RejectDemand(ctx context.Context, demandID string, approverUserID string) error
}

// DemandCalculatorSvc defines the pure calculation operations exposed to
// consuming forms.
type DemandCalculatorSvc interface {
	// PreviewTaxes recomputes tax lines and net payable for a candidate
	// amount; called on every amount or selection change.
	PreviewTaxes(ctx context.Context, req dto.PreviewTaxesRequest) (funding.TaxPreview, funding.AmountOutcome, error)

	// GetVendorTotals computes a vendor's realized (Approved-only) totals.
	GetVendorTotals(ctx context.Context, vendorID string) (domain.VendorTotals, error)
}

// DemandSvcFacade combines all demand-related service interfaces.
type DemandSvcFacade interface {
	DemandReaderSvc
	DemandWriterSvc
	DemandCalculatorSvc
}
