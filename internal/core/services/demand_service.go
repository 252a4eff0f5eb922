package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NidhiSetu/fund_management_app/internal/apperrors"
	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	portsrepo "github.com/NidhiSetu/fund_management_app/internal/core/ports/repositories"
	portssvc "github.com/NidhiSetu/fund_management_app/internal/core/ports/services"
	"github.com/NidhiSetu/fund_management_app/internal/dto"
	"github.com/NidhiSetu/fund_management_app/internal/middleware"
	"github.com/NidhiSetu/fund_management_app/internal/utils/funding"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingRemarks rejects a raise attempt whose remarks are empty after trimming.
	ErrMissingRemarks = fmt.Errorf("%w: remarks must not be empty", apperrors.ErrValidation)

	// ErrUnknownTaxRate rejects a raise or preview referencing a tax rate not in the catalog.
	ErrUnknownTaxRate = fmt.Errorf("%w: unknown or inactive tax rate selected", apperrors.ErrValidation)
)

// demandService provides the fund demand ledger operations: raising demands
// against a work's balance, the approval workflow transition, and the pure
// previews and totals consumed by forms.
type demandService struct {
	demandRepo portsrepo.DemandRepositoryWithTx
	workRepo   portsrepo.WorkRepositoryFacade
	vendorRepo portsrepo.VendorReader
	taxRepo    portsrepo.TaxRateReader
}

// NewDemandService creates a new DemandService.
func NewDemandService(
	demandRepo portsrepo.DemandRepositoryWithTx,
	workRepo portsrepo.WorkRepositoryFacade,
	vendorRepo portsrepo.VendorReader,
	taxRepo portsrepo.TaxRateReader,
) portssvc.DemandSvcFacade {
	return &demandService{
		demandRepo: demandRepo,
		workRepo:   workRepo,
		vendorRepo: vendorRepo,
		taxRepo:    taxRepo,
	}
}

var _ portssvc.DemandSvcFacade = (*demandService)(nil)

// RaiseDemand validates and appends a new demand. The balance is recomputed
// inside the same database transaction that appends the demand, with the work
// row locked, so concurrent raise attempts against one work serialize and
// each commit evaluates against the freshest demand collection. A stale
// balance shown on a form can therefore never be committed against.
func (s *demandService) RaiseDemand(ctx context.Context, workID string, req dto.RaiseDemandRequest, creatorUserID string) (*domain.Demand, funding.AmountOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	var none funding.AmountOutcome

	if strings.TrimSpace(req.Remarks) == "" {
		return nil, none, ErrMissingRemarks
	}

	catalog, err := s.taxRepo.ListTaxRates(ctx, true)
	if err != nil {
		return nil, none, fmt.Errorf("failed to load tax catalog: %w", err)
	}
	if err := ensureKnownTaxRates(req.TaxRateIDs, catalog); err != nil {
		return nil, none, err
	}

	tx, err := s.demandRepo.Begin(ctx)
	if err != nil {
		return nil, none, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = s.demandRepo.Rollback(ctx, tx)
	}()

	work, err := s.workRepo.FindWorkByIDForUpdate(ctx, tx, workID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, none, err
		}
		return nil, none, fmt.Errorf("failed to lock work %s: %w", workID, err)
	}

	existing, err := s.demandRepo.FindDemandsByWorkIDTx(ctx, tx, workID)
	if err != nil {
		return nil, none, fmt.Errorf("failed to load demands for work %s: %w", workID, err)
	}

	aggregates := funding.ComputeWorkAggregates(*work, existing)
	candidate, outcome := funding.ValidateDemandAmountString(req.Amount, aggregates.Balance)
	if outcome.Blocks() {
		logger.Warn("Demand amount rejected",
			slog.String("work_id", workID),
			slog.String("outcome", string(outcome.Kind)),
			slog.String("balance", aggregates.Balance.String()),
		)
		return nil, outcome, fmt.Errorf("%w: %s", apperrors.ErrValidation, outcome.Message)
	}

	preview := funding.PreviewTaxes(candidate, req.TaxRateIDs, catalog)

	now := time.Now().UTC()
	demandID := uuid.NewString()
	netPayable := preview.NetPayable

	demand := domain.Demand{
		DemandID:   demandID,
		DemandCode: fmt.Sprintf("FD-%04d", len(existing)+1),
		WorkID:     workID,
		VendorName: work.VendorName,
		Amount:     candidate,
		NetPayable: &netPayable,
		Status:     domain.DemandPending,
		Remarks:    strings.TrimSpace(req.Remarks),
		DemandDate: now.Truncate(24 * time.Hour),
		Taxes:      make([]domain.TaxLine, len(preview.Lines)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	for i, line := range preview.Lines {
		line.TaxLineID = uuid.NewString()
		line.DemandID = demandID
		demand.Taxes[i] = line
	}

	if err := s.demandRepo.SaveDemandTx(ctx, tx, demand); err != nil {
		return nil, none, fmt.Errorf("failed to save demand: %w", err)
	}

	if err := s.demandRepo.Commit(ctx, tx); err != nil {
		return nil, none, fmt.Errorf("failed to commit demand: %w", err)
	}

	logger.Info("Demand raised",
		slog.String("demand_id", demand.DemandID),
		slog.String("work_id", workID),
		slog.String("amount", demand.Amount.String()),
		slog.String("net_payable", netPayable.String()),
	)
	return &demand, outcome, nil
}

// ApproveDemand transitions a pending demand to Approved.
func (s *demandService) ApproveDemand(ctx context.Context, demandID string, approverUserID string) error {
	return s.transitionDemand(ctx, demandID, domain.DemandApproved, approverUserID)
}

// RejectDemand transitions a pending demand to Rejected.
func (s *demandService) RejectDemand(ctx context.Context, demandID string, approverUserID string) error {
	return s.transitionDemand(ctx, demandID, domain.DemandRejected, approverUserID)
}

func (s *demandService) transitionDemand(ctx context.Context, demandID string, target domain.DemandStatus, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	err := s.demandRepo.UpdateDemandStatus(ctx, demandID, domain.DemandPending, target, userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		return fmt.Errorf("failed to transition demand %s to %s: %w", demandID, target, err)
	}

	logger.Info("Demand status updated", slog.String("demand_id", demandID), slog.String("status", string(target)))
	return nil
}

// GetDemandByID retrieves a demand with its tax lines.
func (s *demandService) GetDemandByID(ctx context.Context, demandID string) (*domain.Demand, error) {
	demand, err := s.demandRepo.FindDemandByID(ctx, demandID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find demand %s: %w", demandID, err)
	}
	return demand, nil
}

// ListDemandsByWork retrieves all demands raised against a work.
func (s *demandService) ListDemandsByWork(ctx context.Context, workID string) ([]domain.Demand, error) {
	if _, err := s.workRepo.FindWorkByID(ctx, workID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find work %s: %w", workID, err)
	}

	demands, err := s.demandRepo.FindDemandsByWorkID(ctx, workID)
	if err != nil {
		return nil, fmt.Errorf("failed to list demands for work %s: %w", workID, err)
	}
	return demands, nil
}

// PreviewTaxes recomputes tax lines for a candidate amount without touching
// any work's balance. Malformed amounts degrade to the Invalid outcome.
func (s *demandService) PreviewTaxes(ctx context.Context, req dto.PreviewTaxesRequest) (funding.TaxPreview, funding.AmountOutcome, error) {
	catalog, err := s.taxRepo.ListTaxRates(ctx, true)
	if err != nil {
		return funding.TaxPreview{}, funding.AmountOutcome{}, fmt.Errorf("failed to load tax catalog: %w", err)
	}
	if err := ensureKnownTaxRates(req.TaxRateIDs, catalog); err != nil {
		return funding.TaxPreview{}, funding.AmountOutcome{}, err
	}

	candidate, err := decimal.NewFromString(req.Amount)
	if err != nil || candidate.LessThanOrEqual(decimal.Zero) {
		outcome := funding.AmountOutcome{
			Kind:    funding.OutcomeInvalid,
			Message: "demand amount must be a positive number",
		}
		return funding.TaxPreview{}, outcome, fmt.Errorf("%w: %s", apperrors.ErrValidation, outcome.Message)
	}

	return funding.PreviewTaxes(candidate, req.TaxRateIDs, catalog), funding.AmountOutcome{Kind: funding.OutcomeOk}, nil
}

// GetVendorTotals computes a vendor's realized totals from the demands raised
// against their works. Only Approved demands count.
func (s *demandService) GetVendorTotals(ctx context.Context, vendorID string) (domain.VendorTotals, error) {
	if _, err := s.vendorRepo.FindVendorByID(ctx, vendorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.VendorTotals{}, err
		}
		return domain.VendorTotals{}, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}

	demands, err := s.demandRepo.FindDemandsByVendorID(ctx, vendorID)
	if err != nil {
		return domain.VendorTotals{}, fmt.Errorf("failed to load demands for vendor %s: %w", vendorID, err)
	}

	return funding.ComputeVendorTotals(demands), nil
}

// ensureKnownTaxRates verifies every selected rate exists in the catalog.
func ensureKnownTaxRates(selectedIDs []string, catalog []domain.TaxRate) error {
	if len(selectedIDs) == 0 {
		return nil
	}
	known := make(map[string]bool, len(catalog))
	for _, rate := range catalog {
		known[rate.TaxRateID] = true
	}
	for _, id := range selectedIDs {
		if !known[id] {
			return fmt.Errorf("%w: %s", ErrUnknownTaxRate, id)
		}
	}
	return nil
}
