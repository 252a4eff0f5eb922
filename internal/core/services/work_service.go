package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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

// workService provides operations on sanctioned works and their derived
// financial aggregates.
type workService struct {
	workRepo   portsrepo.WorkRepositoryFacade
	demandRepo portsrepo.DemandReader
	vendorRepo portsrepo.VendorReader
}

// NewWorkService creates a new WorkService.
func NewWorkService(workRepo portsrepo.WorkRepositoryFacade, demandRepo portsrepo.DemandReader, vendorRepo portsrepo.VendorReader) portssvc.WorkSvcFacade {
	return &workService{
		workRepo:   workRepo,
		demandRepo: demandRepo,
		vendorRepo: vendorRepo,
	}
}

var _ portssvc.WorkSvcFacade = (*workService)(nil)

// CreateWork registers a newly sanctioned work. Sanctioned amounts are
// immutable afterwards.
func (s *workService) CreateWork(ctx context.Context, req dto.CreateWorkRequest, creatorUserID string) (*domain.Work, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for name, amount := range map[string]decimal.Decimal{
		"adminApprovedAmount": req.AdminApprovedAmount,
		"workPortionAmount":   req.WorkPortionAmount,
		"taxDeductionAmount":  req.TaxDeductionAmount,
	} {
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, name)
		}
	}

	var vendorName string
	if req.VendorID != nil {
		vendor, err := s.vendorRepo.FindVendorByID(ctx, *req.VendorID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: vendor %s does not exist", apperrors.ErrValidation, *req.VendorID)
			}
			return nil, fmt.Errorf("failed to resolve vendor %s: %w", *req.VendorID, err)
		}
		vendorName = vendor.Name
	}

	status := req.Status
	if status == "" {
		status = "Pending"
	}

	now := time.Now().UTC()
	work := domain.Work{
		WorkID:              uuid.NewString(),
		SchemeName:          req.SchemeName,
		Name:                req.Name,
		SanctionedDate:      req.SanctionedDate,
		FinancialYear:       req.FinancialYear,
		AdminApprovedAmount: req.AdminApprovedAmount,
		WorkPortionAmount:   req.WorkPortionAmount,
		TaxDeductionAmount:  req.TaxDeductionAmount,
		VendorID:            req.VendorID,
		VendorName:          vendorName,
		Status:              status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.workRepo.SaveWork(ctx, work); err != nil {
		logger.Error("Failed to save work", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save work: %w", err)
	}

	logger.Info("Work created", slog.String("work_id", work.WorkID), slog.String("scheme", work.SchemeName))
	return &work, nil
}

// GetWorkByID retrieves a specific work.
func (s *workService) GetWorkByID(ctx context.Context, workID string) (*domain.Work, error) {
	work, err := s.workRepo.FindWorkByID(ctx, workID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find work %s: %w", workID, err)
	}
	return work, nil
}

// ListWorks retrieves a paginated list of works.
func (s *workService) ListWorks(ctx context.Context, params dto.ListWorksParams) ([]domain.Work, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	works, err := s.workRepo.ListWorks(ctx, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	return works, nil
}

// GetWorkSummary derives the financial aggregates for a work. The demand
// collection is always re-read: aggregates are recomputed on read, never
// cached across interactions.
func (s *workService) GetWorkSummary(ctx context.Context, workID string) (*domain.Work, domain.WorkAggregates, error) {
	work, err := s.GetWorkByID(ctx, workID)
	if err != nil {
		return nil, domain.WorkAggregates{}, err
	}

	demands, err := s.demandRepo.FindDemandsByWorkID(ctx, workID)
	if err != nil {
		return nil, domain.WorkAggregates{}, fmt.Errorf("failed to load demands for work %s: %w", workID, err)
	}

	return work, funding.ComputeWorkAggregates(*work, demands), nil
}
