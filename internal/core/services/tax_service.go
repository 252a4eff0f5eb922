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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// taxRateService provides tax catalog operations.
type taxRateService struct {
	taxRepo portsrepo.TaxRateRepositoryFacade
}

// NewTaxRateService creates a new TaxRateService.
func NewTaxRateService(taxRepo portsrepo.TaxRateRepositoryFacade) portssvc.TaxRateSvcFacade {
	return &taxRateService{taxRepo: taxRepo}
}

var _ portssvc.TaxRateSvcFacade = (*taxRateService)(nil)

// CreateTaxRate adds a new tax catalog entry.
func (s *taxRateService) CreateTaxRate(ctx context.Context, req dto.CreateTaxRateRequest, creatorUserID string) (*domain.TaxRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Percentage.LessThanOrEqual(decimal.Zero) || req.Percentage.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: percentage must be between 0 and 100", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rate := domain.TaxRate{
		TaxRateID:  uuid.NewString(),
		Name:       req.Name,
		Percentage: req.Percentage,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.taxRepo.SaveTaxRate(ctx, rate); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to save tax rate", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save tax rate: %w", err)
	}

	logger.Info("Tax rate created", slog.String("tax_rate_id", rate.TaxRateID), slog.String("percentage", rate.Percentage.String()))
	return &rate, nil
}

// GetTaxRateByID retrieves a specific tax rate.
func (s *taxRateService) GetTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	rate, err := s.taxRepo.FindTaxRateByID(ctx, taxRateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find tax rate %s: %w", taxRateID, err)
	}
	return rate, nil
}

// ListTaxRates retrieves the catalog.
func (s *taxRateService) ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error) {
	rates, err := s.taxRepo.ListTaxRates(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax rates: %w", err)
	}
	return rates, nil
}
