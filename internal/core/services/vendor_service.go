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
)

// vendorService provides vendor registry operations.
type vendorService struct {
	vendorRepo portsrepo.VendorRepositoryFacade
}

// NewVendorService creates a new VendorService.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

// CreateVendor registers a new vendor.
func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	vendor := domain.Vendor{
		VendorID:      uuid.NewString(),
		Name:          req.Name,
		AadhaarNumber: req.AadhaarNumber,
		GSTIN:         req.GSTIN,
		ContactNumber: req.ContactNumber,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to save vendor", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save vendor: %w", err)
	}

	logger.Info("Vendor created", slog.String("vendor_id", vendor.VendorID))
	return &vendor, nil
}

// GetVendorByID retrieves a specific vendor.
func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}
	return vendor, nil
}

// ListVendors retrieves a paginated list of vendors.
func (s *vendorService) ListVendors(ctx context.Context, params dto.ListVendorsParams) ([]domain.Vendor, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	vendors, err := s.vendorRepo.ListVendors(ctx, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}
