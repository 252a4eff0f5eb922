package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/NidhiSetu/fund_management_app/internal/apperrors"
	portssvc "github.com/NidhiSetu/fund_management_app/internal/core/ports/services"
	"github.com/NidhiSetu/fund_management_app/internal/dto"
	"github.com/NidhiSetu/fund_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vendorHandler handles HTTP requests related to the vendor registry.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
	demandService portssvc.DemandSvcFacade
}

// newVendorHandler creates a new vendorHandler.
func newVendorHandler(vs portssvc.VendorSvcFacade, ds portssvc.DemandSvcFacade) *vendorHandler {
	return &vendorHandler{vendorService: vs, demandService: ds}
}

// registerVendorRoutes registers routes related to vendors.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade, demandService portssvc.DemandSvcFacade) {
	h := newVendorHandler(vendorService, demandService)

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:vendorID", h.getVendor)
		vendors.GET("/:vendorID/totals", h.getVendorTotals)
	}
}

// createVendor godoc
// @Summary Register a vendor
// @Description Registers a new vendor; Aadhaar and GSTIN are opaque identifiers with format checks only
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Vendor already exists"
// @Failure 500 {object} map[string]string "Failed to create vendor"
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create vendor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		}
		return
	}

	logger.Info("Vendor created successfully", slog.String("vendor_id", vendor.VendorID))
	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

// getVendor godoc
// @Summary Get a vendor
// @Description Retrieves a vendor by ID
// @Tags vendors
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to retrieve vendor"
// @Security BearerAuth
// @Router /vendors/{vendorID} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Vendor not found", slog.String("vendor_id", vendorID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}
		logger.Error("Failed to get vendor from service", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vendor"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

// listVendors godoc
// @Summary List vendors
// @Description Retrieves a paginated list of vendors
// @Tags vendors
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Failed to list vendors"
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListVendorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid pagination parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	vendors, err := h.vendorService.ListVendors(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list vendors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vendors"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponses(vendors))
}

// getVendorTotals godoc
// @Summary Get a vendor's realized totals
// @Description Computes total fund received and total tax deducted from Approved demands only
// @Tags vendors
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Success 200 {object} dto.VendorTotalsResponse
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to compute totals"
// @Security BearerAuth
// @Router /vendors/{vendorID}/totals [get]
func (h *vendorHandler) getVendorTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendorID := c.Param("vendorID")

	totals, err := h.demandService.GetVendorTotals(c.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Vendor not found", slog.String("vendor_id", vendorID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}
		logger.Error("Failed to compute vendor totals", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute totals"})
		return
	}

	c.JSON(http.StatusOK, dto.VendorTotalsResponse{
		VendorID:          vendorID,
		TotalFundReceived: totals.TotalFundReceived,
		TotalTaxDeducted:  totals.TotalTaxDeducted,
	})
}
