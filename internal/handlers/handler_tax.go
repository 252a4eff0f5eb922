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

// taxHandler handles HTTP requests related to the tax catalog.
type taxHandler struct {
	taxService portssvc.TaxRateSvcFacade
}

// newTaxHandler creates a new taxHandler.
func newTaxHandler(ts portssvc.TaxRateSvcFacade) *taxHandler {
	return &taxHandler{taxService: ts}
}

// registerTaxRoutes registers routes related to the tax catalog.
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxRateSvcFacade) {
	h := newTaxHandler(taxService)

	taxes := rg.Group("/taxes")
	{
		taxes.POST("", h.createTaxRate)
		taxes.GET("", h.listTaxRates)
		taxes.GET("/:taxRateID", h.getTaxRate)
	}
}

// createTaxRate godoc
// @Summary Add a tax catalog entry
// @Description Adds a deductible tax rate to the catalog
// @Tags taxes
// @Accept  json
// @Produce  json
// @Param   tax body dto.CreateTaxRateRequest true "Tax rate details"
// @Success 201 {object} dto.TaxRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create tax rate"
// @Security BearerAuth
// @Router /taxes [post]
func (h *taxHandler) createTaxRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTaxRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.taxService.CreateTaxRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating tax rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create tax rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tax rate"})
		}
		return
	}

	logger.Info("Tax rate created successfully", slog.String("tax_rate_id", rate.TaxRateID))
	c.JSON(http.StatusCreated, dto.ToTaxRateResponse(rate))
}

// getTaxRate godoc
// @Summary Get a tax rate
// @Description Retrieves a tax catalog entry by ID
// @Tags taxes
// @Produce  json
// @Param   taxRateID path string true "Tax Rate ID"
// @Success 200 {object} dto.TaxRateResponse
// @Failure 404 {object} map[string]string "Tax rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve tax rate"
// @Security BearerAuth
// @Router /taxes/{taxRateID} [get]
func (h *taxHandler) getTaxRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taxRateID := c.Param("taxRateID")

	rate, err := h.taxService.GetTaxRateByID(c.Request.Context(), taxRateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Tax rate not found", slog.String("tax_rate_id", taxRateID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Tax rate not found"})
			return
		}
		logger.Error("Failed to get tax rate from service", slog.String("error", err.Error()), slog.String("tax_rate_id", taxRateID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tax rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxRateResponse(rate))
}

// listTaxRates godoc
// @Summary List the tax catalog
// @Description Retrieves tax catalog entries; pass activeOnly=false to include retired rates
// @Tags taxes
// @Produce  json
// @Param   activeOnly query bool false "Only active rates" default(true)
// @Success 200 {array} dto.TaxRateResponse
// @Failure 500 {object} map[string]string "Failed to list tax rates"
// @Security BearerAuth
// @Router /taxes [get]
func (h *taxHandler) listTaxRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly := c.DefaultQuery("activeOnly", "true") == "true"

	rates, err := h.taxService.ListTaxRates(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list tax rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tax rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxRateResponses(rates))
}
