package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/NidhiSetu/fund_management_app/internal/apperrors"
	portssvc "github.com/NidhiSetu/fund_management_app/internal/core/ports/services"
	"github.com/NidhiSetu/fund_management_app/internal/dto"
	"github.com/NidhiSetu/fund_management_app/internal/middleware"
	"github.com/NidhiSetu/fund_management_app/internal/utils/funding"
	"github.com/gin-gonic/gin"
)

// demandHandler handles HTTP requests related to fund demands.
type demandHandler struct {
	demandService portssvc.DemandSvcFacade
}

// newDemandHandler creates a new demandHandler.
func newDemandHandler(ds portssvc.DemandSvcFacade) *demandHandler {
	return &demandHandler{demandService: ds}
}

// RegisterDemandRoutes registers the work-independent demand routes.
func RegisterDemandRoutes(rg *gin.RouterGroup, demandService portssvc.DemandSvcFacade) {
	h := newDemandHandler(demandService)

	demands := rg.Group("/demands")
	{
		demands.GET("/:demandID", h.getDemand)
		demands.POST("/:demandID/approve", h.approveDemand)
		demands.POST("/:demandID/reject", h.rejectDemand)
		demands.POST("/preview-taxes", h.previewTaxes)
	}
}

// raiseDemand godoc
// @Summary Raise a fund demand against a work
// @Description Validates the amount against the work's remaining balance and appends a new demand; advisories (exact/near balance) are returned alongside the created demand
// @Tags demands
// @Accept  json
// @Produce  json
// @Param   workID path string true "Work ID"
// @Param   demand body dto.RaiseDemandRequest true "Demand details"
// @Success 201 {object} dto.RaiseDemandResponse
// @Failure 400 {object} map[string]string "Validation failure (invalid amount, exceeds balance, missing remarks)"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Work not found"
// @Failure 500 {object} map[string]string "Failed to raise demand"
// @Security BearerAuth
// @Router /works/{workID}/demands [post]
func (h *demandHandler) raiseDemand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workID := c.Param("workID")

	var req dto.RaiseDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RaiseDemand", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	demand, outcome, err := h.demandService.RaiseDemand(c.Request.Context(), workID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Work not found for demand", slog.String("work_id", workID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Demand rejected", slog.String("error", err.Error()), slog.String("outcome", string(outcome.Kind)))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "outcome": outcome.Kind})
		default:
			logger.Error("Failed to raise demand in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to raise demand"})
		}
		return
	}

	resp := dto.RaiseDemandResponse{Demand: dto.ToDemandResponse(demand)}
	if outcome.Kind != funding.OutcomeOk {
		advisory := outcome
		resp.Advisory = &advisory
	}

	logger.Info("Demand raised successfully", slog.String("demand_id", demand.DemandID))
	c.JSON(http.StatusCreated, resp)
}

// getDemand godoc
// @Summary Get a demand
// @Description Retrieves a demand with its tax lines
// @Tags demands
// @Produce  json
// @Param   demandID path string true "Demand ID"
// @Success 200 {object} dto.DemandResponse
// @Failure 404 {object} map[string]string "Demand not found"
// @Failure 500 {object} map[string]string "Failed to retrieve demand"
// @Security BearerAuth
// @Router /demands/{demandID} [get]
func (h *demandHandler) getDemand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	demandID := c.Param("demandID")

	demand, err := h.demandService.GetDemandByID(c.Request.Context(), demandID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Demand not found", slog.String("demand_id", demandID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
			return
		}
		logger.Error("Failed to get demand from service", slog.String("error", err.Error()), slog.String("demand_id", demandID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve demand"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDemandResponse(demand))
}

// listDemandsByWork godoc
// @Summary List demands for a work
// @Description Retrieves all demands raised against a work, oldest first
// @Tags demands
// @Produce  json
// @Param   workID path string true "Work ID"
// @Success 200 {array} dto.DemandResponse
// @Failure 404 {object} map[string]string "Work not found"
// @Failure 500 {object} map[string]string "Failed to list demands"
// @Security BearerAuth
// @Router /works/{workID}/demands [get]
func (h *demandHandler) listDemandsByWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workID := c.Param("workID")

	demands, err := h.demandService.ListDemandsByWork(c.Request.Context(), workID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Work not found", slog.String("work_id", workID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
			return
		}
		logger.Error("Failed to list demands", slog.String("error", err.Error()), slog.String("work_id", workID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list demands"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDemandResponses(demands))
}

// approveDemand godoc
// @Summary Approve a pending demand
// @Description Transitions a pending demand to Approved; approved demands count toward vendor realized totals
// @Tags demands
// @Produce  json
// @Param   demandID path string true "Demand ID"
// @Success 204 "Demand approved"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Demand not found"
// @Failure 409 {object} map[string]string "Demand is not pending"
// @Failure 500 {object} map[string]string "Failed to approve demand"
// @Security BearerAuth
// @Router /demands/{demandID}/approve [post]
func (h *demandHandler) approveDemand(c *gin.Context) {
	h.transitionDemand(c, h.demandService.ApproveDemand)
}

// rejectDemand godoc
// @Summary Reject a pending demand
// @Description Transitions a pending demand to Rejected
// @Tags demands
// @Produce  json
// @Param   demandID path string true "Demand ID"
// @Success 204 "Demand rejected"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Demand not found"
// @Failure 409 {object} map[string]string "Demand is not pending"
// @Failure 500 {object} map[string]string "Failed to reject demand"
// @Security BearerAuth
// @Router /demands/{demandID}/reject [post]
func (h *demandHandler) rejectDemand(c *gin.Context) {
	h.transitionDemand(c, h.demandService.RejectDemand)
}

func (h *demandHandler) transitionDemand(c *gin.Context, transition func(ctx context.Context, demandID, userID string) error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	demandID := c.Param("demandID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := transition(c.Request.Context(), demandID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Demand not found", slog.String("demand_id", demandID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Demand not pending", slog.String("demand_id", demandID), slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to transition demand", slog.String("error", err.Error()), slog.String("demand_id", demandID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update demand status"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// previewTaxes godoc
// @Summary Preview taxes for a candidate demand amount
// @Description Pure computation used by forms on every amount or selection change; nothing is persisted
// @Tags demands
// @Accept  json
// @Produce  json
// @Param   preview body dto.PreviewTaxesRequest true "Candidate amount and selected tax rates"
// @Success 200 {object} dto.PreviewTaxesResponse
// @Failure 400 {object} map[string]string "Invalid amount or unknown tax rate"
// @Failure 500 {object} map[string]string "Failed to compute preview"
// @Security BearerAuth
// @Router /demands/preview-taxes [post]
func (h *demandHandler) previewTaxes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PreviewTaxesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewTaxes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	preview, outcome, err := h.demandService.PreviewTaxes(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid preview request", slog.String("error", err.Error()), slog.String("outcome", string(outcome.Kind)))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "outcome": outcome.Kind})
			return
		}
		logger.Error("Failed to compute tax preview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute preview"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreviewTaxesResponse(preview))
}
