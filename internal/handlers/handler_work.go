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

// workHandler handles HTTP requests related to sanctioned works.
type workHandler struct {
	workService portssvc.WorkSvcFacade
}

// newWorkHandler creates a new workHandler.
func newWorkHandler(ws portssvc.WorkSvcFacade) *workHandler {
	return &workHandler{workService: ws}
}

// RegisterWorkRoutes registers routes related to works.
func RegisterWorkRoutes(rg *gin.RouterGroup, workService portssvc.WorkSvcFacade, demandService portssvc.DemandSvcFacade) {
	h := newWorkHandler(workService)
	dh := newDemandHandler(demandService)

	works := rg.Group("/works")
	{
		works.POST("", h.createWork)
		works.GET("", h.listWorks)
		works.GET("/:workID", h.getWork)
		works.GET("/:workID/summary", h.getWorkSummary)
		works.POST("/:workID/demands", dh.raiseDemand)
		works.GET("/:workID/demands", dh.listDemandsByWork)
	}
}

// createWork godoc
// @Summary Register a sanctioned work
// @Description Registers a newly sanctioned work item; sanctioned amounts are immutable afterwards
// @Tags works
// @Accept  json
// @Produce  json
// @Param   work body dto.CreateWorkRequest true "Work details"
// @Success 201 {object} dto.WorkResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create work"
// @Security BearerAuth
// @Router /works [post]
func (h *workHandler) createWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWork", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	work, err := h.workService.CreateWork(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating work", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create work in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work"})
		}
		return
	}

	logger.Info("Work created successfully", slog.String("work_id", work.WorkID))
	c.JSON(http.StatusCreated, dto.ToWorkResponse(work))
}

// getWork godoc
// @Summary Get a work
// @Description Retrieves a sanctioned work by ID
// @Tags works
// @Produce  json
// @Param   workID path string true "Work ID"
// @Success 200 {object} dto.WorkResponse
// @Failure 404 {object} map[string]string "Work not found"
// @Failure 500 {object} map[string]string "Failed to retrieve work"
// @Security BearerAuth
// @Router /works/{workID} [get]
func (h *workHandler) getWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workID := c.Param("workID")

	work, err := h.workService.GetWorkByID(c.Request.Context(), workID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Work not found", slog.String("work_id", workID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
			return
		}
		logger.Error("Failed to get work from service", slog.String("error", err.Error()), slog.String("work_id", workID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve work"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkResponse(work))
}

// listWorks godoc
// @Summary List works
// @Description Retrieves a paginated list of sanctioned works
// @Tags works
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.WorkResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Failed to list works"
// @Security BearerAuth
// @Router /works [get]
func (h *workHandler) listWorks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListWorksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid pagination parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	works, err := h.workService.ListWorks(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list works", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list works"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkResponses(works))
}

// getWorkSummary godoc
// @Summary Get a work's financial summary
// @Description Computes gross total, total demanded and balance from the freshest demand collection
// @Tags works
// @Produce  json
// @Param   workID path string true "Work ID"
// @Success 200 {object} dto.WorkSummaryResponse
// @Failure 404 {object} map[string]string "Work not found"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /works/{workID}/summary [get]
func (h *workHandler) getWorkSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workID := c.Param("workID")

	work, aggregates, err := h.workService.GetWorkSummary(c.Request.Context(), workID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Work not found", slog.String("work_id", workID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
			return
		}
		logger.Error("Failed to compute work summary", slog.String("error", err.Error()), slog.String("work_id", workID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkSummaryResponse(work, aggregates))
}
