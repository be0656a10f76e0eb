package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katysh-aa/family-budget/internal/apperrors"
	portssvc "github.com/katysh-aa/family-budget/internal/core/ports/services"
	"github.com/katysh-aa/family-budget/internal/dto"
	"github.com/katysh-aa/family-budget/internal/middleware"
)

// planHandler handles HTTP requests related to financial plans.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

// newPlanHandler creates a new planHandler.
func newPlanHandler(ps portssvc.PlanSvcFacade) *planHandler {
	return &planHandler{
		planService: ps,
	}
}

// registerPlanRoutes registers routes related to financial plans.
func registerPlanRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newPlanHandler(planService)

	plans := rg.Group("/plans")
	{
		plans.POST("", h.savePlan)
		plans.GET("", h.listPlans)
		plans.PUT("/snapshot", h.replaceSnapshot)
		plans.DELETE("/:id", h.deletePlan)
	}
}

func (h *planHandler) savePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SavePlan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to save plan", slog.String("month", req.Month))

	savedPlan, err := h.planService.SavePlan(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error saving plan", slog.String("error", err.Error()))
			respondValidation(c, err)
		} else {
			logger.Error("Failed to save plan in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan"})
		}
		return
	}

	logger.Info("Plan saved successfully", slog.String("plan_id", savedPlan.PlanID))
	c.JSON(http.StatusOK, dto.ToPlanResponse(savedPlan))
}

func (h *planHandler) listPlans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	plans, err := h.planService.ListPlans(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list plans", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list plans"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPlanResponse(plans))
}

func (h *planHandler) deletePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	planID := c.Param("id")

	logger = logger.With(slog.String("plan_id", planID))
	logger.Info("Received request to delete plan")

	if err := h.planService.DeletePlan(c.Request.Context(), planID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Plan not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		} else {
			logger.Error("Failed to delete plan in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
		}
		return
	}

	logger.Info("Plan deleted successfully")
	c.Status(http.StatusNoContent)
}

func (h *planHandler) replaceSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PlanSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for plan snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received plan snapshot push", slog.Int("count", len(req.Plans)))

	replaced, err := h.planService.ReplaceSnapshot(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error in plan snapshot", slog.String("error", err.Error()))
			respondValidation(c, err)
		} else {
			logger.Error("Failed to replace plan snapshot", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace plans"})
		}
		return
	}

	logger.Info("Plan snapshot replaced", slog.Int("replaced", replaced))
	c.JSON(http.StatusOK, dto.SnapshotResponse{Replaced: replaced})
}
