package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katysh-aa/family-budget/internal/apperrors"
	"github.com/katysh-aa/family-budget/internal/core/domain"
	portssvc "github.com/katysh-aa/family-budget/internal/core/ports/services"
	"github.com/katysh-aa/family-budget/internal/dto"
	"github.com/katysh-aa/family-budget/internal/middleware"
)

// analyticsHandler handles the read-only reporting endpoints.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

// newAnalyticsHandler creates a new analyticsHandler.
func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: as,
	}
}

// registerAnalyticsRoutes registers the reporting routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary", h.monthlySummary)
		analytics.GET("/savings", h.savingsOverview)
		analytics.GET("/top-expenses", h.topExpenses)
		analytics.GET("/categories", h.expenseBreakdown)
		analytics.GET("/weekly", h.weeklySavings)
		analytics.GET("/plan", h.planReconciliation)
	}
}

// bindMonth resolves the month query, defaulting to the current month.
func bindMonth(c *gin.Context) (string, bool) {
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month: " + err.Error()})
		return "", false
	}
	if q.Month == "" {
		return time.Now().Format(domain.MonthLayout), true
	}
	return q.Month, true
}

// bindDateRange resolves the start/end query into calendar dates. The
// start <= end check belongs to the analytics service.
func bindDateRange(c *gin.Context) (start, end time.Time, ok bool) {
	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range: " + err.Error()})
		return time.Time{}, time.Time{}, false
	}
	start, _ = time.Parse(domain.DateLayout, q.Start)
	end, _ = time.Parse(domain.DateLayout, q.End)
	return start, end, true
}

func (h *analyticsHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month, ok := bindMonth(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.MonthlySummary(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid month for summary", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute monthly summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly summary"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *analyticsHandler) savingsOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview, err := h.analyticsService.SavingsOverview(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute savings overview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute savings overview"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *analyticsHandler) topExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.TopExpensesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit: " + err.Error()})
		return
	}

	categories, err := h.analyticsService.TopExpenseCategories(c.Request.Context(), q.Limit)
	if err != nil {
		logger.Error("Failed to rank expense categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank expense categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *analyticsHandler) expenseBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start, end, ok := bindDateRange(c)
	if !ok {
		return
	}

	categories, err := h.analyticsService.ExpenseBreakdown(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRange) {
			logger.Warn("Invalid range for expense breakdown", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute expense breakdown", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute expense breakdown"})
		}
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *analyticsHandler) weeklySavings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start, end, ok := bindDateRange(c)
	if !ok {
		return
	}

	series, err := h.analyticsService.WeeklySavings(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRange) {
			logger.Warn("Invalid range for weekly savings", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute weekly savings", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute weekly savings"})
		}
		return
	}

	c.JSON(http.StatusOK, series)
}

func (h *analyticsHandler) planReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month, ok := bindMonth(c)
	if !ok {
		return
	}

	recon, err := h.analyticsService.PlanReconciliation(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid month for plan reconciliation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to reconcile plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile plan"})
		}
		return
	}

	c.JSON(http.StatusOK, recon)
}
