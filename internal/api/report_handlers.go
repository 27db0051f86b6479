package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// GetNetWorthReport returns the current net worth with history
func (h *Handler) GetNetWorthReport(c *gin.Context) {
	report, err := h.service.GetNetWorthReport(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetBalanceSheet returns assets and liabilities grouped by category
func (h *Handler) GetBalanceSheet(c *gin.Context) {
	report, err := h.service.GetBalanceSheet(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetIncomeExpenseReport returns income and expense totals over a
// trailing window of months
func (h *Handler) GetIncomeExpenseReport(c *gin.Context) {
	months, err := parseMonths(c, 1)
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	report, err := h.service.GetIncomeExpenseReport(c.Request.Context(), h.userID(c), months)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetCashFlowReport returns monthly inflow and outflow buckets
func (h *Handler) GetCashFlowReport(c *gin.Context) {
	months, err := parseMonths(c, 6)
	if err != nil {
		h.respondBindError(c, err)
		return
	}

	report, err := h.service.GetCashFlowReport(c.Request.Context(), h.userID(c), months)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetDashboardSummary returns the combined dashboard snapshot
func (h *Handler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.service.GetDashboardSummary(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CalculateZakat computes zakat due from the user's zakatable assets
func (h *Handler) CalculateZakat(c *gin.Context) {
	var req models.ZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	resp, err := h.service.CalculateZakat(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseMonths(c *gin.Context, defaultMonths int) (int, error) {
	raw := c.Query("months")
	if raw == "" {
		return defaultMonths, nil
	}
	return strconv.Atoi(raw)
}
