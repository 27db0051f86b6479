package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// ListInterestEntries returns interest entries, optionally filtered by
// fiscal year and status
func (h *Handler) ListInterestEntries(c *gin.Context) {
	var fiscalYear *int
	if raw := c.Query("fiscalYear"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  "error",
				Code:    "INVALID_REQUEST",
				Message: "fiscalYear must be an integer",
			})
			return
		}
		fiscalYear = &year
	}

	var status *string
	if raw := c.Query("status"); raw != "" {
		status = &raw
	}

	entries, err := h.service.ListInterestEntries(c.Request.Context(), h.userID(c), fiscalYear, status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// CreateInterestEntry records a new interest entry
func (h *Handler) CreateInterestEntry(c *gin.Context) {
	var req models.CreateInterestEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	entry, err := h.service.CreateInterestEntry(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetInterestEntry returns a single interest entry by ID
func (h *Handler) GetInterestEntry(c *gin.Context) {
	entry, err := h.service.GetInterestEntry(c.Request.Context(), h.userID(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateInterestEntry applies a partial update to an interest entry
func (h *Handler) UpdateInterestEntry(c *gin.Context) {
	var req models.UpdateInterestEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	entry, err := h.service.UpdateInterestEntry(c.Request.Context(), h.userID(c), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteInterestEntry removes an interest entry
func (h *Handler) DeleteInterestEntry(c *gin.Context) {
	if err := h.service.DeleteInterestEntry(c.Request.Context(), h.userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetInterestFundSummary returns the overall interest fund position
func (h *Handler) GetInterestFundSummary(c *gin.Context) {
	summary, err := h.service.GetInterestFundSummary(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetFiscalYearSummary returns interest totals for one fiscal year
func (h *Handler) GetFiscalYearSummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  "error",
			Code:    "INVALID_REQUEST",
			Message: "year must be an integer",
		})
		return
	}

	summary, err := h.service.GetFiscalYearSummary(c.Request.Context(), h.userID(c), year)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
