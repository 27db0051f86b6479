package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// GetPortfolioSummary returns aggregate investment totals
func (h *Handler) GetPortfolioSummary(c *gin.Context) {
	summary, err := h.service.GetPortfolioSummary(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListStocks returns all stock holdings with derived values
func (h *Handler) ListStocks(c *gin.Context) {
	stocks, err := h.service.ListStocks(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stocks": stocks})
}

// CreateStock records a new stock holding
func (h *Handler) CreateStock(c *gin.Context) {
	var req models.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	stock, err := h.service.CreateStock(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stock)
}

// UpdateStock applies a partial update to a stock holding
func (h *Handler) UpdateStock(c *gin.Context) {
	var req models.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	stock, err := h.service.UpdateStock(c.Request.Context(), h.userID(c), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stock)
}

// DeleteStock removes a stock holding
func (h *Handler) DeleteStock(c *gin.Context) {
	if err := h.service.DeleteStock(c.Request.Context(), h.userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRealEstate returns all real estate properties
func (h *Handler) ListRealEstate(c *gin.Context) {
	properties, err := h.service.ListRealEstate(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// CreateRealEstate records a new real estate property
func (h *Handler) CreateRealEstate(c *gin.Context) {
	var req models.CreateRealEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	property, err := h.service.CreateRealEstate(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// UpdateRealEstate applies a partial update to a property
func (h *Handler) UpdateRealEstate(c *gin.Context) {
	var req models.UpdateRealEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	property, err := h.service.UpdateRealEstate(c.Request.Context(), h.userID(c), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteRealEstate removes a property
func (h *Handler) DeleteRealEstate(c *gin.Context) {
	if err := h.service.DeleteRealEstate(c.Request.Context(), h.userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBusiness returns all business interests
func (h *Handler) ListBusiness(c *gin.Context) {
	businesses, err := h.service.ListBusiness(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// CreateBusiness records a new business interest
func (h *Handler) CreateBusiness(c *gin.Context) {
	var req models.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	business, err := h.service.CreateBusiness(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, business)
}

// UpdateBusiness applies a partial update to a business interest
func (h *Handler) UpdateBusiness(c *gin.Context) {
	var req models.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	business, err := h.service.UpdateBusiness(c.Request.Context(), h.userID(c), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

// DeleteBusiness removes a business interest
func (h *Handler) DeleteBusiness(c *gin.Context) {
	if err := h.service.DeleteBusiness(c.Request.Context(), h.userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListGold returns all gold holdings with derived values
func (h *Handler) ListGold(c *gin.Context) {
	holdings, err := h.service.ListGold(c.Request.Context(), h.userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holdings": holdings})
}

// CreateGold records a new gold holding
func (h *Handler) CreateGold(c *gin.Context) {
	var req models.CreateGoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	gold, err := h.service.CreateGold(c.Request.Context(), h.userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gold)
}

// UpdateGold applies a partial update to a gold holding
func (h *Handler) UpdateGold(c *gin.Context) {
	var req models.UpdateGoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err)
		return
	}

	gold, err := h.service.UpdateGold(c.Request.Context(), h.userID(c), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gold)
}

// DeleteGold removes a gold holding
func (h *Handler) DeleteGold(c *gin.Context) {
	if err := h.service.DeleteGold(c.Request.Context(), h.userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
