package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alamin-rocks/assetflow-server/internal/logger"
	"github.com/alamin-rocks/assetflow-server/internal/models"
	"github.com/alamin-rocks/assetflow-server/internal/service"
)

// Handler handles API requests
type Handler struct {
	service service.Service
}

// NewHandler creates a new API handler
func NewHandler(service service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes configures the API routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/refresh", h.Refresh)
			auth.GET("/me", AuthMiddleware(), h.GetCurrentUser)
			auth.PUT("/me", AuthMiddleware(), h.UpdateCurrentUser)
		}

		accounts := api.Group("/accounts", AuthMiddleware())
		{
			accounts.GET("/purse", h.GetPurse)
			accounts.GET("", h.ListAccounts)
			accounts.POST("", h.CreateAccount)
			accounts.GET("/:id", h.GetAccount)
			accounts.PUT("/:id", h.UpdateAccount)
			accounts.DELETE("/:id", h.DeleteAccount)
		}

		transactions := api.Group("/transactions", AuthMiddleware())
		{
			transactions.GET("", h.ListTransactions)
			transactions.POST("", h.CreateTransaction)
			transactions.GET("/:id", h.GetTransaction)
			transactions.PUT("/:id", h.UpdateTransaction)
			transactions.DELETE("/:id", h.DeleteTransaction)
		}

		investments := api.Group("/investments", AuthMiddleware())
		{
			investments.GET("/portfolio", h.GetPortfolioSummary)

			investments.GET("/stocks", h.ListStocks)
			investments.POST("/stocks", h.CreateStock)
			investments.PUT("/stocks/:id", h.UpdateStock)
			investments.DELETE("/stocks/:id", h.DeleteStock)

			investments.GET("/real-estate", h.ListRealEstate)
			investments.POST("/real-estate", h.CreateRealEstate)
			investments.PUT("/real-estate/:id", h.UpdateRealEstate)
			investments.DELETE("/real-estate/:id", h.DeleteRealEstate)

			investments.GET("/business", h.ListBusiness)
			investments.POST("/business", h.CreateBusiness)
			investments.PUT("/business/:id", h.UpdateBusiness)
			investments.DELETE("/business/:id", h.DeleteBusiness)

			investments.GET("/gold", h.ListGold)
			investments.POST("/gold", h.CreateGold)
			investments.PUT("/gold/:id", h.UpdateGold)
			investments.DELETE("/gold/:id", h.DeleteGold)
		}

		interest := api.Group("/interest", AuthMiddleware())
		{
			interest.GET("/fund-summary", h.GetInterestFundSummary)
			interest.GET("/fiscal-year/:year", h.GetFiscalYearSummary)
			interest.GET("", h.ListInterestEntries)
			interest.POST("", h.CreateInterestEntry)
			interest.GET("/:id", h.GetInterestEntry)
			interest.PUT("/:id", h.UpdateInterestEntry)
			interest.DELETE("/:id", h.DeleteInterestEntry)
		}

		reports := api.Group("/reports", AuthMiddleware())
		{
			reports.GET("/net-worth", h.GetNetWorthReport)
			reports.GET("/balance-sheet", h.GetBalanceSheet)
			reports.GET("/income-expense", h.GetIncomeExpenseReport)
			reports.GET("/cash-flow", h.GetCashFlowReport)
			reports.GET("/dashboard", h.GetDashboardSummary)
		}

		api.POST("/zakat/calculate", AuthMiddleware(), h.CalculateZakat)
	}
}

// HealthCheck handles the health check endpoint
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) userID(c *gin.Context) string {
	return c.MustGet("userId").(string)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Status:  "error",
			Code:    "NOT_FOUND",
			Message: "Resource not found",
		})
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Status:  "error",
			Code:    "DUPLICATE_EMAIL",
			Message: "Email is already registered",
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Status:  "error",
			Code:    "INVALID_CREDENTIALS",
			Message: "Invalid email or password",
		})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Status:  "error",
			Code:    "INVALID_TOKEN",
			Message: "Invalid or expired token",
		})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  "error",
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		})
	default:
		logger.Get().WithError(err).Error("internal server error")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  "error",
			Code:    "INTERNAL_ERROR",
			Message: "Internal server error",
		})
	}
}

func (h *Handler) respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:  "error",
		Code:    "INVALID_REQUEST",
		Message: err.Error(),
	})
}
