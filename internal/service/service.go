package service

import (
	"context"
	"time"

	"github.com/alamin-rocks/assetflow-server/internal/models"
	"github.com/alamin-rocks/assetflow-server/internal/repository"
)

// Service defines all the business logic operations
type Service interface {
	// Authentication
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req models.RefreshRequest) (*models.AuthResponse, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest) (*models.User, error)

	// Accounts and segments
	GetPurse(ctx context.Context, userID string) ([]models.SegmentSummary, error)
	ListAccounts(ctx context.Context, userID string) ([]models.Account, error)
	CreateAccount(ctx context.Context, userID string, req models.CreateAccountRequest) (*models.Account, error)
	GetAccount(ctx context.Context, userID, accountID string) (*models.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, req models.UpdateAccountRequest) (*models.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error

	// Transactions
	ListTransactions(ctx context.Context, userID string, filter models.TransactionFilter) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, userID string, req models.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, userID, txnID string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, txnID string, req models.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, txnID string) error

	// Stock holdings
	ListStocks(ctx context.Context, userID string) ([]models.StockResponse, error)
	CreateStock(ctx context.Context, userID string, req models.CreateStockRequest) (*models.StockResponse, error)
	UpdateStock(ctx context.Context, userID, stockID string, req models.UpdateStockRequest) (*models.StockResponse, error)
	DeleteStock(ctx context.Context, userID, stockID string) error

	// Real estate
	ListRealEstate(ctx context.Context, userID string) ([]models.RealEstateResponse, error)
	CreateRealEstate(ctx context.Context, userID string, req models.CreateRealEstateRequest) (*models.RealEstateResponse, error)
	UpdateRealEstate(ctx context.Context, userID, propID string, req models.UpdateRealEstateRequest) (*models.RealEstateResponse, error)
	DeleteRealEstate(ctx context.Context, userID, propID string) error

	// Business interests
	ListBusiness(ctx context.Context, userID string) ([]models.BusinessResponse, error)
	CreateBusiness(ctx context.Context, userID string, req models.CreateBusinessRequest) (*models.BusinessResponse, error)
	UpdateBusiness(ctx context.Context, userID, bizID string, req models.UpdateBusinessRequest) (*models.BusinessResponse, error)
	DeleteBusiness(ctx context.Context, userID, bizID string) error

	// Gold holdings
	ListGold(ctx context.Context, userID string) ([]models.GoldResponse, error)
	CreateGold(ctx context.Context, userID string, req models.CreateGoldRequest) (*models.GoldResponse, error)
	UpdateGold(ctx context.Context, userID, goldID string, req models.UpdateGoldRequest) (*models.GoldResponse, error)
	DeleteGold(ctx context.Context, userID, goldID string) error

	// Portfolio
	GetPortfolioSummary(ctx context.Context, userID string) (*models.PortfolioSummary, error)

	// Interest entries
	ListInterestEntries(ctx context.Context, userID string, fiscalYear *int, status *string) ([]models.InterestEntry, error)
	CreateInterestEntry(ctx context.Context, userID string, req models.CreateInterestEntryRequest) (*models.InterestEntry, error)
	GetInterestEntry(ctx context.Context, userID, entryID string) (*models.InterestEntry, error)
	UpdateInterestEntry(ctx context.Context, userID, entryID string, req models.UpdateInterestEntryRequest) (*models.InterestEntry, error)
	DeleteInterestEntry(ctx context.Context, userID, entryID string) error
	GetInterestFundSummary(ctx context.Context, userID string) (*models.InterestFundSummary, error)
	GetFiscalYearSummary(ctx context.Context, userID string, year int) (*models.FiscalYearSummary, error)

	// Reports
	GetNetWorthReport(ctx context.Context, userID string) (*models.NetWorthReport, error)
	GetBalanceSheet(ctx context.Context, userID string) (*models.BalanceSheetReport, error)
	GetIncomeExpenseReport(ctx context.Context, userID string, months int) (*models.IncomeExpenseReport, error)
	GetCashFlowReport(ctx context.Context, userID string, months int) (*models.CashFlowReport, error)
	GetDashboardSummary(ctx context.Context, userID string) (*models.DashboardSummary, error)
	CalculateZakat(ctx context.Context, userID string, req models.ZakatRequest) (*models.ZakatResponse, error)
}

// DefaultService implements the Service interface
type DefaultService struct {
	repo                 repository.Repository
	jwtSecret            []byte
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(repo repository.Repository, jwtSecret string) Service {
	return &DefaultService{
		repo:                 repo,
		jwtSecret:            []byte(jwtSecret),
		accessTokenDuration:  30 * time.Minute,
		refreshTokenDuration: 7 * 24 * time.Hour,
	}
}
