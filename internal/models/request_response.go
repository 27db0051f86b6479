package models

import "github.com/shopspring/decimal"

// Request models
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Currency string `json:"currency"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type UpdateUserRequest struct {
	FullName *string `json:"fullName"`
	Currency *string `json:"currency"`
}

type CreateAccountRequest struct {
	Name     string          `json:"name" binding:"required"`
	Type     string          `json:"type" binding:"required,oneof=asset liability equity"`
	Category string          `json:"category" binding:"required"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	ParentID *string         `json:"parentId"`
}

// UpdateAccountRequest carries only the fields the caller wants changed;
// nil fields are left untouched on the loaded account.
type UpdateAccountRequest struct {
	Name     *string          `json:"name"`
	Type     *string          `json:"type"`
	Category *string          `json:"category"`
	Balance  *decimal.Decimal `json:"balance"`
	Currency *string          `json:"currency"`
	IsActive *bool            `json:"isActive"`
}

type CreateTransactionRequest struct {
	AccountID   string          `json:"accountId" binding:"required"`
	ToAccountID *string         `json:"toAccountId"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=income expense transfer"`
	Category    string          `json:"category" binding:"required"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Description *string         `json:"description"`
	Tags        []string        `json:"tags"`
}

type UpdateTransactionRequest struct {
	AccountID   *string          `json:"accountId"`
	ToAccountID *string          `json:"toAccountId"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type"`
	Category    *string          `json:"category"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
	Tags        *[]string        `json:"tags"`
}

// TransactionFilter narrows the transaction listing
type TransactionFilter struct {
	AccountID string
	Type      string
	Category  string
	DateFrom  string
	DateTo    string
	Page      int
	PerPage   int
}

type CreateStockRequest struct {
	Ticker       string          `json:"ticker" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Shares       decimal.Decimal `json:"shares" binding:"required"`
	AvgCost      decimal.Decimal `json:"avgCost" binding:"required"`
	CurrentPrice decimal.Decimal `json:"currentPrice" binding:"required"`
	Sector       *string         `json:"sector"`
}

type UpdateStockRequest struct {
	Ticker       *string          `json:"ticker"`
	Name         *string          `json:"name"`
	Shares       *decimal.Decimal `json:"shares"`
	AvgCost      *decimal.Decimal `json:"avgCost"`
	CurrentPrice *decimal.Decimal `json:"currentPrice"`
	Sector       *string          `json:"sector"`
}

type CreateRealEstateRequest struct {
	Name           string          `json:"name" binding:"required"`
	Location       string          `json:"location" binding:"required"`
	PropertyType   string          `json:"propertyType" binding:"required"`
	EstimatedValue decimal.Decimal `json:"estimatedValue" binding:"required"`
	MonthlyRent    decimal.Decimal `json:"monthlyRent"`
}

type UpdateRealEstateRequest struct {
	Name           *string          `json:"name"`
	Location       *string          `json:"location"`
	PropertyType   *string          `json:"propertyType"`
	EstimatedValue *decimal.Decimal `json:"estimatedValue"`
	MonthlyRent    *decimal.Decimal `json:"monthlyRent"`
}

type CreateBusinessRequest struct {
	Name          string          `json:"name" binding:"required"`
	EquityPercent decimal.Decimal `json:"equityPercent" binding:"required"`
	InvestedValue decimal.Decimal `json:"investedValue" binding:"required"`
	CurrentValue  decimal.Decimal `json:"currentValue" binding:"required"`
	AnnualIncome  decimal.Decimal `json:"annualIncome"`
}

type UpdateBusinessRequest struct {
	Name          *string          `json:"name"`
	EquityPercent *decimal.Decimal `json:"equityPercent"`
	InvestedValue *decimal.Decimal `json:"investedValue"`
	CurrentValue  *decimal.Decimal `json:"currentValue"`
	AnnualIncome  *decimal.Decimal `json:"annualIncome"`
}

type CreateGoldRequest struct {
	Name                 string          `json:"name" binding:"required"`
	Weight               decimal.Decimal `json:"weight" binding:"required"`
	WeightUnit           string          `json:"weightUnit" binding:"omitempty,oneof=vori gram"`
	PurchasePricePerVori decimal.Decimal `json:"purchasePricePerVori" binding:"required"`
	CurrentPricePerVori  decimal.Decimal `json:"currentPricePerVori" binding:"required"`
}

type UpdateGoldRequest struct {
	Name                 *string          `json:"name"`
	Weight               *decimal.Decimal `json:"weight"`
	WeightUnit           *string          `json:"weightUnit"`
	PurchasePricePerVori *decimal.Decimal `json:"purchasePricePerVori"`
	CurrentPricePerVori  *decimal.Decimal `json:"currentPricePerVori"`
}

type CreateInterestEntryRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Source      string          `json:"source" binding:"required"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Description *string         `json:"description"`
	FiscalYear  int             `json:"fiscalYear" binding:"required"`
}

type UpdateInterestEntryRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Source      *string          `json:"source"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	FiscalYear  *int             `json:"fiscalYear"`
}

type ZakatRequest struct {
	GoldPricePerGram   decimal.Decimal `json:"goldPricePerGram"`
	SilverPricePerGram decimal.Decimal `json:"silverPricePerGram"`
	UseGoldNisab       *bool           `json:"useGoldNisab"`
}

// Response models
type AuthResponse struct {
	Status       string `json:"status"`
	UserID       string `json:"userId,omitempty"`
	Email        string `json:"email,omitempty"`
	FullName     string `json:"fullName,omitempty"`
	Currency     string `json:"currency,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int    `json:"expiresIn,omitempty"`
}

type StockResponse struct {
	StockHolding
	MarketValue decimal.Decimal `json:"marketValue"`
	GainLoss    decimal.Decimal `json:"gainLoss"`
	GainLossPct decimal.Decimal `json:"gainLossPct"`
}

type RealEstateResponse struct {
	RealEstateProperty
	AnnualRent decimal.Decimal `json:"annualRent"`
}

type BusinessResponse struct {
	BusinessInterest
	GainLoss decimal.Decimal `json:"gainLoss"`
}

type GoldResponse struct {
	GoldHolding
	WeightGrams  decimal.Decimal `json:"weightGrams"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	GainLoss     decimal.Decimal `json:"gainLoss"`
}

type PortfolioSummary struct {
	TotalStocksValue     decimal.Decimal `json:"totalStocksValue"`
	TotalRealEstateValue decimal.Decimal `json:"totalRealEstateValue"`
	TotalBusinessValue   decimal.Decimal `json:"totalBusinessValue"`
	TotalGoldValue       decimal.Decimal `json:"totalGoldValue"`
	TotalPortfolioValue  decimal.Decimal `json:"totalPortfolioValue"`
	TotalGainLoss        decimal.Decimal `json:"totalGainLoss"`
}

type SegmentSummary struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
	Currency     string          `json:"currency"`
	SubAccounts  []Account       `json:"subAccounts"`
}

type InterestFundSummary struct {
	TotalReceived        decimal.Decimal `json:"totalReceived"`
	TotalDistributed     decimal.Decimal `json:"totalDistributed"`
	UndistributedBalance decimal.Decimal `json:"undistributedBalance"`
}

type FiscalYearSummary struct {
	FiscalYear       int             `json:"fiscalYear"`
	TotalReceived    decimal.Decimal `json:"totalReceived"`
	TotalDistributed decimal.Decimal `json:"totalDistributed"`
	Undistributed    decimal.Decimal `json:"undistributed"`
	EntryCount       int             `json:"entryCount"`
}

type NetWorthPoint struct {
	Date        string          `json:"date"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetWorth    decimal.Decimal `json:"netWorth"`
}

type NetWorthReport struct {
	CurrentNetWorth decimal.Decimal `json:"currentNetWorth"`
	History         []NetWorthPoint `json:"history"`
}

type BalanceSheetAccount struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

type BalanceSheetItem struct {
	Category string                `json:"category"`
	Total    decimal.Decimal       `json:"total"`
	Accounts []BalanceSheetAccount `json:"accounts"`
}

type BalanceSheetReport struct {
	TotalAssets      decimal.Decimal    `json:"totalAssets"`
	TotalLiabilities decimal.Decimal    `json:"totalLiabilities"`
	NetWorth         decimal.Decimal    `json:"netWorth"`
	Assets           []BalanceSheetItem `json:"assets"`
	Liabilities      []BalanceSheetItem `json:"liabilities"`
}

type CategoryFlow struct {
	Category string          `json:"category"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
}

type IncomeExpenseReport struct {
	Period       string          `json:"period"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
	ByCategory   []CategoryFlow  `json:"byCategory"`
}

type CashFlowPoint struct {
	Period  string          `json:"period"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Net     decimal.Decimal `json:"net"`
}

type CashFlowReport struct {
	Data []CashFlowPoint `json:"data"`
}

type AllocationItem struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

type DashboardSummary struct {
	NetWorth            decimal.Decimal  `json:"netWorth"`
	TotalAssets         decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities    decimal.Decimal  `json:"totalLiabilities"`
	MonthlyIncome       decimal.Decimal  `json:"monthlyIncome"`
	MonthlyExpense      decimal.Decimal  `json:"monthlyExpense"`
	SavingsRate         decimal.Decimal  `json:"savingsRate"`
	DebtToAssetRatio    decimal.Decimal  `json:"debtToAssetRatio"`
	RecentTransactions  []Transaction    `json:"recentTransactions"`
	AssetAllocation     []AllocationItem `json:"assetAllocation"`
	LiabilityAllocation []AllocationItem `json:"liabilityAllocation"`
}

type ZakatBreakdown struct {
	CashAndBank          decimal.Decimal `json:"cashAndBank"`
	Investments          decimal.Decimal `json:"investments"`
	RealEstateRentIncome decimal.Decimal `json:"realEstateRentIncome"`
	BusinessInterests    decimal.Decimal `json:"businessInterests"`
	TotalZakatable       decimal.Decimal `json:"totalZakatable"`
	NisabThreshold       decimal.Decimal `json:"nisabThreshold"`
	IsAboveNisab         bool            `json:"isAboveNisab"`
	ZakatDue             decimal.Decimal `json:"zakatDue"`
}

type ZakatResponse struct {
	Breakdown ZakatBreakdown  `json:"breakdown"`
	Rate      decimal.Decimal `json:"rate"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
