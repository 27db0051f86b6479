package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// AccountType classifies accounts in the chart of accounts
type AccountType = string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
)

// Transaction types
const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)

// Interest entry statuses
const (
	InterestStatusReceived    = "received"
	InterestStatusDistributed = "distributed"
)

// Source types linking a mirrored account leaf to its asset record
const (
	SourceTypeStock      = "stock"
	SourceTypeRealEstate = "real_estate"
	SourceTypeBusiness   = "business"
	SourceTypeGold       = "gold"
)

// User represents a user in the system
type User struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FullName  string    `db:"full_name" json:"fullName"`
	Password  string    `db:"password" json:"-"` // Password hash, not returned in JSON
	Currency  string    `db:"currency" json:"currency"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Account is a node in the per-user two-level account tree. Segments
// (IsSegment) hold the sum of their active children; leaves hold real
// balances and may mirror an asset record through (SourceType, SourceID).
type Account struct {
	ID         string          `db:"id" json:"id"`
	UserID     string          `db:"user_id" json:"userId"`
	ParentID   *string         `db:"parent_id" json:"parentId"`
	Name       string          `db:"name" json:"name"`
	Type       string          `db:"type" json:"type"`
	Category   string          `db:"category" json:"category"`
	Balance    decimal.Decimal `db:"balance" json:"balance"`
	Currency   string          `db:"currency" json:"currency"`
	IsActive   bool            `db:"is_active" json:"isActive"`
	IsSegment  bool            `db:"is_segment" json:"isSegment"`
	SourceType *string         `db:"source_type" json:"sourceType"`
	SourceID   *string         `db:"source_id" json:"sourceId"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updatedAt"`
}

// Transaction is a dated money movement against an account
type Transaction struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"userId"`
	AccountID   string          `db:"account_id" json:"accountId"`
	ToAccountID *string         `db:"to_account_id" json:"toAccountId"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Type        string          `db:"type" json:"type"`
	Category    string          `db:"category" json:"category"`
	Date        time.Time       `db:"date" json:"date"`
	Description *string         `db:"description" json:"description"`
	Tags        pq.StringArray  `db:"tags" json:"tags"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

// StockHolding represents a stock position
type StockHolding struct {
	ID           string          `db:"id" json:"id"`
	UserID       string          `db:"user_id" json:"userId"`
	Ticker       string          `db:"ticker" json:"ticker"`
	Name         string          `db:"name" json:"name"`
	Shares       decimal.Decimal `db:"shares" json:"shares"`
	AvgCost      decimal.Decimal `db:"avg_cost" json:"avgCost"`
	CurrentPrice decimal.Decimal `db:"current_price" json:"currentPrice"`
	Sector       *string         `db:"sector" json:"sector"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}

// RealEstateProperty represents an owned property
type RealEstateProperty struct {
	ID             string          `db:"id" json:"id"`
	UserID         string          `db:"user_id" json:"userId"`
	Name           string          `db:"name" json:"name"`
	Location       string          `db:"location" json:"location"`
	PropertyType   string          `db:"property_type" json:"propertyType"`
	EstimatedValue decimal.Decimal `db:"estimated_value" json:"estimatedValue"`
	MonthlyRent    decimal.Decimal `db:"monthly_rent" json:"monthlyRent"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
}

// BusinessInterest represents an equity stake in a business
type BusinessInterest struct {
	ID            string          `db:"id" json:"id"`
	UserID        string          `db:"user_id" json:"userId"`
	Name          string          `db:"name" json:"name"`
	EquityPercent decimal.Decimal `db:"equity_percent" json:"equityPercent"`
	InvestedValue decimal.Decimal `db:"invested_value" json:"investedValue"`
	CurrentValue  decimal.Decimal `db:"current_value" json:"currentValue"`
	AnnualIncome  decimal.Decimal `db:"annual_income" json:"annualIncome"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
}

// GoldHolding stores gold weight in vori (1 vori = 11.664 grams)
type GoldHolding struct {
	ID                   string          `db:"id" json:"id"`
	UserID               string          `db:"user_id" json:"userId"`
	Name                 string          `db:"name" json:"name"`
	WeightVori           decimal.Decimal `db:"weight_vori" json:"weightVori"`
	PurchasePricePerVori decimal.Decimal `db:"purchase_price_per_vori" json:"purchasePricePerVori"`
	CurrentPricePerVori  decimal.Decimal `db:"current_price_per_vori" json:"currentPricePerVori"`
	CreatedAt            time.Time       `db:"created_at" json:"createdAt"`
}

// InterestEntry records interest income kept segregated from the user's
// own funds until distributed
type InterestEntry struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"userId"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Source      string          `db:"source" json:"source"`
	Date        time.Time       `db:"date" json:"date"`
	Description *string         `db:"description" json:"description"`
	Status      string          `db:"status" json:"status"`
	FiscalYear  int             `db:"fiscal_year" json:"fiscalYear"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}
