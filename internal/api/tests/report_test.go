package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/alamin-rocks/assetflow-server/internal/api/testutils"
	"github.com/alamin-rocks/assetflow-server/internal/models"
)

func createLiabilityAccount(t *testing.T, testCtx *testutils.TestContext, name string, balance string) models.Account {
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/accounts",
		models.CreateAccountRequest{
			Name:     name,
			Type:     models.AccountTypeLiability,
			Category: "liability",
			Balance:  decimal.RequireFromString(balance),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	var account models.Account
	err := json.Unmarshal(w.Body.Bytes(), &account)
	assert.NoError(t, err)
	return account
}

func TestNetWorthReport(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	createCashAccount(t, testCtx, "Checking", "5000.00")
	createLiabilityAccount(t, testCtx, "Car loan", "2000.00")

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/reports/net-worth",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var report models.NetWorthReport
	err := json.Unmarshal(w.Body.Bytes(), &report)
	assert.NoError(t, err)
	assert.True(t, report.CurrentNetWorth.Equal(decimal.NewFromInt(3000)),
		"expected 3000, got %s", report.CurrentNetWorth)
	assert.Len(t, report.History, 1)
	assert.True(t, report.History[0].Assets.Equal(decimal.NewFromInt(5000)))
	assert.True(t, report.History[0].Liabilities.Equal(decimal.NewFromInt(2000)))
}

func TestBalanceSheet(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	createCashAccount(t, testCtx, "Checking", "5000.00")
	createCashAccount(t, testCtx, "Savings", "3000.00")
	createLiabilityAccount(t, testCtx, "Car loan", "2000.00")

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/reports/balance-sheet",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var report models.BalanceSheetReport
	err := json.Unmarshal(w.Body.Bytes(), &report)
	assert.NoError(t, err)
	assert.True(t, report.TotalAssets.Equal(decimal.NewFromInt(8000)),
		"expected 8000, got %s", report.TotalAssets)
	assert.True(t, report.TotalLiabilities.Equal(decimal.NewFromInt(2000)))
	assert.True(t, report.NetWorth.Equal(decimal.NewFromInt(6000)))

	assert.Len(t, report.Assets, 1)
	assert.Equal(t, "cash", report.Assets[0].Category)
	assert.Len(t, report.Assets[0].Accounts, 2)
	assert.True(t, report.Assets[0].Total.Equal(decimal.NewFromInt(8000)))
}

func TestIncomeExpenseAndCashFlow(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	account := createCashAccount(t, testCtx, "Checking", "5000.00")
	today := time.Now().UTC().Format("2006-01-02")

	seed := []models.CreateTransactionRequest{
		{AccountID: account.ID, Amount: decimal.RequireFromString("3000.00"), Type: models.TransactionTypeIncome, Category: "salary", Date: today},
		{AccountID: account.ID, Amount: decimal.RequireFromString("1000.00"), Type: models.TransactionTypeExpense, Category: "rent", Date: today},
	}
	for _, req := range seed {
		w := testutils.PerformRequest(
			testCtx.Router,
			http.MethodPost,
			"/api/transactions",
			req,
			testutils.AuthHeaders(testCtx.TestUserJWT),
		)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	// Income/expense over the default one month window
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/reports/income-expense",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var ieReport models.IncomeExpenseReport
	err := json.Unmarshal(w.Body.Bytes(), &ieReport)
	assert.NoError(t, err)
	assert.True(t, ieReport.TotalIncome.Equal(decimal.NewFromInt(3000)),
		"expected 3000, got %s", ieReport.TotalIncome)
	assert.True(t, ieReport.TotalExpense.Equal(decimal.NewFromInt(1000)))
	assert.True(t, ieReport.Net.Equal(decimal.NewFromInt(2000)))
	assert.Len(t, ieReport.ByCategory, 2)

	// Cash flow buckets by calendar month
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/reports/cash-flow?months=1",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var cfReport models.CashFlowReport
	err = json.Unmarshal(w.Body.Bytes(), &cfReport)
	assert.NoError(t, err)
	assert.NotEmpty(t, cfReport.Data)

	currentMonth := time.Now().UTC().Format("2006-01")
	found := false
	for _, point := range cfReport.Data {
		if point.Period == currentMonth {
			found = true
			assert.True(t, point.Inflow.Equal(decimal.NewFromInt(3000)))
			assert.True(t, point.Outflow.Equal(decimal.NewFromInt(1000)))
			assert.True(t, point.Net.Equal(decimal.NewFromInt(2000)))
		}
	}
	assert.True(t, found, "expected a bucket for %s", currentMonth)
}

func TestDashboardSummary(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	account := createCashAccount(t, testCtx, "Checking", "10000.00")
	createLiabilityAccount(t, testCtx, "Car loan", "2500.00")
	today := time.Now().UTC().Format("2006-01-02")

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/transactions",
		models.CreateTransactionRequest{
			AccountID: account.ID,
			Amount:    decimal.RequireFromString("4000.00"),
			Type:      models.TransactionTypeIncome,
			Category:  "salary",
			Date:      today,
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/reports/dashboard",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var summary models.DashboardSummary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	assert.NoError(t, err)
	assert.True(t, summary.NetWorth.Equal(decimal.NewFromInt(7500)),
		"expected 7500, got %s", summary.NetWorth)
	assert.True(t, summary.TotalAssets.Equal(decimal.NewFromInt(10000)))
	assert.True(t, summary.TotalLiabilities.Equal(decimal.NewFromInt(2500)))
	assert.True(t, summary.MonthlyIncome.Equal(decimal.NewFromInt(4000)))
	assert.LessOrEqual(t, len(summary.RecentTransactions), 5)
	assert.NotEmpty(t, summary.AssetAllocation)
}

func TestCalculateZakat(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	createCashAccount(t, testCtx, "Checking", "10000.00")

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/investments/stocks",
		models.CreateStockRequest{
			Ticker:       "SQPH",
			Name:         "Square Pharma",
			Shares:       decimal.NewFromInt(20),
			AvgCost:      decimal.NewFromInt(350),
			CurrentPrice: decimal.NewFromInt(400),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Test case 1: Above the gold nisab, zakat is due at 2.5%
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/zakat/calculate",
		models.ZakatRequest{
			GoldPricePerGram: decimal.NewFromInt(75),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ZakatResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Breakdown.CashAndBank.Equal(decimal.NewFromInt(10000)),
		"expected 10000, got %s", resp.Breakdown.CashAndBank)
	assert.True(t, resp.Breakdown.Investments.Equal(decimal.NewFromInt(8000)),
		"expected 8000, got %s", resp.Breakdown.Investments)
	assert.True(t, resp.Breakdown.TotalZakatable.Equal(decimal.NewFromInt(18000)),
		"expected 18000, got %s", resp.Breakdown.TotalZakatable)

	// Nisab at 75/g: 87.48 * 75 = 6561
	assert.True(t, resp.Breakdown.NisabThreshold.Equal(decimal.RequireFromString("6561")),
		"expected 6561, got %s", resp.Breakdown.NisabThreshold)
	assert.True(t, resp.Breakdown.IsAboveNisab)
	assert.True(t, resp.Breakdown.ZakatDue.Equal(decimal.NewFromInt(450)),
		"expected 450, got %s", resp.Breakdown.ZakatDue)

	// Test case 2: Below the silver nisab, no zakat is due
	useGold := false
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/zakat/calculate",
		models.ZakatRequest{
			SilverPricePerGram: decimal.NewFromInt(100),
			UseGoldNisab:       &useGold,
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Breakdown.IsAboveNisab)
	assert.True(t, resp.Breakdown.ZakatDue.IsZero())
}
