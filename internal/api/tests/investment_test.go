package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/alamin-rocks/assetflow-server/internal/api/testutils"
	"github.com/alamin-rocks/assetflow-server/internal/models"
)

func TestStockLifecycle(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	// Test case 1: Create a holding and check the derived values
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/investments/stocks",
		models.CreateStockRequest{
			Ticker:       "AAPL",
			Name:         "Apple Inc.",
			Shares:       decimal.NewFromInt(10),
			AvgCost:      decimal.NewFromInt(150),
			CurrentPrice: decimal.NewFromInt(180),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	var stock models.StockResponse
	err := json.Unmarshal(w.Body.Bytes(), &stock)
	assert.NoError(t, err)
	assert.True(t, stock.MarketValue.Equal(decimal.NewFromInt(1800)),
		"expected 1800, got %s", stock.MarketValue)
	assert.True(t, stock.GainLoss.Equal(decimal.NewFromInt(300)),
		"expected 300, got %s", stock.GainLoss)
	assert.True(t, stock.GainLossPct.Equal(decimal.NewFromInt(20)),
		"expected 20, got %s", stock.GainLossPct)

	// Test case 2: The holding is mirrored into the Investments segment
	purse := getPurse(t, testCtx)
	inv := findSegment(purse, "investment")
	assert.NotNil(t, inv)
	assert.Len(t, inv.SubAccounts, 1)
	assert.Equal(t, "AAPL - Apple Inc.", inv.SubAccounts[0].Name)
	assert.True(t, inv.TotalBalance.Equal(decimal.NewFromInt(1800)),
		"expected 1800, got %s", inv.TotalBalance)

	// Test case 3: Updating the price moves both the derived values and
	// the mirrored balance
	newPrice := decimal.NewFromInt(150)
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPut,
		"/api/investments/stocks/"+stock.ID,
		models.UpdateStockRequest{CurrentPrice: &newPrice},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &stock)
	assert.NoError(t, err)
	assert.True(t, stock.GainLoss.IsZero(), "expected zero, got %s", stock.GainLoss)

	purse = getPurse(t, testCtx)
	inv = findSegment(purse, "investment")
	assert.True(t, inv.TotalBalance.Equal(decimal.NewFromInt(1500)),
		"expected 1500, got %s", inv.TotalBalance)

	// Test case 4: Deleting the holding removes the mirrored account
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodDelete,
		"/api/investments/stocks/"+stock.ID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusNoContent, w.Code)

	purse = getPurse(t, testCtx)
	inv = findSegment(purse, "investment")
	assert.Empty(t, inv.SubAccounts)
	assert.True(t, inv.TotalBalance.IsZero())
}

func TestRealEstateLifecycle(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/investments/real-estate",
		models.CreateRealEstateRequest{
			Name:           "Dhanmondi Flat",
			Location:       "Dhaka",
			PropertyType:   "apartment",
			EstimatedValue: decimal.NewFromInt(9000000),
			MonthlyRent:    decimal.NewFromInt(35000),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	var property models.RealEstateResponse
	err := json.Unmarshal(w.Body.Bytes(), &property)
	assert.NoError(t, err)
	assert.True(t, property.AnnualRent.Equal(decimal.NewFromInt(420000)),
		"expected 420000, got %s", property.AnnualRent)

	// Mirrored under the Property segment at the estimated value
	purse := getPurse(t, testCtx)
	prop := findSegment(purse, "property")
	assert.NotNil(t, prop)
	assert.Len(t, prop.SubAccounts, 1)
	assert.True(t, prop.TotalBalance.Equal(decimal.NewFromInt(9000000)))

	// Re-valuing the property updates the mirror
	newValue := decimal.NewFromInt(9500000)
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPut,
		"/api/investments/real-estate/"+property.ID,
		models.UpdateRealEstateRequest{EstimatedValue: &newValue},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	purse = getPurse(t, testCtx)
	prop = findSegment(purse, "property")
	assert.True(t, prop.TotalBalance.Equal(newValue), "expected %s, got %s", newValue, prop.TotalBalance)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodDelete,
		"/api/investments/real-estate/"+property.ID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBusinessLifecycle(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/investments/business",
		models.CreateBusinessRequest{
			Name:          "Corner Pharmacy",
			EquityPercent: decimal.NewFromInt(40),
			InvestedValue: decimal.NewFromInt(500000),
			CurrentValue:  decimal.NewFromInt(650000),
			AnnualIncome:  decimal.NewFromInt(90000),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	var business models.BusinessResponse
	err := json.Unmarshal(w.Body.Bytes(), &business)
	assert.NoError(t, err)
	assert.True(t, business.GainLoss.Equal(decimal.NewFromInt(150000)),
		"expected 150000, got %s", business.GainLoss)

	// Mirrored under the Business segment at the current value
	purse := getPurse(t, testCtx)
	biz := findSegment(purse, "business")
	assert.NotNil(t, biz)
	assert.True(t, biz.TotalBalance.Equal(decimal.NewFromInt(650000)))

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodDelete,
		"/api/investments/business/"+business.ID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPortfolioSummary(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/investments/stocks",
		models.CreateStockRequest{
			Ticker:       "GP",
			Name:         "Grameenphone",
			Shares:       decimal.NewFromInt(100),
			AvgCost:      decimal.NewFromInt(250),
			CurrentPrice: decimal.NewFromInt(300),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/investments/business",
		models.CreateBusinessRequest{
			Name:          "Corner Pharmacy",
			EquityPercent: decimal.NewFromInt(40),
			InvestedValue: decimal.NewFromInt(500000),
			CurrentValue:  decimal.NewFromInt(650000),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/investments/portfolio",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var summary models.PortfolioSummary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	assert.NoError(t, err)
	assert.True(t, summary.TotalStocksValue.Equal(decimal.NewFromInt(30000)),
		"expected 30000, got %s", summary.TotalStocksValue)
	assert.True(t, summary.TotalBusinessValue.Equal(decimal.NewFromInt(650000)),
		"expected 650000, got %s", summary.TotalBusinessValue)
	assert.True(t, summary.TotalPortfolioValue.Equal(decimal.NewFromInt(680000)),
		"expected 680000, got %s", summary.TotalPortfolioValue)

	// Stock gain 5000 plus business gain 150000
	assert.True(t, summary.TotalGainLoss.Equal(decimal.NewFromInt(155000)),
		"expected 155000, got %s", summary.TotalGainLoss)
}
