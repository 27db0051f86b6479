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

type interestListResponse struct {
	Entries []models.InterestEntry `json:"entries"`
}

func createInterestEntry(t *testing.T, testCtx *testutils.TestContext, amount, source, date string, fiscalYear int) models.InterestEntry {
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/interest",
		models.CreateInterestEntryRequest{
			Amount:     decimal.RequireFromString(amount),
			Source:     source,
			Date:       date,
			FiscalYear: fiscalYear,
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	var entry models.InterestEntry
	err := json.Unmarshal(w.Body.Bytes(), &entry)
	assert.NoError(t, err)
	assert.Equal(t, models.InterestStatusReceived, entry.Status)
	return entry
}

func TestInterestFundTracking(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	first := createInterestEntry(t, testCtx, "500.00", "DBBL savings", "2026-01-15", 2026)
	createInterestEntry(t, testCtx, "300.00", "BRAC fixed deposit", "2026-03-10", 2026)

	// The fund sums all received entries
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/interest/fund-summary",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var summary models.InterestFundSummary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	assert.NoError(t, err)
	assert.True(t, summary.TotalReceived.Equal(decimal.NewFromInt(800)),
		"expected 800, got %s", summary.TotalReceived)
	assert.True(t, summary.TotalDistributed.IsZero())
	assert.True(t, summary.UndistributedBalance.Equal(decimal.NewFromInt(800)))

	// The fund is a liability leaf under the Liabilities segment
	purse := getPurse(t, testCtx)
	liabilities := findSegment(purse, "liability")
	assert.NotNil(t, liabilities)
	assert.Len(t, liabilities.SubAccounts, 1)
	assert.Equal(t, "Interest Fund (Liability)", liabilities.SubAccounts[0].Name)
	assert.True(t, liabilities.TotalBalance.Equal(decimal.NewFromInt(800)),
		"expected 800, got %s", liabilities.TotalBalance)

	// Distributing an entry reduces the fund but not the received total
	distributed := models.InterestStatusDistributed
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPut,
		"/api/interest/"+first.ID,
		models.UpdateInterestEntryRequest{Status: &distributed},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/interest/fund-summary",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &summary)
	assert.NoError(t, err)
	assert.True(t, summary.TotalReceived.Equal(decimal.NewFromInt(800)),
		"expected 800, got %s", summary.TotalReceived)
	assert.True(t, summary.TotalDistributed.Equal(decimal.NewFromInt(500)),
		"expected 500, got %s", summary.TotalDistributed)
	assert.True(t, summary.UndistributedBalance.Equal(decimal.NewFromInt(300)),
		"expected 300, got %s", summary.UndistributedBalance)

	purse = getPurse(t, testCtx)
	liabilities = findSegment(purse, "liability")
	assert.True(t, liabilities.TotalBalance.Equal(decimal.NewFromInt(300)),
		"expected 300, got %s", liabilities.TotalBalance)
}

func TestInterestFiscalYearSummary(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	createInterestEntry(t, testCtx, "500.00", "DBBL savings", "2025-07-15", 2025)
	createInterestEntry(t, testCtx, "250.00", "DBBL savings", "2025-12-20", 2025)
	createInterestEntry(t, testCtx, "100.00", "DBBL savings", "2026-02-01", 2026)

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/interest/fiscal-year/2025",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var summary models.FiscalYearSummary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	assert.NoError(t, err)
	assert.Equal(t, 2025, summary.FiscalYear)
	assert.Equal(t, 2, summary.EntryCount)
	assert.True(t, summary.TotalReceived.Equal(decimal.NewFromInt(750)),
		"expected 750, got %s", summary.TotalReceived)

	// Year filter on the listing endpoint
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/interest?fiscalYear=2026",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var list interestListResponse
	err = json.Unmarshal(w.Body.Bytes(), &list)
	assert.NoError(t, err)
	assert.Len(t, list.Entries, 1)
}

func TestInterestEntryDeletionResyncsFund(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	entry := createInterestEntry(t, testCtx, "400.00", "City Bank savings", "2026-04-01", 2026)

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodDelete,
		"/api/interest/"+entry.ID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusNoContent, w.Code)

	purse := getPurse(t, testCtx)
	liabilities := findSegment(purse, "liability")
	assert.True(t, liabilities.TotalBalance.IsZero(),
		"expected zero, got %s", liabilities.TotalBalance)
}
