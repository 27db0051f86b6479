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

type transactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

func createCashAccount(t *testing.T, testCtx *testutils.TestContext, name string, balance string) models.Account {
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/accounts",
		models.CreateAccountRequest{
			Name:     name,
			Type:     models.AccountTypeAsset,
			Category: "cash",
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

func TestTransactionCRUD(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	account := createCashAccount(t, testCtx, "Checking", "5000.00")
	today := time.Now().UTC().Format("2006-01-02")

	// Test case 1: Create a transaction
	desc := "August rent"
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/transactions",
		models.CreateTransactionRequest{
			AccountID:   account.ID,
			Amount:      decimal.RequireFromString("1500.00"),
			Type:        models.TransactionTypeExpense,
			Category:    "rent",
			Date:        today,
			Description: &desc,
			Tags:        []string{"housing", "recurring"},
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	var txn models.Transaction
	err := json.Unmarshal(w.Body.Bytes(), &txn)
	assert.NoError(t, err)
	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, models.TransactionTypeExpense, txn.Type)
	assert.Equal(t, []string{"housing", "recurring"}, []string(txn.Tags))

	// Test case 2: Retrieve it, tags included
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/transactions/"+txn.ID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var fetched models.Transaction
	err = json.Unmarshal(w.Body.Bytes(), &fetched)
	assert.NoError(t, err)
	assert.Equal(t, []string{"housing", "recurring"}, []string(fetched.Tags))

	// Test case 3: Partial update; untouched fields keep their values
	newAmount := decimal.RequireFromString("1600.00")
	newTags := []string{"housing"}
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPut,
		"/api/transactions/"+txn.ID,
		models.UpdateTransactionRequest{Amount: &newAmount, Tags: &newTags},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Transaction
	err = json.Unmarshal(w.Body.Bytes(), &updated)
	assert.NoError(t, err)
	assert.True(t, updated.Amount.Equal(newAmount))
	assert.Equal(t, "rent", updated.Category)
	assert.Equal(t, []string{"housing"}, []string(updated.Tags))

	// Test case 4: Delete
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodDelete,
		"/api/transactions/"+txn.ID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/transactions/"+txn.ID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransactionValidation(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	account := createCashAccount(t, testCtx, "Checking", "1000.00")

	// Malformed date
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/transactions",
		models.CreateTransactionRequest{
			AccountID: account.ID,
			Amount:    decimal.RequireFromString("10.00"),
			Type:      models.TransactionTypeExpense,
			Category:  "misc",
			Date:      "31-08-2026",
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown account
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/transactions",
		models.CreateTransactionRequest{
			AccountID: "00000000-0000-0000-0000-000000000000",
			Amount:    decimal.RequireFromString("10.00"),
			Type:      models.TransactionTypeExpense,
			Category:  "misc",
			Date:      time.Now().UTC().Format("2006-01-02"),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Invalid type fails binding
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/transactions",
		map[string]interface{}{
			"accountId": account.ID,
			"amount":    "10.00",
			"type":      "donation",
			"category":  "misc",
			"date":      time.Now().UTC().Format("2006-01-02"),
		},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionFilters(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	checking := createCashAccount(t, testCtx, "Checking", "5000.00")
	savings := createCashAccount(t, testCtx, "Savings", "2000.00")
	today := time.Now().UTC().Format("2006-01-02")

	seed := []models.CreateTransactionRequest{
		{AccountID: checking.ID, Amount: decimal.RequireFromString("3000.00"), Type: models.TransactionTypeIncome, Category: "salary", Date: today},
		{AccountID: checking.ID, Amount: decimal.RequireFromString("120.00"), Type: models.TransactionTypeExpense, Category: "groceries", Date: today},
		{AccountID: savings.ID, Amount: decimal.RequireFromString("45.00"), Type: models.TransactionTypeExpense, Category: "groceries", Date: today},
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

	// Filter by type
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/transactions?type=expense",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var list transactionListResponse
	err := json.Unmarshal(w.Body.Bytes(), &list)
	assert.NoError(t, err)
	assert.Len(t, list.Transactions, 2)

	// Filter by account
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/transactions?accountId="+savings.ID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &list)
	assert.NoError(t, err)
	assert.Len(t, list.Transactions, 1)
	assert.Equal(t, "groceries", list.Transactions[0].Category)

	// Pagination
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/transactions?page=1&perPage=2",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &list)
	assert.NoError(t, err)
	assert.Len(t, list.Transactions, 2)
}
