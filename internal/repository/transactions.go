package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// Transaction repository methods
func (r *PostgresRepository) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, account_id, to_account_id, amount,
			type, category, date, description, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.Tags == nil {
		txn.Tags = pq.StringArray{}
	}
	txn.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		txn.ID, txn.UserID, txn.AccountID, txn.ToAccountID, txn.Amount,
		txn.Type, txn.Category, txn.Date, txn.Description, txn.Tags, txn.CreatedAt)

	return err
}

func (r *PostgresRepository) GetTransaction(ctx context.Context, userID, txnID string) (*models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE id = $1 AND user_id = $2`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, txnID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Transaction not found
		}
		return nil, err
	}

	return &txn, nil
}

func (r *PostgresRepository) ListTransactions(ctx context.Context, userID string, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE user_id = $1`
	args := []interface{}{userID}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		query += fmt.Sprintf("%s$%d", clause, len(args))
	}

	if filter.AccountID != "" {
		addCondition(` AND account_id = `, filter.AccountID)
	}
	if filter.Type != "" {
		addCondition(` AND type = `, filter.Type)
	}
	if filter.Category != "" {
		addCondition(` AND category = `, filter.Category)
	}
	if filter.DateFrom != "" {
		addCondition(` AND date >= `, filter.DateFrom)
	}
	if filter.DateTo != "" {
		addCondition(` AND date <= `, filter.DateTo)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	query += ` ORDER BY date DESC`
	addCondition(` LIMIT `, perPage)
	addCondition(` OFFSET `, (page-1)*perPage)

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, query, args...)
	if err != nil {
		return nil, err
	}

	return txns, nil
}

func (r *PostgresRepository) ListTransactionsSince(ctx context.Context, userID string, since time.Time) ([]models.Transaction, error) {
	query := `
		SELECT * FROM transactions
		WHERE user_id = $1 AND date >= $2
		ORDER BY date ASC
	`

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, query, userID, since)
	if err != nil {
		return nil, err
	}

	return txns, nil
}

func (r *PostgresRepository) GetRecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	query := `
		SELECT * FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return txns, nil
}

func (r *PostgresRepository) UpdateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		UPDATE transactions
		SET account_id = $1, to_account_id = $2, amount = $3, type = $4,
		    category = $5, date = $6, description = $7, tags = $8
		WHERE id = $9 AND user_id = $10
	`

	if txn.Tags == nil {
		txn.Tags = pq.StringArray{}
	}

	_, err := r.db.ExecContext(ctx, query,
		txn.AccountID, txn.ToAccountID, txn.Amount, txn.Type,
		txn.Category, txn.Date, txn.Description, txn.Tags, txn.ID, txn.UserID)

	return err
}

func (r *PostgresRepository) DeleteTransaction(ctx context.Context, userID, txnID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, txnID, userID)
	return err
}
