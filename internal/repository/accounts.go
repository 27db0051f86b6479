package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// Account repository methods
func (r *PostgresRepository) GetSegments(ctx context.Context, userID string) ([]models.Account, error) {
	query := `
		SELECT * FROM accounts
		WHERE user_id = $1 AND is_segment = TRUE AND parent_id IS NULL
		ORDER BY created_at ASC
	`

	var segments []models.Account
	err := r.db.SelectContext(ctx, &segments, query, userID)
	if err != nil {
		return nil, err
	}

	return segments, nil
}

// CreateSegments inserts the default segment accounts in a single transaction
func (r *PostgresRepository) CreateSegments(ctx context.Context, segments []models.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	query := `
		INSERT INTO accounts (id, user_id, name, type, category, balance, currency,
			is_active, is_segment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, $9, $10)
	`

	now := time.Now().UTC()
	for i := range segments {
		seg := &segments[i]
		if seg.ID == "" {
			seg.ID = uuid.New().String()
		}
		seg.CreatedAt = now
		seg.UpdatedAt = now

		_, err = tx.ExecContext(ctx, query,
			seg.ID, seg.UserID, seg.Name, seg.Type, seg.Category,
			seg.Balance, seg.Currency, seg.IsActive, seg.CreatedAt, seg.UpdatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetSegmentByCategory(ctx context.Context, userID, category string) (*models.Account, error) {
	query := `
		SELECT * FROM accounts
		WHERE user_id = $1 AND is_segment = TRUE AND parent_id IS NULL AND category = $2
	`

	var segment models.Account
	err := r.db.GetContext(ctx, &segment, query, userID, category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Segment not found
		}
		return nil, err
	}

	return &segment, nil
}

func (r *PostgresRepository) GetAccount(ctx context.Context, userID, accountID string) (*models.Account, error) {
	query := `SELECT * FROM accounts WHERE id = $1 AND user_id = $2`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, accountID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Account not found
		}
		return nil, err
	}

	return &account, nil
}

func (r *PostgresRepository) GetAccountBySource(ctx context.Context, userID, sourceType, sourceID string) (*models.Account, error) {
	query := `
		SELECT * FROM accounts
		WHERE user_id = $1 AND source_type = $2 AND source_id = $3
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, userID, sourceType, sourceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (r *PostgresRepository) GetAccountByName(ctx context.Context, userID, name, accountType string) (*models.Account, error) {
	query := `
		SELECT * FROM accounts
		WHERE user_id = $1 AND name = $2 AND type = $3 AND is_segment = FALSE
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, userID, name, accountType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (r *PostgresRepository) GetUserAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	query := `SELECT * FROM accounts WHERE user_id = $1 ORDER BY created_at DESC`

	var accounts []models.Account
	err := r.db.SelectContext(ctx, &accounts, query, userID)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// GetLeafAccounts returns all active non-segment accounts for a user
func (r *PostgresRepository) GetLeafAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	query := `
		SELECT * FROM accounts
		WHERE user_id = $1 AND is_active = TRUE AND is_segment = FALSE
	`

	var accounts []models.Account
	err := r.db.SelectContext(ctx, &accounts, query, userID)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *PostgresRepository) GetActiveChildren(ctx context.Context, segmentID string) ([]models.Account, error) {
	query := `
		SELECT * FROM accounts
		WHERE parent_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`

	var children []models.Account
	err := r.db.SelectContext(ctx, &children, query, segmentID)
	if err != nil {
		return nil, err
	}

	return children, nil
}

// CreateLeafAccount inserts a leaf account and recomputes its parent segment
// balance in the same transaction
func (r *PostgresRepository) CreateLeafAccount(ctx context.Context, account *models.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	query := `
		INSERT INTO accounts (id, user_id, parent_id, name, type, category, balance,
			currency, is_active, is_segment, source_type, source_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE, $10, $11, $12, $13)
	`

	if account.ID == "" {
		account.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err = tx.ExecContext(ctx, query,
		account.ID, account.UserID, account.ParentID, account.Name, account.Type,
		account.Category, account.Balance, account.Currency, account.IsActive,
		account.SourceType, account.SourceID, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		return err
	}

	if account.ParentID != nil {
		err = r.recomputeSegmentTx(ctx, tx, *account.ParentID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// UpdateAccount persists an account and recomputes its parent segment
// balance in the same transaction
func (r *PostgresRepository) UpdateAccount(ctx context.Context, account *models.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	account.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE accounts
		SET parent_id = $1, name = $2, type = $3, category = $4, balance = $5,
		    currency = $6, is_active = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`

	_, err = tx.ExecContext(ctx, query,
		account.ParentID, account.Name, account.Type, account.Category,
		account.Balance, account.Currency, account.IsActive, account.UpdatedAt,
		account.ID, account.UserID)
	if err != nil {
		return err
	}

	if account.ParentID != nil {
		err = r.recomputeSegmentTx(ctx, tx, *account.ParentID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteAccount removes a leaf account and recomputes its former parent
// segment balance in the same transaction. The parent id must be captured
// by the caller before the delete.
func (r *PostgresRepository) DeleteAccount(ctx context.Context, accountID string, parentID *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	_, err = tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		return err
	}

	if parentID != nil {
		err = r.recomputeSegmentTx(ctx, tx, *parentID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
