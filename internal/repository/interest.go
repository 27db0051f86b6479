package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// Interest entry repository methods
func (r *PostgresRepository) CreateInterestEntry(ctx context.Context, entry *models.InterestEntry) error {
	query := `
		INSERT INTO interest_entries (id, user_id, amount, source, date,
			description, status, fiscal_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Amount, entry.Source, entry.Date,
		entry.Description, entry.Status, entry.FiscalYear, entry.CreatedAt)

	return err
}

func (r *PostgresRepository) GetInterestEntry(ctx context.Context, userID, entryID string) (*models.InterestEntry, error) {
	query := `SELECT * FROM interest_entries WHERE id = $1 AND user_id = $2`

	var entry models.InterestEntry
	err := r.db.GetContext(ctx, &entry, query, entryID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Entry not found
		}
		return nil, err
	}

	return &entry, nil
}

func (r *PostgresRepository) ListInterestEntries(ctx context.Context, userID string, fiscalYear *int, status *string) ([]models.InterestEntry, error) {
	query := `SELECT * FROM interest_entries WHERE user_id = $1`
	args := []interface{}{userID}

	if fiscalYear != nil {
		args = append(args, *fiscalYear)
		query += fmt.Sprintf(` AND fiscal_year = $%d`, len(args))
	}
	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	query += ` ORDER BY date DESC`

	var entries []models.InterestEntry
	err := r.db.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// SumInterestEntries totals entry amounts, optionally narrowed by fiscal
// year and status
func (r *PostgresRepository) SumInterestEntries(ctx context.Context, userID string, fiscalYear *int, status *string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM interest_entries WHERE user_id = $1`
	args := []interface{}{userID}

	if fiscalYear != nil {
		args = append(args, *fiscalYear)
		query += fmt.Sprintf(` AND fiscal_year = $%d`, len(args))
	}
	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	var total decimal.Decimal
	err := r.db.GetContext(ctx, &total, query, args...)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func (r *PostgresRepository) CountInterestEntries(ctx context.Context, userID string, fiscalYear int) (int, error) {
	query := `SELECT COUNT(*) FROM interest_entries WHERE user_id = $1 AND fiscal_year = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, fiscalYear)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *PostgresRepository) UpdateInterestEntry(ctx context.Context, entry *models.InterestEntry) error {
	query := `
		UPDATE interest_entries
		SET amount = $1, source = $2, date = $3, description = $4, status = $5, fiscal_year = $6
		WHERE id = $7 AND user_id = $8
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.Amount, entry.Source, entry.Date, entry.Description,
		entry.Status, entry.FiscalYear, entry.ID, entry.UserID)

	return err
}

func (r *PostgresRepository) DeleteInterestEntry(ctx context.Context, userID, entryID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM interest_entries WHERE id = $1 AND user_id = $2`, entryID, userID)
	return err
}
