package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/alamin-rocks/assetflow-server/internal/logger"
	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// ErrSegmentNotFound is returned from a recompute when the target segment
// does not exist and strict mode is enabled.
var ErrSegmentNotFound = errors.New("segment not found")

// Repository interface defines the methods that any repository implementation must satisfy
type Repository interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error

	// Account operations
	GetSegments(ctx context.Context, userID string) ([]models.Account, error)
	CreateSegments(ctx context.Context, segments []models.Account) error
	GetSegmentByCategory(ctx context.Context, userID, category string) (*models.Account, error)
	GetAccount(ctx context.Context, userID, accountID string) (*models.Account, error)
	GetAccountBySource(ctx context.Context, userID, sourceType, sourceID string) (*models.Account, error)
	GetAccountByName(ctx context.Context, userID, name, accountType string) (*models.Account, error)
	GetUserAccounts(ctx context.Context, userID string) ([]models.Account, error)
	GetLeafAccounts(ctx context.Context, userID string) ([]models.Account, error)
	GetActiveChildren(ctx context.Context, segmentID string) ([]models.Account, error)
	CreateLeafAccount(ctx context.Context, account *models.Account) error
	UpdateAccount(ctx context.Context, account *models.Account) error
	DeleteAccount(ctx context.Context, accountID string, parentID *string) error
	RecomputeSegment(ctx context.Context, segmentID string) error

	// Transaction operations
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransaction(ctx context.Context, userID, txnID string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID string, filter models.TransactionFilter) ([]models.Transaction, error)
	ListTransactionsSince(ctx context.Context, userID string, since time.Time) ([]models.Transaction, error)
	GetRecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *models.Transaction) error
	DeleteTransaction(ctx context.Context, userID, txnID string) error

	// Stock holding operations
	CreateStock(ctx context.Context, stock *models.StockHolding) error
	GetStock(ctx context.Context, userID, stockID string) (*models.StockHolding, error)
	ListStocks(ctx context.Context, userID string) ([]models.StockHolding, error)
	UpdateStock(ctx context.Context, stock *models.StockHolding) error
	DeleteStock(ctx context.Context, userID, stockID string) error

	// Real estate operations
	CreateRealEstate(ctx context.Context, prop *models.RealEstateProperty) error
	GetRealEstate(ctx context.Context, userID, propID string) (*models.RealEstateProperty, error)
	ListRealEstate(ctx context.Context, userID string) ([]models.RealEstateProperty, error)
	UpdateRealEstate(ctx context.Context, prop *models.RealEstateProperty) error
	DeleteRealEstate(ctx context.Context, userID, propID string) error

	// Business interest operations
	CreateBusiness(ctx context.Context, biz *models.BusinessInterest) error
	GetBusiness(ctx context.Context, userID, bizID string) (*models.BusinessInterest, error)
	ListBusiness(ctx context.Context, userID string) ([]models.BusinessInterest, error)
	UpdateBusiness(ctx context.Context, biz *models.BusinessInterest) error
	DeleteBusiness(ctx context.Context, userID, bizID string) error

	// Gold holding operations
	CreateGold(ctx context.Context, holding *models.GoldHolding) error
	GetGold(ctx context.Context, userID, goldID string) (*models.GoldHolding, error)
	ListGold(ctx context.Context, userID string) ([]models.GoldHolding, error)
	UpdateGold(ctx context.Context, holding *models.GoldHolding) error
	DeleteGold(ctx context.Context, userID, goldID string) error

	// Interest entry operations
	CreateInterestEntry(ctx context.Context, entry *models.InterestEntry) error
	GetInterestEntry(ctx context.Context, userID, entryID string) (*models.InterestEntry, error)
	ListInterestEntries(ctx context.Context, userID string, fiscalYear *int, status *string) ([]models.InterestEntry, error)
	SumInterestEntries(ctx context.Context, userID string, fiscalYear *int, status *string) (decimal.Decimal, error)
	CountInterestEntries(ctx context.Context, userID string, fiscalYear int) (int, error)
	UpdateInterestEntry(ctx context.Context, entry *models.InterestEntry) error
	DeleteInterestEntry(ctx context.Context, userID, entryID string) error
}

// PostgresRepository implements the Repository interface using PostgreSQL
type PostgresRepository struct {
	db     *sqlx.DB
	strict bool
	log    *logrus.Logger
}

// NewPostgresRepository creates a new PostgreSQL repository. strictSegments
// controls whether recomputing a missing segment fails or is a logged no-op.
func NewPostgresRepository(db *sqlx.DB, strictSegments bool) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		strict: strictSegments,
		log:    logger.Get(),
	}
}

// GetDB returns the underlying database connection
func (r *PostgresRepository) GetDB() *sqlx.DB {
	return r.db
}

// recomputeSegmentTx sets a segment's balance to the sum of its active
// children inside an existing transaction. A missing segment is a logged
// no-op unless strict mode is enabled.
func (r *PostgresRepository) recomputeSegmentTx(ctx context.Context, tx *sql.Tx, segmentID string) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE accounts
		SET balance = COALESCE(
			(SELECT SUM(balance) FROM accounts WHERE parent_id = $1 AND is_active = TRUE), 0),
		    updated_at = $2
		WHERE id = $1 AND is_segment = TRUE
	`, segmentID, time.Now().UTC())
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		if r.strict {
			return ErrSegmentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"segmentId": segmentID,
		}).Warn("segment balance recompute skipped: segment not found")
	}

	return nil
}

// RecomputeSegment re-aggregates a segment balance outside of any other mutation
func (r *PostgresRepository) RecomputeSegment(ctx context.Context, segmentID string) error {
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

	err = r.recomputeSegmentTx(ctx, tx, segmentID)
	if err != nil {
		return err
	}

	return tx.Commit()
}
