package config

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/alamin-rocks/assetflow-server/internal/logger"
)

// SetupDatabase initializes the database connection
func SetupDatabase(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Create tables if they don't exist
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables creates the necessary tables in the database
func createTables(db *sqlx.DB) error {
	// Create users table
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			currency VARCHAR(10) NOT NULL DEFAULT 'USD',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create accounts table (self-referencing segment tree)
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS accounts (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			parent_id VARCHAR(36) REFERENCES accounts(id),
			name VARCHAR(255) NOT NULL,
			type VARCHAR(50) NOT NULL,
			category VARCHAR(50) NOT NULL,
			balance NUMERIC(15,2) NOT NULL DEFAULT 0,
			currency VARCHAR(10) NOT NULL DEFAULT 'USD',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_segment BOOLEAN NOT NULL DEFAULT FALSE,
			source_type VARCHAR(50),
			source_id VARCHAR(36),
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create transactions table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS transactions (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			account_id VARCHAR(36) NOT NULL REFERENCES accounts(id),
			to_account_id VARCHAR(36) REFERENCES accounts(id),
			amount NUMERIC(15,2) NOT NULL,
			type VARCHAR(50) NOT NULL,
			category VARCHAR(100) NOT NULL,
			date DATE NOT NULL,
			description TEXT,
			tags TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create asset record tables
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS stock_holdings (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			ticker VARCHAR(20) NOT NULL,
			name VARCHAR(255) NOT NULL,
			shares NUMERIC(15,4) NOT NULL,
			avg_cost NUMERIC(15,2) NOT NULL,
			current_price NUMERIC(15,2) NOT NULL,
			sector VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS real_estate_properties (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			location VARCHAR(255) NOT NULL,
			property_type VARCHAR(50) NOT NULL,
			estimated_value NUMERIC(15,2) NOT NULL,
			monthly_rent NUMERIC(15,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS business_interests (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			equity_percent NUMERIC(5,2) NOT NULL,
			invested_value NUMERIC(15,2) NOT NULL,
			current_value NUMERIC(15,2) NOT NULL,
			annual_income NUMERIC(15,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS gold_holdings (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			weight_vori NUMERIC(15,4) NOT NULL,
			purchase_price_per_vori NUMERIC(15,2) NOT NULL,
			current_price_per_vori NUMERIC(15,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS interest_entries (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			amount NUMERIC(15,2) NOT NULL,
			source VARCHAR(255) NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			description TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'received',
			fiscal_year INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create indexes for better performance
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_accounts_user_id ON accounts(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_parent_id ON accounts(parent_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_source ON accounts(user_id, source_type, source_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions(user_id, date)",
		"CREATE INDEX IF NOT EXISTS idx_interest_entries_user_year ON interest_entries(user_id, fiscal_year)",
	}

	for _, idx := range indexes {
		_, err = db.Exec(idx)
		if err != nil {
			logger.Get().WithError(err).Warn("Failed to create index")
			// Don't return error here, indexes are not critical
		}
	}

	return nil
}
