package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// Stock holding repository methods
func (r *PostgresRepository) CreateStock(ctx context.Context, stock *models.StockHolding) error {
	query := `
		INSERT INTO stock_holdings (id, user_id, ticker, name, shares, avg_cost,
			current_price, sector, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	stock.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		stock.ID, stock.UserID, stock.Ticker, stock.Name, stock.Shares,
		stock.AvgCost, stock.CurrentPrice, stock.Sector, stock.CreatedAt)

	return err
}

func (r *PostgresRepository) GetStock(ctx context.Context, userID, stockID string) (*models.StockHolding, error) {
	query := `SELECT * FROM stock_holdings WHERE id = $1 AND user_id = $2`

	var stock models.StockHolding
	err := r.db.GetContext(ctx, &stock, query, stockID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Stock not found
		}
		return nil, err
	}

	return &stock, nil
}

func (r *PostgresRepository) ListStocks(ctx context.Context, userID string) ([]models.StockHolding, error) {
	query := `SELECT * FROM stock_holdings WHERE user_id = $1 ORDER BY created_at DESC`

	var stocks []models.StockHolding
	err := r.db.SelectContext(ctx, &stocks, query, userID)
	if err != nil {
		return nil, err
	}

	return stocks, nil
}

func (r *PostgresRepository) UpdateStock(ctx context.Context, stock *models.StockHolding) error {
	query := `
		UPDATE stock_holdings
		SET ticker = $1, name = $2, shares = $3, avg_cost = $4, current_price = $5, sector = $6
		WHERE id = $7 AND user_id = $8
	`

	_, err := r.db.ExecContext(ctx, query,
		stock.Ticker, stock.Name, stock.Shares, stock.AvgCost,
		stock.CurrentPrice, stock.Sector, stock.ID, stock.UserID)

	return err
}

func (r *PostgresRepository) DeleteStock(ctx context.Context, userID, stockID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM stock_holdings WHERE id = $1 AND user_id = $2`, stockID, userID)
	return err
}

// Real estate repository methods
func (r *PostgresRepository) CreateRealEstate(ctx context.Context, prop *models.RealEstateProperty) error {
	query := `
		INSERT INTO real_estate_properties (id, user_id, name, location, property_type,
			estimated_value, monthly_rent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if prop.ID == "" {
		prop.ID = uuid.New().String()
	}
	prop.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		prop.ID, prop.UserID, prop.Name, prop.Location, prop.PropertyType,
		prop.EstimatedValue, prop.MonthlyRent, prop.CreatedAt)

	return err
}

func (r *PostgresRepository) GetRealEstate(ctx context.Context, userID, propID string) (*models.RealEstateProperty, error) {
	query := `SELECT * FROM real_estate_properties WHERE id = $1 AND user_id = $2`

	var prop models.RealEstateProperty
	err := r.db.GetContext(ctx, &prop, query, propID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Property not found
		}
		return nil, err
	}

	return &prop, nil
}

func (r *PostgresRepository) ListRealEstate(ctx context.Context, userID string) ([]models.RealEstateProperty, error) {
	query := `SELECT * FROM real_estate_properties WHERE user_id = $1 ORDER BY created_at DESC`

	var props []models.RealEstateProperty
	err := r.db.SelectContext(ctx, &props, query, userID)
	if err != nil {
		return nil, err
	}

	return props, nil
}

func (r *PostgresRepository) UpdateRealEstate(ctx context.Context, prop *models.RealEstateProperty) error {
	query := `
		UPDATE real_estate_properties
		SET name = $1, location = $2, property_type = $3, estimated_value = $4, monthly_rent = $5
		WHERE id = $6 AND user_id = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		prop.Name, prop.Location, prop.PropertyType, prop.EstimatedValue,
		prop.MonthlyRent, prop.ID, prop.UserID)

	return err
}

func (r *PostgresRepository) DeleteRealEstate(ctx context.Context, userID, propID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM real_estate_properties WHERE id = $1 AND user_id = $2`, propID, userID)
	return err
}

// Business interest repository methods
func (r *PostgresRepository) CreateBusiness(ctx context.Context, biz *models.BusinessInterest) error {
	query := `
		INSERT INTO business_interests (id, user_id, name, equity_percent,
			invested_value, current_value, annual_income, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if biz.ID == "" {
		biz.ID = uuid.New().String()
	}
	biz.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		biz.ID, biz.UserID, biz.Name, biz.EquityPercent,
		biz.InvestedValue, biz.CurrentValue, biz.AnnualIncome, biz.CreatedAt)

	return err
}

func (r *PostgresRepository) GetBusiness(ctx context.Context, userID, bizID string) (*models.BusinessInterest, error) {
	query := `SELECT * FROM business_interests WHERE id = $1 AND user_id = $2`

	var biz models.BusinessInterest
	err := r.db.GetContext(ctx, &biz, query, bizID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Business interest not found
		}
		return nil, err
	}

	return &biz, nil
}

func (r *PostgresRepository) ListBusiness(ctx context.Context, userID string) ([]models.BusinessInterest, error) {
	query := `SELECT * FROM business_interests WHERE user_id = $1 ORDER BY created_at DESC`

	var interests []models.BusinessInterest
	err := r.db.SelectContext(ctx, &interests, query, userID)
	if err != nil {
		return nil, err
	}

	return interests, nil
}

func (r *PostgresRepository) UpdateBusiness(ctx context.Context, biz *models.BusinessInterest) error {
	query := `
		UPDATE business_interests
		SET name = $1, equity_percent = $2, invested_value = $3, current_value = $4, annual_income = $5
		WHERE id = $6 AND user_id = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		biz.Name, biz.EquityPercent, biz.InvestedValue, biz.CurrentValue,
		biz.AnnualIncome, biz.ID, biz.UserID)

	return err
}

func (r *PostgresRepository) DeleteBusiness(ctx context.Context, userID, bizID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM business_interests WHERE id = $1 AND user_id = $2`, bizID, userID)
	return err
}

// Gold holding repository methods
func (r *PostgresRepository) CreateGold(ctx context.Context, holding *models.GoldHolding) error {
	query := `
		INSERT INTO gold_holdings (id, user_id, name, weight_vori,
			purchase_price_per_vori, current_price_per_vori, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if holding.ID == "" {
		holding.ID = uuid.New().String()
	}
	holding.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		holding.ID, holding.UserID, holding.Name, holding.WeightVori,
		holding.PurchasePricePerVori, holding.CurrentPricePerVori, holding.CreatedAt)

	return err
}

func (r *PostgresRepository) GetGold(ctx context.Context, userID, goldID string) (*models.GoldHolding, error) {
	query := `SELECT * FROM gold_holdings WHERE id = $1 AND user_id = $2`

	var holding models.GoldHolding
	err := r.db.GetContext(ctx, &holding, query, goldID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Gold holding not found
		}
		return nil, err
	}

	return &holding, nil
}

func (r *PostgresRepository) ListGold(ctx context.Context, userID string) ([]models.GoldHolding, error) {
	query := `SELECT * FROM gold_holdings WHERE user_id = $1 ORDER BY created_at DESC`

	var holdings []models.GoldHolding
	err := r.db.SelectContext(ctx, &holdings, query, userID)
	if err != nil {
		return nil, err
	}

	return holdings, nil
}

func (r *PostgresRepository) UpdateGold(ctx context.Context, holding *models.GoldHolding) error {
	query := `
		UPDATE gold_holdings
		SET name = $1, weight_vori = $2, purchase_price_per_vori = $3, current_price_per_vori = $4
		WHERE id = $5 AND user_id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		holding.Name, holding.WeightVori, holding.PurchasePricePerVori,
		holding.CurrentPricePerVori, holding.ID, holding.UserID)

	return err
}

func (r *PostgresRepository) DeleteGold(ctx context.Context, userID, goldID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM gold_holdings WHERE id = $1 AND user_id = $2`, goldID, userID)
	return err
}
