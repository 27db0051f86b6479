package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

func stockResponse(stock *models.StockHolding) *models.StockResponse {
	marketValue, gainLoss, gainLossPct := StockDerived(stock.Shares, stock.AvgCost, stock.CurrentPrice)
	return &models.StockResponse{
		StockHolding: *stock,
		MarketValue:  marketValue,
		GainLoss:     gainLoss,
		GainLossPct:  gainLossPct,
	}
}

// stockLeafName is the display name of the mirrored account for a stock
func stockLeafName(stock *models.StockHolding) string {
	return fmt.Sprintf("%s - %s", stock.Ticker, stock.Name)
}

// ListStocks returns stock holdings with derived market values
func (s *DefaultService) ListStocks(ctx context.Context, userID string) ([]models.StockResponse, error) {
	stocks, err := s.repo.ListStocks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing stocks: %w", err)
	}

	out := make([]models.StockResponse, 0, len(stocks))
	for i := range stocks {
		out = append(out, *stockResponse(&stocks[i]))
	}
	return out, nil
}

// CreateStock records a stock holding and mirrors its market value into the
// Investments segment
func (s *DefaultService) CreateStock(ctx context.Context, userID string, req models.CreateStockRequest) (*models.StockResponse, error) {
	stock := &models.StockHolding{
		UserID:       userID,
		Ticker:       req.Ticker,
		Name:         req.Name,
		Shares:       req.Shares,
		AvgCost:      req.AvgCost,
		CurrentPrice: req.CurrentPrice,
		Sector:       req.Sector,
	}

	if err := s.repo.CreateStock(ctx, stock); err != nil {
		return nil, fmt.Errorf("error creating stock: %w", err)
	}

	marketValue := stock.Shares.Mul(stock.CurrentPrice)
	if err := s.syncInvestmentAccount(ctx, userID, models.SourceTypeStock, stock.ID,
		stockLeafName(stock), marketValue, "investment"); err != nil {
		return nil, err
	}

	return stockResponse(stock), nil
}

// UpdateStock merges the provided fields and refreshes the mirrored account
func (s *DefaultService) UpdateStock(ctx context.Context, userID, stockID string, req models.UpdateStockRequest) (*models.StockResponse, error) {
	stock, err := s.repo.GetStock(ctx, userID, stockID)
	if err != nil {
		return nil, fmt.Errorf("error getting stock: %w", err)
	}
	if stock == nil {
		return nil, ErrNotFound
	}

	if req.Ticker != nil {
		stock.Ticker = *req.Ticker
	}
	if req.Name != nil {
		stock.Name = *req.Name
	}
	if req.Shares != nil {
		stock.Shares = *req.Shares
	}
	if req.AvgCost != nil {
		stock.AvgCost = *req.AvgCost
	}
	if req.CurrentPrice != nil {
		stock.CurrentPrice = *req.CurrentPrice
	}
	if req.Sector != nil {
		stock.Sector = req.Sector
	}

	if err := s.repo.UpdateStock(ctx, stock); err != nil {
		return nil, fmt.Errorf("error updating stock: %w", err)
	}

	marketValue := stock.Shares.Mul(stock.CurrentPrice)
	if err := s.syncInvestmentAccount(ctx, userID, models.SourceTypeStock, stock.ID,
		stockLeafName(stock), marketValue, "investment"); err != nil {
		return nil, err
	}

	return stockResponse(stock), nil
}

// DeleteStock removes a stock holding and its mirrored account
func (s *DefaultService) DeleteStock(ctx context.Context, userID, stockID string) error {
	stock, err := s.repo.GetStock(ctx, userID, stockID)
	if err != nil {
		return fmt.Errorf("error getting stock: %w", err)
	}
	if stock == nil {
		return ErrNotFound
	}

	if err := s.removeInvestmentAccount(ctx, userID, models.SourceTypeStock, stock.ID); err != nil {
		return err
	}

	if err := s.repo.DeleteStock(ctx, userID, stockID); err != nil {
		return fmt.Errorf("error deleting stock: %w", err)
	}

	return nil
}

func realEstateResponse(prop *models.RealEstateProperty) *models.RealEstateResponse {
	return &models.RealEstateResponse{
		RealEstateProperty: *prop,
		AnnualRent:         AnnualRent(prop.MonthlyRent),
	}
}

// ListRealEstate returns properties with derived annual rent
func (s *DefaultService) ListRealEstate(ctx context.Context, userID string) ([]models.RealEstateResponse, error) {
	props, err := s.repo.ListRealEstate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing properties: %w", err)
	}

	out := make([]models.RealEstateResponse, 0, len(props))
	for i := range props {
		out = append(out, *realEstateResponse(&props[i]))
	}
	return out, nil
}

// CreateRealEstate records a property and mirrors its estimated value into
// the Property segment
func (s *DefaultService) CreateRealEstate(ctx context.Context, userID string, req models.CreateRealEstateRequest) (*models.RealEstateResponse, error) {
	prop := &models.RealEstateProperty{
		UserID:         userID,
		Name:           req.Name,
		Location:       req.Location,
		PropertyType:   req.PropertyType,
		EstimatedValue: req.EstimatedValue,
		MonthlyRent:    req.MonthlyRent,
	}

	if err := s.repo.CreateRealEstate(ctx, prop); err != nil {
		return nil, fmt.Errorf("error creating property: %w", err)
	}

	if err := s.syncInvestmentAccount(ctx, userID, models.SourceTypeRealEstate, prop.ID,
		prop.Name, prop.EstimatedValue, "property"); err != nil {
		return nil, err
	}

	return realEstateResponse(prop), nil
}

// UpdateRealEstate merges the provided fields and refreshes the mirrored account
func (s *DefaultService) UpdateRealEstate(ctx context.Context, userID, propID string, req models.UpdateRealEstateRequest) (*models.RealEstateResponse, error) {
	prop, err := s.repo.GetRealEstate(ctx, userID, propID)
	if err != nil {
		return nil, fmt.Errorf("error getting property: %w", err)
	}
	if prop == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		prop.Name = *req.Name
	}
	if req.Location != nil {
		prop.Location = *req.Location
	}
	if req.PropertyType != nil {
		prop.PropertyType = *req.PropertyType
	}
	if req.EstimatedValue != nil {
		prop.EstimatedValue = *req.EstimatedValue
	}
	if req.MonthlyRent != nil {
		prop.MonthlyRent = *req.MonthlyRent
	}

	if err := s.repo.UpdateRealEstate(ctx, prop); err != nil {
		return nil, fmt.Errorf("error updating property: %w", err)
	}

	if err := s.syncInvestmentAccount(ctx, userID, models.SourceTypeRealEstate, prop.ID,
		prop.Name, prop.EstimatedValue, "property"); err != nil {
		return nil, err
	}

	return realEstateResponse(prop), nil
}

// DeleteRealEstate removes a property and its mirrored account
func (s *DefaultService) DeleteRealEstate(ctx context.Context, userID, propID string) error {
	prop, err := s.repo.GetRealEstate(ctx, userID, propID)
	if err != nil {
		return fmt.Errorf("error getting property: %w", err)
	}
	if prop == nil {
		return ErrNotFound
	}

	if err := s.removeInvestmentAccount(ctx, userID, models.SourceTypeRealEstate, prop.ID); err != nil {
		return err
	}

	if err := s.repo.DeleteRealEstate(ctx, userID, propID); err != nil {
		return fmt.Errorf("error deleting property: %w", err)
	}

	return nil
}

func businessResponse(biz *models.BusinessInterest) *models.BusinessResponse {
	return &models.BusinessResponse{
		BusinessInterest: *biz,
		GainLoss:         biz.CurrentValue.Sub(biz.InvestedValue),
	}
}

// ListBusiness returns business interests with derived gain/loss
func (s *DefaultService) ListBusiness(ctx context.Context, userID string) ([]models.BusinessResponse, error) {
	interests, err := s.repo.ListBusiness(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing business interests: %w", err)
	}

	out := make([]models.BusinessResponse, 0, len(interests))
	for i := range interests {
		out = append(out, *businessResponse(&interests[i]))
	}
	return out, nil
}

// CreateBusiness records a business interest and mirrors its current value
// into the Business segment
func (s *DefaultService) CreateBusiness(ctx context.Context, userID string, req models.CreateBusinessRequest) (*models.BusinessResponse, error) {
	biz := &models.BusinessInterest{
		UserID:        userID,
		Name:          req.Name,
		EquityPercent: req.EquityPercent,
		InvestedValue: req.InvestedValue,
		CurrentValue:  req.CurrentValue,
		AnnualIncome:  req.AnnualIncome,
	}

	if err := s.repo.CreateBusiness(ctx, biz); err != nil {
		return nil, fmt.Errorf("error creating business interest: %w", err)
	}

	if err := s.syncInvestmentAccount(ctx, userID, models.SourceTypeBusiness, biz.ID,
		biz.Name, biz.CurrentValue, "business"); err != nil {
		return nil, err
	}

	return businessResponse(biz), nil
}

// UpdateBusiness merges the provided fields and refreshes the mirrored account
func (s *DefaultService) UpdateBusiness(ctx context.Context, userID, bizID string, req models.UpdateBusinessRequest) (*models.BusinessResponse, error) {
	biz, err := s.repo.GetBusiness(ctx, userID, bizID)
	if err != nil {
		return nil, fmt.Errorf("error getting business interest: %w", err)
	}
	if biz == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		biz.Name = *req.Name
	}
	if req.EquityPercent != nil {
		biz.EquityPercent = *req.EquityPercent
	}
	if req.InvestedValue != nil {
		biz.InvestedValue = *req.InvestedValue
	}
	if req.CurrentValue != nil {
		biz.CurrentValue = *req.CurrentValue
	}
	if req.AnnualIncome != nil {
		biz.AnnualIncome = *req.AnnualIncome
	}

	if err := s.repo.UpdateBusiness(ctx, biz); err != nil {
		return nil, fmt.Errorf("error updating business interest: %w", err)
	}

	if err := s.syncInvestmentAccount(ctx, userID, models.SourceTypeBusiness, biz.ID,
		biz.Name, biz.CurrentValue, "business"); err != nil {
		return nil, err
	}

	return businessResponse(biz), nil
}

// DeleteBusiness removes a business interest and its mirrored account
func (s *DefaultService) DeleteBusiness(ctx context.Context, userID, bizID string) error {
	biz, err := s.repo.GetBusiness(ctx, userID, bizID)
	if err != nil {
		return fmt.Errorf("error getting business interest: %w", err)
	}
	if biz == nil {
		return ErrNotFound
	}

	if err := s.removeInvestmentAccount(ctx, userID, models.SourceTypeBusiness, biz.ID); err != nil {
		return err
	}

	if err := s.repo.DeleteBusiness(ctx, userID, bizID); err != nil {
		return fmt.Errorf("error deleting business interest: %w", err)
	}

	return nil
}

// GetPortfolioSummary totals every investment class. Real estate is carried
// at estimated value only, so it contributes to value but not to gain/loss.
func (s *DefaultService) GetPortfolioSummary(ctx context.Context, userID string) (*models.PortfolioSummary, error) {
	stocks, err := s.repo.ListStocks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing stocks: %w", err)
	}
	totalStocks, stocksCost := decimal.Zero, decimal.Zero
	for _, st := range stocks {
		totalStocks = totalStocks.Add(st.Shares.Mul(st.CurrentPrice))
		stocksCost = stocksCost.Add(st.Shares.Mul(st.AvgCost))
	}

	props, err := s.repo.ListRealEstate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing properties: %w", err)
	}
	totalRealEstate := decimal.Zero
	for _, p := range props {
		totalRealEstate = totalRealEstate.Add(p.EstimatedValue)
	}

	interests, err := s.repo.ListBusiness(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing business interests: %w", err)
	}
	totalBusiness, businessCost := decimal.Zero, decimal.Zero
	for _, b := range interests {
		totalBusiness = totalBusiness.Add(b.CurrentValue)
		businessCost = businessCost.Add(b.InvestedValue)
	}

	holdings, err := s.repo.ListGold(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing gold holdings: %w", err)
	}
	totalGold, goldCost := decimal.Zero, decimal.Zero
	for _, g := range holdings {
		totalGold = totalGold.Add(g.WeightVori.Mul(g.CurrentPricePerVori))
		goldCost = goldCost.Add(g.WeightVori.Mul(g.PurchasePricePerVori))
	}

	total := totalStocks.Add(totalRealEstate).Add(totalBusiness).Add(totalGold)
	gainLoss := totalStocks.Sub(stocksCost).
		Add(totalBusiness.Sub(businessCost)).
		Add(totalGold.Sub(goldCost))

	return &models.PortfolioSummary{
		TotalStocksValue:     totalStocks,
		TotalRealEstateValue: totalRealEstate,
		TotalBusinessValue:   totalBusiness,
		TotalGoldValue:       totalGold,
		TotalPortfolioValue:  total,
		TotalGainLoss:        gainLoss,
	}, nil
}
