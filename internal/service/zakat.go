package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// Default per-gram metal prices used when the request omits them
var (
	defaultGoldPricePerGram   = decimal.NewFromInt(75)
	defaultSilverPricePerGram = decimal.RequireFromString("0.90")
)

// CalculateZakat totals the user's zakatable wealth and compares it against
// the nisab threshold. Zakatable wealth is cash and bank leaf balances plus
// stock market value, annual rental income, and business current value.
func (s *DefaultService) CalculateZakat(ctx context.Context, userID string, req models.ZakatRequest) (*models.ZakatResponse, error) {
	accounts, err := s.repo.GetLeafAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting leaf accounts: %w", err)
	}

	cashAndBank := decimal.Zero
	for _, a := range accounts {
		if a.Type != models.AccountTypeAsset {
			continue
		}
		if a.Category == "cash" || a.Category == "bank" {
			cashAndBank = cashAndBank.Add(a.Balance)
		}
	}

	stocks, err := s.repo.ListStocks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing stocks: %w", err)
	}
	investments := decimal.Zero
	for _, st := range stocks {
		investments = investments.Add(st.Shares.Mul(st.CurrentPrice))
	}

	props, err := s.repo.ListRealEstate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing properties: %w", err)
	}
	rentIncome := decimal.Zero
	for _, p := range props {
		rentIncome = rentIncome.Add(AnnualRent(p.MonthlyRent))
	}

	interests, err := s.repo.ListBusiness(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing business interests: %w", err)
	}
	businessValue := decimal.Zero
	for _, b := range interests {
		businessValue = businessValue.Add(b.CurrentValue)
	}

	totalZakatable := cashAndBank.Add(investments).Add(rentIncome).Add(businessValue)

	goldPrice := req.GoldPricePerGram
	if goldPrice.IsZero() {
		goldPrice = defaultGoldPricePerGram
	}
	silverPrice := req.SilverPricePerGram
	if silverPrice.IsZero() {
		silverPrice = defaultSilverPricePerGram
	}
	useGold := true
	if req.UseGoldNisab != nil {
		useGold = *req.UseGoldNisab
	}

	nisab := NisabThreshold(useGold, goldPrice, silverPrice)
	isAbove := totalZakatable.GreaterThanOrEqual(nisab)

	zakatDue := decimal.Zero
	if isAbove {
		zakatDue = totalZakatable.Mul(ZakatRate).Round(2)
	}

	return &models.ZakatResponse{
		Breakdown: models.ZakatBreakdown{
			CashAndBank:          cashAndBank,
			Investments:          investments,
			RealEstateRentIncome: rentIncome,
			BusinessInterests:    businessValue,
			TotalZakatable:       totalZakatable,
			NisabThreshold:       nisab,
			IsAboveNisab:         isAbove,
			ZakatDue:             zakatDue,
		},
		Rate: ZakatRate,
	}, nil
}
