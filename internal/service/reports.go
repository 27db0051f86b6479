package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// netWorth returns (net worth, total assets, total liabilities) over the
// user's active leaf accounts
func (s *DefaultService) netWorth(ctx context.Context, userID string) (netWorth, assets, liabilities decimal.Decimal, err error) {
	accounts, err := s.repo.GetLeafAccounts(ctx, userID)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("error getting leaf accounts: %w", err)
	}

	for _, a := range accounts {
		switch a.Type {
		case models.AccountTypeAsset:
			assets = assets.Add(a.Balance)
		case models.AccountTypeLiability:
			liabilities = liabilities.Add(a.Balance)
		}
	}

	return assets.Sub(liabilities), assets, liabilities, nil
}

// monthlyIncomeExpense totals income and expense transactions over a
// trailing window of months×30 days
func (s *DefaultService) monthlyIncomeExpense(ctx context.Context, userID string, months int) (income, expense decimal.Decimal, err error) {
	since := time.Now().UTC().AddDate(0, 0, -months*30)
	txns, err := s.repo.ListTransactionsSince(ctx, userID, since)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error listing transactions: %w", err)
	}

	for _, t := range txns {
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return income, expense, nil
}

func (s *DefaultService) allocationByCategory(ctx context.Context, userID, accountType string) ([]models.AllocationItem, error) {
	accounts, err := s.repo.GetLeafAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting leaf accounts: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, a := range accounts {
		if a.Type != accountType {
			continue
		}
		if _, seen := totals[a.Category]; !seen {
			order = append(order, a.Category)
		}
		totals[a.Category] = totals[a.Category].Add(a.Balance)
	}

	items := make([]models.AllocationItem, 0, len(order))
	for _, category := range order {
		items = append(items, models.AllocationItem{Category: category, Value: totals[category]})
	}
	return items, nil
}

// GetNetWorthReport returns the current net worth with a single history point
func (s *DefaultService) GetNetWorthReport(ctx context.Context, userID string) (*models.NetWorthReport, error) {
	netWorth, assets, liabilities, err := s.netWorth(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.NetWorthReport{
		CurrentNetWorth: netWorth,
		History: []models.NetWorthPoint{{
			Date:        time.Now().UTC().Format("2006-01-02"),
			Assets:      assets,
			Liabilities: liabilities,
			NetWorth:    netWorth,
		}},
	}, nil
}

// GetBalanceSheet groups active leaf accounts by type and category
func (s *DefaultService) GetBalanceSheet(ctx context.Context, userID string) (*models.BalanceSheetReport, error) {
	accounts, err := s.repo.GetLeafAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting leaf accounts: %w", err)
	}

	group := func(accountType string) ([]models.BalanceSheetItem, decimal.Decimal) {
		buckets := make(map[string][]models.BalanceSheetAccount)
		order := make([]string, 0)
		total := decimal.Zero

		for _, a := range accounts {
			if a.Type != accountType {
				continue
			}
			if _, seen := buckets[a.Category]; !seen {
				order = append(order, a.Category)
			}
			buckets[a.Category] = append(buckets[a.Category],
				models.BalanceSheetAccount{Name: a.Name, Balance: a.Balance})
			total = total.Add(a.Balance)
		}

		items := make([]models.BalanceSheetItem, 0, len(order))
		for _, category := range order {
			categoryTotal := decimal.Zero
			for _, acct := range buckets[category] {
				categoryTotal = categoryTotal.Add(acct.Balance)
			}
			items = append(items, models.BalanceSheetItem{
				Category: category,
				Total:    categoryTotal,
				Accounts: buckets[category],
			})
		}
		return items, total
	}

	assetItems, totalAssets := group(models.AccountTypeAsset)
	liabilityItems, totalLiabilities := group(models.AccountTypeLiability)

	return &models.BalanceSheetReport{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
		Assets:           assetItems,
		Liabilities:      liabilityItems,
	}, nil
}

// GetIncomeExpenseReport totals transactions over a trailing window of
// months×30 days, with a per-category split
func (s *DefaultService) GetIncomeExpenseReport(ctx context.Context, userID string, months int) (*models.IncomeExpenseReport, error) {
	if months < 1 {
		months = 1
	}

	since := time.Now().UTC().AddDate(0, 0, -months*30)
	txns, err := s.repo.ListTransactionsSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}

	income, expense := decimal.Zero, decimal.Zero
	flows := make(map[string]*models.CategoryFlow)
	order := make([]string, 0)

	for _, t := range txns {
		flow, seen := flows[t.Category]
		if !seen {
			flow = &models.CategoryFlow{Category: t.Category}
			flows[t.Category] = flow
			order = append(order, t.Category)
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
			flow.Income = flow.Income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
			flow.Expense = flow.Expense.Add(t.Amount)
		}
	}

	byCategory := make([]models.CategoryFlow, 0, len(order))
	for _, category := range order {
		byCategory = append(byCategory, *flows[category])
	}

	return &models.IncomeExpenseReport{
		Period:       fmt.Sprintf("Last %d month(s)", months),
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
		ByCategory:   byCategory,
	}, nil
}

// GetCashFlowReport buckets transactions by calendar month over a trailing
// window of months×30 days
func (s *DefaultService) GetCashFlowReport(ctx context.Context, userID string, months int) (*models.CashFlowReport, error) {
	if months < 1 {
		months = 6
	}

	since := time.Now().UTC().AddDate(0, 0, -months*30)
	txns, err := s.repo.ListTransactionsSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}

	type flow struct {
		inflow  decimal.Decimal
		outflow decimal.Decimal
	}
	monthly := make(map[string]*flow)

	for _, t := range txns {
		key := t.Date.Format("2006-01")
		f, seen := monthly[key]
		if !seen {
			f = &flow{}
			monthly[key] = f
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			f.inflow = f.inflow.Add(t.Amount)
		case models.TransactionTypeExpense:
			f.outflow = f.outflow.Add(t.Amount)
		}
	}

	periods := make([]string, 0, len(monthly))
	for key := range monthly {
		periods = append(periods, key)
	}
	sort.Strings(periods)

	data := make([]models.CashFlowPoint, 0, len(periods))
	for _, period := range periods {
		f := monthly[period]
		data = append(data, models.CashFlowPoint{
			Period:  period,
			Inflow:  f.inflow,
			Outflow: f.outflow,
			Net:     f.inflow.Sub(f.outflow),
		})
	}

	return &models.CashFlowReport{Data: data}, nil
}

// GetDashboardSummary assembles the headline numbers for the dashboard
func (s *DefaultService) GetDashboardSummary(ctx context.Context, userID string) (*models.DashboardSummary, error) {
	netWorth, totalAssets, totalLiabilities, err := s.netWorth(ctx, userID)
	if err != nil {
		return nil, err
	}

	monthlyIncome, monthlyExpense, err := s.monthlyIncomeExpense(ctx, userID, 1)
	if err != nil {
		return nil, err
	}

	savingsRate := decimal.Zero
	if monthlyIncome.IsPositive() {
		savingsRate = monthlyIncome.Sub(monthlyExpense).Div(monthlyIncome).Mul(hundred).Round(2)
	}

	debtToAssetRatio := decimal.Zero
	if totalAssets.IsPositive() {
		debtToAssetRatio = totalLiabilities.Div(totalAssets).Mul(hundred).Round(2)
	}

	recent, err := s.repo.GetRecentTransactions(ctx, userID, 5)
	if err != nil {
		return nil, fmt.Errorf("error getting recent transactions: %w", err)
	}

	assetAllocation, err := s.allocationByCategory(ctx, userID, models.AccountTypeAsset)
	if err != nil {
		return nil, err
	}

	liabilityAllocation, err := s.allocationByCategory(ctx, userID, models.AccountTypeLiability)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		NetWorth:            netWorth,
		TotalAssets:         totalAssets,
		TotalLiabilities:    totalLiabilities,
		MonthlyIncome:       monthlyIncome,
		MonthlyExpense:      monthlyExpense,
		SavingsRate:         savingsRate,
		DebtToAssetRatio:    debtToAssetRatio,
		RecentTransactions:  recent,
		AssetAllocation:     assetAllocation,
		LiabilityAllocation: liabilityAllocation,
	}, nil
}
