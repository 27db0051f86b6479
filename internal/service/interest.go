package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// InterestFundName is the display name of the synthetic liability account
// holding undistributed interest income
const InterestFundName = "Interest Fund (Liability)"

// getOrCreateInterestFund returns the user's interest fund liability leaf,
// creating it under the Liabilities segment on first use
func (s *DefaultService) getOrCreateInterestFund(ctx context.Context, userID string) (*models.Account, error) {
	fund, err := s.repo.GetAccountByName(ctx, userID, InterestFundName, models.AccountTypeLiability)
	if err != nil {
		return nil, fmt.Errorf("error looking up interest fund: %w", err)
	}
	if fund != nil {
		return fund, nil
	}

	segment, err := s.getOrCreateSegment(ctx, userID, "liability")
	if err != nil {
		return nil, err
	}

	fund = &models.Account{
		UserID:   userID,
		ParentID: &segment.ID,
		Name:     InterestFundName,
		Type:     models.AccountTypeLiability,
		Category: "liability",
		Balance:  decimal.Zero,
		Currency: "USD",
		IsActive: true,
	}

	if err := s.repo.CreateLeafAccount(ctx, fund); err != nil {
		return nil, fmt.Errorf("error creating interest fund: %w", err)
	}

	return fund, nil
}

// syncFundBalance sets the interest fund balance to the sum of entries still
// marked received, across all fiscal years, and re-aggregates the
// Liabilities segment
func (s *DefaultService) syncFundBalance(ctx context.Context, userID string) error {
	received := models.InterestStatusReceived
	undistributed, err := s.repo.SumInterestEntries(ctx, userID, nil, &received)
	if err != nil {
		return fmt.Errorf("error summing interest entries: %w", err)
	}

	fund, err := s.getOrCreateInterestFund(ctx, userID)
	if err != nil {
		return err
	}

	fund.Balance = undistributed
	if err := s.repo.UpdateAccount(ctx, fund); err != nil {
		return fmt.Errorf("error updating interest fund: %w", err)
	}

	return nil
}

// ListInterestEntries returns interest entries, optionally narrowed by
// fiscal year and status
func (s *DefaultService) ListInterestEntries(ctx context.Context, userID string, fiscalYear *int, status *string) ([]models.InterestEntry, error) {
	entries, err := s.repo.ListInterestEntries(ctx, userID, fiscalYear, status)
	if err != nil {
		return nil, fmt.Errorf("error listing interest entries: %w", err)
	}
	return entries, nil
}

// CreateInterestEntry records interest income. New entries always start in
// the received state.
func (s *DefaultService) CreateInterestEntry(ctx context.Context, userID string, req models.CreateInterestEntryRequest) (*models.InterestEntry, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := &models.InterestEntry{
		UserID:      userID,
		Amount:      req.Amount,
		Source:      req.Source,
		Date:        date,
		Description: req.Description,
		Status:      models.InterestStatusReceived,
		FiscalYear:  req.FiscalYear,
	}

	if err := s.repo.CreateInterestEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("error creating interest entry: %w", err)
	}

	if err := s.syncFundBalance(ctx, userID); err != nil {
		return nil, err
	}

	return entry, nil
}

// GetInterestEntry returns one interest entry owned by the user
func (s *DefaultService) GetInterestEntry(ctx context.Context, userID, entryID string) (*models.InterestEntry, error) {
	entry, err := s.repo.GetInterestEntry(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("error getting interest entry: %w", err)
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	return entry, nil
}

// UpdateInterestEntry merges the provided fields and resynchronizes the fund
func (s *DefaultService) UpdateInterestEntry(ctx context.Context, userID, entryID string, req models.UpdateInterestEntryRequest) (*models.InterestEntry, error) {
	entry, err := s.GetInterestEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	if req.Source != nil {
		entry.Source = *req.Source
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		entry.Date = date
	}
	if req.Description != nil {
		entry.Description = req.Description
	}
	if req.Status != nil {
		entry.Status = *req.Status
	}
	if req.FiscalYear != nil {
		entry.FiscalYear = *req.FiscalYear
	}

	if err := s.repo.UpdateInterestEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("error updating interest entry: %w", err)
	}

	if err := s.syncFundBalance(ctx, userID); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteInterestEntry removes an entry and resynchronizes the fund
func (s *DefaultService) DeleteInterestEntry(ctx context.Context, userID, entryID string) error {
	if _, err := s.GetInterestEntry(ctx, userID, entryID); err != nil {
		return err
	}

	if err := s.repo.DeleteInterestEntry(ctx, userID, entryID); err != nil {
		return fmt.Errorf("error deleting interest entry: %w", err)
	}

	return s.syncFundBalance(ctx, userID)
}

// GetInterestFundSummary returns global totals across all fiscal years
func (s *DefaultService) GetInterestFundSummary(ctx context.Context, userID string) (*models.InterestFundSummary, error) {
	totalReceived, err := s.repo.SumInterestEntries(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("error summing interest entries: %w", err)
	}

	distributed := models.InterestStatusDistributed
	totalDistributed, err := s.repo.SumInterestEntries(ctx, userID, nil, &distributed)
	if err != nil {
		return nil, fmt.Errorf("error summing interest entries: %w", err)
	}

	return &models.InterestFundSummary{
		TotalReceived:        totalReceived,
		TotalDistributed:     totalDistributed,
		UndistributedBalance: totalReceived.Sub(totalDistributed),
	}, nil
}

// GetFiscalYearSummary returns totals for one fiscal year split by status
func (s *DefaultService) GetFiscalYearSummary(ctx context.Context, userID string, year int) (*models.FiscalYearSummary, error) {
	totalReceived, err := s.repo.SumInterestEntries(ctx, userID, &year, nil)
	if err != nil {
		return nil, fmt.Errorf("error summing interest entries: %w", err)
	}

	distributed := models.InterestStatusDistributed
	totalDistributed, err := s.repo.SumInterestEntries(ctx, userID, &year, &distributed)
	if err != nil {
		return nil, fmt.Errorf("error summing interest entries: %w", err)
	}

	count, err := s.repo.CountInterestEntries(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("error counting interest entries: %w", err)
	}

	return &models.FiscalYearSummary{
		FiscalYear:       year,
		TotalReceived:    totalReceived,
		TotalDistributed: totalDistributed,
		Undistributed:    totalReceived.Sub(totalDistributed),
		EntryCount:       count,
	}, nil
}
