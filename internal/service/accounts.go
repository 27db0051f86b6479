package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

// defaultSegment describes one of the fixed top-level segments every user gets
type defaultSegment struct {
	Name     string
	Type     string
	Category string
}

var defaultSegments = []defaultSegment{
	{Name: "Cash & Bank", Type: models.AccountTypeAsset, Category: "cash"},
	{Name: "Investments", Type: models.AccountTypeAsset, Category: "investment"},
	{Name: "Property", Type: models.AccountTypeAsset, Category: "property"},
	{Name: "Business", Type: models.AccountTypeAsset, Category: "business"},
	{Name: "Gold", Type: models.AccountTypeAsset, Category: "gold"},
	{Name: "Vehicles", Type: models.AccountTypeAsset, Category: "vehicle"},
	{Name: "Other Assets", Type: models.AccountTypeAsset, Category: "other"},
	{Name: "Liabilities", Type: models.AccountTypeLiability, Category: "liability"},
}

const fallbackSegmentCategory = "other"

// ensureSegments returns the user's top-level segments, provisioning the
// eight defaults with zero balance on first access
func (s *DefaultService) ensureSegments(ctx context.Context, userID string) ([]models.Account, error) {
	segments, err := s.repo.GetSegments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting segments: %w", err)
	}
	if len(segments) > 0 {
		return segments, nil
	}

	segments = make([]models.Account, 0, len(defaultSegments))
	for _, seg := range defaultSegments {
		segments = append(segments, models.Account{
			UserID:    userID,
			Name:      seg.Name,
			Type:      seg.Type,
			Category:  seg.Category,
			Balance:   decimal.Zero,
			Currency:  "USD",
			IsActive:  true,
			IsSegment: true,
		})
	}

	if err := s.repo.CreateSegments(ctx, segments); err != nil {
		return nil, fmt.Errorf("error creating segments: %w", err)
	}

	return segments, nil
}

// getOrCreateSegment finds a user's segment by category, provisioning the
// defaults when absent. An unrecognized category maps to "Other Assets".
func (s *DefaultService) getOrCreateSegment(ctx context.Context, userID, category string) (*models.Account, error) {
	segment, err := s.repo.GetSegmentByCategory(ctx, userID, category)
	if err != nil {
		return nil, fmt.Errorf("error getting segment: %w", err)
	}
	if segment != nil {
		return segment, nil
	}

	segments, err := s.ensureSegments(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range segments {
		if segments[i].Category == category {
			return &segments[i], nil
		}
	}

	// Unknown category: fall back to the catch-all segment
	for i := range segments {
		if segments[i].Category == fallbackSegmentCategory {
			return &segments[i], nil
		}
	}

	return &segments[0], nil
}

// GetPurse returns per-segment summaries with active children and their sum
func (s *DefaultService) GetPurse(ctx context.Context, userID string) ([]models.SegmentSummary, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	segments, err := s.ensureSegments(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.SegmentSummary, 0, len(segments))
	for _, seg := range segments {
		children, err := s.repo.GetActiveChildren(ctx, seg.ID)
		if err != nil {
			return nil, fmt.Errorf("error getting segment children: %w", err)
		}

		total := decimal.Zero
		for _, c := range children {
			total = total.Add(c.Balance)
		}

		summaries = append(summaries, models.SegmentSummary{
			ID:           seg.ID,
			Name:         seg.Name,
			Category:     seg.Category,
			TotalBalance: total,
			Currency:     user.Currency,
			SubAccounts:  children,
		})
	}

	return summaries, nil
}

// ListAccounts returns every account the user owns, segments included
func (s *DefaultService) ListAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	accounts, err := s.repo.GetUserAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	return accounts, nil
}

// CreateAccount creates a leaf account. When no parent is given, the account
// is placed under the segment matching its category.
func (s *DefaultService) CreateAccount(ctx context.Context, userID string, req models.CreateAccountRequest) (*models.Account, error) {
	parentID := req.ParentID
	if parentID == nil {
		segment, err := s.getOrCreateSegment(ctx, userID, req.Category)
		if err != nil {
			return nil, err
		}
		parentID = &segment.ID
	}

	currency := req.Currency
	if currency == "" {
		user, err := s.GetUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		currency = user.Currency
	}

	account := &models.Account{
		UserID:   userID,
		ParentID: parentID,
		Name:     req.Name,
		Type:     req.Type,
		Category: req.Category,
		Balance:  req.Balance,
		Currency: currency,
		IsActive: true,
	}

	if err := s.repo.CreateLeafAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return account, nil
}

// GetAccount returns one account owned by the user
func (s *DefaultService) GetAccount(ctx context.Context, userID, accountID string) (*models.Account, error) {
	account, err := s.repo.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("error getting account: %w", err)
	}
	if account == nil {
		return nil, ErrNotFound
	}
	return account, nil
}

// UpdateAccount merges the provided fields into the stored account and
// re-aggregates the parent segment
func (s *DefaultService) UpdateAccount(ctx context.Context, userID, accountID string, req models.UpdateAccountRequest) (*models.Account, error) {
	account, err := s.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Type != nil {
		account.Type = *req.Type
	}
	if req.Category != nil {
		account.Category = *req.Category
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	if req.Currency != nil {
		account.Currency = *req.Currency
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("error updating account: %w", err)
	}

	return account, nil
}

// DeleteAccount removes an account. The parent segment id is captured before
// the delete so its balance can be re-aggregated afterwards.
func (s *DefaultService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	account, err := s.GetAccount(ctx, userID, accountID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteAccount(ctx, account.ID, account.ParentID); err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}

	return nil
}

// syncInvestmentAccount upserts the leaf account mirroring an asset record,
// keyed by (user, source type, source id), and re-aggregates its segment
func (s *DefaultService) syncInvestmentAccount(ctx context.Context, userID, sourceType, sourceID, name string, value decimal.Decimal, category string) error {
	account, err := s.repo.GetAccountBySource(ctx, userID, sourceType, sourceID)
	if err != nil {
		return fmt.Errorf("error looking up mirrored account: %w", err)
	}

	segment, err := s.getOrCreateSegment(ctx, userID, category)
	if err != nil {
		return err
	}

	if account != nil {
		account.Name = name
		account.Balance = value
		if err := s.repo.UpdateAccount(ctx, account); err != nil {
			return fmt.Errorf("error updating mirrored account: %w", err)
		}
		return nil
	}

	account = &models.Account{
		UserID:     userID,
		ParentID:   &segment.ID,
		Name:       name,
		Type:       models.AccountTypeAsset,
		Category:   category,
		Balance:    value,
		Currency:   "USD",
		IsActive:   true,
		SourceType: &sourceType,
		SourceID:   &sourceID,
	}

	if err := s.repo.CreateLeafAccount(ctx, account); err != nil {
		return fmt.Errorf("error creating mirrored account: %w", err)
	}

	return nil
}

// removeInvestmentAccount deletes the mirrored leaf for an asset record, if
// present, and re-aggregates its former segment
func (s *DefaultService) removeInvestmentAccount(ctx context.Context, userID, sourceType, sourceID string) error {
	account, err := s.repo.GetAccountBySource(ctx, userID, sourceType, sourceID)
	if err != nil {
		return fmt.Errorf("error looking up mirrored account: %w", err)
	}
	if account == nil {
		return nil
	}

	if err := s.repo.DeleteAccount(ctx, account.ID, account.ParentID); err != nil {
		return fmt.Errorf("error deleting mirrored account: %w", err)
	}

	return nil
}
