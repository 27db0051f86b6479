package service

import (
	"context"
	"fmt"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

func goldResponse(holding *models.GoldHolding) *models.GoldResponse {
	currentValue, gainLoss := GoldDerived(holding.WeightVori,
		holding.PurchasePricePerVori, holding.CurrentPricePerVori)
	return &models.GoldResponse{
		GoldHolding:  *holding,
		WeightGrams:  VoriToGrams(holding.WeightVori),
		CurrentValue: currentValue,
		GainLoss:     gainLoss,
	}
}

// ListGold returns gold holdings with derived values
func (s *DefaultService) ListGold(ctx context.Context, userID string) ([]models.GoldResponse, error) {
	holdings, err := s.repo.ListGold(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing gold holdings: %w", err)
	}

	out := make([]models.GoldResponse, 0, len(holdings))
	for i := range holdings {
		out = append(out, *goldResponse(&holdings[i]))
	}
	return out, nil
}

// CreateGold records a gold holding. Input weight may be in grams or vori
// and is normalized to vori before storage.
func (s *DefaultService) CreateGold(ctx context.Context, userID string, req models.CreateGoldRequest) (*models.GoldResponse, error) {
	holding := &models.GoldHolding{
		UserID:               userID,
		Name:                 req.Name,
		WeightVori:           WeightToVori(req.Weight, req.WeightUnit),
		PurchasePricePerVori: req.PurchasePricePerVori,
		CurrentPricePerVori:  req.CurrentPricePerVori,
	}

	if err := s.repo.CreateGold(ctx, holding); err != nil {
		return nil, fmt.Errorf("error creating gold holding: %w", err)
	}

	currentValue := holding.WeightVori.Mul(holding.CurrentPricePerVori)
	if err := s.syncInvestmentAccount(ctx, userID, models.SourceTypeGold, holding.ID,
		holding.Name, currentValue, "gold"); err != nil {
		return nil, err
	}

	return goldResponse(holding), nil
}

// UpdateGold merges the provided fields, normalizing any new weight to vori,
// and refreshes the mirrored account
func (s *DefaultService) UpdateGold(ctx context.Context, userID, goldID string, req models.UpdateGoldRequest) (*models.GoldResponse, error) {
	holding, err := s.repo.GetGold(ctx, userID, goldID)
	if err != nil {
		return nil, fmt.Errorf("error getting gold holding: %w", err)
	}
	if holding == nil {
		return nil, ErrNotFound
	}

	if req.Weight != nil {
		unit := "vori"
		if req.WeightUnit != nil {
			unit = *req.WeightUnit
		}
		holding.WeightVori = WeightToVori(*req.Weight, unit)
	}
	if req.Name != nil {
		holding.Name = *req.Name
	}
	if req.PurchasePricePerVori != nil {
		holding.PurchasePricePerVori = *req.PurchasePricePerVori
	}
	if req.CurrentPricePerVori != nil {
		holding.CurrentPricePerVori = *req.CurrentPricePerVori
	}

	if err := s.repo.UpdateGold(ctx, holding); err != nil {
		return nil, fmt.Errorf("error updating gold holding: %w", err)
	}

	currentValue := holding.WeightVori.Mul(holding.CurrentPricePerVori)
	if err := s.syncInvestmentAccount(ctx, userID, models.SourceTypeGold, holding.ID,
		holding.Name, currentValue, "gold"); err != nil {
		return nil, err
	}

	return goldResponse(holding), nil
}

// DeleteGold removes a gold holding and its mirrored account
func (s *DefaultService) DeleteGold(ctx context.Context, userID, goldID string) error {
	holding, err := s.repo.GetGold(ctx, userID, goldID)
	if err != nil {
		return fmt.Errorf("error getting gold holding: %w", err)
	}
	if holding == nil {
		return ErrNotFound
	}

	if err := s.removeInvestmentAccount(ctx, userID, models.SourceTypeGold, holding.ID); err != nil {
		return err
	}

	if err := s.repo.DeleteGold(ctx, userID, goldID); err != nil {
		return fmt.Errorf("error deleting gold holding: %w", err)
	}

	return nil
}
