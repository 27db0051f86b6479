package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/alamin-rocks/assetflow-server/internal/models"
)

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return date, nil
}

// ListTransactions returns the user's transactions, filtered and paginated
func (s *DefaultService) ListTransactions(ctx context.Context, userID string, filter models.TransactionFilter) ([]models.Transaction, error) {
	txns, err := s.repo.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	return txns, nil
}

// CreateTransaction records a dated money movement against an account
func (s *DefaultService) CreateTransaction(ctx context.Context, userID string, req models.CreateTransactionRequest) (*models.Transaction, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	// The target account must belong to the requesting user
	account, err := s.repo.GetAccount(ctx, userID, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("error getting account: %w", err)
	}
	if account == nil {
		return nil, ErrNotFound
	}

	txn := &models.Transaction{
		UserID:      userID,
		AccountID:   req.AccountID,
		ToAccountID: req.ToAccountID,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
		Tags:        pq.StringArray(req.Tags),
	}

	if err := s.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("error creating transaction: %w", err)
	}

	return txn, nil
}

// GetTransaction returns one transaction owned by the user
func (s *DefaultService) GetTransaction(ctx context.Context, userID, txnID string) (*models.Transaction, error) {
	txn, err := s.repo.GetTransaction(ctx, userID, txnID)
	if err != nil {
		return nil, fmt.Errorf("error getting transaction: %w", err)
	}
	if txn == nil {
		return nil, ErrNotFound
	}
	return txn, nil
}

// UpdateTransaction merges the provided fields into the stored transaction
func (s *DefaultService) UpdateTransaction(ctx context.Context, userID, txnID string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	txn, err := s.GetTransaction(ctx, userID, txnID)
	if err != nil {
		return nil, err
	}

	if req.AccountID != nil {
		txn.AccountID = *req.AccountID
	}
	if req.ToAccountID != nil {
		txn.ToAccountID = req.ToAccountID
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Type != nil {
		txn.Type = *req.Type
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	}
	if req.Description != nil {
		txn.Description = req.Description
	}
	if req.Tags != nil {
		txn.Tags = pq.StringArray(*req.Tags)
	}

	if err := s.repo.UpdateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("error updating transaction: %w", err)
	}

	return txn, nil
}

// DeleteTransaction removes a transaction owned by the user
func (s *DefaultService) DeleteTransaction(ctx context.Context, userID, txnID string) error {
	if _, err := s.GetTransaction(ctx, userID, txnID); err != nil {
		return err
	}

	if err := s.repo.DeleteTransaction(ctx, userID, txnID); err != nil {
		return fmt.Errorf("error deleting transaction: %w", err)
	}

	return nil
}
