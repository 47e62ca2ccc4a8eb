package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	apperrors "roundup/internal/errors"
	"roundup/internal/models"
	"roundup/internal/rounding"
	"roundup/internal/store"
)

// transactionService records purchases and folds them into round-up savings.
type transactionService struct {
	store store.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(st store.Store) TransactionServicer {
	return &transactionService{store: st}
}

// CreateTransaction appends a transaction to the caller's log.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, amount float64, date time.Time, roundingType models.RoundingType) (*models.Transaction, error) {
	if !validAmount(amount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a finite number greater than zero")
	}
	if !roundingType.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "roundingType must be one of nearest-decimal, nearest-tens, nearest-hundreds")
	}
	if date.IsZero() {
		date = time.Now()
	}

	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:       userID,
		Amount:       amount,
		Date:         date.UTC(),
		RoundingType: roundingType,
	}
	if err := s.store.Transactions().Create(ctx, tx); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return tx, nil
}

// GetUserTransactions lists the caller's transactions, oldest first.
func (s *transactionService) GetUserTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	txs, err := s.store.Transactions().ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txs, nil
}

// TotalSavings sums the spare change of every transaction the user owns.
func (s *transactionService) TotalSavings(ctx context.Context, userID string) (decimal.Decimal, error) {
	txs, err := s.GetUserTransactions(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return rounding.TotalSpareChange(txs), nil
}
