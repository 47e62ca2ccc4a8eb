package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/singleflight"

	apperrors "roundup/internal/errors"
	"roundup/internal/models"
	"roundup/internal/store"
	"roundup/internal/uuid"
)

// accountService handles the single income/expense account each user owns.
type accountService struct {
	store   store.Store
	creates singleflight.Group
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(st store.Store) AccountServicer {
	return &accountService{store: st}
}

// GetAccount returns the caller's account, creating an empty one on first access.
func (s *accountService) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}
	return s.getOrCreate(ctx, userID)
}

// UpdateAccount replaces income and/or the expense list, then re-derives
// expense and balance.
func (s *accountService) UpdateAccount(ctx context.Context, userID string, income *float64, expenses *[]ExpenseInput) (*models.Account, error) {
	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	account, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if income != nil {
		account.Income = *income
	}
	if expenses != nil {
		account.Expenses = toExpenses(*expenses)
	}
	account.Recalculate()

	if err := s.store.Accounts().Update(ctx, account); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// getOrCreate loads the account, creating it when absent. Concurrent first
// accesses for one user share a single create; a duplicate key from another
// process is recovered by re-reading.
func (s *accountService) getOrCreate(ctx context.Context, userID string) (*models.Account, error) {
	account, err := s.store.Accounts().FindByUserID(ctx, userID)
	if err == nil {
		if account.Expenses == nil {
			account.Expenses = []models.Expense{}
		}
		return account, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	_, err, _ = s.creates.Do(userID, func() (interface{}, error) {
		err := s.store.Accounts().Create(ctx, models.NewAccount(userID))
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, nil
		}
		return nil, err
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	account, err = s.store.Accounts().FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if account.Expenses == nil {
		account.Expenses = []models.Expense{}
	}
	return account, nil
}

func toExpenses(in []ExpenseInput) []models.Expense {
	out := make([]models.Expense, 0, len(in))
	for _, e := range in {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = uuid.New()
		}
		out = append(out, models.Expense{
			ID:       id,
			Name:     e.Name,
			Value:    ParseLenientFloat(e.Value),
			Category: e.Category,
			Date:     e.Date,
		})
	}
	return out
}
