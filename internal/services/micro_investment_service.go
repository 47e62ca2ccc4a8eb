package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "roundup/internal/errors"
	"roundup/internal/logger"
	"roundup/internal/models"
	"roundup/internal/store"
)

// microInvestmentService allocates round-up savings into named buckets and
// never lets the allocated total exceed what the transaction log has saved.
type microInvestmentService struct {
	store   store.Store
	savings SavingsCalculator
	locks   *userLocks
}

// NewMicroInvestmentService creates a new MicroInvestmentServicer.
func NewMicroInvestmentService(st store.Store, savings SavingsCalculator) MicroInvestmentServicer {
	return &microInvestmentService{store: st, savings: savings, locks: newUserLocks()}
}

// GetUserMicroInvestments lists the caller's allocations, oldest first.
func (s *microInvestmentService) GetUserMicroInvestments(ctx context.Context, userID string) ([]models.MicroInvestment, error) {
	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	invs, err := s.store.MicroInvestments().ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return invs, nil
}

// UnallocatedSavings returns total savings minus every existing allocation.
func (s *microInvestmentService) UnallocatedSavings(ctx context.Context, userID string) (decimal.Decimal, error) {
	total, err := s.savings.TotalSavings(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	invs, err := s.store.MicroInvestments().ListByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	allocated := decimal.Zero
	for i := range invs {
		allocated = allocated.Add(decimal.NewFromFloat(invs[i].Amount))
	}
	return total.Sub(allocated), nil
}

// CreateMicroInvestment records an allocation if the caller has enough
// unallocated savings to cover it.
func (s *microInvestmentService) CreateMicroInvestment(ctx context.Context, userID, category string, amount decimal.Decimal, description string) (*models.MicroInvestment, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if !amount.IsPositive() || !validAmount(amount.InexactFloat64()) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a finite number greater than zero")
	}

	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	unallocated, err := s.UnallocatedSavings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(unallocated) {
		return nil, apperrors.WithMessage(apperrors.ErrOverallocation,
			"Cannot allocate more than unallocated savings ("+unallocated.StringFixed(2)+" available)")
	}

	inv := &models.MicroInvestment{
		UserID:      userID,
		Category:    category,
		Amount:      amount.InexactFloat64(),
		Description: description,
	}
	if err := s.store.MicroInvestments().Create(ctx, inv); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.ForUser(userID).Infow("savings allocated", "allocation_id", inv.ID, "amount", amount.String())
	return inv, nil
}

// DeleteMicroInvestment removes one of the caller's allocations.
func (s *microInvestmentService) DeleteMicroInvestment(ctx context.Context, userID, id string) error {
	if err := ensureStore(ctx, s.store); err != nil {
		return err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	inv, err := s.store.MicroInvestments().FindByID(ctx, id)
	if err != nil {
		return storeError(err, apperrors.ErrAllocationNotFound)
	}
	if inv.UserID != userID {
		return apperrors.WithMessage(apperrors.ErrForbidden, "Not authorized to delete this allocation")
	}

	if err := s.store.MicroInvestments().Delete(ctx, id); err != nil {
		return storeError(err, apperrors.ErrAllocationNotFound)
	}

	logger.ForUser(userID).Infow("allocation deleted", "allocation_id", id)
	return nil
}
