package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "roundup/internal/errors"
	"roundup/internal/models"
	"roundup/internal/store"
)

// goalService manages monthly targets and their category breakdowns.
type goalService struct {
	store   store.Store
	creates singleflight.Group
	now     func() time.Time
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(st store.Store) GoalServicer {
	return &goalService{store: st, now: time.Now}
}

// GetGoal returns the caller's goal, creating a zeroed one on first access.
func (s *goalService) GetGoal(ctx context.Context, userID string) (*models.Goal, error) {
	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	goal, err := s.find(ctx, userID)
	if err == nil {
		return goal, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.create(ctx, models.NewGoal(userID)); err != nil {
		return nil, err
	}

	goal, err = s.find(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// SetGoals overwrites both targets, creating the goal when absent.
// Breakdowns and running totals are left alone.
func (s *goalService) SetGoals(ctx context.Context, userID string, expenditureGoal, savingsGoal float64) (*models.Goal, error) {
	if expenditureGoal < 0 || savingsGoal < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goals cannot be negative")
	}

	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	goal, err := s.find(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		seeded := models.NewGoal(userID)
		seeded.ExpenditureGoal = expenditureGoal
		seeded.SavingsGoal = savingsGoal
		if err := s.create(ctx, seeded); err != nil {
			return nil, err
		}
		goal, err = s.find(ctx, userID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if goal.ExpenditureGoal == expenditureGoal && goal.SavingsGoal == savingsGoal {
		return goal, nil
	}

	goal.ExpenditureGoal = expenditureGoal
	goal.SavingsGoal = savingsGoal
	if err := s.store.Goals().Update(ctx, goal); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// AddExpenditureEntry files an expenditure under category and refreshes
// CurrentExpenditure.
func (s *goalService) AddExpenditureEntry(ctx context.Context, userID string, category models.GoalCategory, amount float64, description string) (*models.Goal, error) {
	return s.addEntry(ctx, userID, category, amount, description, func(g *models.Goal) {
		g.ExpenditureData[category] = append(g.ExpenditureData[category], s.entry(amount, description))
		g.CurrentExpenditure = g.ExpenditureData.Total()
	})
}

// AddSavingsEntry files a savings entry under category and refreshes
// CurrentSavings.
func (s *goalService) AddSavingsEntry(ctx context.Context, userID string, category models.GoalCategory, amount float64, description string) (*models.Goal, error) {
	return s.addEntry(ctx, userID, category, amount, description, func(g *models.Goal) {
		g.SavingsData[category] = append(g.SavingsData[category], s.entry(amount, description))
		g.CurrentSavings = g.SavingsData.Total()
	})
}

func (s *goalService) addEntry(ctx context.Context, userID string, category models.GoalCategory, amount float64, description string, apply func(*models.Goal)) (*models.Goal, error) {
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if !category.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category: "+string(category))
	}
	if !validAmount(amount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a finite number greater than zero")
	}

	if err := ensureStore(ctx, s.store); err != nil {
		return nil, err
	}

	// Entries are only accepted once the goal exists.
	goal, err := s.find(ctx, userID)
	if err != nil {
		return nil, storeError(err, apperrors.ErrGoalNotFound)
	}

	apply(goal)

	if err := s.store.Goals().Update(ctx, goal); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

func (s *goalService) entry(amount float64, description string) models.GoalEntry {
	return models.GoalEntry{Amount: amount, Description: description, Date: s.now().UTC()}
}

func (s *goalService) find(ctx context.Context, userID string) (*models.Goal, error) {
	goal, err := s.store.Goals().FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	goal.Normalize()
	return goal, nil
}

// create inserts goal unless another request already did.
func (s *goalService) create(ctx context.Context, goal *models.Goal) error {
	_, err, _ := s.creates.Do(goal.UserID, func() (interface{}, error) {
		err := s.store.Goals().Create(ctx, goal)
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, nil
		}
		return nil, err
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
