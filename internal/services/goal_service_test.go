package services

import (
	"context"
	"math"
	"testing"
	"time"

	"roundup/internal/models"
	"roundup/internal/testutil"
)

func TestGetGoal(t *testing.T) {
	ctx := context.Background()
	s := testutil.SetupTestStore(t)
	defer testutil.TeardownTestStore(t, s)
	svc := NewGoalService(s)
	user := testutil.CreateTestUser(t, s)

	goal, err := svc.GetGoal(ctx, user.ID)
	testutil.AssertNoError(t, err)

	if goal.ExpenditureGoal != 0 || goal.SavingsGoal != 0 || goal.CurrentExpenditure != 0 || goal.CurrentSavings != 0 {
		t.Errorf("expected zeroed goal, got %+v", goal)
	}
	for _, c := range models.GoalCategories {
		if goal.ExpenditureData[c] == nil || goal.SavingsData[c] == nil {
			t.Errorf("expected empty bucket for %s", c)
		}
	}

	again, err := svc.GetGoal(ctx, user.ID)
	testutil.AssertNoError(t, err)
	if again.ID != goal.ID {
		t.Errorf("expected the same goal, got %s and %s", goal.ID, again.ID)
	}
}

func TestSetGoals(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_when_absent", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewGoalService(s)
		user := testutil.CreateTestUser(t, s)

		goal, err := svc.SetGoals(ctx, user.ID, 1000, 300)
		testutil.AssertNoError(t, err)
		if goal.ExpenditureGoal != 1000 || goal.SavingsGoal != 300 {
			t.Errorf("expected targets 1000/300, got %v/%v", goal.ExpenditureGoal, goal.SavingsGoal)
		}
	})

	t.Run("keeps_breakdowns", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewGoalService(s)
		user := testutil.CreateTestUser(t, s)
		testutil.CreateTestGoal(t, s, user.ID, 100, 50)

		_, err := svc.AddSavingsEntry(ctx, user.ID, models.GoalCategoryHome, 20, "deposit")
		testutil.AssertNoError(t, err)

		goal, err := svc.SetGoals(ctx, user.ID, 200, 75)
		testutil.AssertNoError(t, err)
		if goal.CurrentSavings != 20 || len(goal.SavingsData[models.GoalCategoryHome]) != 1 {
			t.Errorf("expected breakdown preserved, got %+v", goal)
		}
		if goal.ExpenditureGoal != 200 || goal.SavingsGoal != 75 {
			t.Errorf("expected targets 200/75, got %v/%v", goal.ExpenditureGoal, goal.SavingsGoal)
		}
	})

	t.Run("negative_target", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewGoalService(s)

		_, err := svc.SetGoals(ctx, "u1", -1, 10)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAddEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("expenditure_totals_across_categories", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewGoalService(s)
		user := testutil.CreateTestUser(t, s)
		testutil.CreateTestGoal(t, s, user.ID, 500, 100)

		_, err := svc.AddExpenditureEntry(ctx, user.ID, models.GoalCategoryMedical, 40.1, "pharmacy")
		testutil.AssertNoError(t, err)
		goal, err := svc.AddExpenditureEntry(ctx, user.ID, models.GoalCategoryHome, 9.9, "")
		testutil.AssertNoError(t, err)

		if goal.CurrentExpenditure != 50 {
			t.Errorf("expected current expenditure 50, got %v", goal.CurrentExpenditure)
		}
		if goal.CurrentSavings != 0 {
			t.Errorf("expected savings untouched, got %v", goal.CurrentSavings)
		}
		entries := goal.ExpenditureData[models.GoalCategoryMedical]
		if len(entries) != 1 || entries[0].Description != "pharmacy" {
			t.Errorf("unexpected medical entries: %+v", entries)
		}
	})

	t.Run("entry_dated_now", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewGoalService(s).(*goalService)
		fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return fixed }
		user := testutil.CreateTestUser(t, s)
		testutil.CreateTestGoal(t, s, user.ID, 0, 0)

		goal, err := svc.AddSavingsEntry(ctx, user.ID, models.GoalCategoryEmergency, 5, "")
		testutil.AssertNoError(t, err)
		if got := goal.SavingsData[models.GoalCategoryEmergency][0].Date; !got.Equal(fixed) {
			t.Errorf("expected entry date %v, got %v", fixed, got)
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewGoalService(s)
		user := testutil.CreateTestUser(t, s)
		testutil.CreateTestGoal(t, s, user.ID, 0, 0)

		_, err := svc.AddExpenditureEntry(ctx, user.ID, "vacation", 10, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		goal, err := svc.GetGoal(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if goal.CurrentExpenditure != 0 {
			t.Errorf("expected no mutation, got %v", goal.CurrentExpenditure)
		}
	})

	t.Run("missing_category", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewGoalService(s)

		_, err := svc.AddSavingsEntry(ctx, "u1", "", 10, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewGoalService(s)

		_, err := svc.AddSavingsEntry(ctx, "u1", models.GoalCategoryHome, 0, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.AddSavingsEntry(ctx, "u1", models.GoalCategoryHome, -5, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_finite_amount", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewGoalService(s)
		user := testutil.CreateTestUser(t, s)
		testutil.CreateTestGoal(t, s, user.ID, 0, 0)

		_, err := svc.AddExpenditureEntry(ctx, user.ID, models.GoalCategoryHome, math.Inf(1), "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.AddSavingsEntry(ctx, user.ID, models.GoalCategoryHome, math.NaN(), "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		goal, err := svc.GetGoal(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if goal.CurrentExpenditure != 0 || goal.CurrentSavings != 0 {
			t.Errorf("expected no mutation, got %v/%v", goal.CurrentExpenditure, goal.CurrentSavings)
		}
	})

	t.Run("goal_missing", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewGoalService(s)
		user := testutil.CreateTestUser(t, s)

		_, err := svc.AddSavingsEntry(ctx, user.ID, models.GoalCategoryHome, 10, "")
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}
