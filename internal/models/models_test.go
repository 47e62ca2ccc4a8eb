package models

import "testing"

func TestAccountRecalculate(t *testing.T) {
	a := NewAccount("u1")
	a.Income = 1000
	a.Expenses = []Expense{
		{ID: "1", Name: "rent", Value: 400.1},
		{ID: "2", Name: "food", Value: 0.2},
	}
	a.Recalculate()

	if a.Expense != 400.3 {
		t.Errorf("expected expense 400.3, got %v", a.Expense)
	}
	if a.Balance != a.Income-a.Expense {
		t.Errorf("expected balance %v, got %v", a.Income-a.Expense, a.Balance)
	}
}

func TestGoalCategoryIsValid(t *testing.T) {
	for _, c := range GoalCategories {
		if !c.IsValid() {
			t.Errorf("expected %s to be valid", c)
		}
	}
	if GoalCategory("vacation").IsValid() {
		t.Error("expected vacation to be rejected")
	}
}

func TestCategoryEntries(t *testing.T) {
	t.Run("new has every bucket", func(t *testing.T) {
		e := NewCategoryEntries()
		if len(e) != 5 {
			t.Fatalf("expected 5 buckets, got %d", len(e))
		}
		for _, c := range GoalCategories {
			if e[c] == nil {
				t.Errorf("expected non-nil list for %s", c)
			}
		}
	})

	t.Run("normalize fills gaps", func(t *testing.T) {
		e := CategoryEntries{GoalCategoryHome: {{Amount: 5}}}.Normalize()
		if len(e) != 5 || len(e[GoalCategoryHome]) != 1 {
			t.Errorf("unexpected normalized map: %v", e)
		}
		var nilMap CategoryEntries
		if len(nilMap.Normalize()) != 5 {
			t.Error("expected nil map to normalize to all buckets")
		}
	})

	t.Run("total sums all buckets", func(t *testing.T) {
		e := NewCategoryEntries()
		e[GoalCategoryMedical] = append(e[GoalCategoryMedical], GoalEntry{Amount: 10.1})
		e[GoalCategoryOthers] = append(e[GoalCategoryOthers], GoalEntry{Amount: 0.2}, GoalEntry{Amount: 3})
		if got := e.Total(); got != 13.3 {
			t.Errorf("expected 13.3, got %v", got)
		}
	})
}

func TestRoundingTypeIsValid(t *testing.T) {
	for _, r := range []RoundingType{RoundingNearestDecimal, RoundingNearestTens, RoundingNearestHundreds} {
		if !r.IsValid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if RoundingType("nearest-thousands").IsValid() {
		t.Error("expected unknown policy to be invalid")
	}
}
