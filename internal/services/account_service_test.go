package services

import (
	"context"
	"sync"
	"testing"

	"roundup/internal/testutil"
)

func TestGetAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("lazily_created", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewAccountService(s)
		user := testutil.CreateTestUser(t, s)

		account, err := svc.GetAccount(ctx, user.ID)
		testutil.AssertNoError(t, err)

		if account.UserID != user.ID {
			t.Errorf("expected owner %s, got %s", user.ID, account.UserID)
		}
		if account.Income != 0 || account.Expense != 0 || account.Balance != 0 {
			t.Errorf("expected zeroed account, got %+v", account)
		}
		if account.Expenses == nil || len(account.Expenses) != 0 {
			t.Errorf("expected empty expense list, got %v", account.Expenses)
		}

		again, err := svc.GetAccount(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if again.ID != account.ID {
			t.Errorf("expected same account on second read, got %s and %s", account.ID, again.ID)
		}
	})

	t.Run("concurrent_first_access", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewAccountService(s)
		user := testutil.CreateTestUser(t, s)

		var wg sync.WaitGroup
		ids := make([]string, 8)
		errs := make([]error, 8)
		for i := range ids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				account, err := svc.GetAccount(ctx, user.ID)
				errs[i] = err
				if err == nil {
					ids[i] = account.ID
				}
			}(i)
		}
		wg.Wait()

		for i := range ids {
			testutil.AssertNoError(t, errs[i])
			if ids[i] != ids[0] {
				t.Errorf("expected a single account, got %s and %s", ids[0], ids[i])
			}
		}
	})

	t.Run("store_unavailable", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewAccountService(downStore{s})

		_, err := svc.GetAccount(ctx, "u1")
		testutil.AssertAppError(t, err, "STORE_UNAVAILABLE")
	})
}

func TestUpdateAccount(t *testing.T) {
	ctx := context.Background()
	income := func(v float64) *float64 { return &v }

	t.Run("income_and_expenses", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewAccountService(s)
		user := testutil.CreateTestUser(t, s)

		expenses := []ExpenseInput{
			{Name: "rent", Value: "1200", Category: "home", Date: "2024-03-01"},
			{Name: "food", Value: "250.5", Category: "food"},
		}
		account, err := svc.UpdateAccount(ctx, user.ID, income(3000), &expenses)
		testutil.AssertNoError(t, err)

		if account.Income != 3000 {
			t.Errorf("expected income 3000, got %v", account.Income)
		}
		if account.Expense != 1450.5 {
			t.Errorf("expected expense 1450.5, got %v", account.Expense)
		}
		if account.Balance != 1549.5 {
			t.Errorf("expected balance 1549.5, got %v", account.Balance)
		}
		for _, e := range account.Expenses {
			if e.ID == "" {
				t.Error("expected generated expense id")
			}
		}
	})

	t.Run("income_only_keeps_expenses", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewAccountService(s)
		user := testutil.CreateTestUser(t, s)

		expenses := []ExpenseInput{{ID: "e1", Name: "rent", Value: "100"}}
		_, err := svc.UpdateAccount(ctx, user.ID, income(500), &expenses)
		testutil.AssertNoError(t, err)

		account, err := svc.UpdateAccount(ctx, user.ID, income(800), nil)
		testutil.AssertNoError(t, err)

		if len(account.Expenses) != 1 || account.Expenses[0].ID != "e1" {
			t.Errorf("expected expenses untouched, got %+v", account.Expenses)
		}
		if account.Balance != 700 {
			t.Errorf("expected balance 700, got %v", account.Balance)
		}
	})

	t.Run("non_numeric_values_coerced", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewAccountService(s)
		user := testutil.CreateTestUser(t, s)

		expenses := []ExpenseInput{
			{Name: "a", Value: "abc"},
			{Name: "b", Value: ""},
			{Name: "c", Value: "20"},
		}
		account, err := svc.UpdateAccount(ctx, user.ID, nil, &expenses)
		testutil.AssertNoError(t, err)

		if account.Expenses[0].Value != 0 || account.Expenses[1].Value != 0 {
			t.Errorf("expected non-numeric values to become 0, got %+v", account.Expenses)
		}
		if account.Expense != 20 || account.Balance != -20 {
			t.Errorf("expected expense 20 and balance -20, got %v and %v", account.Expense, account.Balance)
		}
	})

	t.Run("empty_list_clears_expenses", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewAccountService(s)
		user := testutil.CreateTestUser(t, s)

		expenses := []ExpenseInput{{Name: "rent", Value: "100"}}
		_, err := svc.UpdateAccount(ctx, user.ID, income(100), &expenses)
		testutil.AssertNoError(t, err)

		empty := []ExpenseInput{}
		account, err := svc.UpdateAccount(ctx, user.ID, nil, &empty)
		testutil.AssertNoError(t, err)
		if len(account.Expenses) != 0 || account.Expense != 0 || account.Balance != 100 {
			t.Errorf("expected cleared expenses, got %+v", account)
		}
	})

	t.Run("persisted", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		defer testutil.TeardownTestStore(t, s)
		svc := NewAccountService(s)
		user := testutil.CreateTestUser(t, s)

		_, err := svc.UpdateAccount(ctx, user.ID, income(42), nil)
		testutil.AssertNoError(t, err)

		account, err := svc.GetAccount(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if account.Income != 42 || account.Balance != 42 {
			t.Errorf("expected persisted income 42, got %+v", account)
		}
	})
}
