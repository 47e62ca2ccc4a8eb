package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"roundup/internal/models"
	"roundup/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, s store.Store) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, s, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, s store.Store, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
	}
	if err := s.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction records a transaction dated now.
func CreateTestTransaction(t *testing.T, s store.Store, userID string, amount float64, rounding models.RoundingType) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, s, userID, amount, rounding, time.Now().UTC())
}

// CreateTestTransactionAt records a transaction with an explicit date.
func CreateTestTransactionAt(t *testing.T, s store.Store, userID string, amount float64, rounding models.RoundingType, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:       userID,
		Amount:       amount,
		Date:         date,
		RoundingType: rounding,
	}
	if err := s.Transactions().Create(context.Background(), tx); err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestMicroInvestment stores an allocation without checking savings.
func CreateTestMicroInvestment(t *testing.T, s store.Store, userID string, amount float64) *models.MicroInvestment {
	t.Helper()

	inv := &models.MicroInvestment{
		UserID:      userID,
		Category:    fmt.Sprintf("bucket-%d", nextID()),
		Amount:      amount,
		Description: "test allocation",
	}
	if err := s.MicroInvestments().Create(context.Background(), inv); err != nil {
		t.Fatalf("failed to create test micro investment: %v", err)
	}
	return inv
}

// CreateTestGoal creates an empty goal with the given targets.
func CreateTestGoal(t *testing.T, s store.Store, userID string, expenditureGoal, savingsGoal float64) *models.Goal {
	t.Helper()

	goal := models.NewGoal(userID)
	goal.ExpenditureGoal = expenditureGoal
	goal.SavingsGoal = savingsGoal
	if err := s.Goals().Create(context.Background(), goal); err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
