package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"roundup/internal/models"
)

// ProfileUpdate carries the profile fields a caller wants to change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name      *string
	Email     *string
	FirstName *string
	LastName  *string
	Phone     *string
	DOB       *time.Time
	Address   *string
	City      *string
	Zip       *string
}

// UserServicer defines the contract for registration, login and profiles.
type UserServicer interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*models.User, error)
}

// ExpenseInput is one client-supplied expense line. Value is kept as text
// and coerced leniently; see ParseLenientFloat.
type ExpenseInput struct {
	ID       string
	Name     string
	Value    string
	Category string
	Date     string
}

// AccountServicer defines the contract for the per-user account ledger.
type AccountServicer interface {
	GetAccount(ctx context.Context, userID string) (*models.Account, error)
	UpdateAccount(ctx context.Context, userID string, income *float64, expenses *[]ExpenseInput) (*models.Account, error)
}

// SavingsCalculator computes a user's accumulated round-up savings.
type SavingsCalculator interface {
	TotalSavings(ctx context.Context, userID string) (decimal.Decimal, error)
}

// TransactionServicer defines the contract for the transaction log.
type TransactionServicer interface {
	SavingsCalculator
	CreateTransaction(ctx context.Context, userID string, amount float64, date time.Time, roundingType models.RoundingType) (*models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
}

// GoalServicer defines the contract for the goal ledger.
type GoalServicer interface {
	GetGoal(ctx context.Context, userID string) (*models.Goal, error)
	SetGoals(ctx context.Context, userID string, expenditureGoal, savingsGoal float64) (*models.Goal, error)
	AddExpenditureEntry(ctx context.Context, userID string, category models.GoalCategory, amount float64, description string) (*models.Goal, error)
	AddSavingsEntry(ctx context.Context, userID string, category models.GoalCategory, amount float64, description string) (*models.Goal, error)
}

// MicroInvestmentServicer defines the contract for the allocation ledger.
type MicroInvestmentServicer interface {
	GetUserMicroInvestments(ctx context.Context, userID string) ([]models.MicroInvestment, error)
	CreateMicroInvestment(ctx context.Context, userID, category string, amount decimal.Decimal, description string) (*models.MicroInvestment, error)
	DeleteMicroInvestment(ctx context.Context, userID, id string) error
	// UnallocatedSavings returns total savings minus the sum of allocations.
	UnallocatedSavings(ctx context.Context, userID string) (decimal.Decimal, error)
}
