// Package store defines the persistence contract used by the ledgers.
//
// A Store is a consistent per-document CRUD service over five collections
// (users, accounts, transactions, goals, micro_investments). Backends
// translate driver errors into ErrNotFound and ErrDuplicateKey so services
// never depend on a particular driver.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roundup/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("store: duplicate key")
)

// Driver names a store backend
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	DriverMongo    Driver = "mongo"
)

// IsValid returns true if the driver is supported
func (d Driver) IsValid() bool {
	switch d {
	case DriverPostgres, DriverSQLite, DriverMongo:
		return true
	}
	return false
}

// ParseDriver converts a configuration value into a Driver.
func ParseDriver(s string) (Driver, error) {
	d := Driver(s)
	if !d.IsValid() {
		return "", fmt.Errorf("unsupported store driver: %q", s)
	}
	return d, nil
}

// Store is the process-wide handle to the document store.
type Store interface {
	// Ping reports whether the store can currently serve requests.
	Ping(ctx context.Context) error
	Close() error

	Users() UserRepository
	Accounts() AccountRepository
	Transactions() TransactionRepository
	Goals() GoalRepository
	MicroInvestments() MicroInvestmentRepository
}

// UserRepository persists users. Email is unique.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// AccountRepository persists accounts. UserID is unique.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByUserID(ctx context.Context, userID string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
}

// TransactionRepository persists the append-only transaction log.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	// ListByUserID returns the user's transactions ordered by date ascending.
	ListByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
}

// GoalRepository persists goals. UserID is unique.
type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) error
	FindByUserID(ctx context.Context, userID string) (*models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) error
}

// MicroInvestmentRepository persists allocations.
type MicroInvestmentRepository interface {
	Create(ctx context.Context, inv *models.MicroInvestment) error
	FindByID(ctx context.Context, id string) (*models.MicroInvestment, error)
	ListByUserID(ctx context.Context, userID string) ([]models.MicroInvestment, error)
	Delete(ctx context.Context, id string) error
}

// WithPingTimeout bounds every Ping on s by timeout.
func WithPingTimeout(s Store, timeout time.Duration) Store {
	if timeout <= 0 {
		return s
	}
	return &boundedStore{Store: s, timeout: timeout}
}

type boundedStore struct {
	Store
	timeout time.Duration
}

func (b *boundedStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.Store.Ping(ctx)
}
