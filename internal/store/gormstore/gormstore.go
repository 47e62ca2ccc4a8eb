// Package gormstore implements store.Store on top of GORM. PostgreSQL is
// the production backend; SQLite serves local development and tests.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"roundup/internal/models"
	"roundup/internal/store"
)

// AllModels is the list of models migrated by AutoMigrate.
var AllModels = []interface{}{
	&models.User{},
	&models.Account{},
	&models.Transaction{},
	&models.Goal{},
	&models.MicroInvestment{},
}

// Store is a GORM-backed store.Store.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New wraps an already opened GORM handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// OpenPostgres connects to PostgreSQL and configures the connection pool.
func OpenPostgres(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return New(db), nil
}

// OpenSQLite opens (or creates) a SQLite database and migrates the schema.
func OpenSQLite(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	s := New(db)
	if err := s.AutoMigrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// AutoMigrate creates or updates tables for every model.
func (s *Store) AutoMigrate() error {
	if err := s.db.AutoMigrate(AllModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// DB returns the underlying GORM database instance
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping checks that the connection pool can reach the database.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Users() store.UserRepository               { return &userRepo{db: s.db} }
func (s *Store) Accounts() store.AccountRepository         { return &accountRepo{db: s.db} }
func (s *Store) Transactions() store.TransactionRepository { return &transactionRepo{db: s.db} }
func (s *Store) Goals() store.GoalRepository               { return &goalRepo{db: s.db} }
func (s *Store) MicroInvestments() store.MicroInvestmentRepository {
	return &microInvestmentRepo{db: s.db}
}

// translate maps GORM and driver errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueConstraintError(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicateKey, err)
	}
	return err
}

// isUniqueConstraintError catches unique violations from drivers that do not
// implement GORM's error translator.
func isUniqueConstraintError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
