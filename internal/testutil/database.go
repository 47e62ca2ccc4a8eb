// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"testing"

	"roundup/internal/store/gormstore"
)

// SetupTestStore creates an isolated in-memory SQLite store with all models
// migrated.
func SetupTestStore(t *testing.T) *gormstore.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:testutil%d?mode=memory&cache=shared", nextID())
	s, err := gormstore.OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}

	sqlDB, err := s.DB().DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return s
}

// TeardownTestStore closes the underlying database connection.
func TeardownTestStore(t *testing.T, s *gormstore.Store) {
	t.Helper()

	if err := s.Close(); err != nil {
		t.Errorf("failed to close test store: %v", err)
	}
}
