package services

import (
	"context"
	"errors"
	"testing"

	"roundup/internal/logger"
	"roundup/internal/store"
)

func init() {
	logger.Init("test")
}

// downStore wraps a store whose ping always fails.
type downStore struct {
	store.Store
}

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func TestParseLenientFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{" 40 ", 40},
		{"12.5kg", 12.5},
		{"-3", -3},
		{".5", 0.5},
		{"1e2", 100},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Infinity", 0},
		{"1e400", 0},
	}
	for _, tt := range tests {
		if got := ParseLenientFloat(tt.in); got != tt.want {
			t.Errorf("ParseLenientFloat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
