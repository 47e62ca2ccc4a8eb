package services

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	apperrors "roundup/internal/errors"
	"roundup/internal/store"
)

// ensureStore fails fast with ErrStoreUnavailable when the store does not
// answer a ping.
func ensureStore(ctx context.Context, st store.Store) error {
	if err := st.Ping(ctx); err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// storeError maps a store error onto notFound, or an internal error.
func storeError(err error, notFound *apperrors.AppError) error {
	if errors.Is(err, store.ErrNotFound) && notFound != nil {
		return notFound
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// validAmount reports whether amount is a finite number greater than zero.
func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1)
}

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseLenientFloat reads the longest numeric prefix of s, so "12.5kg"
// yields 12.5. Empty or non-numeric input yields 0.
func ParseLenientFloat(s string) float64 {
	prefix := leadingFloat.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return v
}
