package testutil

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "roundup/internal/errors"
)

// AssertAppError checks that err carries the expected AppError code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertMoney compares a money amount to want at cent precision.
func AssertMoney(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()

	expected, err := decimal.NewFromString(want)
	if err != nil {
		t.Fatalf("bad expected amount %q: %v", want, err)
	}
	if !got.Round(2).Equal(expected.Round(2)) {
		t.Errorf("expected %s, got %s", expected.StringFixed(2), got.StringFixed(2))
	}
}
