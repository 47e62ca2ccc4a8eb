package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "roundup/internal/errors"
	"roundup/internal/models"
	"roundup/internal/services"
)

// --- mock account service ---

type mockAccountService struct {
	getAccountFn    func(ctx context.Context, userID string) (*models.Account, error)
	updateAccountFn func(ctx context.Context, userID string, income *float64, expenses *[]services.ExpenseInput) (*models.Account, error)
}

func (m *mockAccountService) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	if m.getAccountFn != nil {
		return m.getAccountFn(ctx, userID)
	}
	return models.NewAccount(userID), nil
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, userID string, income *float64, expenses *[]services.ExpenseInput) (*models.Account, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(ctx, userID, income, expenses)
	}
	return models.NewAccount(userID), nil
}

// verify interface compliance
var _ services.AccountServicer = (*mockAccountService)(nil)

func setupAccountRouter(handler *AccountHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/account", handler.GetAccount)
	auth.PUT("/account", handler.UpdateAccount)
	return r
}

func TestAccountHandler_GetAccount(t *testing.T) {
	t.Run("returns 200 with account", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "GET", "/account", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["userId"] != testUserID {
			t.Errorf("expected caller's account, got %v", result["userId"])
		}
		if expenses, ok := result["expenses"].([]interface{}); !ok || len(expenses) != 0 {
			t.Errorf("expected empty expense array, got %v", result["expenses"])
		}
	})

	t.Run("returns 503 when store is down", func(t *testing.T) {
		svc := &mockAccountService{
			getAccountFn: func(context.Context, string) (*models.Account, error) {
				return nil, apperrors.ErrStoreUnavailable
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "GET", "/account", "")

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORE_UNAVAILABLE")
	})
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	t.Run("coerces loosely typed expense fields", func(t *testing.T) {
		var gotIncome *float64
		var gotExpenses *[]services.ExpenseInput
		svc := &mockAccountService{
			updateAccountFn: func(_ context.Context, userID string, income *float64, expenses *[]services.ExpenseInput) (*models.Account, error) {
				gotIncome, gotExpenses = income, expenses
				return models.NewAccount(userID), nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "PUT", "/account",
			`{"income":2500,"expenses":[{"id":1712345,"name":"rent","value":"1200"},{"name":"food","value":80.5},{"name":"misc"}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotIncome == nil || *gotIncome != 2500 {
			t.Errorf("expected income 2500, got %v", gotIncome)
		}
		if gotExpenses == nil || len(*gotExpenses) != 3 {
			t.Fatalf("expected 3 expenses, got %v", gotExpenses)
		}
		exp := *gotExpenses
		if exp[0].ID != "1712345" || exp[0].Value != "1200" {
			t.Errorf("unexpected first expense: %+v", exp[0])
		}
		if exp[1].Value != "80.5" {
			t.Errorf("expected numeric value kept as text, got %q", exp[1].Value)
		}
		if exp[2].Value != "" {
			t.Errorf("expected missing value to be empty, got %q", exp[2].Value)
		}
	})

	t.Run("omitted fields stay nil", func(t *testing.T) {
		called := false
		svc := &mockAccountService{
			updateAccountFn: func(_ context.Context, userID string, income *float64, expenses *[]services.ExpenseInput) (*models.Account, error) {
				called = true
				if income != nil || expenses != nil {
					t.Errorf("expected nil income and expenses, got %v %v", income, expenses)
				}
				return models.NewAccount(userID), nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(svc))

		rec := doRequest(r, "PUT", "/account", `{}`)

		if rec.Code != http.StatusOK || !called {
			t.Fatalf("expected 200 and service call, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "PUT", "/account", `{"income":"lots"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
