package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"roundup/internal/logger"
	"roundup/internal/middleware"
	"roundup/internal/server"
	"roundup/internal/store/gormstore"
	"roundup/internal/testutil"
	"roundup/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Store  *gormstore.Store
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	st := testutil.SetupTestStore(t)
	t.Cleanup(func() { testutil.TeardownTestStore(t, st) })

	router := server.NewRouter(st, server.Options{
		Tokens:      middleware.NewTokenService("integration-secret", time.Hour),
		CORSOrigins: []string{"http://localhost:3000"},
	})

	return &testApp{Store: st, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// requestWithCookie authenticates through the session cookie instead of a header.
func (app *testApp) requestWithCookie(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses the response body into a slice.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// registerUser registers a new user and returns its ID.
func (app *testApp) registerUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	return user["id"].(string)
}

// loginUser logs in and returns the bearer token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

// signUp registers and logs in, returning the bearer token.
func (app *testApp) signUp(t *testing.T, email string) string {
	t.Helper()
	app.registerUser(t, email, "password123")
	return app.loginUser(t, email, "password123")
}

// createTransaction posts a transaction and fails the test on non-201.
func (app *testApp) createTransaction(t *testing.T, token string, amount float64, roundingType string) {
	t.Helper()
	body := fmt.Sprintf(`{"amount":%v,"roundingType":%q}`, amount, roundingType)
	rec := app.request("POST", "/api/transactions", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}
}

// seedSavings logs the three transactions that accumulate 98.06 of savings.
func (app *testApp) seedSavings(t *testing.T, token string) {
	t.Helper()
	app.createTransaction(t, token, 12.34, "nearest-decimal")
	app.createTransaction(t, token, 45, "nearest-tens")
	app.createTransaction(t, token, 7, "nearest-hundreds")
}
