package integration

import (
	"net/http"
	"testing"
)

func TestGoalFlow_LifeCycle(t *testing.T) {
	app := setupApp(t)
	token := app.signUp(t, "goals@test.com")

	// Entries before any goal exists are rejected.
	rec := app.request("POST", "/api/goals/expenditure", `{"category":"home","amount":10}`, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before goal exists, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "GOAL_NOT_FOUND" {
		t.Errorf("expected GOAL_NOT_FOUND, got %s", code)
	}

	rec = app.request("POST", "/api/goals", `{"expenditureGoal":2000,"savingsGoal":500}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/goals/expenditure", `{"category":"home","amount":120.5,"description":"repairs"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/expenditure", `{"category":"medical","amount":"29.5"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected alias route to work, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/savings", `{"category":"emergency","amount":75}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/goals", "", token)
	goal := parseJSON(t, rec)
	if goal["currentExpenditure"] != 150.0 {
		t.Errorf("expected currentExpenditure 150, got %v", goal["currentExpenditure"])
	}
	if goal["currentSavings"] != 75.0 {
		t.Errorf("expected currentSavings 75, got %v", goal["currentSavings"])
	}
	home := goal["expenditureData"].(map[string]interface{})["home"].([]interface{})
	if len(home) != 1 || home[0].(map[string]interface{})["description"] != "repairs" {
		t.Errorf("unexpected home entries: %v", home)
	}

	// Updating targets keeps accumulated entries.
	rec = app.request("POST", "/api/goals", `{"expenditureGoal":2500,"savingsGoal":600}`, token)
	updated := parseJSON(t, rec)
	if updated["expenditureGoal"] != 2500.0 || updated["currentExpenditure"] != 150.0 {
		t.Errorf("unexpected goal after retarget: %v", updated)
	}
}

func TestGoalFlow_LazyGet(t *testing.T) {
	app := setupApp(t)
	token := app.signUp(t, "lazy@test.com")

	rec := app.request("GET", "/api/goals", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	first := parseJSON(t, rec)
	if first["expenditureGoal"] != 0.0 {
		t.Errorf("expected zeroed goal, got %v", first)
	}

	// After a lazy read, entries are accepted.
	rec = app.request("POST", "/api/goals/savings", `{"category":"investment","amount":5}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after lazy create, got %d", rec.Code)
	}
}

func TestGoalFlow_RejectsUnknownCategory(t *testing.T) {
	app := setupApp(t)
	token := app.signUp(t, "vacation@test.com")
	app.request("POST", "/api/goals", `{"expenditureGoal":100,"savingsGoal":100}`, token)

	rec := app.request("POST", "/api/goals/expenditure", `{"category":"vacation","amount":10}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/goals", "", token)
	if parseJSON(t, rec)["currentExpenditure"] != 0.0 {
		t.Error("rejected entry must not change totals")
	}
}

func TestGoalFlow_RejectsOverflowingAmount(t *testing.T) {
	app := setupApp(t)
	token := app.signUp(t, "goal-overflow@test.com")
	app.request("POST", "/api/goals", `{"expenditureGoal":100,"savingsGoal":100}`, token)

	for _, path := range []string{"/api/goals/expenditure", "/api/goals/savings"} {
		rec := app.request("POST", path, `{"category":"home","amount":1e400}`, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", path, rec.Code, rec.Body.String())
		}
	}

	rec := app.request("GET", "/api/goals", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	goal := parseJSON(t, rec)
	if goal["currentExpenditure"] != 0.0 || goal["currentSavings"] != 0.0 {
		t.Errorf("rejected entries must not change totals: %v", goal)
	}
}
