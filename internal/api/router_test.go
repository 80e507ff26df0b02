package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lifepath/internal/api/handlers"
	"lifepath/internal/repository"
	"lifepath/internal/service"
	"lifepath/internal/simulation"
	"lifepath/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()

	paths, err := repository.LoadPathCatalog("")
	if err != nil {
		t.Fatalf("LoadPathCatalog: %v", err)
	}
	repo := repository.NewMemoryPathRepository(paths, logger)
	sim := simulation.NewSimulator(nil, logger)

	cfg := &config.Config{
		Server:    config.ServerConfig{ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second},
		RateLimit: config.RateLimitConfig{Max: 1000, Window: time.Minute},
	}
	h := Handlers{
		Health:     handlers.NewHealthHandler(sim),
		Paths:      handlers.NewPathHandler(service.NewPathService(repo, logger), logger),
		Evaluation: handlers.NewEvaluationHandler(service.NewRecommendationService(repo, sim, 10, logger), logger),
		Comparison: handlers.NewComparisonHandler(service.NewComparisonService(repo, sim, 10, 100, logger), logger),
	}
	return SetupRouter(h, cfg, logger)
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	data, _ := io.ReadAll(resp.Body)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("%s %s: invalid JSON %q: %v", method, target, data, err)
		}
	}
	return resp.StatusCode, decoded
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, http.MethodGet, "/health", "")
	if status != http.StatusOK || body["status"] != "ok" {
		t.Errorf("health = %d %v", status, body)
	}
}

func TestListAndGetPaths(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodGet, "/api/v1/paths", "")
	if status != http.StatusOK {
		t.Fatalf("list status = %d", status)
	}
	if total := body["total"].(float64); total < 2 {
		t.Errorf("expected catalog paths, got total %v", total)
	}

	status, body = do(t, app, http.MethodGet, "/api/v1/paths/coding-bootcamp", "")
	if status != http.StatusOK || body["id"] != "coding-bootcamp" {
		t.Errorf("get = %d %v", status, body)
	}

	status, body = do(t, app, http.MethodGet, "/api/v1/paths/nope", "")
	if status != http.StatusNotFound || body["error"] == nil {
		t.Errorf("missing path = %d %v", status, body)
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	app := newTestApp(t)
	body := `{
		"userProfile": {"age": 18, "startingSavings": 2000, "monthlyLifestyleCost": 1500, "riskTolerance": "low",
			"interestAlignment": "high", "primaryInterest": "technology", "skillConfidence": 7},
		"paths": ["university-computer-science", "electrician-apprenticeship", "not-a-path"],
		"preferenceWeights": {"financialWeight": 40, "lifestyleWeight": 20, "timeWeight": 20, "alignmentWeight": 20}
	}`
	status, resp := do(t, app, http.MethodPost, "/api/v1/paths/evaluate", body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %v", status, resp)
	}
	if resp["evaluationId"] == "" {
		t.Error("missing evaluationId")
	}
	scored := resp["scoredPaths"].([]interface{})
	if len(scored) != 2 {
		t.Fatalf("expected 2 scored paths, got %d", len(scored))
	}
	rec := resp["recommendation"].(map[string]interface{})
	if rec["bestOverall"] == nil {
		t.Error("missing bestOverall")
	}
	if !strings.HasPrefix(rec["reasoning"].(string), "Based on your profile and priorities") {
		t.Errorf("unexpected reasoning %q", rec["reasoning"])
	}
}

func TestEvaluateEndpointValidation(t *testing.T) {
	app := newTestApp(t)
	tests := []struct {
		name string
		body string
	}{
		{"one path", `{"userProfile": {"startingSavings": 0, "monthlyLifestyleCost": 1000}, "paths": ["coding-bootcamp"]}`},
		{"no profile", `{"paths": ["coding-bootcamp", "direct-workforce"]}`},
		{"bad json", `{"paths": [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := do(t, app, http.MethodPost, "/api/v1/paths/evaluate", tt.body)
			if status != http.StatusBadRequest || resp["error"] == nil {
				t.Errorf("got %d %v, want 400 with error", status, resp)
			}
		})
	}
}

func TestCompareEndpoint(t *testing.T) {
	app := newTestApp(t)
	body := `{
		"userInputs": {"startingSavings": 1000, "monthlyLifestyleCost": 2000},
		"selectedPathIds": ["medical-school", "ghost", "direct-workforce"],
		"horizonYears": 12
	}`
	status, resp := do(t, app, http.MethodPost, "/api/v1/paths/compare", body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %v", status, resp)
	}
	if resp["horizonYears"].(float64) != 12 {
		t.Errorf("horizonYears = %v, want 12", resp["horizonYears"])
	}
	paths := resp["paths"].([]interface{})
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	first := paths[0].(map[string]interface{})
	if first["id"] != "medical-school" {
		t.Errorf("first path = %v, want medical-school", first["id"])
	}
	series := first["series"].(map[string]interface{})
	for _, key := range []string{"yearlyIncome", "cumulativeNetCash", "yearlyDebt"} {
		if n := len(series[key].([]interface{})); n != 12 {
			t.Errorf("%s has %d entries, want 12", key, n)
		}
	}
	if _, ok := first["summary"].(map[string]interface{}); !ok {
		t.Error("missing summary")
	}
}

func TestCompareEndpointValidation(t *testing.T) {
	app := newTestApp(t)
	tests := []struct {
		name string
		body string
	}{
		{"missing inputs", `{"selectedPathIds": ["coding-bootcamp"]}`},
		{"missing ids", `{"userInputs": {"startingSavings": 0, "monthlyLifestyleCost": 1000}}`},
		{"negative horizon", `{"userInputs": {"startingSavings": 0, "monthlyLifestyleCost": 1000}, "selectedPathIds": ["coding-bootcamp"], "horizonYears": -3}`},
		{"horizon too large", `{"userInputs": {"startingSavings": 0, "monthlyLifestyleCost": 1000}, "selectedPathIds": ["coding-bootcamp"], "horizonYears": 500}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := do(t, app, http.MethodPost, "/api/v1/paths/compare", tt.body)
			if status != http.StatusBadRequest || resp["error"] == nil {
				t.Errorf("got %d %v, want 400 with error", status, resp)
			}
		})
	}
}

func TestRecoverTurnsPanicsInto500(t *testing.T) {
	app := newTestApp(t)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	status, resp := do(t, app, http.MethodGet, "/panic", "")
	if status != http.StatusInternalServerError || resp["error"] == nil {
		t.Errorf("got %d %v, want 500 with error", status, resp)
	}
}
