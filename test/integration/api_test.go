package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aslearntocode/financial-health-sub000/internal/api"
	"github.com/aslearntocode/financial-health-sub000/internal/calculation"
	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/aslearntocode/financial-health-sub000/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	limiter := api.NewRateLimiter(100, time.Minute)
	t.Cleanup(limiter.Stop)

	server := api.NewServer(session.NewManager(session.NewMemoryStore(time.Minute), nil), limiter, nil)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req, err := http.NewRequest(method, url, &payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestAPISessionMatchesEngine(t *testing.T) {
	ts := newAPI(t)
	results := loadResults(t)

	var created struct {
		SessionID string `json:"session_id"`
	}
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, ts.URL+"/api/sessions", nil, &created))
	require.NotEmpty(t, created.SessionID)
	base := ts.URL + "/api/sessions/" + created.SessionID

	for _, a := range results.Simulation.Actions {
		var recorded domain.SimulatedAction
		status := call(t, http.MethodPost, base+"/simulations", map[string]any{
			"action":        a.Action,
			"current_value": a.CurrentValue,
			"new_value":     a.NewValue,
		}, &recorded)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, a.Impact, recorded.Impact)
	}

	var report domain.SimulationReport
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"?base_score=700", nil, &report))
	assert.True(t, results.Simulation.ProjectedScore.Equal(report.ProjectedScore))
	assert.Equal(t, results.Simulation.TotalImpact, report.TotalImpact)

	require.Equal(t, http.StatusNoContent, call(t, http.MethodDelete, base+"/simulations", nil, nil))
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"?base_score=700", nil, &report))
	assert.Equal(t, "700", report.ProjectedScore.String())

	require.Equal(t, http.StatusNoContent, call(t, http.MethodDelete, base, nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, http.MethodGet, base, nil, nil))
}

func TestAPISessionsAreIsolated(t *testing.T) {
	ts := newAPI(t)

	var a, b struct {
		SessionID string `json:"session_id"`
	}
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, ts.URL+"/api/sessions", nil, &a))
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, ts.URL+"/api/sessions", nil, &b))
	require.NotEqual(t, a.SessionID, b.SessionID)

	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, ts.URL+"/api/sessions/"+a.SessionID+"/simulations",
		map[string]any{"action": "account_age", "new_value": 3}, nil))

	var report domain.SimulationReport
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, ts.URL+"/api/sessions/"+b.SessionID+"?base_score=650", nil, &report))
	assert.Empty(t, report.Actions)
	assert.Equal(t, "650", report.ProjectedScore.String())
}

func TestAPIProjectionMatchesCalculator(t *testing.T) {
	ts := newAPI(t)
	results := loadResults(t)

	for _, rep := range results.Corpus {
		var resp struct {
			Projection domain.CorpusProjection `json:"projection"`
			Schedule   []domain.YearlyBalance  `json:"schedule"`
		}
		body := map[string]any{
			"current_savings":                rep.Projection.Input.CurrentSavings,
			"monthly_savings":                rep.Projection.Input.MonthlySavings,
			"years":                          rep.Projection.Input.Years,
			"expected_annual_return_percent": rep.Projection.Input.ExpectedAnnualReturnPercent,
			"include_schedule":               true,
		}
		require.Equal(t, http.StatusOK, call(t, http.MethodPost, ts.URL+"/api/corpus/projection", body, &resp), rep.Name)
		assert.True(t, rep.Projection.FinalValue.Equal(resp.Projection.FinalValue), rep.Name)
		assert.Len(t, resp.Schedule, len(rep.Schedule), rep.Name)

		direct := calculation.ProjectCorpus(rep.Projection.Input.CurrentSavings, rep.Projection.Input.MonthlySavings,
			rep.Projection.Input.Years, rep.Projection.Input.ExpectedAnnualReturnPercent)
		assert.True(t, direct.Equal(resp.Projection.FinalValue), rep.Name)
	}
}
