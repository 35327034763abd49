package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/portops/internal/common"
	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/optimizer"
)

// mockStore implements service.RunStore for testing.
type mockStore struct {
	listErr error
	runs    []model.RunRecord
	mu      sync.Mutex
}

func (m *mockStore) SaveRun(_ context.Context, run *model.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	run.ID = int64(len(m.runs) + 1)
	m.runs = append(m.runs, *run)
	return nil
}

func (m *mockStore) ListRuns(_ context.Context, limit int) ([]model.RunRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.RunRecord, 0, len(m.runs))
	for i := len(m.runs) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, m.runs[i])
	}
	return out, nil
}

func (m *mockStore) GetRun(_ context.Context, id int64) (*model.RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.runs {
		if m.runs[i].ID == id {
			r := m.runs[i]
			return &r, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *mockStore) Close() error { return nil }

func newTestMux(t *testing.T, store *mockStore) *http.ServeMux {
	t.Helper()
	var h *Handlers
	var err error
	if store == nil {
		h, err = NewHandlers(nil, nil)
	} else {
		clock := func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
		h, err = NewHandlers(optimizer.NewRunner(optimizer.WithStore(store), optimizer.WithClock(clock)), store)
	}
	require.NoError(t, err)
	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	return mux
}

func do(t *testing.T, mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := do(t, newTestMux(t, nil), http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, Version, resp.Version)
}

func TestHandlePredict(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantInput  model.InputParameters
		wantPred   model.Prediction
		wantStatus int
	}{
		{
			name:       "defaults",
			query:      "",
			wantStatus: http.StatusOK,
			wantInput:  model.DefaultInput(),
			wantPred:   model.Prediction{Strategy: model.StrategyStandard, Score: 55, Efficiency: 93},
		},
		{
			name:       "bulk cargo",
			query:      "?cargo=bulk&weather=severe",
			wantStatus: http.StatusOK,
			wantInput: model.InputParameters{
				PortCapacity: 50, AverageVessels: 100, OperatingHours: 16,
				Weather: model.WeatherSevere, Cargo: model.CargoBulk,
			},
			wantPred: model.Prediction{Strategy: model.StrategySequential, Score: 55, Efficiency: 93},
		},
		{
			name:       "out of range values are clamped",
			query:      "?capacity=500&vessels=999&hours=-3&cargo=containers",
			wantStatus: http.StatusOK,
			wantInput: model.InputParameters{
				PortCapacity: 100, AverageVessels: 200, OperatingHours: 0,
				Weather: model.WeatherClear, Cargo: model.CargoContainers,
			},
			wantPred: model.Prediction{Strategy: model.StrategyParallel, Score: 100, Efficiency: 100},
		},
		{
			name:       "minimum inputs",
			query:      "?capacity=1&vessels=1&hours=0",
			wantStatus: http.StatusOK,
			wantInput: model.InputParameters{
				PortCapacity: 1, AverageVessels: 1, OperatingHours: 0,
				Weather: model.WeatherClear, Cargo: model.CargoGeneral,
			},
			wantPred: model.Prediction{Strategy: model.StrategyStandard, Score: 0, Efficiency: 85},
		},
	}

	mux := newTestMux(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodGet, "/api/predict"+tt.query, "")
			require.Equal(t, tt.wantStatus, rec.Code)

			var resp PredictResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantInput, resp.Input)
			assert.Equal(t, tt.wantPred, resp.Prediction)
		})
	}
}

func TestHandlePredict_BadRequest(t *testing.T) {
	mux := newTestMux(t, nil)

	for _, q := range []string{"?capacity=lots", "?weather=hurricane", "?cargo=livestock"} {
		t.Run(q, func(t *testing.T) {
			rec := do(t, mux, http.MethodGet, "/api/predict"+q, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Contains(t, resp.Error, "invalid input")
		})
	}
}

func TestHandleRun_JournalsRun(t *testing.T) {
	store := &mockStore{}
	mux := newTestMux(t, store)

	rec := do(t, mux, http.MethodPost, "/api/run", `{"port_capacity": 90, "cargo": "Bulk"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.RunResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, optimizer.RunSuccessMessage, result.Message)
	assert.Len(t, result.Outcomes, 3)
	assert.Equal(t, 90, result.Input.PortCapacity)
	assert.Equal(t, model.StrategySequential, result.Prediction.Strategy)

	require.Len(t, store.runs, 1)
	assert.Equal(t, 90, store.runs[0].Input.PortCapacity)

	rec = do(t, mux, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var hist HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	assert.True(t, hist.Enabled)
	require.Len(t, hist.Runs, 1)
	assert.Equal(t, int64(1), hist.Runs[0].ID)

	rec = do(t, mux, http.MethodGet, "/api/history/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, mux, http.MethodGet, "/api/history/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRun_EmptyBodyUsesDefaults(t *testing.T) {
	rec := do(t, newTestMux(t, nil), http.MethodPost, "/api/run", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.RunResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, model.DefaultInput(), result.Input)
	assert.Equal(t, 55, result.Prediction.Score)
}

func TestHandleRun_BadRequest(t *testing.T) {
	mux := newTestMux(t, nil)

	tests := map[string]string{
		"malformed json":  `{"port_capacity":`,
		"unknown cargo":   `{"cargo": "Livestock"}`,
		"unknown weather": `{"weather": "Hurricane"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPost, "/api/run", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleComparison(t *testing.T) {
	rec := do(t, newTestMux(t, nil), http.MethodGet, "/api/comparison", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ComparisonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 3)
	for _, row := range resp.Rows {
		assert.Equal(t, 100, row.Accuracy)
		assert.Equal(t, 100, row.F1)
	}
	require.Len(t, resp.TradeOff, 3)
	assert.Equal(t, 95, resp.TradeOff[1].Speed)
}

func TestHandleDataset(t *testing.T) {
	rec := do(t, newTestMux(t, nil), http.MethodGet, "/api/dataset", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DatasetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 150, resp.Dataset.Ports)
	assert.Equal(t, 200, resp.Dataset.Scenarios)
	assert.Len(t, resp.Dataset.Features, 5)
	assert.NotEmpty(t, resp.Metrics)
}

func TestHandleDocs(t *testing.T) {
	rec := do(t, newTestMux(t, nil), http.MethodGet, "/api/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Thesis Defense Documentation</h1>")
	assert.Contains(t, body, "<strong>For Critical Decisions</strong>")
}

func TestHandleHistory_Disabled(t *testing.T) {
	mux := newTestMux(t, nil)

	rec := do(t, mux, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var hist HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	assert.False(t, hist.Enabled)
	assert.NotNil(t, hist.Runs)
	assert.Empty(t, hist.Runs)

	rec = do(t, mux, http.MethodGet, "/api/history/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHistory_Limit(t *testing.T) {
	store := &mockStore{}
	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveRun(context.Background(), &model.RunRecord{Input: model.DefaultInput()}))
	}
	mux := newTestMux(t, store)

	rec := do(t, mux, http.MethodGet, "/api/history?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var hist HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	require.Len(t, hist.Runs, 2)
	assert.Equal(t, int64(5), hist.Runs[0].ID)

	rec = do(t, mux, http.MethodGet, "/api/history?limit=zero", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHistory_StoreError(t *testing.T) {
	store := &mockStore{listErr: errors.New("disk on fire")}
	rec := do(t, newTestMux(t, store), http.MethodGet, "/api/history", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "disk on fire")
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestMux(t, nil), http.MethodGet, "/api/run", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
