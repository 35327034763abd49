// Package webapi exposes the optimizer over a small JSON HTTP API.
package webapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Veraticus/portops/internal/common"
	"github.com/Veraticus/portops/internal/model"
	"github.com/Veraticus/portops/internal/optimizer"
	"github.com/Veraticus/portops/internal/service"
)

// Version is set at build time or defaults to dev.
var Version = "dev"

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
	maxBodyBytes        = 1 << 16
)

// Handlers holds the HTTP handler methods for the web API.
type Handlers struct {
	runner   *optimizer.Runner
	store    service.RunStore
	docsHTML []byte
}

// NewHandlers creates Handlers. store may be nil when run history is disabled.
func NewHandlers(runner *optimizer.Runner, store service.RunStore) (*Handlers, error) {
	if runner == nil {
		runner = optimizer.NewRunner(optimizer.WithStore(store))
	}
	html, err := RenderDocs(optimizer.Documentation)
	if err != nil {
		return nil, err
	}
	return &Handlers{runner: runner, store: store, docsHTML: html}, nil
}

// RenderDocs converts markdown to HTML.
func RenderDocs(markdown string) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("failed to render documentation: %w", err)
	}
	return buf.Bytes(), nil
}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// HandlePredict derives the prediction for the query parameters.
// Missing parameters take their defaults; numeric values are clamped.
func (h *Handlers) HandlePredict(w http.ResponseWriter, r *http.Request) {
	in, err := ParseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in = in.Clamp()
	writeJSON(w, http.StatusOK, PredictResponse{
		Input:      in,
		Prediction: optimizer.Derive(in),
	})
}

// HandleRun performs an optimization run for the JSON body.
func (h *Handlers) HandleRun(w http.ResponseWriter, r *http.Request) {
	in := model.DefaultInput()
	if r.Body != nil && r.ContentLength != 0 {
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}
	if in.Weather != "" && !in.Weather.IsValid() {
		writeError(w, http.StatusBadRequest, common.InvalidInput("weather", fmt.Errorf("unknown weather condition %q", in.Weather)).Error())
		return
	}
	if in.Cargo != "" && !in.Cargo.IsValid() {
		writeError(w, http.StatusBadRequest, common.InvalidInput("cargo", fmt.Errorf("unknown cargo type %q", in.Cargo)).Error())
		return
	}

	result, err := h.runner.Run(r.Context(), in)
	if err != nil {
		slog.Error("optimization run failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleComparison returns the model comparison table and trade-off points.
func (h *Handlers) HandleComparison(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ComparisonResponse{
		Rows:     optimizer.Comparison(),
		TradeOff: optimizer.TradeOff(),
	})
}

// HandleDataset returns the dataset description.
func (h *Handlers) HandleDataset(w http.ResponseWriter, _ *http.Request) {
	d := optimizer.Dataset()
	writeJSON(w, http.StatusOK, DatasetResponse{
		Dataset: d,
		Metrics: optimizer.DatasetMetrics(d),
	})
}

// HandleDocs returns the documentation rendered as HTML.
func (h *Handlers) HandleDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.docsHTML) //nolint:errcheck
}

// HandleHistory returns recent journaled runs. With history disabled the
// list is empty rather than an error.
func (h *Handlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = model.ClampInt(n, 1, maxHistoryLimit)
	}

	if h.store == nil {
		writeJSON(w, http.StatusOK, HistoryResponse{Runs: []model.RunRecord{}})
		return
	}

	runs, err := h.store.ListRuns(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []model.RunRecord{}
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Runs: runs, Enabled: true})
}

// HandleHistoryDetail returns a single journaled run.
func (h *Handlers) HandleHistoryDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "run id must be an integer")
		return
	}
	if h.store == nil {
		writeError(w, http.StatusNotFound, common.ErrHistoryDisabled.Error())
		return
	}

	run, err := h.store.GetRun(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "run not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// ParseQuery reads InputParameters from URL query parameters. Numeric
// values are returned unclamped; unknown enum names are an error.
func ParseQuery(r *http.Request) (model.InputParameters, error) {
	in := model.DefaultInput()
	q := r.URL.Query()

	ints := []struct {
		dst  *int
		name string
	}{
		{&in.PortCapacity, "capacity"},
		{&in.AverageVessels, "vessels"},
		{&in.OperatingHours, "hours"},
	}
	for _, f := range ints {
		raw := strings.TrimSpace(q.Get(f.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return in, common.InvalidInput(f.name, err)
		}
		*f.dst = n
	}

	if raw := q.Get("weather"); raw != "" {
		w, err := model.ParseWeather(raw)
		if err != nil {
			return in, common.InvalidInput("weather", err)
		}
		in.Weather = w
	}
	if raw := q.Get("cargo"); raw != "" {
		c, err := model.ParseCargo(raw)
		if err != nil {
			return in, common.InvalidInput("cargo", err)
		}
		in.Cargo = c
	}
	return in, nil
}

// RegisterRoutes registers all web API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("GET /api/predict", h.HandlePredict)
	mux.HandleFunc("POST /api/run", h.HandleRun)
	mux.HandleFunc("GET /api/comparison", h.HandleComparison)
	mux.HandleFunc("GET /api/dataset", h.HandleDataset)
	mux.HandleFunc("GET /api/docs", h.HandleDocs)
	mux.HandleFunc("GET /api/history", h.HandleHistory)
	mux.HandleFunc("GET /api/history/{id}", h.HandleHistoryDetail)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
