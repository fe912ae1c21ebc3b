package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-pacing/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the pacing use case, the metrics endpoint and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc     port.PacingUseCase
	metrics http.Handler
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. metrics serves
// GET /metrics and may be nil.
func NewHandler(svc port.PacingUseCase, metrics http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, metrics: metrics, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/events", h.handleEvents)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/pacing", h.handlePacing)
			r.Get("/analyze", h.handleAnalyze)
			r.Post("/resume", h.handleResume)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// campaignID parses the {id} path parameter, writing HTTP 400 when it is
// not a positive integer.
func campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeError maps use case errors onto HTTP status codes. Unexpected
// errors are logged and reported as HTTP 500.
func (h *Handler) writeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, port.ErrUnknownCampaign):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.Is(err, port.ErrNotPaused), errors.Is(err, port.ErrEvaluationInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error(msg, slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
