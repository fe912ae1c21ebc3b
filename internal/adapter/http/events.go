package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

const maxEventsBody = 4 << 20

type eventRejection struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type eventsResponse struct {
	Accepted int              `json:"accepted"`
	Buffered int              `json:"buffered"`
	Rejected []eventRejection `json:"rejected"`
}

// handleEvents ingests spend events in request order. The body is either
// a single event object or an array of them. Each event is accepted,
// buffered until its campaign's config arrives, or rejected; rejections
// never fail the batch. Malformed JSON results in HTTP 400.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEventsBody))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	events, err := decodeEvents(body)
	if err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	resp := eventsResponse{Rejected: []eventRejection{}}
	for i, ev := range events {
		err = h.svc.Ingest(r.Context(), ev)
		switch {
		case err == nil:
			resp.Accepted++
		case errors.Is(err, port.ErrConfigMissing):
			resp.Buffered++
		default:
			resp.Rejected = append(resp.Rejected, eventRejection{Index: i, Error: err.Error()})
		}
	}
	if len(resp.Rejected) > 0 {
		h.logger.Debug("events rejected", slog.Int("rejected", len(resp.Rejected)), slog.Int("total", len(events)))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func decodeEvents(body []byte) ([]domain.SpendEvent, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		var events []domain.SpendEvent
		err := json.Unmarshal(body, &events)
		return events, err
	}
	var ev domain.SpendEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, err
	}
	return []domain.SpendEvent{ev}, nil
}
