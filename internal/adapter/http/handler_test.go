package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
	"mesa-pacing/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockPacingUseCase, http.Handler) {
	svc := mocks.NewMockPacingUseCase(t)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pacing_ticks_skipped_total 0\n"))
	})
	h := NewHandler(svc, metrics, slog.New(slog.DiscardHandler))
	return svc, h.Router()
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestHandleEventsBatch(t *testing.T) {
	svc, router := newTestHandler(t)
	ts := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	svc.EXPECT().Ingest(mock.Anything, mock.MatchedBy(func(ev domain.SpendEvent) bool {
		return ev.CampaignID == 1
	})).Return(nil).Once()
	svc.EXPECT().Ingest(mock.Anything, mock.MatchedBy(func(ev domain.SpendEvent) bool {
		return ev.CampaignID == 2
	})).Return(fmt.Errorf("%w: campaign 2", port.ErrConfigMissing)).Once()
	svc.EXPECT().Ingest(mock.Anything, mock.MatchedBy(func(ev domain.SpendEvent) bool {
		return ev.CampaignID == 3
	})).Return(fmt.Errorf("%w: campaign 3", port.ErrStaleEvent)).Once()

	body := fmt.Sprintf(`[
		{"campaign_id": 1, "timestamp": %q, "amount": 10, "clicks": 2},
		{"campaign_id": 2, "timestamp": %q, "amount": 5},
		{"campaign_id": 3, "timestamp": %q, "amount": 7}
	]`, ts.Format(time.RFC3339), ts.Format(time.RFC3339), ts.Format(time.RFC3339))
	rec := do(router, http.MethodPost, "/api/v1/events", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp eventsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Accepted)
	assert.Equal(t, 1, resp.Buffered)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, 2, resp.Rejected[0].Index)
	assert.Contains(t, resp.Rejected[0].Error, "outside current budget period")
}

func TestHandleEventsSingle(t *testing.T) {
	svc, router := newTestHandler(t)
	clicks := int64(2)
	want := domain.SpendEvent{
		CampaignID: 4,
		Timestamp:  time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC),
		Amount:     12,
		Clicks:     &clicks,
	}
	svc.EXPECT().Ingest(mock.Anything, want).Return(nil).Once()

	rec := do(router, http.MethodPost, "/api/v1/events",
		`{"campaign_id":4,"timestamp":"2026-10-17T08:30:00Z","amount":12,"clicks":2}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"accepted":1,"buffered":0,"rejected":[]}`, rec.Body.String())
}

func TestHandleEventsInvalidJSON(t *testing.T) {
	_, router := newTestHandler(t)
	rec := do(router, http.MethodPost, "/api/v1/events", `{"campaign_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePacing(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().Pacing(mock.Anything, int64(7)).Return(&port.PacingView{
		CampaignID: 7, Status: domain.StatusActive, Multiplier: 1.1, Throttle: 0.55,
	}, nil).Once()
	svc.EXPECT().Pacing(mock.Anything, int64(8)).
		Return(nil, fmt.Errorf("%w: campaign 8", port.ErrUnknownCampaign)).Once()

	rec := do(router, http.MethodGet, "/api/v1/campaigns/7/pacing", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var view port.PacingView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, int64(7), view.CampaignID)
	assert.Equal(t, 0.55, view.Throttle)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/v1/campaigns/8/pacing", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/v1/campaigns/abc/pacing", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/v1/campaigns/-1/pacing", "").Code)
}

func TestHandleListAndAnalyze(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().ListCampaigns(mock.Anything).Return([]port.PacingView{{CampaignID: 1}, {CampaignID: 2}}, nil).Once()
	svc.EXPECT().Analyze(mock.Anything, int64(1)).Return(&port.Analysis{
		PacingView:  port.PacingView{CampaignID: 1},
		PacingError: 0.2,
		Insights:    []string{"Underspending: 20.0% behind the target curve."},
	}, nil).Once()
	svc.EXPECT().Analyze(mock.Anything, int64(2)).Return(nil, errors.New("boom")).Once()

	rec := do(router, http.MethodGet, "/api/v1/campaigns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var views []port.PacingView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&views))
	assert.Len(t, views, 2)

	rec = do(router, http.MethodGet, "/api/v1/campaigns/1/analyze", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var a port.Analysis
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&a))
	assert.Equal(t, 0.2, a.PacingError)
	assert.Equal(t, int64(1), a.CampaignID)

	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodGet, "/api/v1/campaigns/2/analyze", "").Code)
}

func TestHandleResume(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().Resume(mock.Anything, int64(1)).Return(nil).Once()
	svc.EXPECT().Resume(mock.Anything, int64(2)).
		RunAndReturn(func(_ context.Context, id int64) error {
			return fmt.Errorf("%w: campaign %d is ACTIVE", port.ErrNotPaused, id)
		}).Once()

	assert.Equal(t, http.StatusNoContent, do(router, http.MethodPost, "/api/v1/campaigns/1/resume", "").Code)
	assert.Equal(t, http.StatusConflict, do(router, http.MethodPost, "/api/v1/campaigns/2/resume", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(router, http.MethodGet, "/api/v1/campaigns/1/resume", "").Code)
}

func TestHealthAndMetrics(t *testing.T) {
	_, router := newTestHandler(t)
	rec := do(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = do(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pacing_ticks_skipped_total")
}
