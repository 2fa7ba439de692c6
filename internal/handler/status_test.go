package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eld-logbook/internal/domain"
	"github.com/pkordes/eld-logbook/internal/handler"
	"github.com/pkordes/eld-logbook/internal/hos"
)

// manualClock is advanced explicitly by tests.
type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newEngine(t *testing.T) (*hos.Engine, *manualClock) {
	t.Helper()
	clock := &manualClock{now: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)}
	return hos.New(hos.Options{Clock: clock, Location: time.UTC}), clock
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRecordStatus_created(t *testing.T) {
	engine, clock := newEngine(t)
	h := newTestHandler(engine, nil, nil)

	clock.Advance(30 * time.Minute)
	rec := do(h, http.MethodPost, "/status", `{"status":"driving","location":"Austin, TX"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var event domain.StatusEvent
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&event))
	assert.Equal(t, domain.Driving, event.Status)
	assert.Equal(t, "Austin, TX", event.Location)
	assert.Equal(t, domain.SourceManual, event.Source)
	require.NotNil(t, event.PreviousStatus)
	assert.Equal(t, domain.OffDuty, *event.PreviousStatus)
	assert.InDelta(t, 0.5, event.DurationHours, 1e-9)
}

func TestRecordStatus_unknownStatus(t *testing.T) {
	h := newTestHandler(&mockEngine{
		record: func(domain.DutyStatus, string) domain.StatusEvent {
			t.Fatal("engine must not be called")
			return domain.StatusEvent{}
		},
	}, nil, nil)

	rec := do(h, http.MethodPost, "/status", `{"status":"napping"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.Equal(t, `unknown duty status "napping"`, body.Error.Message)
}

func TestRecordStatus_malformedBody(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	for name, body := range map[string]string{
		"not json":      `status=driving`,
		"unknown field": `{"status":"driving","speed":60}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/status", body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestGetStatus_reportsOpenDuration(t *testing.T) {
	engine, clock := newEngine(t)
	h := newTestHandler(engine, nil, nil)

	engine.Record(domain.Driving, "Austin, TX")
	clock.Advance(2*time.Hour + 5*time.Minute + 9*time.Second)

	rec := do(h, http.MethodGet, "/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.StatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, domain.Driving, body.Status)
	assert.Equal(t, "Driving", body.StatusName)
	assert.Equal(t, "Austin, TX", body.Location)
	assert.Equal(t, "2h 5m 9s", body.OpenFor)
	assert.Equal(t, int64(7509), body.OpenForSeconds)
}

func TestSetLocation_usedForNextEvent(t *testing.T) {
	engine, clock := newEngine(t)
	h := newTestHandler(engine, nil, nil)

	rec := do(h, http.MethodPut, "/location", `{"location":" Waco, TX "}`)
	require.Equal(t, http.StatusOK, rec.Code)

	clock.Advance(time.Hour)
	rec = do(h, http.MethodPost, "/status", `{"status":"on"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var event domain.StatusEvent
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&event))
	assert.Equal(t, "Waco, TX", event.Location)
}
