package get_calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-ClinicBooking/internal/infra/storage/catalog"
	storage "github.com/m04kA/SMC-ClinicBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/availability"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/calendar"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/ledger"
	"github.com/m04kA/SMC-ClinicBooking/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newHandler(t *testing.T) *Handler {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	clock := fixedClock{now: time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)}
	resolver := availability.NewService(cat, ledger.NewService(storage.NewMemoryStore(), nil, logger.NewNop()))
	svc := calendar.NewService(resolver, calendar.LayoutWeek).WithTimeProvider(clock)
	return NewHandler(svc, cat, logger.NewNop()).WithTimeProvider(clock)
}

func get(h *Handler, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar"+query, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) views.CalendarResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body views.CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandle_DefaultsToCurrentMonth(t *testing.T) {
	body := decode(t, get(newHandler(t), ""))

	assert.Equal(t, 2026, body.Year)
	assert.Equal(t, 10, body.Month)
	assert.Equal(t, 3, body.LeadingBlanks)
	assert.Equal(t, "past", body.Weeks[2][4].Class, "2026-10-16")
}

func TestHandle_DoctorAndSelection(t *testing.T) {
	body := decode(t, get(newHandler(t), "?doctorId=cardiology-hearthero&selectedDate=2026-11-03"))

	assert.Equal(t, 11, body.Month)
	assert.Equal(t, "cardiology-hearthero", body.DoctorID)

	var selected []views.CellResponse
	for _, week := range body.Weeks {
		for _, c := range week {
			if c.Selected {
				selected = append(selected, c)
			}
		}
	}
	require.Len(t, selected, 1)
	assert.Equal(t, "2026-11-03", selected[0].Date)
	assert.Equal(t, "no_availability", selected[0].Class, "tuesday has no session")
}

func TestHandle_ExplicitMonth(t *testing.T) {
	body := decode(t, get(newHandler(t), "?year=2027&month=1"))

	assert.Equal(t, 2027, body.Year)
	assert.Equal(t, 1, body.Month)
}

func TestHandle_Errors(t *testing.T) {
	h := newHandler(t)

	assert.Equal(t, http.StatusBadRequest, get(h, "?year=2027&month=13").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "?year=2027").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "?selectedDate=tomorrow").Code)
	assert.Equal(t, http.StatusNotFound, get(h, "?doctorId=astrology-stargazer").Code)
}
