package get_booked_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicBooking/internal/infra/storage/catalog"
	storage "github.com/m04kA/SMC-ClinicBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/ledger"
	"github.com/m04kA/SMC-ClinicBooking/pkg/logger"
)

func get(h *Handler, doctorID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/"+doctorID+"/bookings"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"doctorId": doctorID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	bookings := ledger.NewService(storage.NewMemoryStore(), nil, logger.NewNop())
	monday := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	require.NoError(t, bookings.RecordBooking(context.Background(), "pediatrics-captaincare", monday, "10:00"))
	require.NoError(t, bookings.RecordBooking(context.Background(), "pediatrics-captaincare", monday, "09:00"))

	h := NewHandler(bookings, cat, logger.NewNop())

	rec := get(h, "pediatrics-captaincare", "?date=2026-10-19")
	require.Equal(t, http.StatusOK, rec.Code)

	var body BookedSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bookings_pediatrics-captaincare_2026-10-19", body.Key)
	assert.Equal(t, []string{"10:00", "09:00"}, body.Times)

	empty := get(h, "pediatrics-captaincare", "?date=2026-10-20")
	assert.JSONEq(t, `{"doctorId":"pediatrics-captaincare","date":"2026-10-20","key":"bookings_pediatrics-captaincare_2026-10-20","times":[]}`,
		empty.Body.String())

	assert.Equal(t, http.StatusBadRequest, get(h, "pediatrics-captaincare", "").Code)
	assert.Equal(t, http.StatusNotFound, get(h, "astrology-stargazer", "?date=2026-10-19").Code)
}
