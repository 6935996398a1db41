package get_doctor_schedule

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ClinicBooking/pkg/logger"
)

func get(h *Handler, doctorID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/"+doctorID+"/schedule", nil)
	req = mux.SetURLVars(req, map[string]string{"doctorId": doctorID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	h := NewHandler(cat, logger.NewNop())

	rec := get(h, "cardiology-hearthero")
	require.Equal(t, http.StatusOK, rec.Code)

	var body ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cardiology-hearthero", body.DoctorID)
	assert.Len(t, body.Schedule, 5)
	assert.Empty(t, body.Schedule["tuesday"])
	assert.NotEmpty(t, body.Schedule["monday"])
	assert.NotContains(t, body.Schedule, "saturday")

	assert.Equal(t, http.StatusNotFound, get(h, "astrology-stargazer").Code)
}
