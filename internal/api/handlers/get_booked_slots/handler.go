package get_booked_slots

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDoctorNotFound = "врач не найден"
)

type Handler struct {
	ledger  LedgerService
	catalog Catalog
	logger  Logger
}

func NewHandler(ledger LedgerService, catalog Catalog, logger Logger) *Handler {
	return &Handler{
		ledger:  ledger,
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := domain.DoctorID(mux.Vars(r)["doctorId"])

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if !h.catalog.Has(doctorID) {
		h.logger.Warn("GET /doctors/{id}/bookings - Doctor not found: doctor_id=%s", doctorID)
		handlers.RespondNotFound(w, msgDoctorNotFound)
		return
	}

	booked := h.ledger.BookedSlots(r.Context(), doctorID, date)
	times := make([]string, 0, len(booked))
	for _, t := range booked {
		times = append(times, t.String())
	}

	handlers.RespondJSON(w, http.StatusOK, &BookedSlotsResponse{
		DoctorID: string(doctorID),
		Date:     date.Format(domain.DateFormat),
		Key:      domain.BookingKey{Doctor: doctorID, Date: date}.String(),
		Times:    times,
	})
}
