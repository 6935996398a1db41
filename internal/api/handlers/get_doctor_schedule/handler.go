package get_doctor_schedule

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
)

const msgDoctorNotFound = "врач не найден"

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := domain.DoctorID(mux.Vars(r)["doctorId"])

	doctor, ok := h.catalog.Doctor(doctorID)
	if !ok {
		h.logger.Warn("GET /doctors/{id}/schedule - Doctor not found: doctor_id=%s", doctorID)
		handlers.RespondNotFound(w, msgDoctorNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDoctor(doctor))
}
