package get_doctors

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Handle GET /api/v1/doctors
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromDoctors(h.catalog.Doctors()))
}
