package get_calendar

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/views"
)

const (
	msgInvalidParams  = "некорректные параметры запроса: year, month (1-12), selectedDate в формате YYYY-MM-DD"
	msgDoctorNotFound = "врач не найден"
)

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

type Handler struct {
	service      CalendarService
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service CalendarService, catalog Catalog, logger Logger) *Handler {
	return &Handler{
		service:      service,
		catalog:      catalog,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (h *Handler) WithTimeProvider(tp TimeProvider) *Handler {
	h.timeProvider = tp
	return h
}

// Handle GET /api/v1/calendar?year=&month=&doctorId=&selectedDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query, err := parseQuery(r.URL.Query(), h.timeProvider.Now())
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	if query.Doctor != "" && !h.catalog.Has(query.Doctor) {
		h.logger.Warn("GET /calendar - Doctor not found: doctor_id=%s", query.Doctor)
		handlers.RespondNotFound(w, msgDoctorNotFound)
		return
	}

	grid := h.service.Build(query.Month, query.Doctor, query.Selected)
	handlers.RespondJSON(w, http.StatusOK, views.FromGrid(grid))
}
