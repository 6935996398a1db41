package form_session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers"
	createBookingHandler "github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/create_booking"
	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/session"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgSessionNotFound    = "сессия не найдена"
	msgDoctorNotFound     = "врач не найден"
	msgDateNotSelectable  = "на выбранную дату запись невозможна"
	msgInvalidDay         = "такого дня нет в отображаемом месяце"
	msgSlotNotAvailable   = "выбранное время недоступно"
	msgSubmitInProgress   = "заявка уже отправляется"
)

// Handler сессии форм записи: выбор врача, даты, времени, листание календаря и отправка
type Handler struct {
	registry SessionRegistry
	logger   Logger
}

func NewHandler(registry SessionRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Create POST /api/v1/sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.registry.Create()
	view, err := s.View(r.Context())
	if err != nil {
		h.writeError(w, "POST /sessions", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, FromView(view))
}

// Get GET /api/v1/sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, "GET /sessions/{id}", func(ctx context.Context, s *session.Session) (session.View, error) {
		return s.View(ctx)
	})
}

// SetDoctor PUT /api/v1/sessions/{sessionId}/doctor
func (h *Handler) SetDoctor(w http.ResponseWriter, r *http.Request) {
	var req SetDoctorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/doctor - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.withSession(w, r, "PUT /sessions/{id}/doctor", func(ctx context.Context, s *session.Session) (session.View, error) {
		return s.SetDoctor(ctx, domain.DoctorID(req.DoctorID))
	})
}

// SetDate PUT /api/v1/sessions/{sessionId}/date
func (h *Handler) SetDate(w http.ResponseWriter, r *http.Request) {
	var req SetDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Day != 0 {
		h.withSession(w, r, "PUT /sessions/{id}/date", func(ctx context.Context, s *session.Session) (session.View, error) {
			return s.ClickDay(ctx, req.Day)
		})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			h.logger.Warn("PUT /sessions/{id}/date - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	h.withSession(w, r, "PUT /sessions/{id}/date", func(ctx context.Context, s *session.Session) (session.View, error) {
		return s.SetDate(ctx, date)
	})
}

// SetTime PUT /api/v1/sessions/{sessionId}/time
func (h *Handler) SetTime(w http.ResponseWriter, r *http.Request) {
	var req SetTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var at types.TimeString
	if req.Time != "" {
		parsed, err := types.NewTimeStringFromString(req.Time)
		if err != nil {
			h.logger.Warn("PUT /sessions/{id}/time - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		at = parsed
	}

	h.withSession(w, r, "PUT /sessions/{id}/time", func(ctx context.Context, s *session.Session) (session.View, error) {
		return s.SetTime(ctx, at)
	})
}

// PrevMonth POST /api/v1/sessions/{sessionId}/calendar/prev
func (h *Handler) PrevMonth(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, "POST /sessions/{id}/calendar/prev", func(ctx context.Context, s *session.Session) (session.View, error) {
		return s.PrevMonth(ctx)
	})
}

// NextMonth POST /api/v1/sessions/{sessionId}/calendar/next
func (h *Handler) NextMonth(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, "POST /sessions/{id}/calendar/next", func(ctx context.Context, s *session.Session) (session.View, error) {
		return s.NextMonth(ctx)
	})
}

// Submit POST /api/v1/sessions/{sessionId}/submit
// Тело: поля формы (name, age или dateOfBirth, message и любые другие); врач, дата и время берутся из сессии
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "POST /sessions/{id}/submit"

	fields, err := views.DecodeForm(r)
	if err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	s, err := h.registry.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	result, view, err := s.Submit(r.Context(), fields)
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	h.logger.Info("%s - Appointment accepted: session=%s, reference=%s", op, s.ID(), result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, SubmitResponse{
		Booking: views.FromBooking(result),
		Session: FromView(view),
	})
}

func (h *Handler) withSession(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	fn func(ctx context.Context, s *session.Session) (session.View, error),
) {
	s, err := h.registry.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	view, err := fn(r.Context(), s)
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromView(view))
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found", op)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, session.ErrDoctorNotFound):
		h.logger.Warn("%s - %v", op, err)
		handlers.RespondNotFound(w, msgDoctorNotFound)

	case errors.Is(err, session.ErrDateNotSelectable):
		h.logger.Warn("%s - %v", op, err)
		handlers.RespondBadRequest(w, msgDateNotSelectable)

	case errors.Is(err, session.ErrInvalidDay):
		h.logger.Warn("%s - %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidDay)

	case errors.Is(err, session.ErrSlotNotAvailable):
		h.logger.Warn("%s - %v", op, err)
		handlers.RespondConflict(w, msgSlotNotAvailable)

	case errors.Is(err, session.ErrSubmitInProgress):
		h.logger.Warn("%s - %v", op, err)
		handlers.RespondConflict(w, msgSubmitInProgress)

	default:
		createBookingHandler.WriteError(w, h.logger, op, err)
	}
}
