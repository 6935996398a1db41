package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/views"
	createBooking "github.com/m04kA/SMC-ClinicBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDoctorNotFound     = "врач не найден"
	msgDateNotSelectable  = "на выбранную дату запись невозможна"
	msgSlotNotAvailable   = "выбранное время недоступно"
	msgTransportFailure   = "не удалось отправить заявку, попробуйте еще раз"
	msgTransportRejected  = "заявка отклонена сервером клиники"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fields, err := views.DecodeForm(r)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{Fields: fields})
	if err != nil {
		WriteError(w, h.logger, "POST /appointments", err)
		return
	}

	h.logger.Info("POST /appointments - Appointment accepted: reference=%s, outcome=%s", result.Reference, result.Outcome)
	handlers.RespondJSON(w, http.StatusCreated, views.FromBooking(result))
}

// WriteError отображает ошибки отправки заявки в HTTP ответ
func WriteError(w http.ResponseWriter, logger Logger, op string, err error) {
	switch {
	case errors.Is(err, createBooking.ErrInvalidInput):
		logger.Warn("%s - Validation failed: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, createBooking.ErrDoctorNotFound):
		logger.Warn("%s - Doctor not found: %v", op, err)
		handlers.RespondNotFound(w, msgDoctorNotFound)

	case errors.Is(err, createBooking.ErrDateNotSelectable):
		logger.Warn("%s - Date not selectable: %v", op, err)
		handlers.RespondBadRequest(w, msgDateNotSelectable)

	case errors.Is(err, createBooking.ErrSlotNotAvailable):
		logger.Warn("%s - Slot not available: %v", op, err)
		handlers.RespondConflict(w, msgSlotNotAvailable)

	case errors.Is(err, createBooking.ErrTransportFailure):
		logger.Error("%s - Transport failure: %v", op, err)
		handlers.RespondBadGateway(w, msgTransportFailure)

	case errors.Is(err, createBooking.ErrTransportRejected):
		logger.Warn("%s - Transport rejected: %v", op, err)
		handlers.RespondBadGateway(w, msgTransportRejected)

	default:
		logger.Error("%s - Failed to submit appointment: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
