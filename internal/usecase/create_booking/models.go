package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// SuccessMessage сообщение пользователю после принятой заявки
const SuccessMessage = "Appointment request submitted successfully! We will contact you soon to confirm."

// Request плоская запись формы записи на прием.
// Поля, которые движок не интерпретирует, передаются транспорту как есть.
type Request struct {
	Fields map[string]string
}

// Response модель ответа на принятую заявку
type Response struct {
	Reference string                // Ссылка на заявку (X-Request-ID)
	Outcome   domain.BookingOutcome // confirmed, offline или rejected_accepted
	Doctor    domain.DoctorID
	Date      time.Time
	Time      types.TimeString
	Message   string // Сообщение для пользователя

	// Recorded false, если журнал не удалось обновить
	Recorded bool
}

// Options политика отправки
type Options struct {
	Mode       domain.CommitMode
	VerifySlot bool
}
