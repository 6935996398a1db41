package session

import (
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/calendar"
	"github.com/m04kA/SMC-ClinicBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ClinicBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// Selection выбор пользователя (врач, дата, время).
// Время имеет смысл только при выбранных враче и дате.
type Selection struct {
	Doctor domain.DoctorID
	Date   time.Time
	Time   types.TimeString
}

// IsComplete возвращает true, когда выбраны врач, дата и время
func (s Selection) IsComplete() bool {
	return s.Doctor != "" && !s.Date.IsZero() && !s.Time.IsZero()
}

// View состояние формы для отрисовки
type View struct {
	ID           string
	Selection    Selection
	VisibleMonth calendar.Month
	Calendar     calendar.Grid
	SlotState    domain.SlotState
	Selectable   bool
	Slots        []get_available_slots.Slot
	Submitting   bool

	// LastBooking результат последней успешной отправки
	LastBooking *create_booking.Response
}
