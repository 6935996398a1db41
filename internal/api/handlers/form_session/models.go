package form_session

import (
	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/session"
)

// SetDoctorRequest тело PUT /sessions/{id}/doctor; пустой doctorId снимает выбор
type SetDoctorRequest struct {
	DoctorID string `json:"doctorId"`
}

// SetDateRequest тело PUT /sessions/{id}/date: дата или день видимого месяца
type SetDateRequest struct {
	Date string `json:"date"`
	Day  int    `json:"day,omitempty"`
}

// SetTimeRequest тело PUT /sessions/{id}/time; пустое время снимает выбор
type SetTimeRequest struct {
	Time string `json:"time"`
}

// SelectionResponse текущий выбор
type SelectionResponse struct {
	DoctorID string `json:"doctorId,omitempty"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
}

// SessionResponse представление формы
type SessionResponse struct {
	ID          string                 `json:"id"`
	Selection   SelectionResponse      `json:"selection"`
	Calendar    views.CalendarResponse `json:"calendar"`
	SlotState   string                 `json:"slotState"`
	Selectable  bool                   `json:"selectable"`
	Slots       []views.SlotResponse   `json:"slots"`
	Submitting  bool                   `json:"submitting"`
	LastBooking *views.BookingResponse `json:"lastBooking,omitempty"`
}

// SubmitResponse результат отправки и обновленное представление
type SubmitResponse struct {
	Booking *views.BookingResponse `json:"booking"`
	Session SessionResponse        `json:"session"`
}

// FromView конвертирует представление сессии в HTTP модель
func FromView(v session.View) SessionResponse {
	selection := SelectionResponse{
		DoctorID: string(v.Selection.Doctor),
		Time:     v.Selection.Time.String(),
	}
	if !v.Selection.Date.IsZero() {
		selection.Date = v.Selection.Date.Format(domain.DateFormat)
	}

	return SessionResponse{
		ID:          v.ID,
		Selection:   selection,
		Calendar:    views.FromGrid(v.Calendar),
		SlotState:   string(v.SlotState),
		Selectable:  v.Selectable,
		Slots:       views.FromSlots(v.Slots),
		Submitting:  v.Submitting,
		LastBooking: views.FromBooking(v.LastBooking),
	}
}
