package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// Request модель запроса слотов. Пустой врач или нулевая дата допустимы.
type Request struct {
	Doctor domain.DoctorID
	Date   time.Time
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Doctor     domain.DoctorID
	Date       time.Time
	State      domain.SlotState // ready, selection_required или date_unavailable
	Selectable bool             // Дату можно выбрать (не прошлое и не выходной)
	Slots      []Slot           // Свободные слоты в порядке расписания
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время окончания слота
	DurationMinutes int              // Длительность слота в минутах
}
