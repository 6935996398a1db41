package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// LedgerKeyPrefix префикс ключей журнала бронирований: "bookings_" + doctor + "_" + date
const LedgerKeyPrefix = "bookings_"

// Поля формы записи, которые движок интерпретирует
const (
	FieldName        = "name"
	FieldAge         = "age"
	FieldDateOfBirth = "dateOfBirth"
	FieldDoctor      = "doctor"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldMessage     = "message"
)

// Weekdays рабочие дни недели в порядке отображения
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// IsWeekend возвращает true для субботы и воскресенья
func IsWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}

// DateOnly отбрасывает время суток и часовой пояс, оставляя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DefaultSlotDurationMinutes шаг слотов в каталоге расписаний
const DefaultSlotDurationMinutes = 30
