package domain

import (
	"time"

	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// BookingKey составной ключ журнала бронирований (врач, дата)
type BookingKey struct {
	Doctor DoctorID
	Date   time.Time
}

// String возвращает ключ хранилища в формате "bookings_<doctor>_<YYYY-MM-DD>"
func (k BookingKey) String() string {
	return LedgerKeyPrefix + string(k.Doctor) + "_" + k.Date.Format(DateFormat)
}

// Appointment заявка на прием, собранная формой записи
type Appointment struct {
	Name        string
	Age         string
	DateOfBirth string
	Doctor      DoctorID
	Date        time.Time
	Time        types.TimeString
	Message     string

	// Extra поля формы, которые движок не интерпретирует и передает как есть
	Extra map[string]string
}

// Key возвращает ключ журнала для заявки
func (a *Appointment) Key() BookingKey {
	return BookingKey{Doctor: a.Doctor, Date: a.Date}
}

// Fields возвращает плоскую запись формы для транспорта отправки
func (a *Appointment) Fields() map[string]string {
	fields := make(map[string]string, len(a.Extra)+7)
	for k, v := range a.Extra {
		fields[k] = v
	}
	fields[FieldName] = a.Name
	fields[FieldDoctor] = string(a.Doctor)
	fields[FieldDate] = a.Date.Format(DateFormat)
	fields[FieldTime] = a.Time.String()
	if a.Age != "" {
		fields[FieldAge] = a.Age
	}
	if a.DateOfBirth != "" {
		fields[FieldDateOfBirth] = a.DateOfBirth
	}
	if a.Message != "" {
		fields[FieldMessage] = a.Message
	}
	return fields
}
