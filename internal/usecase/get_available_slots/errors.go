package get_available_slots

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врача нет в каталоге расписаний
	ErrDoctorNotFound = errors.New("get_available_slots: doctor not found")
)
