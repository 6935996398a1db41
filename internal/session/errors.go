package session

import "errors"

var (
	// ErrSessionNotFound возвращается для неизвестной или вытесненной по простою сессии
	ErrSessionNotFound = errors.New("session: not found")

	// ErrDoctorNotFound возвращается, когда врача нет в каталоге расписаний
	ErrDoctorNotFound = errors.New("session: doctor not found")

	// ErrDateNotSelectable возвращается при выборе прошедшей даты или выходного
	ErrDateNotSelectable = errors.New("session: date is not selectable")

	// ErrInvalidDay возвращается, когда дня нет в видимом месяце
	ErrInvalidDay = errors.New("session: day is outside of visible month")

	// ErrSlotNotAvailable возвращается, когда время нельзя выбрать для текущих врача и даты
	ErrSlotNotAvailable = errors.New("session: slot is not available")

	// ErrSubmitInProgress возвращается при повторной отправке, пока предыдущая не завершилась
	ErrSubmitInProgress = errors.New("session: submit already in progress")
)
