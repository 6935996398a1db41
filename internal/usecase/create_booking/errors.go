package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается, когда не заполнено обязательное поле формы или оно некорректно
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDoctorNotFound возвращается, когда врача нет в каталоге расписаний
	ErrDoctorNotFound = errors.New("create_booking: doctor not found")

	// ErrDateNotSelectable возвращается для прошедшей даты или выходного
	ErrDateNotSelectable = errors.New("create_booking: date is not selectable")

	// ErrSlotNotAvailable возвращается, когда время не предлагается или уже занято
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTransportFailure возвращается, когда запрос отправки не удалось выполнить.
	// Журнал не меняется, выбор пользователя сохраняется.
	ErrTransportFailure = errors.New("create_booking: submission transport failure")

	// ErrTransportRejected возвращается только в строгом режиме при неуспешном ответе транспорта
	ErrTransportRejected = errors.New("create_booking: submission rejected")
)
