package appointments

import "errors"

var (
	// ErrRequestFailed возвращается, когда запрос не удалось выполнить (сеть, таймаут, отмена)
	ErrRequestFailed = errors.New("appointments client: request failed")

	// ErrRejected возвращается, когда сервер ответил неуспешным статусом
	ErrRejected = errors.New("appointments client: submission rejected")
)
