package ledger

import "errors"

var (
	// ErrStorageUnavailable возвращается, когда хранилище журнала не отвечает при записи бронирования
	ErrStorageUnavailable = errors.New("ledger: storage unavailable")

	// ErrInvalidInput возвращается при некорректных аргументах записи
	ErrInvalidInput = errors.New("ledger: invalid input data")
)
