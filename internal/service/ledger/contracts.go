package ledger

import "context"

// Store хранилище ключ-значение журнала бронирований
type Store interface {
	// Get возвращает значение по ключу; отсутствие ключа - storage.ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Metrics счетчики сбоев хранилища
type Metrics interface {
	ObserveLedgerError(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
