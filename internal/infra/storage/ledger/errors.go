package ledger

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключа нет в хранилище
	ErrKeyNotFound = errors.New("ledger.storage: key not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ledger.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("ledger.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ledger.storage: failed to scan row")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("ledger.storage: redis error")
)
