package ledger

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов; *sql.DB и *sql.Tx его реализуют
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
