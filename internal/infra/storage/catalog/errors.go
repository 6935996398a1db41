package catalog

import "errors"

var (
	// ErrReadCatalog возвращается, когда файл каталога не удалось прочитать
	ErrReadCatalog = errors.New("catalog.repository: failed to read catalog")

	// ErrDecodeCatalog возвращается при ошибке разбора TOML
	ErrDecodeCatalog = errors.New("catalog.repository: failed to decode catalog")

	// ErrInvalidCatalog возвращается, когда данные каталога нарушают инварианты расписания
	ErrInvalidCatalog = errors.New("catalog.repository: invalid catalog")
)
