package views

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers"
)

// ErrInvalidForm возвращается, когда тело не является плоской JSON записью
var ErrInvalidForm = errors.New("views: form must be a flat JSON object")

// DecodeForm читает плоскую запись формы. Строки берутся как есть,
// числа и булевы значения в их JSON записи, null пропускается.
func DecodeForm(r *http.Request) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := handlers.DecodeJSON(r, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		text := strings.TrimSpace(string(value))
		switch {
		case text == "null":
			continue
		case strings.HasPrefix(text, `"`):
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return nil, fmt.Errorf("%w: field %s: %v", ErrInvalidForm, key, err)
			}
			fields[key] = s
		case strings.HasPrefix(text, "{"), strings.HasPrefix(text, "["):
			return nil, fmt.Errorf("%w: field %s is not a scalar", ErrInvalidForm, key)
		default:
			fields[key] = text
		}
	}

	return fields, nil
}
