package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

//go:embed default_catalog.toml
var defaultCatalog []byte

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// catalogFile структура TOML-файла каталога
type catalogFile struct {
	Doctors map[string]doctorFile `toml:"doctors"`
}

type doctorFile struct {
	Name      string              `toml:"name"`
	Specialty string              `toml:"specialty"`
	Schedule  map[string][]string `toml:"schedule"`
}

// Load загружает каталог из файла; пустой путь означает встроенный каталог по умолчанию
func Load(path string) (*domain.ScheduleCatalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadCatalog, path, err)
	}

	return Parse(data)
}

// Default возвращает встроенный каталог
func Default() (*domain.ScheduleCatalog, error) {
	return Parse(defaultCatalog)
}

// Parse разбирает и валидирует TOML каталога
func Parse(data []byte) (*domain.ScheduleCatalog, error) {
	var file catalogFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeCatalog, err)
	}

	doctors := make([]domain.Doctor, 0, len(file.Doctors))
	for id, df := range file.Doctors {
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w: empty doctor id", ErrInvalidCatalog)
		}

		schedule, err := parseSchedule(df.Schedule)
		if err != nil {
			return nil, fmt.Errorf("%w: doctor %q: %v", ErrInvalidCatalog, id, err)
		}

		doctors = append(doctors, domain.Doctor{
			ID:        domain.DoctorID(id),
			Name:      df.Name,
			Specialty: df.Specialty,
			Schedule:  schedule,
		})
	}

	return domain.NewScheduleCatalog(doctors), nil
}

// parseSchedule проверяет, что время в формате HH:MM, строго возрастает и выходные пусты.
// Один день недели, записанный в разном регистре, считается ошибкой.
func parseSchedule(raw map[string][]string) (domain.WeekSchedule, error) {
	schedule := make(domain.WeekSchedule, len(raw))
	seen := make(map[time.Weekday]string, len(raw))

	for name, times := range raw {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		if prev, dup := seen[day]; dup {
			return nil, fmt.Errorf("weekday %q duplicates %q", name, prev)
		}
		seen[day] = name

		if domain.IsWeekend(day) {
			if len(times) > 0 {
				return nil, fmt.Errorf("weekend day %q must not offer slots", name)
			}
			continue
		}

		slots := make([]types.TimeString, 0, len(times))
		for i, value := range times {
			slot, err := types.NewTimeStringFromString(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %v", name, err)
			}
			if i > 0 && !slots[i-1].IsBefore(slot) {
				return nil, fmt.Errorf("%s: slots must be strictly increasing, got %s after %s", name, slot, slots[i-1])
			}
			slots = append(slots, slot)
		}

		if len(slots) > 0 {
			schedule[day] = slots
		}
	}

	return schedule, nil
}
