package calendar

import (
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
)

// Service строит сетку месяца, размечая дни по доступности
type Service struct {
	resolver     Resolver
	layout       Layout
	timeProvider TimeProvider
}

// NewService создает генератор календаря; неизвестный вариант сетки заменяется на LayoutWeek
func NewService(resolver Resolver, layout Layout) *Service {
	if !layout.IsValid() {
		layout = LayoutWeek
	}
	return &Service{
		resolver:     resolver,
		layout:       layout,
		timeProvider: &RealTimeProvider{},
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Layout возвращает вариант сетки
func (s *Service) Layout() Layout {
	return s.layout
}

// Build строит сетку месяца для врача (может быть пустым) и выбранной даты (может быть нулевой)
func (s *Service) Build(month Month, doctor domain.DoctorID, selected time.Time) Grid {
	today := s.timeProvider.Now()
	first := month.First()
	daysInMonth := month.DaysIn()

	// Индекс дня недели с понедельника: 0=Пн .. 6=Вс
	offset := (int(first.Weekday()) + 6) % 7
	if s.layout == LayoutWorkWeek && offset > 4 {
		// месяц начинается в выходной: фантомных колонок нет
		offset = 0
	}

	grid := Grid{
		Month:         month,
		Layout:        s.layout,
		Doctor:        doctor,
		LeadingBlanks: offset,
		Cells:         make([]Cell, 0, offset+daysInMonth),
	}

	for i := 0; i < offset; i++ {
		grid.Cells = append(grid.Cells, Cell{Class: ClassBlank, Disabled: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(month.Year, month.Month, day, 0, 0, 0, 0, time.UTC)
		weekend := domain.IsWeekend(date.Weekday())
		if weekend && s.layout == LayoutWorkWeek {
			continue
		}

		cell := Cell{
			Day:   day,
			Date:  date,
			Class: s.classify(date, doctor, today),
		}
		cell.Disabled = cell.Class == ClassPast || cell.Class == ClassWeekend
		cell.Selected = !selected.IsZero() && domain.DateOnly(selected).Equal(date)

		grid.Cells = append(grid.Cells, cell)
	}

	return grid
}

// classify применяет правила по приоритету: прошлое, выходной, врач не выбран, нет приема, есть прием.
// "Нет приема" не блокирует выбор дня.
func (s *Service) classify(date time.Time, doctor domain.DoctorID, today time.Time) CellClass {
	switch {
	case domain.DateOnly(date).Before(domain.DateOnly(today)):
		return ClassPast
	case domain.IsWeekend(date.Weekday()):
		return ClassWeekend
	case doctor == "":
		return ClassNeutral
	case !s.resolver.HasAnyAvailability(doctor, date.Weekday()):
		return ClassNoAvailability
	default:
		return ClassAvailable
	}
}
