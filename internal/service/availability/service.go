package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// Service вычисляет, какие даты можно выбрать и какие слоты свободны.
// Все вычисления чистые относительно каталога и журнала.
type Service struct {
	catalog Catalog
	ledger  Ledger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(catalog Catalog, ledger Ledger) *Service {
	return &Service{
		catalog: catalog,
		ledger:  ledger,
	}
}

// IsSelectableDate возвращает false для дат раньше today (сравниваются только даты) и для выходных.
// Не зависит от врача.
func (s *Service) IsSelectableDate(date, today time.Time) bool {
	if isDateInPast(date, today) {
		return false
	}
	return !domain.IsWeekend(date.Weekday())
}

// AvailableSlots возвращает предлагаемые слоты за вычетом занятых, в порядке каталога.
// Пустой врач или нулевая дата дают пустой список; вызывающий должен показать
// состояние "выберите врача и дату", а не "нет слотов".
func (s *Service) AvailableSlots(ctx context.Context, doctor domain.DoctorID, date time.Time) []types.TimeString {
	if doctor == "" || date.IsZero() {
		return []types.TimeString{}
	}

	date = domain.DateOnly(date)
	offered := s.catalog.SlotsFor(doctor, date.Weekday())
	if len(offered) == 0 {
		return []types.TimeString{}
	}

	booked := make(map[types.TimeString]struct{})
	for _, t := range s.ledger.BookedSlots(ctx, doctor, date) {
		booked[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(offered))
	for _, t := range offered {
		if _, taken := booked[t]; !taken {
			available = append(available, t)
		}
	}

	return available
}

// IsSlotAvailable возвращает true, если время есть в AvailableSlots
func (s *Service) IsSlotAvailable(ctx context.Context, doctor domain.DoctorID, date time.Time, at types.TimeString) bool {
	for _, t := range s.AvailableSlots(ctx, doctor, date) {
		if t == at {
			return true
		}
	}
	return false
}

// HasAnyAvailability проверяет наличие приема у врача в этот день недели.
// Занятость из журнала не учитывается: это подсказка уровня расписания для календаря.
func (s *Service) HasAnyAvailability(doctor domain.DoctorID, day time.Weekday) bool {
	return len(s.catalog.SlotsFor(doctor, day)) > 0
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня (время суток не учитывается)
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
