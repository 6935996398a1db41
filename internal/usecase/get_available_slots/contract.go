package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// Catalog интерфейс каталога расписаний
type Catalog interface {
	Has(doctor domain.DoctorID) bool
}

// Resolver интерфейс сервиса доступности
type Resolver interface {
	IsSelectableDate(date, today time.Time) bool
	AvailableSlots(ctx context.Context, doctor domain.DoctorID, date time.Time) []types.TimeString
}

// Metrics интерфейс метрик выдачи слотов
type Metrics interface {
	ObserveSlotsReturned(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
