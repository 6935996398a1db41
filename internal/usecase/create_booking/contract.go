package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/integrations/appointments"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// Catalog интерфейс каталога расписаний
type Catalog interface {
	Has(doctor domain.DoctorID) bool
}

// Resolver интерфейс сервиса доступности
type Resolver interface {
	IsSelectableDate(date, today time.Time) bool
	IsSlotAvailable(ctx context.Context, doctor domain.DoctorID, date time.Time, at types.TimeString) bool
}

// Ledger интерфейс журнала бронирований
type Ledger interface {
	RecordBooking(ctx context.Context, doctor domain.DoctorID, date time.Time, at types.TimeString) error
}

// Transport интерфейс клиента отправки заявок
type Transport interface {
	SubmitAppointment(ctx context.Context, fields map[string]string, reference string) (*appointments.Ack, error)
}

// Metrics интерфейс метрик бронирований
type Metrics interface {
	ObserveBooking(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
