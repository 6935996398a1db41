package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/calendar"
	"github.com/m04kA/SMC-ClinicBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ClinicBooking/internal/usecase/get_available_slots"
)

// Catalog интерфейс каталога расписаний
type Catalog interface {
	Has(doctor domain.DoctorID) bool
}

// Resolver интерфейс сервиса доступности
type Resolver interface {
	IsSelectableDate(date, today time.Time) bool
}

// SlotsUseCase интерфейс расчета списка слотов
type SlotsUseCase interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// BookingUseCase интерфейс отправки заявки
type BookingUseCase interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// CalendarBuilder интерфейс генератора сетки месяца
type CalendarBuilder interface {
	Build(month calendar.Month, doctor domain.DoctorID, selected time.Time) calendar.Grid
}

// Renderer получает новое представление после каждого изменения выбора или видимого месяца
type Renderer interface {
	Render(view View)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
