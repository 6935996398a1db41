package calendar

import (
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
)

// Resolver сервис доступности, по которому классифицируются дни
type Resolver interface {
	HasAnyAvailability(doctor domain.DoctorID, day time.Weekday) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
