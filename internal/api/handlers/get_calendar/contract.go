package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/calendar"
)

type CalendarService interface {
	Build(month calendar.Month, doctor domain.DoctorID, selected time.Time) calendar.Grid
}

type Catalog interface {
	Has(doctor domain.DoctorID) bool
}

// TimeProvider источник текущего месяца по умолчанию
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Warn(format string, v ...interface{})
}
