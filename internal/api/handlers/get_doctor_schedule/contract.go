package get_doctor_schedule

import "github.com/m04kA/SMC-ClinicBooking/internal/domain"

type Catalog interface {
	Doctor(id domain.DoctorID) (domain.Doctor, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
