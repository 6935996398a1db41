package get_doctors

import "github.com/m04kA/SMC-ClinicBooking/internal/domain"

type Catalog interface {
	Doctors() []domain.Doctor
}
