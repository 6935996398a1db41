package get_booked_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

type LedgerService interface {
	BookedSlots(ctx context.Context, doctor domain.DoctorID, date time.Time) []types.TimeString
}

type Catalog interface {
	Has(doctor domain.DoctorID) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
