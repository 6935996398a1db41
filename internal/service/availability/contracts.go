package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// Catalog каталог предлагаемых слотов
type Catalog interface {
	SlotsFor(doctor domain.DoctorID, day time.Weekday) []types.TimeString
}

// Ledger журнал занятых слотов
type Ledger interface {
	BookedSlots(ctx context.Context, doctor domain.DoctorID, date time.Time) []types.TimeString
}
