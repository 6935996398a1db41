package get_available_slots

import (
	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// toSlots дополняет времена начала длительностью шага каталога.
// Слот, выходящий за полночь, получает пустое время окончания.
func toSlots(times []types.TimeString) []Slot {
	slots := make([]Slot, 0, len(times))
	for _, start := range times {
		end, err := start.AddMinutes(domain.DefaultSlotDurationMinutes)
		if err != nil {
			end = ""
		}
		slots = append(slots, Slot{
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: domain.DefaultSlotDurationMinutes,
		})
	}
	return slots
}
