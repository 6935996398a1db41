package get_doctor_schedule

import (
	"strings"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
)

// ScheduleResponse HTTP response model: дни недели monday..friday -> времена приема
type ScheduleResponse struct {
	DoctorID  string              `json:"doctorId"`
	Name      string              `json:"name"`
	Specialty string              `json:"specialty"`
	Schedule  map[string][]string `json:"schedule"`
}

// FromDoctor конвертирует врача каталога в HTTP response; дни без приема имеют пустой список
func FromDoctor(d domain.Doctor) *ScheduleResponse {
	schedule := make(map[string][]string, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		times := make([]string, 0, len(d.Schedule[day]))
		for _, t := range d.Schedule[day] {
			times = append(times, t.String())
		}
		schedule[strings.ToLower(day.String())] = times
	}

	return &ScheduleResponse{
		DoctorID:  string(d.ID),
		Name:      d.Name,
		Specialty: d.Specialty,
		Schedule:  schedule,
	}
}
