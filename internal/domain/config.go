package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// DoctorID ключ врача в каталоге расписаний (например, "pediatrics-captaincare")
type DoctorID string

// WeekSchedule слоты приема по дням недели; выходные всегда пустые
type WeekSchedule map[time.Weekday][]types.TimeString

// Doctor врач с недельным расписанием приема
type Doctor struct {
	ID        DoctorID
	Name      string
	Specialty string
	Schedule  WeekSchedule
}

// ScheduleCatalog неизменяемый каталог расписаний врачей
type ScheduleCatalog struct {
	doctors map[DoctorID]Doctor
}

// NewScheduleCatalog создает каталог; расписания копируются
func NewScheduleCatalog(doctors []Doctor) *ScheduleCatalog {
	c := &ScheduleCatalog{doctors: make(map[DoctorID]Doctor, len(doctors))}
	for _, d := range doctors {
		schedule := make(WeekSchedule, len(d.Schedule))
		for day, slots := range d.Schedule {
			if IsWeekend(day) || len(slots) == 0 {
				continue
			}
			schedule[day] = append([]types.TimeString(nil), slots...)
		}
		d.Schedule = schedule
		c.doctors[d.ID] = d
	}
	return c
}

// SlotsFor возвращает предлагаемые слоты врача на день недели.
// Неизвестный врач, выходной или день без приема дают пустой список, а не ошибку.
func (c *ScheduleCatalog) SlotsFor(doctor DoctorID, day time.Weekday) []types.TimeString {
	if c == nil || IsWeekend(day) {
		return []types.TimeString{}
	}
	d, ok := c.doctors[doctor]
	if !ok {
		return []types.TimeString{}
	}
	return append([]types.TimeString{}, d.Schedule[day]...)
}

// Has возвращает true, если врач есть в каталоге
func (c *ScheduleCatalog) Has(doctor DoctorID) bool {
	if c == nil {
		return false
	}
	_, ok := c.doctors[doctor]
	return ok
}

// Doctor возвращает врача по ключу
func (c *ScheduleCatalog) Doctor(id DoctorID) (Doctor, bool) {
	if c == nil {
		return Doctor{}, false
	}
	d, ok := c.doctors[id]
	return d, ok
}

// Doctors возвращает всех врачей, отсортированных по ключу
func (c *ScheduleCatalog) Doctors() []Doctor {
	if c == nil {
		return nil
	}
	result := make([]Doctor, 0, len(c.doctors))
	for _, d := range c.doctors {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
