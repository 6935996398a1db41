package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

func testCatalog() *ScheduleCatalog {
	return NewScheduleCatalog([]Doctor{
		{
			ID:   "pediatrics-captaincare",
			Name: "Dr. Captain Care",
			Schedule: WeekSchedule{
				time.Monday:   {"09:00", "09:30", "10:00", "10:30", "11:00"},
				time.Saturday: {"10:00"},
			},
		},
		{ID: "cardiology-hearthero", Schedule: WeekSchedule{time.Monday: {"14:00"}}},
	})
}

func TestScheduleCatalog_SlotsFor(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t,
		[]types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"},
		catalog.SlotsFor("pediatrics-captaincare", time.Monday))
	assert.Empty(t, catalog.SlotsFor("pediatrics-captaincare", time.Tuesday))
	assert.Empty(t, catalog.SlotsFor("pediatrics-captaincare", time.Saturday), "weekend entries are dropped")
	assert.Empty(t, catalog.SlotsFor("unknown-doctor", time.Monday))
	assert.NotNil(t, catalog.SlotsFor("unknown-doctor", time.Monday))
}

func TestScheduleCatalog_SlotsForReturnsCopy(t *testing.T) {
	catalog := testCatalog()

	slots := catalog.SlotsFor("pediatrics-captaincare", time.Monday)
	slots[0] = "23:00"

	assert.Equal(t, types.TimeString("09:00"), catalog.SlotsFor("pediatrics-captaincare", time.Monday)[0])
}

func TestScheduleCatalog_Doctors(t *testing.T) {
	doctors := testCatalog().Doctors()

	if assert.Len(t, doctors, 2) {
		assert.Equal(t, DoctorID("cardiology-hearthero"), doctors[0].ID)
		assert.Equal(t, DoctorID("pediatrics-captaincare"), doctors[1].ID)
	}
}

func TestBookingKey_String(t *testing.T) {
	key := BookingKey{
		Doctor: "pediatrics-captaincare",
		Date:   time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "bookings_pediatrics-captaincare_2026-10-19", key.String())
}

func TestAppointment_FieldsPassThroughExtra(t *testing.T) {
	a := Appointment{
		Name:    "Ada",
		Age:     "7",
		Doctor:  "pediatrics-captaincare",
		Date:    time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
		Time:    "09:30",
		Message: "first visit",
		Extra:   map[string]string{"phone": "555-0100"},
	}

	fields := a.Fields()

	assert.Equal(t, map[string]string{
		"name":    "Ada",
		"age":     "7",
		"doctor":  "pediatrics-captaincare",
		"date":    "2026-10-19",
		"time":    "09:30",
		"message": "first visit",
		"phone":   "555-0100",
	}, fields)
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Saturday))
	assert.True(t, IsWeekend(time.Sunday))
	assert.False(t, IsWeekend(time.Friday))
}
