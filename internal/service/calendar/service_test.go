package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// stubResolver прием только по понедельникам и средам
type stubResolver struct{}

func (stubResolver) HasAnyAvailability(_ domain.DoctorID, day time.Weekday) bool {
	return day == time.Monday || day == time.Wednesday
}

var wednesday = time.Date(2026, time.October, 21, 12, 0, 0, 0, time.UTC)

func newTestService(layout Layout) *Service {
	return NewService(stubResolver{}, layout).WithTimeProvider(fixedClock{now: wednesday})
}

func cellFor(t *testing.T, grid Grid, day int) Cell {
	t.Helper()
	for _, c := range grid.Cells {
		if c.Day == day {
			return c
		}
	}
	require.Failf(t, "cell not found", "day %d", day)
	return Cell{}
}

func TestMonth_Navigation(t *testing.T) {
	dec := Month{Year: 2026, Month: time.December}

	assert.Equal(t, Month{Year: 2027, Month: time.January}, dec.Next())
	assert.Equal(t, Month{Year: 2026, Month: time.November}, dec.Prev())
	assert.Equal(t, Month{Year: 2025, Month: time.December}, Month{Year: 2026, Month: time.January}.Prev())
	assert.Equal(t, 29, Month{Year: 2028, Month: time.February}.DaysIn())
	assert.Equal(t, 31, Month{Year: 2026, Month: time.October}.DaysIn())
}

func TestBuild_WeekLayout(t *testing.T) {
	svc := newTestService(LayoutWeek)

	grid := svc.Build(Month{Year: 2026, Month: time.October}, "", time.Time{})

	// 1 октября 2026 - четверг
	assert.Equal(t, 3, grid.LeadingBlanks)
	assert.Len(t, grid.Cells, 3+31)
	for i := 0; i < 3; i++ {
		assert.True(t, grid.Cells[i].IsBlank())
	}

	assert.Equal(t, ClassPast, cellFor(t, grid, 20).Class)
	assert.True(t, cellFor(t, grid, 20).Disabled)
	assert.Equal(t, ClassNeutral, cellFor(t, grid, 21).Class, "today is selectable")
	assert.Equal(t, ClassWeekend, cellFor(t, grid, 24).Class)
	assert.True(t, cellFor(t, grid, 24).Disabled)
	assert.Equal(t, ClassNeutral, cellFor(t, grid, 26).Class)

	weeks := grid.Weeks()
	assert.Len(t, weeks, 5)
	assert.Len(t, weeks[0], 7)
}

func TestBuild_DoctorClassification(t *testing.T) {
	svc := newTestService(LayoutWeek)

	grid := svc.Build(Month{Year: 2026, Month: time.October}, "pediatrics-captaincare", time.Time{})

	monday := cellFor(t, grid, 26)
	assert.Equal(t, ClassAvailable, monday.Class)
	assert.False(t, monday.Disabled)

	tuesday := cellFor(t, grid, 27)
	assert.Equal(t, ClassNoAvailability, tuesday.Class)
	assert.False(t, tuesday.Disabled, "no availability is a soft warning")

	assert.Equal(t, ClassPast, cellFor(t, grid, 19).Class, "past wins over availability")
	assert.Equal(t, ClassWeekend, cellFor(t, grid, 25).Class)
}

func TestBuild_SelectedMarker(t *testing.T) {
	svc := newTestService(LayoutWeek)
	selected := time.Date(2026, time.October, 26, 0, 0, 0, 0, time.Local)

	grid := svc.Build(Month{Year: 2026, Month: time.October}, "pediatrics-captaincare", selected)

	for _, c := range grid.Cells {
		assert.Equal(t, c.Day == 26, c.Selected, "day %d", c.Day)
	}
	assert.Equal(t, ClassAvailable, cellFor(t, grid, 26).Class, "selected keeps base class")

	other := svc.Build(Month{Year: 2026, Month: time.November}, "pediatrics-captaincare", selected)
	for _, c := range other.Cells {
		assert.False(t, c.Selected)
	}
}

func TestBuild_WorkWeekLayout(t *testing.T) {
	svc := newTestService(LayoutWorkWeek)

	// 1 ноября 2026 - воскресенье: ведущих пустых ячеек нет
	nov := svc.Build(Month{Year: 2026, Month: time.November}, "", time.Time{})
	assert.Equal(t, 0, nov.LeadingBlanks)
	assert.Len(t, nov.Cells, 21)
	assert.Equal(t, 2, nov.Cells[0].Day)
	for _, c := range nov.Cells {
		assert.False(t, domain.IsWeekend(c.Date.Weekday()))
	}

	// 1 октября 2026 - четверг: три пустые ячейки
	oct := svc.Build(Month{Year: 2026, Month: time.October}, "", time.Time{})
	assert.Equal(t, 3, oct.LeadingBlanks)
	assert.Len(t, oct.Weeks()[0], 5)

	// 1 августа 2026 - суббота
	aug := svc.Build(Month{Year: 2026, Month: time.August}, "", time.Time{})
	assert.Equal(t, 0, aug.LeadingBlanks)
	assert.Equal(t, 3, aug.Cells[0].Day)
}

func TestNewService_UnknownLayoutFallsBack(t *testing.T) {
	svc := NewService(stubResolver{}, Layout("sideways"))
	assert.Equal(t, LayoutWeek, svc.Layout())
	assert.Equal(t, 7, svc.Layout().Columns())
}
