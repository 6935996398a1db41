package calendar

import (
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
)

// Layout вариант сетки месяца
type Layout string

const (
	// LayoutWeek 7 колонок Пн-Вс, выходные отображаются отключенными
	LayoutWeek Layout = "week"
	// LayoutWorkWeek 5 колонок Пн-Пт, выходные дни не отображаются
	LayoutWorkWeek Layout = "workweek"
)

// Columns возвращает число колонок сетки
func (l Layout) Columns() int {
	if l == LayoutWorkWeek {
		return 5
	}
	return 7
}

// IsValid проверяет, что вариант сетки известен
func (l Layout) IsValid() bool {
	return l == LayoutWeek || l == LayoutWorkWeek
}

// CellClass классификация дня в сетке
type CellClass string

const (
	ClassBlank          CellClass = "blank"
	ClassPast           CellClass = "past"
	ClassWeekend        CellClass = "weekend"
	ClassNeutral        CellClass = "neutral"
	ClassNoAvailability CellClass = "no_availability"
	ClassAvailable      CellClass = "available"
)

// Month видимый месяц календаря
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf возвращает месяц, содержащий дату
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First возвращает первое число месяца
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn возвращает количество дней в месяце
func (m Month) DaysIn() int {
	return m.First().AddDate(0, 1, -1).Day()
}

// Next сдвигает месяц вперед ровно на один (декабрь -> январь следующего года)
func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// Prev сдвигает месяц назад ровно на один
func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

// Cell ячейка сетки
type Cell struct {
	Day      int // 0 для пустой ячейки
	Date     time.Time
	Class    CellClass
	Disabled bool
	Selected bool
}

// IsBlank возвращает true для ведущей пустой ячейки
func (c Cell) IsBlank() bool {
	return c.Class == ClassBlank
}

// Grid сетка месяца: ведущие пустые ячейки, затем дни
type Grid struct {
	Month         Month
	Layout        Layout
	Doctor        domain.DoctorID
	LeadingBlanks int
	Cells         []Cell
}

// Weeks разбивает ячейки на строки по числу колонок
func (g Grid) Weeks() [][]Cell {
	cols := g.Layout.Columns()
	weeks := make([][]Cell, 0, len(g.Cells)/cols+1)
	for start := 0; start < len(g.Cells); start += cols {
		end := start + cols
		if end > len(g.Cells) {
			end = len(g.Cells)
		}
		weeks = append(weeks, g.Cells[start:end])
	}
	return weeks
}
