package views

import (
	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/calendar"
)

// CalendarResponse сетка месяца для отрисовки
type CalendarResponse struct {
	Year          int              `json:"year"`
	Month         int              `json:"month"`
	Layout        string           `json:"layout"`
	Columns       int              `json:"columns"`
	DoctorID      string           `json:"doctorId,omitempty"`
	LeadingBlanks int              `json:"leadingBlanks"`
	Weeks         [][]CellResponse `json:"weeks"`
}

// CellResponse ячейка сетки; у пустой ячейки day = 0 и нет даты
type CellResponse struct {
	Day      int    `json:"day"`
	Date     string `json:"date,omitempty"`
	Class    string `json:"class"`
	Disabled bool   `json:"disabled"`
	Selected bool   `json:"selected,omitempty"`
}

// FromGrid конвертирует сетку генератора календаря в HTTP модель
func FromGrid(grid calendar.Grid) CalendarResponse {
	weeks := grid.Weeks()
	resp := CalendarResponse{
		Year:          grid.Month.Year,
		Month:         int(grid.Month.Month),
		Layout:        string(grid.Layout),
		Columns:       grid.Layout.Columns(),
		DoctorID:      string(grid.Doctor),
		LeadingBlanks: grid.LeadingBlanks,
		Weeks:         make([][]CellResponse, 0, len(weeks)),
	}

	for _, week := range weeks {
		row := make([]CellResponse, 0, len(week))
		for _, cell := range week {
			c := CellResponse{
				Day:      cell.Day,
				Class:    string(cell.Class),
				Disabled: cell.Disabled,
				Selected: cell.Selected,
			}
			if !cell.IsBlank() {
				c.Date = cell.Date.Format(domain.DateFormat)
			}
			row = append(row, c)
		}
		resp.Weeks = append(resp.Weeks, row)
	}

	return resp
}
