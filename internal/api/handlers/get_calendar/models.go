package get_calendar

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/calendar"
)

var errInvalidParams = errors.New("invalid calendar parameters")

// calendarQuery разобранные параметры запроса
type calendarQuery struct {
	Month    calendar.Month
	Doctor   domain.DoctorID
	Selected time.Time
}

// parseQuery разбирает year, month, doctorId, selectedDate.
// Без year и month берется месяц выбранной даты, иначе текущий.
func parseQuery(q url.Values, now time.Time) (*calendarQuery, error) {
	res := &calendarQuery{
		Month:  calendar.MonthOf(now),
		Doctor: domain.DoctorID(q.Get("doctorId")),
	}

	if s := q.Get("selectedDate"); s != "" {
		selected, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, fmt.Errorf("%w: selectedDate: %v", errInvalidParams, err)
		}
		res.Selected = selected
		res.Month = calendar.MonthOf(selected)
	}

	yearStr, monthStr := q.Get("year"), q.Get("month")
	if yearStr == "" && monthStr == "" {
		return res, nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return nil, fmt.Errorf("%w: year", errInvalidParams)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month", errInvalidParams)
	}
	res.Month = calendar.Month{Year: year, Month: time.Month(month)}

	return res, nil
}
