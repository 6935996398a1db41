package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// interpretedFields поля, которые разбираются в Appointment; остальные идут в Extra
var interpretedFields = map[string]struct{}{
	domain.FieldName:        {},
	domain.FieldAge:         {},
	domain.FieldDateOfBirth: {},
	domain.FieldDoctor:      {},
	domain.FieldDate:        {},
	domain.FieldTime:        {},
	domain.FieldMessage:     {},
}

// parseRequest проверяет обязательные поля и собирает заявку
func parseRequest(req *Request) (*domain.Appointment, error) {
	if req == nil || req.Fields == nil {
		return nil, fmt.Errorf("%w: empty form", ErrInvalidInput)
	}

	// field для проверки наличия и разбора; в заявку свободные поля уходят как есть
	field := func(name string) string {
		return strings.TrimSpace(req.Fields[name])
	}

	if field(domain.FieldName) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if field(domain.FieldAge) == "" && field(domain.FieldDateOfBirth) == "" {
		return nil, fmt.Errorf("%w: age or dateOfBirth is required", ErrInvalidInput)
	}

	if field(domain.FieldDoctor) == "" {
		return nil, fmt.Errorf("%w: doctor is required", ErrInvalidInput)
	}

	if field(domain.FieldDate) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := time.Parse(domain.DateFormat, field(domain.FieldDate))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if field(domain.FieldTime) == "" {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	at, err := types.NewTimeStringFromString(field(domain.FieldTime))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	appointment := &domain.Appointment{
		Name:        req.Fields[domain.FieldName],
		Age:         req.Fields[domain.FieldAge],
		DateOfBirth: req.Fields[domain.FieldDateOfBirth],
		Doctor:      domain.DoctorID(field(domain.FieldDoctor)),
		Date:        date,
		Time:        at,
		Message:     req.Fields[domain.FieldMessage],
		Extra:       make(map[string]string),
	}

	for k, v := range req.Fields {
		if _, ok := interpretedFields[k]; !ok {
			appointment.Extra[k] = v
		}
	}

	return appointment, nil
}
