package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/views"
	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ClinicBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DoctorID   string               `json:"doctorId"`
	Date       string               `json:"date,omitempty"`
	State      string               `json:"state"`
	Selectable bool                 `json:"selectable"`
	Slots      []views.SlotResponse `json:"slots"`
}

// ToUseCaseRequest собирает запрос use case; пустая дата допустима
func ToUseCaseRequest(doctorID, dateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{Doctor: domain.DoctorID(doctorID)}
	if dateStr == "" {
		return req, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = date
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		DoctorID:   string(resp.Doctor),
		State:      string(resp.State),
		Selectable: resp.Selectable,
		Slots:      views.FromSlots(resp.Slots),
	}
	if !resp.Date.IsZero() {
		out.Date = resp.Date.Format(domain.DateFormat)
	}
	return out
}
