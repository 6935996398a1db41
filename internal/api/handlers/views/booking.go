package views

import (
	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/usecase/create_booking"
)

// BookingResponse HTTP модель принятой заявки
type BookingResponse struct {
	Reference string `json:"reference"`
	Outcome   string `json:"outcome"`
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Recorded  bool   `json:"recorded"`
}

// FromBooking конвертирует ответ use case отправки заявки
func FromBooking(resp *create_booking.Response) *BookingResponse {
	if resp == nil {
		return nil
	}
	return &BookingResponse{
		Reference: resp.Reference,
		Outcome:   string(resp.Outcome),
		DoctorID:  string(resp.Doctor),
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.Time.String(),
		Message:   resp.Message,
		Recorded:  resp.Recorded,
	}
}
