package get_doctors

import "github.com/m04kA/SMC-ClinicBooking/internal/domain"

// DoctorResponse HTTP response model
type DoctorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

func FromDoctors(doctors []domain.Doctor) []DoctorResponse {
	resp := make([]DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		resp = append(resp, DoctorResponse{ID: string(d.ID), Name: d.Name, Specialty: d.Specialty})
	}
	return resp
}
