package get_booked_slots

// BookedSlotsResponse HTTP response model
type BookedSlotsResponse struct {
	DoctorID string   `json:"doctorId"`
	Date     string   `json:"date"`
	Key      string   `json:"key"`
	Times    []string `json:"times"`
}
