package dto

type AppointmentListDTO struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	DisplayTime  string   `json:"display_time"`
	Status       string   `json:"status"`
	CustomerName string   `json:"customer_name"`
	PetName      string   `json:"pet_name"`
	Services     []string `json:"services"`
}
