package response

import (
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
)

type AppointmentResponse struct {
	ID          string                   `json:"id"`
	PatientName string                   `json:"patient_name"`
	Date        string                   `json:"date"`
	TimeSlot    string                   `json:"time_slot"`
	Services    string                   `json:"services"`
	Status      entity.AppointmentStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
}

func AppointmentToResponse(appointment *entity.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          appointment.ID.String(),
		PatientName: appointment.PatientName,
		Date:        appointment.Date.Format("2006-01-02"),
		TimeSlot:    appointment.TimeSlot,
		Services:    appointment.Services,
		Status:      appointment.Status,
		CreatedAt:   appointment.CreatedAt,
	}
}
