package request

type BookAppointmentRequest struct {
	PatientName string   `json:"patient_name" validate:"required,max=255"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot    string   `json:"time_slot" validate:"required,oneof='9:00 AM' '10:00 AM' '1:00 PM' '2:00 PM' '3:00 PM' '4:00 PM' '5:00 PM'"`
	Services    []string `json:"services" validate:"dive,required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Booked Pending Complete Cancelled"`
}
