package entity

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "Booked"
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusComplete  AppointmentStatus = "Complete"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Valid reports whether s is a known appointment status. Transitions are
// unrestricted: the admin can move any status to any other.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusBooked, AppointmentStatusPending, AppointmentStatusComplete, AppointmentStatusCancelled:
		return true
	}
	return false
}

// TimeSlots is the clinic's fixed set of bookable slots.
var TimeSlots = []string{
	"9:00 AM", "10:00 AM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// NoServices is stored in the services column when a booking selects nothing.
const NoServices = "No services"

// Appointment references its patient by name only. No foreign key exists and
// the amount owed is never stored here; it is derived at payment time.
type Appointment struct {
	Base
	PatientName string            `db:"patient_name"`
	Date        time.Time         `db:"date"`
	TimeSlot    string            `db:"time_slot"`
	Services    string            `db:"services"`
	Status      AppointmentStatus `db:"status"`
}
