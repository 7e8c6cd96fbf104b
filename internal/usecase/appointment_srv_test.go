package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/request"

	"github.com/google/uuid"
)

func TestBookAppointment(t *testing.T) {
	repo, f := newFakeRepository()
	svc := NewAppointmentService(repo, testLogger())

	resp, err := svc.BookAppointment(context.Background(), &request.BookAppointmentRequest{
		PatientName: "Maria Santos",
		Date:        "2026-03-20",
		TimeSlot:    "9:00 AM",
		Services:    []string{"X-Ray", "Dental Cleaning"},
	})
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}

	if resp.Status != entity.AppointmentStatusBooked {
		t.Errorf("status = %s, want Booked", resp.Status)
	}
	// stored comma-joined in catalog order, not request order
	if resp.Services != "Dental Cleaning, X-Ray" {
		t.Errorf("services = %q, want catalog-ordered join", resp.Services)
	}
	if len(f.appointments.appointments) != 1 {
		t.Errorf("appointments stored = %d, want 1", len(f.appointments.appointments))
	}
}

func TestBookAppointment_NoServicesSentinel(t *testing.T) {
	repo, _ := newFakeRepository()
	svc := NewAppointmentService(repo, testLogger())

	resp, err := svc.BookAppointment(context.Background(), &request.BookAppointmentRequest{
		PatientName: "Juan Cruz",
		Date:        "2026-04-01",
		TimeSlot:    "1:00 PM",
		Services:    nil,
	})
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}

	if resp.Services != entity.NoServices {
		t.Errorf("services = %q, want %q", resp.Services, entity.NoServices)
	}
}

func TestBookAppointment_DuplicateServicesCollapsed(t *testing.T) {
	repo, _ := newFakeRepository()
	svc := NewAppointmentService(repo, testLogger())

	resp, err := svc.BookAppointment(context.Background(), &request.BookAppointmentRequest{
		PatientName: "Juan Cruz",
		Date:        "2026-04-01",
		TimeSlot:    "2:00 PM",
		Services:    []string{"X-Ray", "X-Ray", "X-Ray"},
	})
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}
	if resp.Services != "X-Ray" {
		t.Errorf("services = %q, want single X-Ray", resp.Services)
	}
}

func TestBookAppointment_Rejections(t *testing.T) {
	repo, _ := newFakeRepository()
	svc := NewAppointmentService(repo, testLogger())

	tests := []struct {
		name string
		req  request.BookAppointmentRequest
	}{
		{"unknown service", request.BookAppointmentRequest{
			PatientName: "X", Date: "2026-04-01", TimeSlot: "9:00 AM",
			Services: []string{"Haircut"}}},
		{"off-hours slot", request.BookAppointmentRequest{
			PatientName: "X", Date: "2026-04-01", TimeSlot: "11:00 AM",
			Services: []string{"X-Ray"}}},
		{"bad date", request.BookAppointmentRequest{
			PatientName: "X", Date: "04/01/2026", TimeSlot: "9:00 AM",
			Services: []string{"X-Ray"}}},
		{"missing patient name", request.BookAppointmentRequest{
			Date: "2026-04-01", TimeSlot: "9:00 AM", Services: []string{"X-Ray"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.BookAppointment(context.Background(), &tt.req); err == nil {
				t.Error("expected booking to be rejected")
			}
		})
	}
}

func TestBookAppointment_SharedSlotAllowed(t *testing.T) {
	repo, f := newFakeRepository()
	svc := NewAppointmentService(repo, testLogger())

	// two patients on the same date and slot both succeed
	for _, name := range []string{"Maria Santos", "Juan Cruz"} {
		_, err := svc.BookAppointment(context.Background(), &request.BookAppointmentRequest{
			PatientName: name,
			Date:        "2026-03-20",
			TimeSlot:    "10:00 AM",
			Services:    []string{"Dental Check-up"},
		})
		if err != nil {
			t.Fatalf("BookAppointment for %s: %v", name, err)
		}
	}

	if len(f.appointments.appointments) != 2 {
		t.Errorf("appointments stored = %d, want 2", len(f.appointments.appointments))
	}
}

func TestGetPatientAppointments_ExcludesCancelled(t *testing.T) {
	repo, f := newFakeRepository()
	seedAppointment(t, f, "Ana Reyes", "X-Ray",
		entity.AppointmentStatusBooked, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	seedAppointment(t, f, "Ana Reyes", "Dental Cleaning",
		entity.AppointmentStatusCancelled, time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC))
	seedAppointment(t, f, "Someone Else", "Root Canal",
		entity.AppointmentStatusBooked, time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC))

	svc := NewAppointmentService(repo, testLogger())

	appointments, err := svc.GetPatientAppointments(context.Background(), "Ana Reyes")
	if err != nil {
		t.Fatalf("GetPatientAppointments: %v", err)
	}
	if len(appointments) != 1 {
		t.Fatalf("appointments = %d, want 1", len(appointments))
	}
	if appointments[0].Services != "X-Ray" {
		t.Errorf("services = %q, want the booked X-Ray visit", appointments[0].Services)
	}
}

func TestUpdateAppointmentStatus_AnyToAny(t *testing.T) {
	statuses := []entity.AppointmentStatus{
		entity.AppointmentStatusBooked,
		entity.AppointmentStatusPending,
		entity.AppointmentStatusComplete,
		entity.AppointmentStatusCancelled,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			if from == to {
				continue
			}
			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				repo, f := newFakeRepository()
				appointment := seedAppointment(t, f, "Ana Reyes", "X-Ray",
					from, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))

				svc := NewAppointmentService(repo, testLogger())
				err := svc.UpdateAppointmentStatus(context.Background(), appointment.ID.String(),
					&request.UpdateAppointmentStatusRequest{Status: string(to)})
				if err != nil {
					t.Fatalf("UpdateAppointmentStatus %s -> %s: %v", from, to, err)
				}
				if appointment.Status != to {
					t.Errorf("status = %s, want %s", appointment.Status, to)
				}
			})
		}
	}
}

func TestUpdateAppointmentStatus_Errors(t *testing.T) {
	repo, f := newFakeRepository()
	appointment := seedAppointment(t, f, "Ana Reyes", "X-Ray",
		entity.AppointmentStatusBooked, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	svc := NewAppointmentService(repo, testLogger())

	t.Run("unknown id", func(t *testing.T) {
		err := svc.UpdateAppointmentStatus(context.Background(), uuid.NewString(),
			&request.UpdateAppointmentStatusRequest{Status: "Complete"})
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Errorf("error = %v, want not found", err)
		}
	})

	t.Run("bad status", func(t *testing.T) {
		err := svc.UpdateAppointmentStatus(context.Background(), appointment.ID.String(),
			&request.UpdateAppointmentStatusRequest{Status: "Done"})
		if err == nil {
			t.Error("expected error for unknown status")
		}
	})
}
