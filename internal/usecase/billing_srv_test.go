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

func seedAppointment(t *testing.T, f *fakes, patientName, services string, status entity.AppointmentStatus, date time.Time) *entity.Appointment {
	t.Helper()
	now := time.Now()
	appointment := &entity.Appointment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PatientName: patientName,
		Date:        date,
		TimeSlot:    "9:00 AM",
		Services:    services,
		Status:      status,
	}
	f.appointments.appointments = append(f.appointments.appointments, appointment)
	return appointment
}

func seedPatient(t *testing.T, f *fakes, name string, demographic entity.DemographicType) *entity.Patient {
	t.Helper()
	now := time.Now()
	patient := &entity.Patient{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            name,
		BirthDate:       time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC),
		DemographicType: demographic,
		Contact:         "0917-000-0000",
		Status:          entity.PatientStatusPending,
	}
	f.patients.patients = append(f.patients.patients, patient)
	return patient
}

func TestCalculateTotal_SeniorDiscount(t *testing.T) {
	repo, f := newFakeRepository()
	seedPatient(t, f, "Maria Santos", entity.DemographicSenior)
	seedAppointment(t, f, "Maria Santos", "Dental Cleaning, X-Ray",
		entity.AppointmentStatusBooked, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))

	svc := NewBillingService(repo, testLogger())

	quote, err := svc.CalculateTotal(context.Background(), "Maria Santos")
	if err != nil {
		t.Fatalf("CalculateTotal: %v", err)
	}

	if quote.BaseTotal != "1300.00" {
		t.Errorf("base total = %s, want 1300.00", quote.BaseTotal)
	}
	if quote.DiscountAmount != "260.00" {
		t.Errorf("discount = %s, want 260.00", quote.DiscountAmount)
	}
	if quote.FinalTotal != "1040.00" {
		t.Errorf("final total = %s, want 1040.00", quote.FinalTotal)
	}
	if quote.DemographicType != entity.DemographicSenior {
		t.Errorf("demographic = %s, want Senior", quote.DemographicType)
	}
	if len(quote.LineItems) != 2 {
		t.Errorf("line items = %d, want 2", len(quote.LineItems))
	}
}

func TestCalculateTotal_UnknownPatientFallsBackToRegular(t *testing.T) {
	repo, f := newFakeRepository()
	// appointment exists but no patient record was ever saved
	seedAppointment(t, f, "Walk-In Guest", "Dental Cleaning",
		entity.AppointmentStatusBooked, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	svc := NewBillingService(repo, testLogger())

	quote, err := svc.CalculateTotal(context.Background(), "Walk-In Guest")
	if err != nil {
		t.Fatalf("CalculateTotal: %v", err)
	}

	if quote.DemographicType != entity.DemographicRegular {
		t.Errorf("demographic = %s, want Regular fallback", quote.DemographicType)
	}
	if quote.FinalTotal != "500.00" {
		t.Errorf("final total = %s, want undiscounted 500.00", quote.FinalTotal)
	}
}

func TestCalculateTotal_NoAppointments(t *testing.T) {
	repo, f := newFakeRepository()
	seedPatient(t, f, "Juan Cruz", entity.DemographicRegular)

	svc := NewBillingService(repo, testLogger())

	_, err := svc.CalculateTotal(context.Background(), "Juan Cruz")
	if err == nil {
		t.Fatal("expected error for patient with no appointments")
	}
	if !strings.Contains(err.Error(), "no appointments found") {
		t.Errorf("error = %v, want no-appointments message", err)
	}
}

func TestCalculateTotal_SkipsCancelledAppointments(t *testing.T) {
	repo, f := newFakeRepository()
	seedPatient(t, f, "Ana Reyes", entity.DemographicStudent)
	seedAppointment(t, f, "Ana Reyes", "Dental Implant",
		entity.AppointmentStatusCancelled, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	seedAppointment(t, f, "Ana Reyes", "Dental Check-up",
		entity.AppointmentStatusBooked, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))

	svc := NewBillingService(repo, testLogger())

	quote, err := svc.CalculateTotal(context.Background(), "Ana Reyes")
	if err != nil {
		t.Fatalf("CalculateTotal: %v", err)
	}

	// the cancelled implant appointment is newer but must not be priced
	if quote.BaseTotal != "300.00" {
		t.Errorf("base total = %s, want 300.00 from the booked check-up", quote.BaseTotal)
	}
}

func TestGenerateReceipt_AppendsPaymentWithFinalTotal(t *testing.T) {
	repo, f := newFakeRepository()
	seedPatient(t, f, "Maria Santos", entity.DemographicSenior)
	appointment := seedAppointment(t, f, "Maria Santos", "Dental Cleaning, X-Ray",
		entity.AppointmentStatusBooked, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))

	svc := NewBillingService(repo, testLogger()).(*billingService)
	paidAt := time.Date(2026, 3, 20, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return paidAt }

	receipt, err := svc.GenerateReceipt(context.Background(), &request.GenerateReceiptRequest{
		PatientName: "Maria Santos",
		Method:      "GCash",
	})
	if err != nil {
		t.Fatalf("GenerateReceipt: %v", err)
	}

	if len(f.payments.payments) != 1 {
		t.Fatalf("payments stored = %d, want 1", len(f.payments.payments))
	}
	payment := f.payments.payments[0]
	if payment.Amount.StringFixed(2) != "1040.00" {
		t.Errorf("payment amount = %s, want discounted 1040.00", payment.Amount.StringFixed(2))
	}
	if payment.AppointmentID != appointment.ID {
		t.Errorf("payment appointment = %s, want %s", payment.AppointmentID, appointment.ID)
	}
	if payment.Method != entity.PaymentMethodGCash {
		t.Errorf("payment method = %s, want GCash", payment.Method)
	}
	if !payment.DatePaid.Equal(paidAt) {
		t.Errorf("date paid = %s, want %s", payment.DatePaid, paidAt)
	}

	for _, want := range []string{
		"Patient: Maria Santos",
		"Time: 9:00 AM",
		"Payment Method: GCash",
		"Total Amount: PHP 1,040.00",
		"Payment Date: 2026-03-20 09:30",
	} {
		if !strings.Contains(receipt.ReceiptText, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
	if receipt.Payment.Amount != "1040.00" {
		t.Errorf("response amount = %s, want 1040.00", receipt.Payment.Amount)
	}
}

func TestGenerateReceipt_RepricesAtReceiptTime(t *testing.T) {
	repo, f := newFakeRepository()
	patient := seedPatient(t, f, "Maria Santos", entity.DemographicRegular)
	seedAppointment(t, f, "Maria Santos", "Dental Cleaning",
		entity.AppointmentStatusBooked, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))

	svc := NewBillingService(repo, testLogger())

	quote, err := svc.CalculateTotal(context.Background(), "Maria Santos")
	if err != nil {
		t.Fatalf("CalculateTotal: %v", err)
	}
	if quote.FinalTotal != "500.00" {
		t.Fatalf("regular quote = %s, want 500.00", quote.FinalTotal)
	}

	// the demographic changes after the first quote; the receipt must use
	// the new rate, not the stale one
	patient.DemographicType = entity.DemographicSenior

	receipt, err := svc.GenerateReceipt(context.Background(), &request.GenerateReceiptRequest{
		PatientName: "Maria Santos",
		Method:      "Cash",
	})
	if err != nil {
		t.Fatalf("GenerateReceipt: %v", err)
	}

	if receipt.Payment.Amount != "400.00" {
		t.Errorf("receipt amount = %s, want repriced 400.00", receipt.Payment.Amount)
	}
}

func TestGenerateReceipt_RepeatedCallsAppendPayments(t *testing.T) {
	repo, f := newFakeRepository()
	seedAppointment(t, f, "Juan Cruz", "Dental Check-up",
		entity.AppointmentStatusBooked, time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC))

	svc := NewBillingService(repo, testLogger())
	req := &request.GenerateReceiptRequest{PatientName: "Juan Cruz", Method: "Cash"}

	for i := 0; i < 3; i++ {
		if _, err := svc.GenerateReceipt(context.Background(), req); err != nil {
			t.Fatalf("GenerateReceipt #%d: %v", i+1, err)
		}
	}

	if len(f.payments.payments) != 3 {
		t.Errorf("payments stored = %d, want 3 (append-only, no dedupe)", len(f.payments.payments))
	}
}

func TestGenerateReceipt_InvalidMethod(t *testing.T) {
	repo, _ := newFakeRepository()
	svc := NewBillingService(repo, testLogger())

	_, err := svc.GenerateReceipt(context.Background(), &request.GenerateReceiptRequest{
		PatientName: "Juan Cruz",
		Method:      "Cheque",
	})
	if err == nil {
		t.Fatal("expected error for unsupported payment method")
	}
}

func TestGetCatalog(t *testing.T) {
	repo, _ := newFakeRepository()
	svc := NewBillingService(repo, testLogger())

	services := svc.GetCatalog()
	if len(services) != 10 {
		t.Fatalf("catalog size = %d, want 10", len(services))
	}
	if services[0].Name != "Dental Cleaning" || services[0].Price != "500.00" {
		t.Errorf("first service = %s %s, want Dental Cleaning 500.00",
			services[0].Name, services[0].Price)
	}
}
