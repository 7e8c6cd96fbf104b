package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/billing"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/request"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/response"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AppointmentService interface {
	BookAppointment(ctx context.Context, req *request.BookAppointmentRequest) (*response.AppointmentResponse, error)
	GetPatientAppointments(ctx context.Context, patientName string) ([]response.AppointmentResponse, error)

	// Admin
	ListAppointments(ctx context.Context) ([]response.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, req *request.UpdateAppointmentStatusRequest) error
}

type appointmentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAppointmentService(repo *repository.Repository, log *zap.Logger) AppointmentService {
	return &appointmentService{
		repo: repo,
		log:  log.With(zap.String("service", "appointment")),
	}
}

func (s *appointmentService) BookAppointment(ctx context.Context, req *request.BookAppointmentRequest) (*response.AppointmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book appointment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}

	if !entity.ValidTimeSlot(req.TimeSlot) {
		return nil, fmt.Errorf("invalid time slot %s", req.TimeSlot)
	}

	// selected services must come from the catalog; stored comma-joined in
	// catalog order, duplicates collapsed
	seen := make(map[string]bool, len(req.Services))
	for _, name := range req.Services {
		if _, ok := billing.LookupService(name); !ok {
			return nil, fmt.Errorf("service %s not found in catalog", name)
		}
		seen[name] = true
	}

	var names []string
	for _, svc := range billing.Catalog() {
		if seen[svc.Name] {
			names = append(names, svc.Name)
		}
	}

	servicesText := entity.NoServices
	if len(names) > 0 {
		servicesText = strings.Join(names, ", ")
	}

	// intentionally no slot-collision check: two bookings can share a slot
	now := time.Now()
	appointment := &entity.Appointment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PatientName: req.PatientName,
		Date:        date,
		TimeSlot:    req.TimeSlot,
		Services:    servicesText,
		Status:      entity.AppointmentStatusBooked,
	}

	if err := s.repo.Appointment.Create(ctx, appointment); err != nil {
		s.log.Error("Failed to book appointment",
			zap.Error(err),
			zap.String("patient_name", req.PatientName),
			zap.String("date", req.Date),
		)
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	s.log.Info("Appointment booked",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("patient_name", appointment.PatientName),
		zap.String("date", req.Date),
		zap.String("time_slot", appointment.TimeSlot),
		zap.String("services", appointment.Services),
	)

	resp := response.AppointmentToResponse(appointment)
	return &resp, nil
}

func (s *appointmentService) GetPatientAppointments(ctx context.Context, patientName string) ([]response.AppointmentResponse, error) {
	if patientName == "" {
		return nil, fmt.Errorf("patient name is required")
	}

	appointments, err := s.repo.Appointment.FindActiveByPatientName(ctx, patientName)
	if err != nil {
		s.log.Error("Failed to get patient appointments",
			zap.Error(err),
			zap.String("patient_name", patientName),
		)
		return nil, fmt.Errorf("get patient appointments: %w", err)
	}

	responses := make([]response.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = response.AppointmentToResponse(appointment)
	}

	return responses, nil
}

func (s *appointmentService) ListAppointments(ctx context.Context) ([]response.AppointmentResponse, error) {
	appointments, err := s.repo.Appointment.List(ctx)
	if err != nil {
		s.log.Error("Failed to list appointments", zap.Error(err))
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	responses := make([]response.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = response.AppointmentToResponse(appointment)
	}

	return responses, nil
}

func (s *appointmentService) UpdateAppointmentStatus(ctx context.Context, appointmentID string, req *request.UpdateAppointmentStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update appointment status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(appointmentID)
	if err != nil {
		return fmt.Errorf("invalid appointment ID format %s: %w", appointmentID, err)
	}

	status := entity.AppointmentStatus(req.Status)
	if !status.Valid() {
		return fmt.Errorf("invalid appointment status %s", req.Status)
	}

	if err := s.repo.Appointment.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update appointment status",
			zap.Error(err),
			zap.String("appointment_id", appointmentID),
			zap.String("status", req.Status),
		)
		return fmt.Errorf("update appointment status: %w", err)
	}

	s.log.Info("Appointment status updated",
		zap.String("appointment_id", appointmentID),
		zap.String("status", req.Status),
	)

	return nil
}
