package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/request"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/response"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PatientService interface {
	SavePatient(ctx context.Context, req *request.SavePatientRequest) (*response.PatientResponse, error)
	GetPatientByName(ctx context.Context, name string) (*response.PatientResponse, error)
	ListPatients(ctx context.Context) ([]response.PatientResponse, error)

	// Admin
	UpdatePatientStatus(ctx context.Context, patientID string, req *request.UpdatePatientStatusRequest) error
}

type patientService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPatientService(repo *repository.Repository, log *zap.Logger) PatientService {
	return &patientService{
		repo: repo,
		log:  log.With(zap.String("service", "patient")),
	}
}

func (s *patientService) SavePatient(ctx context.Context, req *request.SavePatientRequest) (*response.PatientResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Save patient validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth date %s: %w", req.BirthDate, err)
	}

	// every new record starts Pending; only the admin moves it after that
	now := time.Now()
	patient := &entity.Patient{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.Name,
		BirthDate:       birthDate,
		DemographicType: entity.DemographicType(req.DemographicType),
		Contact:         req.Contact,
		Status:          entity.PatientStatusPending,
	}

	if err := s.repo.Patient.Create(ctx, patient); err != nil {
		s.log.Error("Failed to save patient", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("save patient: %w", err)
	}

	s.log.Info("Patient saved",
		zap.String("patient_id", patient.ID.String()),
		zap.String("name", patient.Name),
		zap.String("demographic_type", string(patient.DemographicType)),
	)

	resp := response.PatientToResponse(patient)
	return &resp, nil
}

func (s *patientService) GetPatientByName(ctx context.Context, name string) (*response.PatientResponse, error) {
	if name == "" {
		return nil, fmt.Errorf("patient name is required")
	}

	patient, err := s.repo.Patient.FindByName(ctx, name)
	if err != nil {
		s.log.Error("Failed to get patient", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if patient == nil {
		return nil, fmt.Errorf("patient %s not found", name)
	}

	resp := response.PatientToResponse(patient)
	return &resp, nil
}

func (s *patientService) ListPatients(ctx context.Context) ([]response.PatientResponse, error) {
	patients, err := s.repo.Patient.List(ctx)
	if err != nil {
		s.log.Error("Failed to list patients", zap.Error(err))
		return nil, fmt.Errorf("list patients: %w", err)
	}

	responses := make([]response.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = response.PatientToResponse(patient)
	}

	return responses, nil
}

func (s *patientService) UpdatePatientStatus(ctx context.Context, patientID string, req *request.UpdatePatientStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update patient status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(patientID)
	if err != nil {
		return fmt.Errorf("invalid patient ID format %s: %w", patientID, err)
	}

	status := entity.PatientStatus(req.Status)
	if !status.Valid() {
		return fmt.Errorf("invalid patient status %s", req.Status)
	}

	// any current status may move to any other, no guard
	if err := s.repo.Patient.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update patient status",
			zap.Error(err),
			zap.String("patient_id", patientID),
			zap.String("status", req.Status),
		)
		return fmt.Errorf("update patient status: %w", err)
	}

	s.log.Info("Patient status updated",
		zap.String("patient_id", patientID),
		zap.String("status", req.Status),
	)

	return nil
}
