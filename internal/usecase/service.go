package usecase

import (
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Patient     PatientService
	Appointment AppointmentService
	Billing     BillingService
	Dashboard   DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Patient:     NewPatientService(repo, log),
		Appointment: NewAppointmentService(repo, log),
		Billing:     NewBillingService(repo, log),
		Dashboard:   NewDashboardService(repo, log),
	}
}
