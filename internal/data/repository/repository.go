package repository

import (
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	AdminAccount   AdminAccountRepository
	PatientAccount PatientAccountRepository
	Session        SessionRepository
	Patient        PatientRepository
	Appointment    AppointmentRepository
	Payment        PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		AdminAccount:   NewAdminAccountRepository(db, log),
		PatientAccount: NewPatientAccountRepository(db, log),
		Session:        NewSessionRepository(db, log),
		Patient:        NewPatientRepository(db, log),
		Appointment:    NewAppointmentRepository(db, log),
		Payment:        NewPaymentRepository(db, log),
	}
}
