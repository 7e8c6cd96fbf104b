package wire

import (
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/adaptor"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAppointment(
	r chi.Router,
	appointmentHandler *adaptor.AppointmentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/appointments - Book an appointment
		r.Post("/api/appointments", appointmentHandler.BookAppointment)

		// GET /api/appointments?patient=NAME - Patient's active appointments
		r.Get("/api/appointments", appointmentHandler.GetPatientAppointments)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/appointments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/appointments - Appointments table
		r.Get("/", appointmentHandler.ListAppointments)

		// PUT /api/admin/appointments/{id}/status - Override appointment status
		r.Put("/{id}/status", appointmentHandler.UpdateAppointmentStatus)
	})
}
