package wire

import (
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/adaptor"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePatient(
	r chi.Router,
	patientHandler *adaptor.PatientHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/patients - Save patient information
		r.Post("/api/patients", patientHandler.SavePatient)

		// GET /api/patients/{name} - Look up a patient record by name
		r.Get("/api/patients/{name}", patientHandler.GetPatientByName)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/patients", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/patients - Patient records table
		r.Get("/", patientHandler.ListPatients)

		// PUT /api/admin/patients/{id}/status - Override record status
		r.Put("/{id}/status", patientHandler.UpdatePatientStatus)
	})
}
