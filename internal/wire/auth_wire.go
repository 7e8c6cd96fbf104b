package wire

import (
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/adaptor"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/admin/login - Admin portal sign in
	r.Post("/api/admin/login", authHandler.AdminLogin)

	// POST /api/patient/register - Patient portal account creation
	r.Post("/api/patient/register", authHandler.PatientRegister)

	// POST /api/patient/login - Patient portal sign in
	r.Post("/api/patient/login", authHandler.PatientLogin)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/logout - Revoke the presented session
		r.Post("/api/logout", authHandler.Logout)
	})
}
