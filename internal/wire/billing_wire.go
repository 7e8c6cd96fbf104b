package wire

import (
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/adaptor"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBilling(
	r chi.Router,
	billingHandler *adaptor.BillingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/services - Service price list (public)
	r.Get("/api/services", billingHandler.GetCatalog)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/billing/total?patient=NAME - Calculate amount owed
		r.Get("/api/billing/total", billingHandler.CalculateTotal)

		// POST /api/billing/receipt - Record payment and print receipt
		r.Post("/api/billing/receipt", billingHandler.GenerateReceipt)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/payments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/payments - Payments table
		r.Get("/", billingHandler.ListPayments)
	})
}
