package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/request"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/usecase"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"go.uber.org/zap"
)

type BillingHandler struct {
	service usecase.BillingService
	log     *zap.Logger
}

func NewBillingHandler(service usecase.BillingService, log *zap.Logger) *BillingHandler {
	return &BillingHandler{
		service: service,
		log:     log.With(zap.String("handler", "billing")),
	}
}

// GetCatalog handles GET /api/services (public)
func (h *BillingHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetCatalog())
}

// CalculateTotal handles GET /api/billing/total?patient=NAME (protected)
func (h *BillingHandler) CalculateTotal(w http.ResponseWriter, r *http.Request) {
	patientName := r.URL.Query().Get("patient")
	if patientName == "" {
		utils.ResponseBadRequest(w, "patient query parameter is required", nil)
		return
	}

	quote, err := h.service.CalculateTotal(r.Context(), patientName)
	if err != nil {
		writeServiceError(h.log, w, err, "calculate total")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// GenerateReceipt handles POST /api/billing/receipt (protected)
func (h *BillingHandler) GenerateReceipt(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	receipt, err := h.service.GenerateReceipt(r.Context(), &req)
	if err != nil {
		writeServiceError(h.log, w, err, "generate receipt")
		return
	}

	utils.ResponseCreated(w, "success", receipt)
}

// ==================== ADMIN METHODS ====================

// ListPayments handles GET /api/admin/payments (admin only)
func (h *BillingHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListPayments(r.Context())
	if err != nil {
		writeServiceError(h.log, w, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}
