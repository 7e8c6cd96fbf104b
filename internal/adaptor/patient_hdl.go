package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/request"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/usecase"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientHandler struct {
	service usecase.PatientService
	log     *zap.Logger
}

func NewPatientHandler(service usecase.PatientService, log *zap.Logger) *PatientHandler {
	return &PatientHandler{
		service: service,
		log:     log.With(zap.String("handler", "patient")),
	}
}

// SavePatient handles POST /api/patients (protected)
func (h *PatientHandler) SavePatient(w http.ResponseWriter, r *http.Request) {
	var req request.SavePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	patient, err := h.service.SavePatient(r.Context(), &req)
	if err != nil {
		writeServiceError(h.log, w, err, "save patient")
		return
	}

	utils.ResponseCreated(w, "success", patient)
}

// GetPatientByName handles GET /api/patients/{name} (protected)
func (h *PatientHandler) GetPatientByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		utils.ResponseBadRequest(w, "Patient name is required", nil)
		return
	}

	patient, err := h.service.GetPatientByName(r.Context(), name)
	if err != nil {
		writeServiceError(h.log, w, err, "get patient")
		return
	}

	utils.ResponseSuccess(w, "success", patient)
}

// ==================== ADMIN METHODS ====================

// ListPatients handles GET /api/admin/patients (admin only)
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.service.ListPatients(r.Context())
	if err != nil {
		writeServiceError(h.log, w, err, "list patients")
		return
	}

	utils.ResponseSuccess(w, "success", patients)
}

// UpdatePatientStatus handles PUT /api/admin/patients/{id}/status (admin only)
func (h *PatientHandler) UpdatePatientStatus(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "id")
	if patientID == "" {
		utils.ResponseBadRequest(w, "Patient ID is required", nil)
		return
	}

	var req request.UpdatePatientStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdatePatientStatus(r.Context(), patientID, &req); err != nil {
		writeServiceError(h.log, w, err, "update patient status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
