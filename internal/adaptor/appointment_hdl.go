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

type AppointmentHandler struct {
	service usecase.AppointmentService
	log     *zap.Logger
}

func NewAppointmentHandler(service usecase.AppointmentService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "appointment")),
	}
}

// BookAppointment handles POST /api/appointments (protected)
func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req request.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	appointment, err := h.service.BookAppointment(r.Context(), &req)
	if err != nil {
		writeServiceError(h.log, w, err, "book appointment")
		return
	}

	utils.ResponseCreated(w, "success", appointment)
}

// GetPatientAppointments handles GET /api/appointments?patient=NAME (protected)
func (h *AppointmentHandler) GetPatientAppointments(w http.ResponseWriter, r *http.Request) {
	patientName := r.URL.Query().Get("patient")
	if patientName == "" {
		utils.ResponseBadRequest(w, "patient query parameter is required", nil)
		return
	}

	appointments, err := h.service.GetPatientAppointments(r.Context(), patientName)
	if err != nil {
		writeServiceError(h.log, w, err, "get patient appointments")
		return
	}

	utils.ResponseSuccess(w, "success", appointments)
}

// ==================== ADMIN METHODS ====================

// ListAppointments handles GET /api/admin/appointments (admin only)
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.ListAppointments(r.Context())
	if err != nil {
		writeServiceError(h.log, w, err, "list appointments")
		return
	}

	utils.ResponseSuccess(w, "success", appointments)
}

// UpdateAppointmentStatus handles PUT /api/admin/appointments/{id}/status (admin only)
func (h *AppointmentHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "id")
	if appointmentID == "" {
		utils.ResponseBadRequest(w, "Appointment ID is required", nil)
		return
	}

	var req request.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateAppointmentStatus(r.Context(), appointmentID, &req); err != nil {
		writeServiceError(h.log, w, err, "update appointment status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
