package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/request"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/usecase"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// AdminLogin handles POST /api/admin/login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req request.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	auth, err := h.service.AdminLogin(r.Context(), &req)
	if err != nil {
		writeServiceError(h.log, w, err, "admin login")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// PatientRegister handles POST /api/patient/register
func (h *AuthHandler) PatientRegister(w http.ResponseWriter, r *http.Request) {
	var req request.PatientRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	auth, err := h.service.PatientRegister(r.Context(), &req)
	if err != nil {
		writeServiceError(h.log, w, err, "patient register")
		return
	}

	utils.ResponseCreated(w, "success", auth)
}

// PatientLogin handles POST /api/patient/login
func (h *AuthHandler) PatientLogin(w http.ResponseWriter, r *http.Request) {
	var req request.PatientLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	auth, err := h.service.PatientLogin(r.Context(), &req)
	if err != nil {
		writeServiceError(h.log, w, err, "patient login")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// Logout handles POST /api/logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		writeServiceError(h.log, w, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
