package adaptor

import (
	"strings"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/usecase"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"net/http"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Patient     *PatientHandler
	Appointment *AppointmentHandler
	Billing     *BillingHandler
	Dashboard   *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Patient:     NewPatientHandler(service.Patient, log),
		Appointment: NewAppointmentHandler(service.Appointment, log),
		Billing:     NewBillingHandler(service.Billing, log),
		Dashboard:   NewDashboardHandler(service.Dashboard, log),
	}
}

// writeServiceError classifies service errors by message, the same scheme
// every handler shares: not-found 404, validation/invalid 400, duplicate 409,
// credentials 401, anything else 500.
func writeServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - bad credentials",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already registered"):
		log.Warn(operation+" failed - duplicate",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "required"):
		log.Warn(operation+" failed - missing input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
