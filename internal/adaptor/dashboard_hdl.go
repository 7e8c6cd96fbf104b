package adaptor

import (
	"net/http"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/usecase"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// GetOverview handles GET /api/admin/dashboard (admin only)
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.GetOverview(r.Context())
	if err != nil {
		writeServiceError(h.log, w, err, "get dashboard overview")
		return
	}

	utils.ResponseSuccess(w, "success", overview)
}
