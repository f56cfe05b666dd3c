package http

import (
	"net/http"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/dashboard"
	"github.com/hr-suite/hr-admin-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Overview implements DashboardHandler.
func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
