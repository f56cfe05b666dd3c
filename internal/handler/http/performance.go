package http

import (
	"encoding/json"
	"net/http"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/performance"
	"github.com/hr-suite/hr-admin-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	AddReview(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

// AddReview implements PerformanceHandler.
func (h *performanceHandlerImpl) AddReview(w http.ResponseWriter, r *http.Request) {
	var req performance.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.performanceService.AddReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review recorded", result)
}

// ListReviews implements PerformanceHandler.
func (h *performanceHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.ListReviews(r.Context(), r.URL.Query().Get("employee_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Stats implements PerformanceHandler.
func (h *performanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
