package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/salary"
	"github.com/hr-suite/hr-admin-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	AddAdjustment(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
	}
}

// AddAdjustment implements SalaryHandler.
func (h *salaryHandlerImpl) AddAdjustment(w http.ResponseWriter, r *http.Request) {
	var req salary.AddAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.AddAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment recorded", result)
}

// History implements SalaryHandler.
func (h *salaryHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.salaryService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Profile implements SalaryHandler.
func (h *salaryHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.salaryService.Profile(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
