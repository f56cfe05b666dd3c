package attendance

import (
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      *string  `json:"employee_name,omitempty"`
	ShiftID           string   `json:"shift_id"`
	Date              string   `json:"date"`
	CheckInTime       string   `json:"check_in_time"`
	CheckOutTime      *string  `json:"check_out_time,omitempty"`
	WorkDurationHours *float64 `json:"work_duration_hours,omitempty"`
	Status            *string  `json:"status,omitempty"`
}

type MonthlySummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be 2000 or later",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthlySummaryResponse is derived on demand and never persisted.
// Late/early-leave incident counts are carried in the shape but are not
// computed by the shift-driven aggregator; they always report zero.
type MonthlySummaryResponse struct {
	EmployeeID               string  `json:"employee_id"`
	Month                    int     `json:"month"`
	Year                     int     `json:"year"`
	StandardHoursPerDay      float64 `json:"standard_work_hours_per_day"`
	TotalOvertimeHours       float64 `json:"total_overtime_hours"`
	TotalUndertimeHours      float64 `json:"total_undertime_hours"`
	TotalLateIncidents       int     `json:"total_late_incidents"`
	TotalEarlyLeaveIncidents int     `json:"total_early_leave_incidents"`
	TotalWorkDays            int     `json:"total_work_days"`
}

type SessionFilter struct {
	EmployeeID string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

func (f *SessionFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListSessionsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Sessions   []SessionResponse `json:"sessions"`
}
