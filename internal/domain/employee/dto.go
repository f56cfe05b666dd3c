package employee

import (
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	HireDate   string  `json:"hire_date"`
	PositionID string  `json:"position_id"`
	ShiftID    *string `json:"shift_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 150 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 150 characters",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_id",
			Message: "position_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	PositionID *string `json:"position_id,omitempty"`
	ShiftID    *string `json:"shift_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PositionID != nil && validator.IsEmpty(*r.PositionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "position_id",
			Message: "position_id must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	HireDate       string  `json:"hire_date"`
	PositionID     string  `json:"position_id"`
	PositionTitle  *string `json:"position_title,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	ShiftID        *string `json:"shift_id,omitempty"`
	ShiftName      *string `json:"shift_name,omitempty"`
}

type EmployeeFilter struct {
	Search    *string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
