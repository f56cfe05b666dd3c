package position

import (
	"time"

	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Position struct {
	ID           string
	Title        string
	Description  *string
	SalaryBase   decimal.Decimal
	DepartmentID string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
}

type CreatePositionRequest struct {
	Title        string          `json:"title"`
	Description  *string         `json:"description,omitempty"`
	SalaryBase   decimal.Decimal `json:"salary_base"`
	DepartmentID string          `json:"department_id"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 100 characters",
		})
	}

	if r.SalaryBase.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_base",
			Message: "salary_base must not be negative",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePositionRequest struct {
	ID           string           `json:"-"`
	Title        *string          `json:"title,omitempty"`
	Description  *string          `json:"description,omitempty"`
	SalaryBase   *decimal.Decimal `json:"salary_base,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.SalaryBase != nil && r.SalaryBase.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_base",
			Message: "salary_base must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PositionResponse struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    *string         `json:"description,omitempty"`
	SalaryBase     decimal.Decimal `json:"salary_base"`
	DepartmentID   string          `json:"department_id"`
	DepartmentName *string         `json:"department_name,omitempty"`
}
