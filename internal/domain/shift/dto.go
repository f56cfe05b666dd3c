package shift

import "github.com/hr-suite/hr-admin-backend-go/internal/pkg/validator"

type CreateShiftRequest struct {
	Name          string  `json:"name"`
	StandardHours float64 `json:"standard_hours"`
	BreakHours    float64 `json:"break_hours"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if r.StandardHours <= 0 || r.StandardHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_hours",
			Message: "standard_hours must be between 0 and 24",
		})
	}

	if r.BreakHours < 0 || r.BreakHours >= r.StandardHours {
		errs = append(errs, validator.ValidationError{
			Field:   "break_hours",
			Message: "break_hours must be non-negative and less than standard_hours",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID            string   `json:"-"`
	Name          *string  `json:"name,omitempty"`
	StandardHours *float64 `json:"standard_hours,omitempty"`
	BreakHours    *float64 `json:"break_hours,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
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

	if r.StandardHours != nil && (*r.StandardHours <= 0 || *r.StandardHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_hours",
			Message: "standard_hours must be between 0 and 24",
		})
	}

	if r.BreakHours != nil && *r.BreakHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_hours",
			Message: "break_hours must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StandardHours float64 `json:"standard_hours"`
	BreakHours    float64 `json:"break_hours"`
}
