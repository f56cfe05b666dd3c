package salary

import (
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AddAdjustmentRequest struct {
	EmployeeID    string          `json:"employee_id"`
	ChangeType    string          `json:"change_type"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveDate string          `json:"effective_date"`
	Reason        string          `json:"reason"`
}

func (r *AddAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.ChangeType, []string{string(ChangeTypeAllowance), string(ChangeTypeBonus)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "change_type",
			Message: "change_type must be allowance or bonus",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_date",
			Message: "effective_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdjustmentResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	PositionID    string          `json:"position_id"`
	PositionTitle *string         `json:"position_title,omitempty"`
	ChangeType    string          `json:"change_type"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveDate string          `json:"effective_date"`
	Reason        string          `json:"reason"`
}

// ProfileResponse is recomputed on every read: salary_base may be edited
// on the position and the ledger only ever grows, so nothing here is
// safe to cache.
type ProfileResponse struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	PositionTitle  string          `json:"position_title"`
	SalaryBase     decimal.Decimal `json:"salary_base"`
	TotalAllowance decimal.Decimal `json:"total_allowance"`
	FinalSalary    decimal.Decimal `json:"final_salary"`
}
