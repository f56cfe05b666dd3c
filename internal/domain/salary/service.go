package salary

import "context"

// SalaryService defines business logic for the salary ledger and profile.
type SalaryService interface {
	// AddAdjustment appends a ledger row, freezing the employee's
	// current position onto it.
	AddAdjustment(ctx context.Context, req AddAdjustmentRequest) (AdjustmentResponse, error)

	// History returns the employee's full adjustment ledger.
	History(ctx context.Context, employeeID string) ([]AdjustmentResponse, error)

	// Profile computes base pay plus current-position allowances.
	Profile(ctx context.Context, employeeID string) (ProfileResponse, error)
}
