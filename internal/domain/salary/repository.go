package salary

import (
	"context"

	"github.com/shopspring/decimal"
)

// AdjustmentRepository defines data access for the salary ledger.
// The ledger is append-only: there is no update or delete.
type AdjustmentRepository interface {
	Append(ctx context.Context, adjustment Adjustment) (Adjustment, error)

	// History returns an employee's adjustments newest-first with the
	// title of the position each was recorded under.
	History(ctx context.Context, employeeID string) ([]Adjustment, error)

	// SumAllowances totals allowance-type adjustments recorded under the
	// given position. Bonuses and other positions' allowances are excluded.
	SumAllowances(ctx context.Context, employeeID string, positionID string) (decimal.Decimal, error)
}
