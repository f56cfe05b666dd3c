package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangeType enum
type ChangeType string

const (
	// ChangeTypeAllowance is a recurring addition scoped to the position
	// held when it was granted; it feeds the salary profile total.
	ChangeTypeAllowance ChangeType = "allowance"

	// ChangeTypeBonus is a one-off payment; recorded in the ledger but
	// never part of the recurring salary profile.
	ChangeTypeBonus ChangeType = "bonus"
)

// Adjustment is one row of the append-only salary ledger. PositionID is
// frozen at the position the employee held when the adjustment was
// recorded, so later transfers never migrate past allowances onto a new
// position's totals.
type Adjustment struct {
	ID              string
	EmployeeID      string
	PositionID      string
	ChangeType      ChangeType
	Amount          decimal.Decimal
	EffectiveDate   time.Time
	Reason          string
	CreatedByUserID *string
	CreatedAt       time.Time

	// Joined fields
	PositionTitle *string
}
