package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	Name       string
	HireDate   time.Time
	PositionID string
	ShiftID    *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	PositionTitle  *string
	DepartmentName *string
	ShiftName      *string
	SalaryBase     *decimal.Decimal
}
