package attendance

import "time"

// Session status values. A session is "open" until check-out; closing it
// stamps StatusValid, or StatusFlagged when the recorded duration is
// negative. Flagged rows stay for audit but are excluded from summaries.
const (
	StatusValid   = "valid"
	StatusFlagged = "flagged"
)

// Session is one check-in/check-out pair for an employee on a calendar
// day. At most one session per employee may be open (CheckOut == nil) at
// any time. Once closed it is never reopened.
type Session struct {
	ID                string
	EmployeeID        string
	ShiftID           string
	Date              time.Time
	CheckIn           time.Time
	CheckOut          *time.Time
	WorkDurationHours *float64
	Status            *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}

// DailyGroup is a day's worth of closed valid sessions collapsed by the
// store: summed duration plus the span boundaries used for the break
// deduction rule.
type DailyGroup struct {
	Date         time.Time
	ShiftID      string
	TotalHours   float64
	FirstCheckIn time.Time
	LastCheckOut time.Time
}
