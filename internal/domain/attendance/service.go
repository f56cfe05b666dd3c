package attendance

import "context"

// SessionService defines business logic for attendance operations.
type SessionService interface {
	// CheckIn opens today's session for the employee. Fails with
	// ErrOpenSessionExists if one is already open and ErrNoShiftAssigned
	// if the employee has no default shift.
	CheckIn(ctx context.Context, req CheckInRequest) (SessionResponse, error)

	// CheckOut closes the employee's open session, computing the raw
	// worked duration. Fails with ErrNoOpenSession if nothing is open.
	CheckOut(ctx context.Context, req CheckOutRequest) (SessionResponse, error)

	// MonthlySummary folds a month of sessions against the employee's
	// shift standard into overtime/undertime totals.
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummaryResponse, error)

	// ListSessions retrieves an employee's session history.
	ListSessions(ctx context.Context, filter SessionFilter) (ListSessionsResponse, error)
}
