package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access for attendance sessions.
type SessionRepository interface {
	// Create inserts a new open session. The attendance_sessions table
	// carries a partial unique index on (employee_id) WHERE
	// check_out_time IS NULL, so a concurrent double check-in surfaces
	// as a unique violation which Create maps to ErrOpenSessionExists.
	Create(ctx context.Context, session Session) (Session, error)

	// GetOpenSession returns the employee's single open session, or
	// ErrNoOpenSession when every session is closed.
	GetOpenSession(ctx context.Context, employeeID string) (Session, error)

	// Close stamps check-out, duration and status on an open session.
	Close(ctx context.Context, sessionID string, checkOut time.Time, workDurationHours float64, status string) error

	// List retrieves an employee's sessions with date filters and pagination.
	List(ctx context.Context, filter SessionFilter) ([]Session, int64, error)

	// DailyGroups collapses the month's closed valid sessions into one
	// row per (date, shift): summed duration, earliest check-in, latest
	// check-out. Feeds the monthly summary aggregation.
	DailyGroups(ctx context.Context, employeeID string, month int, year int) ([]DailyGroup, error)
}
