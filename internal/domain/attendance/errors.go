package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrOpenSessionExists = errors.New("an open session already exists; check out before checking in again")
	ErrNoShiftAssigned   = errors.New("employee has no default shift assigned")

	// Check-out errors
	ErrNoOpenSession = errors.New("no open session: check in before checking out")

	// Summary errors
	ErrInvalidPeriod = errors.New("month must be 1-12 and year must be 2000 or later")

	ErrSessionNotFound = errors.New("attendance session not found")
)
