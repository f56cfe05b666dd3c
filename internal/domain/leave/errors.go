package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrEndBeforeStart               = errors.New("end date must not be before start date")
	ErrInsufficientBalance          = errors.New("insufficient annual leave balance")
)
