package salary

import "errors"

var (
	ErrAdjustmentNotFound = errors.New("salary adjustment not found")
	ErrInvalidChangeType  = errors.New("change_type must be allowance or bonus")
)
