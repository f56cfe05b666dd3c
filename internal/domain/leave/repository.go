package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, employeeID *string) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus) error

	// ApprovedAnnual returns the employee's approved annual-leave
	// requests; the service folds their day spans into the balance.
	ApprovedAnnual(ctx context.Context, employeeID string) ([]LeaveRequest, error)
}
