package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, employeeID *string) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	Balance(ctx context.Context, employeeID string) (BalanceResponse, error)
}
