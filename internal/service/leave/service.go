package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
	}
}

func toLeaveResponse(req leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Type:         string(req.Type),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Days:         req.Days(),
		Reason:       req.Reason,
		Status:       string(req.Status),
	}
}

// Create implements leave.LeaveService. Annual requests must fit the
// remaining balance; sick and unpaid leave are not capped.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
	}
	if endDate.Before(startDate) {
		return leave.LeaveResponse{}, leave.ErrEndBeforeStart
	}

	request := leave.LeaveRequest{
		EmployeeID: emp.ID,
		Type:       leave.LeaveType(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
	}

	if request.Type == leave.LeaveTypeAnnual {
		balance, err := s.balance(ctx, emp.ID)
		if err != nil {
			return leave.LeaveResponse{}, err
		}
		if request.Days() > balance.DaysRemaining {
			return leave.LeaveResponse{}, leave.ErrInsufficientBalance
		}
	}

	created, err := s.LeaveRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	created.EmployeeName = &emp.Name
	return toLeaveResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, employeeID *string) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRepository.List(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toLeaveResponse(req))
	}
	return responses, nil
}

// UpdateStatus implements leave.LeaveService. Only a pending request
// can be approved or rejected; the decision is final.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.LeaveRepository.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to load leave request: %w", err)
	}

	if err := s.LeaveRepository.UpdateStatus(ctx, req.ID, leave.LeaveStatus(req.Status)); err != nil {
		if errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	updated, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to reload leave request: %w", err)
	}

	return toLeaveResponse(updated), nil
}

// Balance implements leave.LeaveService.
func (s *LeaveServiceImpl) Balance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.BalanceResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.BalanceResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	return s.balance(ctx, employeeID)
}

func (s *LeaveServiceImpl) balance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	approved, err := s.LeaveRepository.ApprovedAnnual(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to load approved annual leave: %w", err)
	}

	taken := 0
	for _, req := range approved {
		taken += req.Days()
	}

	remaining := leave.DefaultAnnualLeaveDays - taken
	if remaining < 0 {
		remaining = 0
	}

	return leave.BalanceResponse{
		EmployeeID:      employeeID,
		AnnualAllowance: leave.DefaultAnnualLeaveDays,
		DaysTaken:       taken,
		DaysRemaining:   remaining,
	}, nil
}
