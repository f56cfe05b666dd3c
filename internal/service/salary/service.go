package salary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/salary"
)

type SalaryServiceImpl struct {
	salary.AdjustmentRepository
	employee.EmployeeRepository
}

func NewSalaryService(
	adjustmentRepo salary.AdjustmentRepository,
	employeeRepo employee.EmployeeRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		AdjustmentRepository: adjustmentRepo,
		EmployeeRepository:   employeeRepo,
	}
}

func toAdjustmentResponse(a salary.Adjustment) salary.AdjustmentResponse {
	return salary.AdjustmentResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		PositionID:    a.PositionID,
		PositionTitle: a.PositionTitle,
		ChangeType:    string(a.ChangeType),
		Amount:        a.Amount,
		EffectiveDate: a.EffectiveDate.Format("2006-01-02"),
		Reason:        a.Reason,
	}
}

// AddAdjustment implements salary.SalaryService. The ledger row freezes
// the position the employee holds right now; a later transfer never
// rewrites history.
func (s *SalaryServiceImpl) AddAdjustment(ctx context.Context, req salary.AddAdjustmentRequest) (salary.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.AdjustmentResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return salary.AdjustmentResponse{}, employee.ErrEmployeeNotFound
		}
		return salary.AdjustmentResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return salary.AdjustmentResponse{}, fmt.Errorf("failed to parse effective_date: %w", err)
	}

	adjustment := salary.Adjustment{
		ID:            uuid.NewString(),
		EmployeeID:    emp.ID,
		PositionID:    emp.PositionID,
		ChangeType:    salary.ChangeType(req.ChangeType),
		Amount:        req.Amount,
		EffectiveDate: effectiveDate,
		Reason:        req.Reason,
	}

	created, err := s.AdjustmentRepository.Append(ctx, adjustment)
	if err != nil {
		return salary.AdjustmentResponse{}, fmt.Errorf("failed to append adjustment: %w", err)
	}

	created.PositionTitle = emp.PositionTitle
	return toAdjustmentResponse(created), nil
}

// History implements salary.SalaryService.
func (s *SalaryServiceImpl) History(ctx context.Context, employeeID string) ([]salary.AdjustmentResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	adjustments, err := s.AdjustmentRepository.History(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load salary history: %w", err)
	}

	responses := make([]salary.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		responses = append(responses, toAdjustmentResponse(a))
	}

	return responses, nil
}

// Profile implements salary.SalaryService. Recomputed on every call:
// base pay follows the current position, and only allowances recorded
// under that position count toward the total. Bonuses stay in the
// ledger but never in the profile.
func (s *SalaryServiceImpl) Profile(ctx context.Context, employeeID string) (salary.ProfileResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return salary.ProfileResponse{}, employee.ErrEmployeeNotFound
		}
		return salary.ProfileResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	totalAllowance, err := s.AdjustmentRepository.SumAllowances(ctx, emp.ID, emp.PositionID)
	if err != nil {
		return salary.ProfileResponse{}, fmt.Errorf("failed to sum allowances: %w", err)
	}

	resp := salary.ProfileResponse{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.Name,
		TotalAllowance: totalAllowance,
	}
	if emp.PositionTitle != nil {
		resp.PositionTitle = *emp.PositionTitle
	}
	if emp.SalaryBase != nil {
		resp.SalaryBase = *emp.SalaryBase
	}
	resp.FinalSalary = resp.SalaryBase.Add(totalAllowance)

	return resp, nil
}
