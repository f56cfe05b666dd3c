package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/master/position"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/shift"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/hr-suite/hr-admin-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	position.PositionRepository
	shift.ShiftRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	positionRepo position.PositionRepository,
	shiftRepo shift.ShiftRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		PositionRepository: positionRepo,
		ShiftRepository:    shiftRepo,
	}
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		Name:           emp.Name,
		HireDate:       emp.HireDate.Format("2006-01-02"),
		PositionID:     emp.PositionID,
		PositionTitle:  emp.PositionTitle,
		DepartmentName: emp.DepartmentName,
		ShiftID:        emp.ShiftID,
		ShiftName:      emp.ShiftName,
	}
}

// Create implements employee.EmployeeService. The referenced position
// and shift must exist before the row goes in.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	pos, err := s.PositionRepository.GetByID(ctx, req.PositionID)
	if err != nil {
		if errors.Is(err, position.ErrPositionNotFound) {
			return employee.EmployeeResponse{}, position.ErrPositionNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to load position: %w", err)
	}

	var shiftName *string
	if req.ShiftID != nil && *req.ShiftID != "" {
		sh, err := s.ShiftRepository.GetByID(ctx, *req.ShiftID)
		if err != nil {
			if errors.Is(err, shift.ErrShiftNotFound) {
				return employee.EmployeeResponse{}, shift.ErrShiftNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to load shift: %w", err)
		}
		shiftName = &sh.Name
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
	}

	emp := employee.Employee{
		Name:       req.Name,
		HireDate:   hireDate,
		PositionID: req.PositionID,
		ShiftID:    req.ShiftID,
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	created.PositionTitle = &pos.Title
	created.DepartmentName = pos.DepartmentName
	created.ShiftName = shiftName
	return toEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService. A position change takes
// effect immediately for the salary profile; past ledger rows keep the
// position they were recorded under. The reference checks, the update
// and the reload run in one transaction so the returned row reflects
// exactly what was written.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if req.PositionID != nil {
			if _, err := s.PositionRepository.GetByID(txCtx, *req.PositionID); err != nil {
				if errors.Is(err, position.ErrPositionNotFound) {
					return position.ErrPositionNotFound
				}
				return fmt.Errorf("failed to load position: %w", err)
			}
		}

		if req.ShiftID != nil && *req.ShiftID != "" {
			if _, err := s.ShiftRepository.GetByID(txCtx, *req.ShiftID); err != nil {
				if errors.Is(err, shift.ErrShiftNotFound) {
					return shift.ErrShiftNotFound
				}
				return fmt.Errorf("failed to load shift: %w", err)
			}
		}

		if err := s.EmployeeRepository.Update(txCtx, req); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to update employee: %w", err)
		}

		var err error
		updated, err = s.EmployeeRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to reload employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
