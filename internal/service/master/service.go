package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/master/department"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/master/position"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/shift"
)

// MasterService covers the reference data everything else hangs off:
// departments, positions and work shifts.
type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id string) error

	// Position operations
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetPosition(ctx context.Context, id string) (position.PositionResponse, error)
	ListPositions(ctx context.Context, departmentID *string) ([]position.PositionResponse, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error
	DeletePosition(ctx context.Context, id string) error

	// Shift operations
	CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	GetShift(ctx context.Context, id string) (shift.ShiftResponse, error)
	ListShifts(ctx context.Context) ([]shift.ShiftResponse, error)
	UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) error
	DeleteShift(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
	shiftRepo      shift.ShiftRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
	shiftRepo shift.ShiftRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		shiftRepo:      shiftRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	existing, err := s.departmentRepo.GetByName(ctx, req.Name)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}
	if existing != nil {
		return department.DepartmentResponse{}, department.ErrDepartmentNameExists
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNameExists) {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return department.DepartmentResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	return department.DepartmentResponse{ID: dept.ID, Name: dept.Name}, nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, department.DepartmentResponse{ID: dept.ID, Name: dept.Name})
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.departmentRepo.Update(ctx, req); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) || errors.Is(err, department.ErrDepartmentNameExists) {
			return err
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// ==================== POSITION OPERATIONS ====================

func toPositionResponse(pos position.Position) position.PositionResponse {
	return position.PositionResponse{
		ID:             pos.ID,
		Title:          pos.Title,
		Description:    pos.Description,
		SalaryBase:     pos.SalaryBase,
		DepartmentID:   pos.DepartmentID,
		DepartmentName: pos.DepartmentName,
	}
}

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return position.PositionResponse{}, department.ErrDepartmentNotFound
		}
		return position.PositionResponse{}, fmt.Errorf("failed to load department: %w", err)
	}

	existing, err := s.positionRepo.GetByTitleAndDepartment(ctx, req.Title, req.DepartmentID)
	if err != nil {
		return position.PositionResponse{}, fmt.Errorf("failed to check position title: %w", err)
	}
	if existing != nil {
		return position.PositionResponse{}, position.ErrPositionTitleExists
	}

	created, err := s.positionRepo.Create(ctx, position.Position{
		Title:        req.Title,
		Description:  req.Description,
		SalaryBase:   req.SalaryBase,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		if errors.Is(err, position.ErrPositionTitleExists) {
			return position.PositionResponse{}, position.ErrPositionTitleExists
		}
		return position.PositionResponse{}, fmt.Errorf("failed to create position: %w", err)
	}

	created.DepartmentName = &dept.Name
	return toPositionResponse(created), nil
}

func (s *masterServiceImpl) GetPosition(ctx context.Context, id string) (position.PositionResponse, error) {
	pos, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, position.ErrPositionNotFound) {
			return position.PositionResponse{}, position.ErrPositionNotFound
		}
		return position.PositionResponse{}, fmt.Errorf("failed to get position: %w", err)
	}

	return toPositionResponse(pos), nil
}

func (s *masterServiceImpl) ListPositions(ctx context.Context, departmentID *string) ([]position.PositionResponse, error) {
	var (
		positions []position.Position
		err       error
	)
	if departmentID != nil && *departmentID != "" {
		positions, err = s.positionRepo.ListByDepartment(ctx, *departmentID)
	} else {
		positions, err = s.positionRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, pos := range positions {
		responses = append(responses, toPositionResponse(pos))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return department.ErrDepartmentNotFound
			}
			return fmt.Errorf("failed to load department: %w", err)
		}
	}

	if err := s.positionRepo.Update(ctx, req); err != nil {
		if errors.Is(err, position.ErrPositionNotFound) || errors.Is(err, position.ErrPositionTitleExists) {
			return err
		}
		return fmt.Errorf("failed to update position: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	if err := s.positionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, position.ErrPositionNotFound) {
			return position.ErrPositionNotFound
		}
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}

// ==================== SHIFT OPERATIONS ====================

func toShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:            sh.ID,
		Name:          sh.Name,
		StandardHours: sh.StandardHours,
		BreakHours:    sh.BreakHours,
	}
}

func (s *masterServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		Name:          req.Name,
		StandardHours: req.StandardHours,
		BreakHours:    req.BreakHours,
	})
	if err != nil {
		if errors.Is(err, shift.ErrShiftNameExists) {
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return toShiftResponse(created), nil
}

func (s *masterServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return toShiftResponse(sh), nil
}

func (s *masterServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.shiftRepo.Update(ctx, req); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) || errors.Is(err, shift.ErrShiftNameExists) {
			return err
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}
