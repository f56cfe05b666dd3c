package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/attendance"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/shift"
)

const timeFormat = "2006-01-02 15:04:05"

type SessionServiceImpl struct {
	attendance.SessionRepository
	employee.EmployeeRepository
	shift.ShiftRepository
}

func NewSessionService(
	sessionRepo attendance.SessionRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
) attendance.SessionService {
	return &SessionServiceImpl{
		SessionRepository:  sessionRepo,
		EmployeeRepository: employeeRepo,
		ShiftRepository:    shiftRepo,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(timeFormat)
	return &formatted
}

func toSessionResponse(s attendance.Session) attendance.SessionResponse {
	return attendance.SessionResponse{
		ID:                s.ID,
		EmployeeID:        s.EmployeeID,
		EmployeeName:      s.EmployeeName,
		ShiftID:           s.ShiftID,
		Date:              s.Date.Format("2006-01-02"),
		CheckInTime:       s.CheckIn.Format(timeFormat),
		CheckOutTime:      timePtrToString(s.CheckOut),
		WorkDurationHours: s.WorkDurationHours,
		Status:            s.Status,
	}
}

// CheckIn implements attendance.SessionService. The repository's
// partial unique index carries the single-open-session invariant, so
// there is no read-then-insert window to race through.
func (s *SessionServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.SessionResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.SessionResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	if emp.ShiftID == nil || *emp.ShiftID == "" {
		return attendance.SessionResponse{}, attendance.ErrNoShiftAssigned
	}

	now := time.Now().UTC()
	session := attendance.Session{
		EmployeeID: emp.ID,
		ShiftID:    *emp.ShiftID,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CheckIn:    now,
	}

	created, err := s.SessionRepository.Create(ctx, session)
	if err != nil {
		if errors.Is(err, attendance.ErrOpenSessionExists) {
			return attendance.SessionResponse{}, attendance.ErrOpenSessionExists
		}
		return attendance.SessionResponse{}, fmt.Errorf("failed to check in: %w", err)
	}

	return toSessionResponse(created), nil
}

// CheckOut implements attendance.SessionService. A checkout stamped
// before its check-in closes the session as flagged instead of valid;
// flagged rows are kept for audit but never feed summaries.
func (s *SessionServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	open, err := s.SessionRepository.GetOpenSession(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenSession) {
			return attendance.SessionResponse{}, attendance.ErrNoOpenSession
		}
		return attendance.SessionResponse{}, fmt.Errorf("failed to find open session: %w", err)
	}

	now := time.Now().UTC()
	duration := DurationHours(open.CheckIn, now)

	status := attendance.StatusValid
	if duration < 0 {
		status = attendance.StatusFlagged
	}

	if err := s.SessionRepository.Close(ctx, open.ID, now, duration, status); err != nil {
		if errors.Is(err, attendance.ErrNoOpenSession) {
			return attendance.SessionResponse{}, attendance.ErrNoOpenSession
		}
		return attendance.SessionResponse{}, fmt.Errorf("failed to check out: %w", err)
	}

	open.CheckOut = &now
	open.WorkDurationHours = &duration
	open.Status = &status
	return toSessionResponse(open), nil
}

// MonthlySummary implements attendance.SessionService.
func (s *SessionServiceImpl) MonthlySummary(ctx context.Context, req attendance.MonthlySummaryRequest) (attendance.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.MonthlySummaryResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	groups, err := s.SessionRepository.DailyGroups(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to load daily groups: %w", err)
	}

	shifts, err := s.resolveShifts(ctx, groups)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	standardPerDay := DefaultStandardHours
	if emp.ShiftID != nil {
		if sh, ok := shifts[*emp.ShiftID]; ok && sh.StandardHours > 0 {
			standardPerDay = sh.StandardHours
		} else if !ok {
			if current, err := s.ShiftRepository.GetByID(ctx, *emp.ShiftID); err == nil && current.StandardHours > 0 {
				standardPerDay = current.StandardHours
			}
		}
	}

	totals := SummarizeMonth(groups, standardPerDay, shifts)

	return attendance.MonthlySummaryResponse{
		EmployeeID:          req.EmployeeID,
		Month:               req.Month,
		Year:                req.Year,
		StandardHoursPerDay: standardPerDay,
		TotalOvertimeHours:  totals.OvertimeHours,
		TotalUndertimeHours: totals.UndertimeHours,
		TotalWorkDays:       totals.WorkDays,
	}, nil
}

// resolveShifts fetches the hour configuration of every shift the
// month's groups reference. A shift deleted since the sessions were
// recorded is left out of the map, which drops its days from the
// summary.
func (s *SessionServiceImpl) resolveShifts(ctx context.Context, groups []attendance.DailyGroup) (map[string]ShiftHours, error) {
	shifts := make(map[string]ShiftHours)
	for _, g := range groups {
		if _, ok := shifts[g.ShiftID]; ok {
			continue
		}
		sh, err := s.ShiftRepository.GetByID(ctx, g.ShiftID)
		if err != nil {
			if errors.Is(err, shift.ErrShiftNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load shift %s: %w", g.ShiftID, err)
		}
		shifts[g.ShiftID] = ShiftHours{
			StandardHours: sh.StandardHours,
			BreakHours:    sh.BreakHours,
		}
	}
	return shifts, nil
}

// ListSessions implements attendance.SessionService.
func (s *SessionServiceImpl) ListSessions(ctx context.Context, filter attendance.SessionFilter) (attendance.ListSessionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListSessionsResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	sessions, total, err := s.SessionRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListSessionsResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, toSessionResponse(session))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return attendance.ListSessionsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Sessions:   responses,
	}, nil
}
