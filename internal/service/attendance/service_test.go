package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/attendance"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/shift"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionRepo enforces the single-open-session invariant the way
// the partial unique index does in PostgreSQL.
type fakeSessionRepo struct {
	sessions []attendance.Session
	nextID   int
}

func (f *fakeSessionRepo) Create(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	for _, existing := range f.sessions {
		if existing.EmployeeID == s.EmployeeID && existing.CheckOut == nil {
			return attendance.Session{}, attendance.ErrOpenSessionExists
		}
	}
	f.nextID++
	s.ID = "session-" + string(rune('a'+f.nextID-1))
	f.sessions = append(f.sessions, s)
	return s, nil
}

func (f *fakeSessionRepo) GetOpenSession(ctx context.Context, employeeID string) (attendance.Session, error) {
	for _, s := range f.sessions {
		if s.EmployeeID == employeeID && s.CheckOut == nil {
			return s, nil
		}
	}
	return attendance.Session{}, attendance.ErrNoOpenSession
}

func (f *fakeSessionRepo) Close(ctx context.Context, sessionID string, checkOut time.Time, workDurationHours float64, status string) error {
	for i := range f.sessions {
		if f.sessions[i].ID == sessionID && f.sessions[i].CheckOut == nil {
			f.sessions[i].CheckOut = &checkOut
			f.sessions[i].WorkDurationHours = &workDurationHours
			f.sessions[i].Status = &status
			return nil
		}
	}
	return attendance.ErrNoOpenSession
}

func (f *fakeSessionRepo) List(ctx context.Context, filter attendance.SessionFilter) ([]attendance.Session, int64, error) {
	var out []attendance.Session
	for _, s := range f.sessions {
		if s.EmployeeID == filter.EmployeeID {
			out = append(out, s)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeSessionRepo) DailyGroups(ctx context.Context, employeeID string, month int, year int) ([]attendance.DailyGroup, error) {
	groups := map[string]*attendance.DailyGroup{}
	var order []string
	for _, s := range f.sessions {
		if s.EmployeeID != employeeID || s.CheckOut == nil || s.Status == nil || *s.Status != attendance.StatusValid {
			continue
		}
		if int(s.Date.Month()) != month || s.Date.Year() != year {
			continue
		}
		key := s.Date.Format("2006-01-02") + "/" + s.ShiftID
		g, ok := groups[key]
		if !ok {
			g = &attendance.DailyGroup{Date: s.Date, ShiftID: s.ShiftID, FirstCheckIn: s.CheckIn, LastCheckOut: *s.CheckOut}
			groups[key] = g
			order = append(order, key)
		}
		g.TotalHours += *s.WorkDurationHours
		if s.CheckIn.Before(g.FirstCheckIn) {
			g.FirstCheckIn = s.CheckIn
		}
		if s.CheckOut.After(g.LastCheckOut) {
			g.LastCheckOut = *s.CheckOut
		}
	}
	var out []attendance.DailyGroup
	for _, key := range order {
		out = append(out, *groups[key])
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) List(ctx context.Context) ([]shift.Shift, error) { return nil, nil }

func (f *fakeShiftRepo) Update(ctx context.Context, req shift.UpdateShiftRequest) error { return nil }

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService() (attendance.SessionService, *fakeSessionRepo) {
	shiftID := "shift-day"
	sessions := &fakeSessionRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Ana", PositionID: "pos-1", ShiftID: &shiftID, IsActive: true},
		"emp-2": {ID: "emp-2", Name: "Ben", PositionID: "pos-1", IsActive: true},
	}}
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{
		"shift-day":  {ID: "shift-day", Name: "Day", StandardHours: 8.0, BreakHours: 1.0, IsActive: true},
		"shift-half": {ID: "shift-half", Name: "Half", StandardHours: 4.0, BreakHours: 0.0, IsActive: true},
	}}
	return NewSessionService(sessions, employees, shifts), sessions
}

func TestCheckIn_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "shift-day", resp.ShiftID)
	assert.NotEmpty(t, resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
}

func TestCheckIn_SecondOpenSessionConflicts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrOpenSessionExists)
}

func TestCheckIn_NoShiftAssigned(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-2"})
	assert.ErrorIs(t, err, attendance.ErrNoShiftAssigned)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "nobody"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckIn_MissingEmployeeID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestCheckOut_ClosesOpenSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOutTime)
	require.NotNil(t, resp.WorkDurationHours)
	// A same-moment round trip rounds down to zero hours.
	assert.InDelta(t, 0.0, *resp.WorkDurationHours, 0.01)
	require.NotNil(t, resp.Status)
	assert.Equal(t, attendance.StatusValid, *resp.Status)

	// The session is really closed: a second checkout finds nothing.
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNoOpenSession)

	// And a fresh check-in opens a new session the same day.
	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.NoError(t, err)
	assert.Len(t, repo.sessions, 2)
}

func TestCheckOut_WithoutOpenSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNoOpenSession)
}

func TestCheckOut_FutureCheckInFlagsSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	// A corrupted row: check-in stamped in the future.
	future := time.Now().UTC().Add(2 * time.Hour)
	repo.sessions = append(repo.sessions, attendance.Session{
		ID:         "session-x",
		EmployeeID: "emp-1",
		ShiftID:    "shift-day",
		Date:       future.Truncate(24 * time.Hour),
		CheckIn:    future,
	})

	resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, resp.WorkDurationHours)
	assert.Less(t, *resp.WorkDurationHours, 0.0)
	require.NotNil(t, resp.Status)
	assert.Equal(t, attendance.StatusFlagged, *resp.Status)
}

func TestMonthlySummary_RejectsBadPeriod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	var verrs validator.ValidationErrors

	_, err := svc.MonthlySummary(ctx, attendance.MonthlySummaryRequest{EmployeeID: "emp-1", Month: 13, Year: 2025})
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.MonthlySummary(ctx, attendance.MonthlySummaryRequest{EmployeeID: "emp-1", Month: 1, Year: 1999})
	assert.ErrorAs(t, err, &verrs)
}

func TestMonthlySummary_FoldsSessions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	valid := attendance.StatusValid
	addClosed := func(id string, date time.Time, in, out time.Time, hours float64) {
		repo.sessions = append(repo.sessions, attendance.Session{
			ID:                id,
			EmployeeID:        "emp-1",
			ShiftID:           "shift-day",
			Date:              date,
			CheckIn:           in,
			CheckOut:          &out,
			WorkDurationHours: &hours,
			Status:            &valid,
		})
	}

	d1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	// Day one: a long day, 9.5h span, 1h break deducted, 0.5h over.
	addClosed("s1", d1, d1.Add(8*time.Hour), d1.Add(17*time.Hour+30*time.Minute), 9.5)
	// Day two: a short day, no deduction, 4h under.
	addClosed("s2", d2, d2.Add(8*time.Hour), d2.Add(12*time.Hour), 4.0)

	resp, err := svc.MonthlySummary(ctx, attendance.MonthlySummaryRequest{EmployeeID: "emp-1", Month: 3, Year: 2025})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, resp.TotalOvertimeHours, 0.001)
	assert.InDelta(t, 4.0, resp.TotalUndertimeHours, 0.001)
	assert.Equal(t, 2, resp.TotalWorkDays)
	assert.InDelta(t, 8.0, resp.StandardHoursPerDay, 0.001)
	assert.Equal(t, 0, resp.TotalLateIncidents)
	assert.Equal(t, 0, resp.TotalEarlyLeaveIncidents)
}

func TestMonthlySummary_SplitSessionsGroupByDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	valid := attendance.StatusValid
	d := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	morningOut := d.Add(12 * time.Hour)
	morningHours := 4.0
	afternoonOut := d.Add(17*time.Hour + 30*time.Minute)
	afternoonHours := 5.0
	repo.sessions = append(repo.sessions,
		attendance.Session{
			ID: "m", EmployeeID: "emp-1", ShiftID: "shift-day", Date: d,
			CheckIn: d.Add(8 * time.Hour), CheckOut: &morningOut,
			WorkDurationHours: &morningHours, Status: &valid,
		},
		attendance.Session{
			ID: "a", EmployeeID: "emp-1", ShiftID: "shift-day", Date: d,
			CheckIn: d.Add(12*time.Hour + 30*time.Minute), CheckOut: &afternoonOut,
			WorkDurationHours: &afternoonHours, Status: &valid,
		},
	)

	// Combined 9h over a 9.5h span: break deducted, 8h exactly, no
	// overtime and no undertime but still one work day.
	resp, err := svc.MonthlySummary(ctx, attendance.MonthlySummaryRequest{EmployeeID: "emp-1", Month: 3, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.TotalOvertimeHours)
	assert.Equal(t, 0.0, resp.TotalUndertimeHours)
	assert.Equal(t, 1, resp.TotalWorkDays)
}

func TestMonthlySummary_MeasuresAgainstEmployeeStandard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	valid := attendance.StatusValid
	d := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	out := d.Add(14 * time.Hour)
	hours := 6.0
	// A 6h day recorded under the half shift still falls 2h short of
	// the employee's own 8h standard, never 2h over the shift's 4h.
	repo.sessions = append(repo.sessions, attendance.Session{
		ID: "h", EmployeeID: "emp-1", ShiftID: "shift-half", Date: d,
		CheckIn: d.Add(8 * time.Hour), CheckOut: &out,
		WorkDurationHours: &hours, Status: &valid,
	})

	resp, err := svc.MonthlySummary(ctx, attendance.MonthlySummaryRequest{EmployeeID: "emp-1", Month: 3, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.TotalOvertimeHours)
	assert.InDelta(t, 2.0, resp.TotalUndertimeHours, 0.001)
	assert.Equal(t, 1, resp.TotalWorkDays)
	assert.InDelta(t, 8.0, resp.StandardHoursPerDay, 0.001)
}

func TestMonthlySummary_DeletedShiftDaySkipped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	valid := attendance.StatusValid
	d := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
	out := d.Add(17 * time.Hour)
	hours := 9.0
	repo.sessions = append(repo.sessions, attendance.Session{
		ID: "g", EmployeeID: "emp-1", ShiftID: "shift-gone", Date: d,
		CheckIn: d.Add(8 * time.Hour), CheckOut: &out,
		WorkDurationHours: &hours, Status: &valid,
	})

	resp, err := svc.MonthlySummary(ctx, attendance.MonthlySummaryRequest{EmployeeID: "emp-1", Month: 3, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalWorkDays)
	assert.Equal(t, 0.0, resp.TotalOvertimeHours)
	assert.Equal(t, 0.0, resp.TotalUndertimeHours)
}

func TestMonthlySummary_FlaggedSessionsExcluded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	flagged := attendance.StatusFlagged
	d := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)
	out := d.Add(6 * time.Hour)
	hours := -3.0
	repo.sessions = append(repo.sessions, attendance.Session{
		ID: "f", EmployeeID: "emp-1", ShiftID: "shift-day", Date: d,
		CheckIn: d.Add(9 * time.Hour), CheckOut: &out,
		WorkDurationHours: &hours, Status: &flagged,
	})

	resp, err := svc.MonthlySummary(ctx, attendance.MonthlySummaryRequest{EmployeeID: "emp-1", Month: 3, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalWorkDays)
	assert.Equal(t, 0.0, resp.TotalOvertimeHours)
	assert.Equal(t, 0.0, resp.TotalUndertimeHours)
}

func TestListSessions_Paginates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	resp, err := svc.ListSessions(ctx, attendance.SessionFilter{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	assert.Len(t, resp.Sessions, 1)
}
