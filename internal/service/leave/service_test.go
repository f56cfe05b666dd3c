package leave

import (
	"context"
	"testing"
	"time"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
	nextID   int
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	req.ID = time.Now().Format("150405") + "-" + string(rune('a'+f.nextID-1))
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, employeeID *string) ([]leave.LeaveRequest, error) {
	if employeeID == nil || *employeeID == "" {
		return f.requests, nil
	}
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.EmployeeID == *employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	for i := range f.requests {
		if f.requests[i].ID == id {
			if f.requests[i].Status != leave.LeaveStatusPending {
				return leave.ErrLeaveRequestAlreadyProcessed
			}
			f.requests[i].Status = status
			return nil
		}
	}
	return leave.ErrLeaveRequestAlreadyProcessed
}

func (f *fakeLeaveRepo) ApprovedAnnual(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.EmployeeID == employeeID && r.Type == leave.LeaveTypeAnnual && r.Status == leave.LeaveStatusApproved {
			out = append(out, r)
		}
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

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService() (leave.LeaveService, *fakeLeaveRepo) {
	repo := &fakeLeaveRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Ana", IsActive: true},
	}}
	return NewLeaveService(repo, employees), repo
}

func TestCreate_PendingByDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "annual",
		StartDate:  "2025-04-07",
		EndDate:    "2025-04-09",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, resp.Days)
}

func TestCreate_SingleDayCountsOne(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "sick",
		StartDate:  "2025-04-07",
		EndDate:    "2025-04-07",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Days)
}

func TestCreate_AnnualCappedByBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	// 14 of the 15 annual days already approved.
	repo.requests = append(repo.requests, leave.LeaveRequest{
		ID:         "prior",
		EmployeeID: "emp-1",
		Type:       leave.LeaveTypeAnnual,
		StartDate:  time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
		Status:     leave.LeaveStatusApproved,
	})

	// A two-day request overshoots the single remaining day.
	_, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "annual",
		StartDate:  "2025-04-07",
		EndDate:    "2025-04-08",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// A one-day request still fits.
	_, err = svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "annual",
		StartDate:  "2025-04-07",
		EndDate:    "2025-04-07",
	})
	assert.NoError(t, err)
}

func TestCreate_UnpaidIgnoresBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	repo.requests = append(repo.requests, leave.LeaveRequest{
		ID:         "prior",
		EmployeeID: "emp-1",
		Type:       leave.LeaveTypeAnnual,
		StartDate:  time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		Status:     leave.LeaveStatusApproved,
	})

	_, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "unpaid",
		StartDate:  "2025-04-07",
		EndDate:    "2025-04-18",
	})
	assert.NoError(t, err)
}

func TestUpdateStatus_OnlyPendingTransitions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "annual",
		StartDate:  "2025-04-07",
		EndDate:    "2025-04-08",
	})
	require.NoError(t, err)

	approved, err := svc.UpdateStatus(ctx, leave.UpdateLeaveStatusRequest{ID: created.ID, Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	_, err = svc.UpdateStatus(ctx, leave.UpdateLeaveStatusRequest{ID: created.ID, Status: "rejected"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestBalance_CountsApprovedAnnualOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	repo.requests = append(repo.requests,
		leave.LeaveRequest{
			ID: "a", EmployeeID: "emp-1", Type: leave.LeaveTypeAnnual,
			StartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			Status:    leave.LeaveStatusApproved,
		},
		leave.LeaveRequest{
			ID: "b", EmployeeID: "emp-1", Type: leave.LeaveTypeAnnual,
			StartDate: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC),
			Status:    leave.LeaveStatusPending,
		},
		leave.LeaveRequest{
			ID: "c", EmployeeID: "emp-1", Type: leave.LeaveTypeSick,
			StartDate: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC),
			Status:    leave.LeaveStatusApproved,
		},
	)

	balance, err := svc.Balance(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, leave.DefaultAnnualLeaveDays, balance.AnnualAllowance)
	assert.Equal(t, 3, balance.DaysTaken)
	assert.Equal(t, leave.DefaultAnnualLeaveDays-3, balance.DaysRemaining)
}
