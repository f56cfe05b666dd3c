package salary

import (
	"context"
	"testing"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/salary"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdjustmentRepo struct {
	ledger []salary.Adjustment
}

func (f *fakeAdjustmentRepo) Append(ctx context.Context, a salary.Adjustment) (salary.Adjustment, error) {
	f.ledger = append(f.ledger, a)
	return a, nil
}

func (f *fakeAdjustmentRepo) History(ctx context.Context, employeeID string) ([]salary.Adjustment, error) {
	var out []salary.Adjustment
	for _, a := range f.ledger {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAdjustmentRepo) SumAllowances(ctx context.Context, employeeID string, positionID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range f.ledger {
		if a.EmployeeID == employeeID && a.PositionID == positionID && a.ChangeType == salary.ChangeTypeAllowance {
			total = total.Add(a.Amount)
		}
	}
	return total, nil
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

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newTestService() (salary.SalaryService, *fakeAdjustmentRepo, *fakeEmployeeRepo) {
	titleA := "Engineer"
	baseA := money(8_000_000)
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:            "emp-1",
			Name:          "Ana",
			PositionID:    "pos-a",
			PositionTitle: &titleA,
			SalaryBase:    &baseA,
			IsActive:      true,
		},
	}}
	ledger := &fakeAdjustmentRepo{}
	return NewSalaryService(ledger, employees), ledger, employees
}

func TestAddAdjustment_FreezesCurrentPosition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, ledger, _ := newTestService()

	resp, err := svc.AddAdjustment(ctx, salary.AddAdjustmentRequest{
		EmployeeID:    "emp-1",
		ChangeType:    "allowance",
		Amount:        money(500_000),
		EffectiveDate: "2025-02-01",
		Reason:        "transport",
	})
	require.NoError(t, err)
	assert.Equal(t, "pos-a", resp.PositionID)
	assert.NotEmpty(t, resp.ID)
	require.Len(t, ledger.ledger, 1)
	assert.Equal(t, "pos-a", ledger.ledger[0].PositionID)
}

func TestAddAdjustment_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	var verrs validator.ValidationErrors

	_, err := svc.AddAdjustment(ctx, salary.AddAdjustmentRequest{
		EmployeeID:    "emp-1",
		ChangeType:    "raise",
		Amount:        money(100),
		EffectiveDate: "2025-02-01",
		Reason:        "x",
	})
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.AddAdjustment(ctx, salary.AddAdjustmentRequest{
		EmployeeID:    "emp-1",
		ChangeType:    "allowance",
		Amount:        money(-100),
		EffectiveDate: "2025-02-01",
		Reason:        "x",
	})
	assert.ErrorAs(t, err, &verrs)
}

func TestAddAdjustment_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.AddAdjustment(ctx, salary.AddAdjustmentRequest{
		EmployeeID:    "nobody",
		ChangeType:    "allowance",
		Amount:        money(100),
		EffectiveDate: "2025-02-01",
		Reason:        "x",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestProfile_SumsAllowancesExcludesBonuses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	add := func(changeType string, amount int64) {
		_, err := svc.AddAdjustment(ctx, salary.AddAdjustmentRequest{
			EmployeeID:    "emp-1",
			ChangeType:    changeType,
			Amount:        money(amount),
			EffectiveDate: "2025-02-01",
			Reason:        "grant",
		})
		require.NoError(t, err)
	}

	add("allowance", 500_000)
	add("allowance", 300_000)
	add("bonus", 1_000_000)

	profile, err := svc.Profile(ctx, "emp-1")
	require.NoError(t, err)
	assert.True(t, profile.SalaryBase.Equal(money(8_000_000)), "base: %s", profile.SalaryBase)
	assert.True(t, profile.TotalAllowance.Equal(money(800_000)), "allowance: %s", profile.TotalAllowance)
	assert.True(t, profile.FinalSalary.Equal(money(8_800_000)), "final: %s", profile.FinalSalary)
	assert.Equal(t, "Engineer", profile.PositionTitle)
}

func TestProfile_TransferDropsOldPositionAllowances(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, employees := newTestService()

	_, err := svc.AddAdjustment(ctx, salary.AddAdjustmentRequest{
		EmployeeID:    "emp-1",
		ChangeType:    "allowance",
		Amount:        money(500_000),
		EffectiveDate: "2025-02-01",
		Reason:        "transport",
	})
	require.NoError(t, err)

	// Transfer to a new position with a different base.
	titleB := "Analyst"
	baseB := money(6_000_000)
	emp := employees.employees["emp-1"]
	emp.PositionID = "pos-b"
	emp.PositionTitle = &titleB
	emp.SalaryBase = &baseB
	employees.employees["emp-1"] = emp

	profile, err := svc.Profile(ctx, "emp-1")
	require.NoError(t, err)
	assert.True(t, profile.TotalAllowance.Equal(money(0)), "allowance: %s", profile.TotalAllowance)
	assert.True(t, profile.FinalSalary.Equal(money(6_000_000)), "final: %s", profile.FinalSalary)

	// The old ledger rows survive untouched under the old position.
	history, err := svc.History(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "pos-a", history[0].PositionID)
}

func TestProfile_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Profile(ctx, "nobody")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
