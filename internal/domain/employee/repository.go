package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID returns the active employee with position, department and
	// shift names joined in, or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error

	// Delete soft-deletes; attendance and salary history keep their rows.
	Delete(ctx context.Context, id string) error
}
