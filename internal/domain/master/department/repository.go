package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	GetByName(ctx context.Context, name string) (*Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) error
	Delete(ctx context.Context, id string) error
}
