package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, pos Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	GetByTitleAndDepartment(ctx context.Context, title string, departmentID string) (*Position, error)
	List(ctx context.Context) ([]Position, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]Position, error)
	Update(ctx context.Context, req UpdatePositionRequest) error
	Delete(ctx context.Context, id string) error
}
