package performance

import "context"

type ReviewRepository interface {
	Create(ctx context.Context, review Review) (Review, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Review, error)
	ListAll(ctx context.Context) ([]Review, error)
}
