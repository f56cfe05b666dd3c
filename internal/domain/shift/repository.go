package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, req UpdateShiftRequest) error

	// Delete soft-deletes: the shift stops appearing in listings and
	// lookups but past attendance rows keep referencing it.
	Delete(ctx context.Context, id string) error
}
