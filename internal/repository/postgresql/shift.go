package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/shift"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_shifts (name, standard_hours, break_hours, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.Name, s.StandardHours, s.BreakHours).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	s.IsActive = true
	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, standard_hours, break_hours, is_active, created_at, updated_at
		FROM work_shifts
		WHERE id = $1 AND is_active = TRUE
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.StandardHours, &s.BreakHours, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, standard_hours, break_hours, is_active, created_at, updated_at
		FROM work_shifts
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID, &s.Name, &s.StandardHours, &s.BreakHours, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, req shift.UpdateShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.StandardHours != nil {
		updates = append(updates, fmt.Sprintf("standard_hours = $%d", argIdx))
		args = append(args, *req.StandardHours)
		argIdx++
	}
	if req.BreakHours != nil {
		updates = append(updates, fmt.Sprintf("break_hours = $%d", argIdx))
		args = append(args, *req.BreakHours)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for shift update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	query := "UPDATE work_shifts SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND is_active = TRUE RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		if isUniqueViolation(err) {
			return shift.ErrShiftNameExists
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE work_shifts SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
