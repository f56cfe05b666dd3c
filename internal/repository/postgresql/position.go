package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/master/position"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type positionRepository struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepository{db: db}
}

// Create implements position.PositionRepository.
func (r *positionRepository) Create(ctx context.Context, pos position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (title, description, salary_base, department_id, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		pos.Title,
		pos.Description,
		pos.SalaryBase,
		pos.DepartmentID,
	).Scan(&pos.ID, &pos.CreatedAt, &pos.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return position.Position{}, position.ErrPositionTitleExists
		}
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	pos.IsActive = true
	return pos, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepository) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.title, p.description, p.salary_base, p.department_id, p.is_active,
		       p.created_at, p.updated_at,
		       d.name AS department_name
		FROM positions p
		LEFT JOIN departments d ON d.id = p.department_id
		WHERE p.id = $1 AND p.is_active = TRUE
	`

	var pos position.Position
	err := q.QueryRow(ctx, query, id).Scan(
		&pos.ID, &pos.Title, &pos.Description, &pos.SalaryBase, &pos.DepartmentID, &pos.IsActive,
		&pos.CreatedAt, &pos.UpdatedAt,
		&pos.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position by ID: %w", err)
	}

	return pos, nil
}

// GetByTitleAndDepartment implements position.PositionRepository.
func (r *positionRepository) GetByTitleAndDepartment(ctx context.Context, title string, departmentID string) (*position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, salary_base, department_id, is_active, created_at, updated_at
		FROM positions
		WHERE LOWER(title) = LOWER($1) AND department_id = $2 AND is_active = TRUE
	`

	var pos position.Position
	err := q.QueryRow(ctx, query, title, departmentID).Scan(
		&pos.ID, &pos.Title, &pos.Description, &pos.SalaryBase, &pos.DepartmentID, &pos.IsActive,
		&pos.CreatedAt, &pos.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get position by title: %w", err)
	}

	return &pos, nil
}

// List implements position.PositionRepository.
func (r *positionRepository) List(ctx context.Context) ([]position.Position, error) {
	return r.list(ctx, "p.is_active = TRUE", nil)
}

// ListByDepartment implements position.PositionRepository.
func (r *positionRepository) ListByDepartment(ctx context.Context, departmentID string) ([]position.Position, error) {
	return r.list(ctx, "p.is_active = TRUE AND p.department_id = $1", []interface{}{departmentID})
}

func (r *positionRepository) list(ctx context.Context, where string, args []interface{}) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.description, p.salary_base, p.department_id, p.is_active,
		       p.created_at, p.updated_at,
		       d.name AS department_name
		FROM positions p
		LEFT JOIN departments d ON d.id = p.department_id
		WHERE %s
		ORDER BY p.title ASC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var pos position.Position
		err := rows.Scan(
			&pos.ID, &pos.Title, &pos.Description, &pos.SalaryBase, &pos.DepartmentID, &pos.IsActive,
			&pos.CreatedAt, &pos.UpdatedAt,
			&pos.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, pos)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate positions: %w", err)
	}

	return positions, nil
}

// Update implements position.PositionRepository.
func (r *positionRepository) Update(ctx context.Context, req position.UpdatePositionRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, *req.Title)
		argIdx++
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.SalaryBase != nil {
		setParts = append(setParts, fmt.Sprintf("salary_base = $%d", argIdx))
		args = append(args, *req.SalaryBase)
		argIdx++
	}
	if req.DepartmentID != nil {
		setParts = append(setParts, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, *req.DepartmentID)
		argIdx++
	}

	if len(setParts) == 0 {
		return nil
	}

	setParts = append(setParts, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE positions
		SET %s
		WHERE id = $%d AND is_active = TRUE
	`, strings.Join(setParts, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return position.ErrPositionTitleExists
		}
		return fmt.Errorf("failed to update position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}

// Delete implements position.PositionRepository.
func (r *positionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE positions
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}
