package postgresql

import (
	"context"
	"fmt"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/master/department"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name, is_active)
		VALUES ($1, TRUE)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, dept.Name).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	dept.IsActive = true
	return dept, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM departments
		WHERE id = $1 AND is_active = TRUE
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.IsActive, &dept.CreatedAt, &dept.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by ID: %w", err)
	}

	return dept, nil
}

// GetByName implements department.DepartmentRepository.
func (r *departmentRepository) GetByName(ctx context.Context, name string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM departments
		WHERE LOWER(name) = LOWER($1) AND is_active = TRUE
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, name).Scan(
		&dept.ID, &dept.Name, &dept.IsActive, &dept.CreatedAt, &dept.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}

	return &dept, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM departments
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		err := rows.Scan(&dept.ID, &dept.Name, &dept.IsActive, &dept.CreatedAt, &dept.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dept)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepository) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, updated_at = NOW()
		WHERE id = $2 AND is_active = TRUE
	`

	tag, err := q.Exec(ctx, query, req.Name, req.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return department.ErrDepartmentNameExists
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
