package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (name, hire_date, position_id, shift_id, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.Name,
		emp.HireDate,
		emp.PositionID,
		emp.ShiftID,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	emp.IsActive = true
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.hire_date, e.position_id, e.shift_id, e.is_active,
		       e.created_at, e.updated_at,
		       p.title AS position_title,
		       p.salary_base,
		       d.name AS department_name,
		       ws.name AS shift_name
		FROM employees e
		LEFT JOIN positions p ON p.id = e.position_id
		LEFT JOIN departments d ON d.id = p.department_id
		LEFT JOIN work_shifts ws ON ws.id = e.shift_id
		WHERE e.id = $1 AND e.is_active = TRUE
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.HireDate, &emp.PositionID, &emp.ShiftID, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
		&emp.PositionTitle, &emp.SalaryBase, &emp.DepartmentName, &emp.ShiftName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"e.is_active = TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("e.name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees e WHERE %s", whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	validSortColumns := map[string]string{
		"name":       "e.name",
		"hire_date":  "e.hire_date",
		"created_at": "e.created_at",
	}
	sortColumn, ok := validSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "e.created_at"
	}

	sortOrder := "DESC"
	if strings.ToUpper(filter.SortOrder) == "ASC" {
		sortOrder = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT e.id, e.name, e.hire_date, e.position_id, e.shift_id, e.is_active,
		       e.created_at, e.updated_at,
		       p.title AS position_title,
		       d.name AS department_name,
		       ws.name AS shift_name
		FROM employees e
		LEFT JOIN positions p ON p.id = e.position_id
		LEFT JOIN departments d ON d.id = p.department_id
		LEFT JOIN work_shifts ws ON ws.id = e.shift_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.HireDate, &emp.PositionID, &emp.ShiftID, &emp.IsActive,
			&emp.CreatedAt, &emp.UpdatedAt,
			&emp.PositionTitle, &emp.DepartmentName, &emp.ShiftName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.HireDate != nil {
		setParts = append(setParts, fmt.Sprintf("hire_date = $%d", argIdx))
		args = append(args, *req.HireDate)
		argIdx++
	}
	if req.PositionID != nil {
		setParts = append(setParts, fmt.Sprintf("position_id = $%d", argIdx))
		args = append(args, *req.PositionID)
		argIdx++
	}
	if req.ShiftID != nil {
		setParts = append(setParts, fmt.Sprintf("shift_id = $%d", argIdx))
		args = append(args, *req.ShiftID)
		argIdx++
	}

	if len(setParts) == 0 {
		return nil
	}

	setParts = append(setParts, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d AND is_active = TRUE
	`, strings.Join(setParts, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
