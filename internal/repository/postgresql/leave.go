package postgresql

import (
	"context"
	"fmt"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/leave"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
		       lr.reason, lr.status, lr.created_at, lr.updated_at,
		       e.name AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, employeeID *string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
		       lr.reason, lr.status, lr.created_at, lr.updated_at,
		       e.name AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
	`
	args := []interface{}{}
	if employeeID != nil && *employeeID != "" {
		query += " WHERE lr.employee_id = $1"
		args = append(args, *employeeID)
	}
	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// UpdateStatus implements leave.LeaveRepository. Only pending requests
// transition; processed ones stay as decided.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	tag, err := q.Exec(ctx, query, status, id, leave.LeaveStatusPending)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}

// ApprovedAnnual implements leave.LeaveRepository.
func (r *leaveRepository) ApprovedAnnual(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
		       lr.reason, lr.status, lr.created_at, lr.updated_at,
		       NULL AS employee_name
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		  AND lr.leave_type = $2
		  AND lr.status = $3
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, leave.LeaveTypeAnnual, leave.LeaveStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved annual leave: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate,
			&req.Reason, &req.Status, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}
