package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/attendance"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepository{db: db}
}

// Create implements attendance.SessionRepository. The partial unique
// index uq_attendance_sessions_open guards the single-open-session
// invariant; a violation means another open session already exists.
func (r *sessionRepository) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (employee_id, shift_id, date, check_in_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.EmployeeID,
		session.ShiftID,
		session.Date,
		session.CheckIn,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Session{}, attendance.ErrOpenSessionExists
		}
		return attendance.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetOpenSession implements attendance.SessionRepository.
func (r *sessionRepository) GetOpenSession(ctx context.Context, employeeID string) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift_id, date, check_in_time, check_out_time,
		       work_duration_hours, status, created_at, updated_at
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND check_out_time IS NULL
		ORDER BY check_in_time DESC
		LIMIT 1
	`

	var s attendance.Session
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.EmployeeID, &s.ShiftID, &s.Date, &s.CheckIn, &s.CheckOut,
		&s.WorkDurationHours, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Session{}, attendance.ErrNoOpenSession
		}
		return attendance.Session{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return s, nil
}

// Close implements attendance.SessionRepository. The check_out_time IS
// NULL guard makes closing idempotent under races: only one caller can
// transition the row.
func (r *sessionRepository) Close(ctx context.Context, sessionID string, checkOut time.Time, workDurationHours float64, status string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET check_out_time = $1, work_duration_hours = $2, status = $3, updated_at = NOW()
		WHERE id = $4 AND check_out_time IS NULL
	`

	tag, err := q.Exec(ctx, query, checkOut, workDurationHours, status, sessionID)
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNoOpenSession
	}

	return nil
}

// List implements attendance.SessionRepository.
func (r *sessionRepository) List(ctx context.Context, filter attendance.SessionFilter) ([]attendance.Session, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "s.employee_id = $1"
	args := []interface{}{filter.EmployeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND s.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND s.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_sessions s WHERE " + baseWhere

	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
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
		SELECT s.id, s.employee_id, s.shift_id, s.date, s.check_in_time, s.check_out_time,
		       s.work_duration_hours, s.status, s.created_at, s.updated_at,
		       e.name AS employee_name
		FROM attendance_sessions s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE %s
		ORDER BY s.check_in_time DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.ShiftID, &s.Date, &s.CheckIn, &s.CheckOut,
			&s.WorkDurationHours, &s.Status, &s.CreatedAt, &s.UpdatedAt,
			&s.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, totalCount, nil
}

// DailyGroups implements attendance.SessionRepository. Only closed
// valid sessions participate; flagged rows stay out of the totals.
func (r *sessionRepository) DailyGroups(ctx context.Context, employeeID string, month int, year int) ([]attendance.DailyGroup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, shift_id,
		       SUM(work_duration_hours) AS total_hours,
		       MIN(check_in_time) AS first_check_in,
		       MAX(check_out_time) AS last_check_out
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		  AND check_out_time IS NOT NULL
		  AND status = $4
		GROUP BY date, shift_id
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month, year, attendance.StatusValid)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily groups: %w", err)
	}
	defer rows.Close()

	var groups []attendance.DailyGroup
	for rows.Next() {
		var g attendance.DailyGroup
		err := rows.Scan(&g.Date, &g.ShiftID, &g.TotalHours, &g.FirstCheckIn, &g.LastCheckOut)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily groups: %w", err)
	}

	return groups, nil
}
