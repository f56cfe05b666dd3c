package postgresql

import (
	"context"
	"fmt"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/dashboard"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) count(ctx context.Context, label string, query string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", label, err)
	}
	return n, nil
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int64, error) {
	return r.count(ctx, "active employees", `
		SELECT COUNT(*) FROM employees WHERE is_active = TRUE
	`)
}

// CountDepartments implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountDepartments(ctx context.Context) (int64, error) {
	return r.count(ctx, "departments", `
		SELECT COUNT(*) FROM departments WHERE is_active = TRUE
	`)
}

// CountCheckedInToday implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountCheckedInToday(ctx context.Context) (int64, error) {
	return r.count(ctx, "employees checked in today", `
		SELECT COUNT(DISTINCT employee_id) FROM attendance_sessions WHERE date = CURRENT_DATE
	`)
}

// CountOpenSessions implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountOpenSessions(ctx context.Context) (int64, error) {
	return r.count(ctx, "open sessions", `
		SELECT COUNT(*) FROM attendance_sessions WHERE check_out_time IS NULL
	`)
}

// CountPendingLeave implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPendingLeave(ctx context.Context) (int64, error) {
	return r.count(ctx, "pending leave requests", `
		SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'
	`)
}

// CountReviewsThisMonth implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountReviewsThisMonth(ctx context.Context) (int64, error) {
	return r.count(ctx, "reviews this month", `
		SELECT COUNT(*) FROM performance_reviews
		WHERE EXTRACT(MONTH FROM review_date) = EXTRACT(MONTH FROM CURRENT_DATE)
		  AND EXTRACT(YEAR FROM review_date) = EXTRACT(YEAR FROM CURRENT_DATE)
	`)
}
