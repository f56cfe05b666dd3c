package dashboard

import "context"

// DashboardRepository exposes the individual counts; the service fans
// them out in parallel.
type DashboardRepository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	CountCheckedInToday(ctx context.Context) (int64, error)
	CountOpenSessions(ctx context.Context) (int64, error)
	CountPendingLeave(ctx context.Context) (int64, error)
	CountReviewsThisMonth(ctx context.Context) (int64, error)
}
