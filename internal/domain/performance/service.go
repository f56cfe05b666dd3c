package performance

import "context"

type PerformanceService interface {
	AddReview(ctx context.Context, req AddReviewRequest) (ReviewResponse, error)
	ListReviews(ctx context.Context, employeeID string) ([]ReviewResponse, error)

	// Stats aggregates per-employee and overall average ratings.
	Stats(ctx context.Context) (StatsResponse, error)
}
