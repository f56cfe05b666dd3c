package performance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/performance"
)

type PerformanceServiceImpl struct {
	performance.ReviewRepository
	employee.EmployeeRepository
}

func NewPerformanceService(
	reviewRepo performance.ReviewRepository,
	employeeRepo employee.EmployeeRepository,
) performance.PerformanceService {
	return &PerformanceServiceImpl{
		ReviewRepository:   reviewRepo,
		EmployeeRepository: employeeRepo,
	}
}

func toReviewResponse(r performance.Review) performance.ReviewResponse {
	return performance.ReviewResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		ReviewerID:   r.ReviewerID,
		Rating:       r.Rating,
		Feedback:     r.Feedback,
		ReviewDate:   r.ReviewDate.Format("2006-01-02"),
	}
}

// AddReview implements performance.PerformanceService. The reviewer is
// the authenticated user from the token.
func (s *PerformanceServiceImpl) AddReview(ctx context.Context, req performance.AddReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	reviewerID, ok := claims["user_id"].(string)
	if !ok || reviewerID == "" {
		return performance.ReviewResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return performance.ReviewResponse{}, employee.ErrEmployeeNotFound
		}
		return performance.ReviewResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	review := performance.Review{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Feedback:   req.Feedback,
		ReviewDate: time.Now().UTC(),
	}

	created, err := s.ReviewRepository.Create(ctx, review)
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to create review: %w", err)
	}

	created.EmployeeName = &emp.Name
	return toReviewResponse(created), nil
}

// ListReviews implements performance.PerformanceService. An empty
// employeeID lists every review.
func (s *PerformanceServiceImpl) ListReviews(ctx context.Context, employeeID string) ([]performance.ReviewResponse, error) {
	var (
		reviews []performance.Review
		err     error
	)
	if employeeID != "" {
		reviews, err = s.ReviewRepository.ListByEmployee(ctx, employeeID)
	} else {
		reviews, err = s.ReviewRepository.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, toReviewResponse(r))
	}
	return responses, nil
}

// Stats implements performance.PerformanceService. Averages are rounded
// to two decimals.
func (s *PerformanceServiceImpl) Stats(ctx context.Context) (performance.StatsResponse, error) {
	reviews, err := s.ReviewRepository.ListAll(ctx)
	if err != nil {
		return performance.StatsResponse{}, fmt.Errorf("failed to list reviews: %w", err)
	}

	type bucket struct {
		name     string
		total    int
		count    int
		feedback []string
	}

	buckets := make(map[string]*bucket)
	order := []string{}
	grandTotal := 0

	for _, r := range reviews {
		b, ok := buckets[r.EmployeeID]
		if !ok {
			b = &bucket{}
			if r.EmployeeName != nil {
				b.name = *r.EmployeeName
			}
			buckets[r.EmployeeID] = b
			order = append(order, r.EmployeeID)
		}
		b.total += r.Rating
		b.count++
		b.feedback = append(b.feedback, r.Feedback)
		grandTotal += r.Rating
	}

	resp := performance.StatsResponse{
		TotalReviews: len(reviews),
		Employees:    make([]performance.EmployeeStats, 0, len(buckets)),
	}
	if len(reviews) > 0 {
		resp.OverallAverage = round2(float64(grandTotal) / float64(len(reviews)))
	}

	for _, id := range order {
		b := buckets[id]
		resp.Employees = append(resp.Employees, performance.EmployeeStats{
			EmployeeID:    id,
			EmployeeName:  b.name,
			AverageRating: round2(float64(b.total) / float64(b.count)),
			ReviewCount:   b.count,
			Feedback:      b.feedback,
		})
	}

	return resp, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
