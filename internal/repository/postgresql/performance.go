package postgresql

import (
	"context"
	"fmt"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/performance"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reviewRepository struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create implements performance.ReviewRepository.
func (r *reviewRepository) Create(ctx context.Context, review performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (id, employee_id, reviewer_id, rating, feedback, review_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		review.ID,
		review.EmployeeID,
		review.ReviewerID,
		review.Rating,
		review.Feedback,
		review.ReviewDate,
	).Scan(&review.CreatedAt)
	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return review, nil
}

// ListByEmployee implements performance.ReviewRepository.
func (r *reviewRepository) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Review, error) {
	return r.list(ctx, "WHERE pr.employee_id = $1", []interface{}{employeeID})
}

// ListAll implements performance.ReviewRepository.
func (r *reviewRepository) ListAll(ctx context.Context) ([]performance.Review, error) {
	return r.list(ctx, "", nil)
}

func (r *reviewRepository) list(ctx context.Context, where string, args []interface{}) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT pr.id, pr.employee_id, pr.reviewer_id, pr.rating, pr.feedback,
		       pr.review_date, pr.created_at,
		       e.name AS employee_name
		FROM performance_reviews pr
		LEFT JOIN employees e ON e.id = pr.employee_id
		%s
		ORDER BY pr.review_date DESC, pr.created_at DESC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

func scanReviews(rows pgx.Rows) ([]performance.Review, error) {
	var reviews []performance.Review
	for rows.Next() {
		var review performance.Review
		err := rows.Scan(
			&review.ID, &review.EmployeeID, &review.ReviewerID, &review.Rating, &review.Feedback,
			&review.ReviewDate, &review.CreatedAt,
			&review.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate performance reviews: %w", err)
	}

	return reviews, nil
}
