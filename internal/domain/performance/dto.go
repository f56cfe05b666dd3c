package performance

import (
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/validator"
)

type AddReviewRequest struct {
	EmployeeID string `json:"employee_id"`
	Rating     int    `json:"rating"`
	Feedback   string `json:"feedback"`
}

func (r *AddReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}

	if validator.IsEmpty(r.Feedback) {
		errs = append(errs, validator.ValidationError{
			Field:   "feedback",
			Message: "feedback is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ReviewerID   string  `json:"reviewer_id"`
	Rating       int     `json:"rating"`
	Feedback     string  `json:"feedback"`
	ReviewDate   string  `json:"review_date"`
}

type EmployeeStats struct {
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  string   `json:"employee_name"`
	AverageRating float64  `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
	Feedback      []string `json:"feedback"`
}

type StatsResponse struct {
	OverallAverage float64         `json:"overall_average"`
	TotalReviews   int             `json:"total_reviews"`
	Employees      []EmployeeStats `json:"employees"`
}
