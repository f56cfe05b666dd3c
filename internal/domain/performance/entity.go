package performance

import "time"

type Review struct {
	ID         string
	EmployeeID string
	ReviewerID string
	Rating     int
	Feedback   string
	ReviewDate time.Time
	CreatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
