package shift

import "time"

// Shift is a named work pattern: how many hours a day on this pattern is
// expected to produce, and how long its unpaid break runs.
type Shift struct {
	ID            string
	Name          string
	StandardHours float64
	BreakHours    float64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
