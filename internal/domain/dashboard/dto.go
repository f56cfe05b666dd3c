package dashboard

// OverviewResponse is the admin landing-page summary.
type OverviewResponse struct {
	ActiveEmployees  int64 `json:"active_employees"`
	Departments      int64 `json:"departments"`
	CheckedInToday   int64 `json:"checked_in_today"`
	OpenSessions     int64 `json:"open_sessions"`
	PendingLeave     int64 `json:"pending_leave"`
	ReviewsThisMonth int64 `json:"reviews_this_month"`
}
