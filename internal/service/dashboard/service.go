package dashboard

import (
	"context"
	"fmt"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// Overview implements dashboard.DashboardService. The six counts are
// independent queries, so they fan out in parallel.
func (s *DashboardServiceImpl) Overview(ctx context.Context) (dashboard.OverviewResponse, error) {
	var resp dashboard.OverviewResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.CountActiveEmployees(gCtx)
		resp.ActiveEmployees = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountDepartments(gCtx)
		resp.Departments = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountCheckedInToday(gCtx)
		resp.CheckedInToday = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountOpenSessions(gCtx)
		resp.OpenSessions = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountPendingLeave(gCtx)
		resp.PendingLeave = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountReviewsThisMonth(gCtx)
		resp.ReviewsThisMonth = n
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("failed to build dashboard overview: %w", err)
	}

	return resp, nil
}
