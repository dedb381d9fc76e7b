package dashboard

import (
	"context"
	"time"

	"github.com/nology-tech/employee-creator-go/internal/domain/dashboard"
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

// GetStats returns the combined dashboard counts using parallel
// goroutines. 3 goroutines, each with 1 aggregate query.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (*dashboard.StatsResponse, error) {
	now := time.Now()

	var (
		headcount   *dashboard.HeadcountStats
		roles       *dashboard.RoleStats
		statusBasis *dashboard.StatusBasisStats
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.GetHeadcount(gCtx, now)
		if err != nil {
			return err
		}
		headcount = stats
		return nil
	})

	g.Go(func() error {
		stats, err := s.GetRoleCounts(gCtx)
		if err != nil {
			return err
		}
		roles = stats
		return nil
	})

	g.Go(func() error {
		stats, err := s.GetStatusBasisCounts(gCtx, now)
		if err != nil {
			return err
		}
		statusBasis = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.StatsResponse{
		TotalEmployees: headcount.Total,

		ActiveCount:   headcount.Active,
		InactiveCount: headcount.Inactive,

		FullTimeCount: headcount.FullTime,
		PartTimeCount: headcount.PartTime,

		PermanentCount: headcount.Permanent,
		ContractCount:  headcount.Contract,

		AdminCount:      roles.Admin,
		HRCount:         roles.HR,
		ManagerCount:    roles.Manager,
		EmployeeCount:   roles.Employee,
		InternCount:     roles.Intern,
		ContractorCount: roles.Contractor,

		ActiveFullTimeCount:   statusBasis.ActiveFullTime,
		ActivePartTimeCount:   statusBasis.ActivePartTime,
		InactiveFullTimeCount: statusBasis.InactiveFullTime,
		InactivePartTimeCount: statusBasis.InactivePartTime,
	}, nil
}
