package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nology-tech/employee-creator-go/internal/domain/dashboard"
	"github.com/nology-tech/employee-creator-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetHeadcount implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) GetHeadcount(ctx context.Context, asOf time.Time) (*dashboard.HeadcountStats, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE finish_date IS NULL OR finish_date >= $1::date),
			COUNT(*) FILTER (WHERE finish_date IS NOT NULL AND finish_date < $1::date),
			COUNT(*) FILTER (WHERE employment_basis = 'FULL_TIME'),
			COUNT(*) FILTER (WHERE employment_basis = 'PART_TIME'),
			COUNT(*) FILTER (WHERE contract_type = 'PERMANENT'),
			COUNT(*) FILTER (WHERE contract_type = 'CONTRACT')
		FROM employees`

	var stats dashboard.HeadcountStats
	err := q.QueryRow(ctx, query, asOf).Scan(
		&stats.Total, &stats.Active, &stats.Inactive,
		&stats.FullTime, &stats.PartTime,
		&stats.Permanent, &stats.Contract,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get headcount stats: %w", err)
	}
	return &stats, nil
}

// GetRoleCounts implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) GetRoleCounts(ctx context.Context) (*dashboard.RoleStats, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE role = 'ADMIN'),
			COUNT(*) FILTER (WHERE role = 'HR'),
			COUNT(*) FILTER (WHERE role = 'MANAGER'),
			COUNT(*) FILTER (WHERE role = 'EMPLOYEE'),
			COUNT(*) FILTER (WHERE role = 'INTERN'),
			COUNT(*) FILTER (WHERE role = 'CONTRACTOR')
		FROM employees`

	var stats dashboard.RoleStats
	err := q.QueryRow(ctx, query).Scan(
		&stats.Admin, &stats.HR, &stats.Manager,
		&stats.Employee, &stats.Intern, &stats.Contractor,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get role stats: %w", err)
	}
	return &stats, nil
}

// GetStatusBasisCounts implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) GetStatusBasisCounts(ctx context.Context, asOf time.Time) (*dashboard.StatusBasisStats, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE (finish_date IS NULL OR finish_date >= $1::date) AND employment_basis = 'FULL_TIME'),
			COUNT(*) FILTER (WHERE (finish_date IS NULL OR finish_date >= $1::date) AND employment_basis = 'PART_TIME'),
			COUNT(*) FILTER (WHERE finish_date IS NOT NULL AND finish_date < $1::date AND employment_basis = 'FULL_TIME'),
			COUNT(*) FILTER (WHERE finish_date IS NOT NULL AND finish_date < $1::date AND employment_basis = 'PART_TIME')
		FROM employees`

	var stats dashboard.StatusBasisStats
	err := q.QueryRow(ctx, query, asOf).Scan(
		&stats.ActiveFullTime, &stats.ActivePartTime,
		&stats.InactiveFullTime, &stats.InactivePartTime,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get status basis stats: %w", err)
	}
	return &stats, nil
}
