package dashboard

import (
	"context"
	"time"
)

// HeadcountStats combines the overall counts in a single query.
type HeadcountStats struct {
	Total     int64
	Active    int64
	Inactive  int64
	FullTime  int64
	PartTime  int64
	Permanent int64
	Contract  int64
}

// RoleStats is the per-role breakdown.
type RoleStats struct {
	Admin      int64
	HR         int64
	Manager    int64
	Employee   int64
	Intern     int64
	Contractor int64
}

// StatusBasisStats crosses derived status with employment basis.
type StatusBasisStats struct {
	ActiveFullTime   int64
	ActivePartTime   int64
	InactiveFullTime int64
	InactivePartTime int64
}

// DashboardRepository defines the aggregate queries behind the stats
// endpoint. The asOf date anchors the active/inactive derivation.
type DashboardRepository interface {
	GetHeadcount(ctx context.Context, asOf time.Time) (*HeadcountStats, error)
	GetRoleCounts(ctx context.Context) (*RoleStats, error)
	GetStatusBasisCounts(ctx context.Context, asOf time.Time) (*StatusBasisStats, error)
}
