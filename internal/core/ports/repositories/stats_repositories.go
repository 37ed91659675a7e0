package repositories

import (
	"context"
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatsFilter narrows statistics queries to one campaign or one category.
// When both are set the campaign filter wins; callers resolve that before
// reaching the repository.
type StatsFilter struct {
	CampaignID *string
	CategoryID *string
}

// StatsRepository defines the read-only aggregate queries behind the
// dashboard. Every method is independent of the others so the service can
// fan them out concurrently, and every method runs outside any write
// transaction.
type StatsRepository interface {
	// FindDonationsInRange retrieves donations created within [from, to]
	// matching the filter, with allocation lines populated in a batched
	// second query.
	FindDonationsInRange(ctx context.Context, from, to time.Time, filter StatsFilter) ([]domain.Donation, error)

	// CountDonations counts donations in range.
	CountDonations(ctx context.Context, from, to time.Time, filter StatsFilter) (int64, error)

	// SumDonationAmountUSD sums the USD base amount of donations in range.
	SumDonationAmountUSD(ctx context.Context, from, to time.Time, filter StatsFilter) (decimal.Decimal, error)

	// CountDonationsByType counts donations in range split by kind.
	CountDonationsByType(ctx context.Context, from, to time.Time, filter StatsFilter) (map[domain.DonationType]int64, error)

	// MonthlySubscriptionTotals returns count and USD amount sums of MONTHLY
	// donations in range, split into active and stopped (paused/cancelled).
	MonthlySubscriptionTotals(ctx context.Context, from, to time.Time, filter StatsFilter) (active, stopped domain.AllocationTotals, err error)

	// AllocationTotalsByKind sums allocation rows in range per target kind.
	AllocationTotalsByKind(ctx context.Context, from, to time.Time, filter StatsFilter) (campaign, category domain.AllocationTotals, err error)

	// SumTeamSupportAndFees sums the team-support add-on and recorded fees
	// of donations in range.
	SumTeamSupportAndFees(ctx context.Context, from, to time.Time, filter StatsFilter) (teamSupport, fees decimal.Decimal, err error)

	// RecentDonations returns the most recent donations in range, newest
	// first, with donor name and first target title resolved.
	RecentDonations(ctx context.Context, from, to time.Time, filter StatsFilter, limit int) ([]domain.RecentDonation, error)
}
