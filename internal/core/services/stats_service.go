package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portsrepo "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/repositories"
	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils/money"
	"golang.org/x/sync/errgroup"
)

const (
	dateFormat       = "2006-01-02"
	recentFeedLimit  = 10
	allPeriodDays    = 3650
	weekPeriodDays   = 7
	monthPeriodDays  = 30
	defaultChartDays = 1
)

// statsService turns the donation ledger into dashboard aggregates. Pure
// reads; nothing here touches ledger state.
type statsService struct {
	statsRepo portsrepo.StatsRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(statsRepo portsrepo.StatsRepository) portssvc.StatsSvcFacade {
	return &statsService{statsRepo: statsRepo}
}

var _ portssvc.StatsSvcFacade = (*statsService)(nil)

// resolveRange turns query params into UTC day boundaries. Explicit dates
// win over the period keyword; the range is inclusive on both ends.
func resolveRange(params dto.StatsQueryParams, now time.Time) (from, to time.Time) {
	now = now.UTC()
	to = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, time.UTC)

	days := defaultChartDays
	switch params.Period {
	case "week":
		days = weekPeriodDays
	case "month":
		days = monthPeriodDays
	case "all":
		days = allPeriodDays
	}
	from = to.AddDate(0, 0, -days+1)
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)

	if params.StartDate != nil {
		d := params.StartDate.UTC()
		from = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	if params.EndDate != nil {
		d := params.EndDate.UTC()
		to = time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999999999, time.UTC)
	}
	if to.Before(from) {
		to = time.Date(from.Year(), from.Month(), from.Day(), 23, 59, 59, 999999999, time.UTC)
	}
	return from, to
}

// resolveFilter maps query params to the repository filter. A campaign
// filter beats a category filter when both are present.
func resolveFilter(params dto.StatsQueryParams) portsrepo.StatsFilter {
	if params.CampaignID != nil && *params.CampaignID != "" {
		return portsrepo.StatsFilter{CampaignID: params.CampaignID}
	}
	if params.CategoryID != nil && *params.CategoryID != "" {
		return portsrepo.StatsFilter{CategoryID: params.CategoryID}
	}
	return portsrepo.StatsFilter{}
}

// GetChartSeries buckets donations by UTC calendar date, emitting one
// zero-filled bucket per day in the range so charts need no gap handling.
func (s *statsService) GetChartSeries(ctx context.Context, params dto.StatsQueryParams) (*dto.ChartSeriesResponse, error) {
	from, to := resolveRange(params, time.Now())
	filter := resolveFilter(params)

	donations, err := s.statsRepo.FindDonationsInRange(ctx, from, to, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch donations for chart: %w", err)
	}

	buckets := make(map[string]*domain.DateBucket)
	order := make([]string, 0)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateFormat)
		buckets[key] = &domain.DateBucket{Date: key}
		order = append(order, key)
	}

	for i := range donations {
		d := &donations[i]
		key := d.CreatedAt.UTC().Format(dateFormat)
		bucket, ok := buckets[key]
		if !ok {
			continue
		}
		amountUSD := money.ResolveUSDAmount(d)
		if d.IsMonthly() {
			bucket.AmountMonthly = bucket.AmountMonthly.Add(amountUSD)
			bucket.CountMonthly++
		} else {
			bucket.AmountOneTime = bucket.AmountOneTime.Add(amountUSD)
			bucket.CountOneTime++
		}
		bucket.TeamSupportSum = bucket.TeamSupportSum.Add(d.TeamSupport)
		bucket.FeesSum = bucket.FeesSum.Add(d.Fees)
	}

	series := make([]domain.DateBucket, 0, len(order))
	for _, key := range order {
		series = append(series, *buckets[key])
	}

	return &dto.ChartSeriesResponse{
		StartDate: from.Format(dateFormat),
		EndDate:   to.Format(dateFormat),
		Buckets:   series,
	}, nil
}

// GetStatsSummary fans the independent sub-aggregates out concurrently.
// Every sub-aggregate is order-insensitive, so the only coordination needed
// is waiting for all of them.
func (s *statsService) GetStatsSummary(ctx context.Context, params dto.StatsQueryParams) (*dto.StatsSummaryResponse, error) {
	from, to := resolveRange(params, time.Now())
	filter := resolveFilter(params)

	var agg domain.SummaryAggregate
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.statsRepo.CountDonations(gctx, from, to, filter)
		if err != nil {
			return fmt.Errorf("count donations: %w", err)
		}
		agg.TotalDonations = count
		return nil
	})

	g.Go(func() error {
		sum, err := s.statsRepo.SumDonationAmountUSD(gctx, from, to, filter)
		if err != nil {
			return fmt.Errorf("sum donation amounts: %w", err)
		}
		agg.TotalAmountUSD = sum
		return nil
	})

	g.Go(func() error {
		counts, err := s.statsRepo.CountDonationsByType(gctx, from, to, filter)
		if err != nil {
			return fmt.Errorf("count donations by type: %w", err)
		}
		agg.OneTimeCount = counts[domain.OneTime]
		agg.MonthlyCount = counts[domain.Monthly]
		return nil
	})

	g.Go(func() error {
		active, stopped, err := s.statsRepo.MonthlySubscriptionTotals(gctx, from, to, filter)
		if err != nil {
			return fmt.Errorf("monthly subscription totals: %w", err)
		}
		agg.ActiveMonthlyCount = active.Count
		agg.ActiveMonthlyAmountUSD = active.AmountUSD
		agg.StoppedMonthlyCount = stopped.Count
		agg.StoppedMonthlyAmountUSD = stopped.AmountUSD
		return nil
	})

	g.Go(func() error {
		campaign, category, err := s.statsRepo.AllocationTotalsByKind(gctx, from, to, filter)
		if err != nil {
			return fmt.Errorf("allocation totals: %w", err)
		}
		agg.CampaignAllocations = campaign
		agg.CategoryAllocations = category
		return nil
	})

	g.Go(func() error {
		teamSupport, fees, err := s.statsRepo.SumTeamSupportAndFees(gctx, from, to, filter)
		if err != nil {
			return fmt.Errorf("team support and fee sums: %w", err)
		}
		agg.TeamSupportSum = teamSupport
		agg.FeesSum = fees
		return nil
	})

	g.Go(func() error {
		recent, err := s.statsRepo.RecentDonations(gctx, from, to, filter, recentFeedLimit)
		if err != nil {
			return fmt.Errorf("recent donations: %w", err)
		}
		agg.Recent = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if agg.Recent == nil {
		agg.Recent = []domain.RecentDonation{}
	}

	return &dto.StatsSummaryResponse{
		SummaryAggregate: agg,
		StartDate:        from.Format(dateFormat),
		EndDate:          to.Format(dateFormat),
	}, nil
}
