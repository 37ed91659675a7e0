package services

import (
	"context"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
)

// StatsSvcFacade defines aggregation operations over the donation ledger.
type StatsSvcFacade interface {
	// GetChartSeries returns one zero-filled bucket per UTC day in the
	// resolved period, optionally filtered to a campaign or category.
	GetChartSeries(ctx context.Context, params dto.StatsQueryParams) (*dto.ChartSeriesResponse, error)

	// GetStatsSummary returns platform-wide totals, subscription breakdowns,
	// allocation totals per target, and the most recent donations.
	GetStatsSummary(ctx context.Context, params dto.StatsQueryParams) (*dto.StatsSummaryResponse, error)
}
