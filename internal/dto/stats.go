package dto

import (
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
)

// StatsQueryParams selects the date range and optional target filter for
// both statistics queries. Explicit dates take precedence over the period
// keyword; when both campaignID and categoryID are set, campaignID wins.
type StatsQueryParams struct {
	Period     string     `form:"period" binding:"omitempty,oneof=day week month all"`
	StartDate  *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate    *time.Time `form:"endDate" time_format:"2006-01-02"`
	CampaignID *string    `form:"campaignID"`
	CategoryID *string    `form:"categoryID"`
}

// ChartSeriesResponse carries one bucket per UTC day in the requested range.
type ChartSeriesResponse struct {
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Buckets   []domain.DateBucket `json:"buckets"`
}

// StatsSummaryResponse carries the platform-wide aggregate view.
type StatsSummaryResponse struct {
	domain.SummaryAggregate
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
