package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateBucket is one calendar day of donation activity in the chart series.
// Dates with no activity are emitted zero-filled so charts render without
// gap handling.
type DateBucket struct {
	Date           string          `json:"date"` // YYYY-MM-DD, UTC
	AmountOneTime  decimal.Decimal `json:"amountOneTime"`
	CountOneTime   int64           `json:"countOneTime"`
	AmountMonthly  decimal.Decimal `json:"amountMonthly"`
	CountMonthly   int64           `json:"countMonthly"`
	TeamSupportSum decimal.Decimal `json:"teamSupportSum"`
	FeesSum        decimal.Decimal `json:"feesSum"`
}

// RecentDonation is one row of the dashboard's recent-activity feed.
type RecentDonation struct {
	DonationID  string          `json:"donationID"`
	Amount      decimal.Decimal `json:"amount"` // USD
	DonorName   string          `json:"donorName"`
	Type        DonationType    `json:"type"`
	TargetTitle string          `json:"targetTitle"` // First campaign or category title
	CreatedAt   time.Time       `json:"createdAt"`
}

// AllocationTotals aggregates allocation rows for one target kind.
type AllocationTotals struct {
	AmountUSD decimal.Decimal `json:"amountUSD"`
	Count     int64           `json:"count"`
}

// SummaryAggregate is the dashboard summary over a date range.
// Every field is computed independently of the others.
type SummaryAggregate struct {
	TotalDonations int64           `json:"totalDonations"`
	TotalAmountUSD decimal.Decimal `json:"totalAmountUSD"`

	OneTimeCount int64 `json:"oneTimeCount"`
	MonthlyCount int64 `json:"monthlyCount"`

	ActiveMonthlyCount     int64           `json:"activeMonthlyCount"`
	ActiveMonthlyAmountUSD decimal.Decimal `json:"activeMonthlyAmountUSD"`
	// Stopped covers both PAUSED and CANCELLED subscriptions.
	StoppedMonthlyCount     int64           `json:"stoppedMonthlyCount"`
	StoppedMonthlyAmountUSD decimal.Decimal `json:"stoppedMonthlyAmountUSD"`

	CampaignAllocations AllocationTotals `json:"campaignAllocations"`
	CategoryAllocations AllocationTotals `json:"categoryAllocations"`

	TeamSupportSum decimal.Decimal `json:"teamSupportSum"`
	FeesSum        decimal.Decimal `json:"feesSum"`

	Recent []RecentDonation `json:"recent"`
}
