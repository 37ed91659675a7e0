package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationType distinguishes one-off gifts from recurring subscriptions.
type DonationType string

const (
	OneTime DonationType = "ONE_TIME"
	Monthly DonationType = "MONTHLY"
)

// SubscriptionStatus is the lifecycle state of a MONTHLY donation.
// ONE_TIME donations are created ACTIVE and never transition.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "ACTIVE"
	StatusPaused    SubscriptionStatus = "PAUSED"
	StatusCancelled SubscriptionStatus = "CANCELLED"
)

// ValidSubscriptionStatus reports whether s is a recognized lifecycle state.
func ValidSubscriptionStatus(s SubscriptionStatus) bool {
	switch s {
	case StatusActive, StatusPaused, StatusCancelled:
		return true
	}
	return false
}

// PaymentMethod identifies the payment instrument used for a donation.
// The gateway has already authorized the charge before the ledger records it.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "CARD"
	PaymentPayPal PaymentMethod = "PAYPAL"
)

// MaxBillingDay caps the recurring billing day so every month has it.
const MaxBillingDay = 28

// Donation is the ledger's central fact record. It owns its allocation lines
// and is created and deleted atomically with the campaign/category
// running-total adjustments those lines imply.
type Donation struct {
	DonationID   string          `json:"donationID"` // Primary Key (e.g., UUID)
	DonorID      string          `json:"donorID"`    // FK -> users.user_id
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`      // Base gift amount, donation currency
	AmountUSD    decimal.Decimal `json:"amountUSD"`   // Base gift amount normalized to USD
	TeamSupport  decimal.Decimal `json:"teamSupport"` // Optional add-on for operating costs
	CoverFees    bool            `json:"coverFees"`
	Fees         decimal.Decimal `json:"fees"`        // Always recorded; only charged when CoverFees
	TotalAmount  decimal.Decimal `json:"totalAmount"` // amount + teamSupport + (coverFees ? fees : 0)

	Type   DonationType       `json:"type"`
	Status SubscriptionStatus `json:"status"`

	// MONTHLY bookkeeping. Nil for ONE_TIME donations.
	BillingDay      *int       `json:"billingDay,omitempty"` // 1..MaxBillingDay
	LastBillingDate *time.Time `json:"lastBillingDate,omitempty"`
	NextBillingDate *time.Time `json:"nextBillingDate,omitempty"`

	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	PaymentMeta   map[string]string `json:"-"` // Opaque payment-instrument metadata

	Items         []DonationItem         `json:"items,omitempty"`
	CategoryItems []DonationCategoryItem `json:"categoryItems,omitempty"`
	AuditFields
}

// IsMonthly reports whether the donation is a recurring subscription.
func (d *Donation) IsMonthly() bool {
	return d.Type == Monthly
}

// DonationItem is an immutable allocation of part of a donation to a campaign.
type DonationItem struct {
	ItemID     string          `json:"itemID"`
	DonationID string          `json:"donationID"` // FK -> donations.donation_id
	CampaignID string          `json:"campaignID"` // FK -> campaigns.campaign_id
	Amount     decimal.Decimal `json:"amount"`     // Donation currency
	AmountUSD  decimal.Decimal `json:"amountUSD"`
	AuditFields
}

// DonationCategoryItem is an immutable direct allocation to a category.
type DonationCategoryItem struct {
	ItemID     string          `json:"itemID"`
	DonationID string          `json:"donationID"`
	CategoryID string          `json:"categoryID"` // FK -> categories.category_id
	Amount     decimal.Decimal `json:"amount"`
	AmountUSD  decimal.Decimal `json:"amountUSD"`
	AuditFields
}

// ClampBillingDay forces a billing day into the valid 1..MaxBillingDay range.
func ClampBillingDay(day int) int {
	if day < 1 {
		return 1
	}
	if day > MaxBillingDay {
		return MaxBillingDay
	}
	return day
}

// AddCalendarMonth returns the same day-of-month one month later, clamped to
// the target month's last day (Jan 31 -> Feb 28/29). This is a calendar
// month, not 30 days.
func AddCalendarMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfNext := time.Date(year, month+1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysInMonth(firstOfNext.Year(), firstOfNext.Month()); day > last {
		day = last
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// NextBillingFromDay computes the soonest UTC date whose day-of-month equals
// the (clamped) billing day and that is strictly after now when now's
// day-of-month has already reached it, otherwise later this month.
func NextBillingFromDay(now time.Time, day int) time.Time {
	day = ClampBillingDay(day)
	now = now.UTC()
	year, month, _ := now.Date()
	if now.Day() >= day {
		month++
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
