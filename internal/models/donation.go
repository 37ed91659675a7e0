package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation represents a row of the donations table.
type Donation struct {
	DonationID   string          `db:"donation_id"`
	DonorID      string          `db:"donor_id"`
	CurrencyCode string          `db:"currency_code"`
	Amount       decimal.Decimal `db:"amount"`
	AmountUSD    decimal.Decimal `db:"amount_usd"`
	TeamSupport  decimal.Decimal `db:"team_support"`
	CoverFees    bool            `db:"cover_fees"`
	Fees         decimal.Decimal `db:"fees"`
	TotalAmount  decimal.Decimal `db:"total_amount"`

	Type   string `db:"type"`
	Status string `db:"status"`

	BillingDay      *int       `db:"billing_day"`
	LastBillingDate *time.Time `db:"last_billing_date"`
	NextBillingDate *time.Time `db:"next_billing_date"`

	PaymentMethod string            `db:"payment_method"`
	PaymentMeta   map[string]string `db:"payment_meta"` // JSONB column
	AuditFields
}

// DonationItem represents a row of the donation_items table.
type DonationItem struct {
	ItemID     string          `db:"item_id"`
	DonationID string          `db:"donation_id"`
	CampaignID string          `db:"campaign_id"`
	Amount     decimal.Decimal `db:"amount"`
	AmountUSD  decimal.Decimal `db:"amount_usd"`
	AuditFields
}

// DonationCategoryItem represents a row of the donation_category_items table.
type DonationCategoryItem struct {
	ItemID     string          `db:"item_id"`
	DonationID string          `db:"donation_id"`
	CategoryID string          `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	AmountUSD  decimal.Decimal `db:"amount_usd"`
	AuditFields
}
