package domain

import (
	"github.com/shopspring/decimal"
)

// Category groups campaigns and can also receive direct, campaign-less
// allocations. CurrentAmount follows the same ledger invariant as Campaign,
// summed over its category allocation rows.
type Category struct {
	CategoryID    string          `json:"categoryID"` // Primary Key (e.g., UUID)
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	CurrentAmount decimal.Decimal `json:"currentAmount"` // Raised via direct allocations, USD
	Priority      int             `json:"priority"`
	AuditFields
}
