package domain

import (
	"github.com/shopspring/decimal"
)

// Campaign represents a fundraising target on the public site.
//
// CurrentAmount is adjusted exclusively by the donation ledger, always in the
// same transaction as the allocation rows it reflects, so outside a ledger
// transaction it equals the USD sum of all live allocations referencing it.
type Campaign struct {
	CampaignID    string          `json:"campaignID"`           // Primary Key (e.g., UUID)
	Title         string          `json:"title"`                // Default-locale title
	Description   string          `json:"description"`          // Default-locale description
	TargetAmount  decimal.Decimal `json:"targetAmount"`         // Goal, USD
	CurrentAmount decimal.Decimal `json:"currentAmount"`        // Raised so far, USD
	IsActive      bool            `json:"isActive"`             // Inactive campaigns cannot receive allocations
	CategoryID    *string         `json:"categoryID,omitempty"` // Nullable FK -> categories.category_id
	Priority      int             `json:"priority"`             // Display ordering, lower first
	AuditFields
}
