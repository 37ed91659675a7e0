package models

import (
	"github.com/shopspring/decimal"
)

// Campaign represents a row of the campaigns table.
// current_amount is only ever written by donation ledger transactions.
type Campaign struct {
	CampaignID    string          `db:"campaign_id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	IsActive      bool            `db:"is_active"`
	CategoryID    *string         `db:"category_id"` // Nullable
	Priority      int             `db:"priority"`
	AuditFields
}
