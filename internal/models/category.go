package models

import (
	"github.com/shopspring/decimal"
)

// Category represents a row of the categories table.
type Category struct {
	CategoryID    string          `db:"category_id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Priority      int             `db:"priority"`
	AuditFields
}
