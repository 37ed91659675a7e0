package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one row of the cached rate table: units of the currency
// per 1 USD. Rows are pushed by an external rate collaborator on its own
// refresh schedule; the ledger treats a stale-but-present rate as valid.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "EUR")
	RatePerUSD   decimal.Decimal `json:"ratePerUSD"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	UpdatedBy    string          `json:"updatedBy"`
}
