package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents a row of the exchange_rates table, keyed by
// currency code. Rate is units of the currency per 1 USD.
type ExchangeRate struct {
	CurrencyCode string          `db:"currency_code"`
	RatePerUSD   decimal.Decimal `db:"rate_per_usd"`
	UpdatedAt    time.Time       `db:"updated_at"`
	UpdatedBy    string          `db:"updated_by"`
}
