package dto

import (
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertRateRequest pushes a refreshed exchange rate for one currency.
// Rate is units of the currency per 1 USD.
type UpsertRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required,gt=0"`
}

// ExchangeRateResponse defines the data returned for a cached rate.
type ExchangeRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	RatePerUSD   decimal.Decimal `json:"ratePerUSD"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		CurrencyCode: r.CurrencyCode,
		RatePerUSD:   r.RatePerUSD,
		UpdatedAt:    r.UpdatedAt,
	}
}
