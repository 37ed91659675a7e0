package services

import (
	"context"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/shopspring/decimal"
)

// RateProvider resolves the conversion rate for a currency, expressed as
// units of that currency per one USD.
type RateProvider interface {
	GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error)
}

// ExchangeRateReaderSvc defines read operations for exchange rates
type ExchangeRateReaderSvc interface {
	// GetRate retrieves the stored rate for a currency.
	GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error)

	// ConvertToUSD converts an amount in the given currency to USD.
	// The result is not rounded; callers round once at presentation time.
	ConvertToUSD(ctx context.Context, amount decimal.Decimal, currencyCode string) (decimal.Decimal, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rates
type ExchangeRateWriterSvc interface {
	// UpsertRate stores or replaces the rate for a currency (admin only).
	UpsertRate(ctx context.Context, currencyCode string, req dto.UpsertRateRequest, actor domain.Actor) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange-rate service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
