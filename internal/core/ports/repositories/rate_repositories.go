package repositories

import (
	"context"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
)

// ExchangeRateReader defines read operations for the cached rate table
type ExchangeRateReader interface {
	// FindRate retrieves the cached rate for a currency code.
	FindRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for the cached rate table
type ExchangeRateWriter interface {
	// UpsertRate inserts or replaces the rate for a currency code.
	UpsertRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines the rate repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
