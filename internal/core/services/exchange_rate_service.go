package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/apperrors"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portsrepo "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/repositories"
	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrRateUnavailable = errors.New("exchange rate unavailable for currency")
)

// usdCode is the normalization target; its rate is 1 by definition and never
// needs a table row.
const usdCode = "USD"

// exchangeRateService resolves currency conversion against the cached rate
// table maintained by the external rate collaborator.
type exchangeRateService struct {
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
var _ portssvc.RateProvider = (*exchangeRateService)(nil)

// GetRate returns the stored units-per-USD rate for the currency.
func (s *exchangeRateService) GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	if currencyCode == usdCode {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.FindRate(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrRateUnavailable, currencyCode)
		}
		return decimal.Zero, fmt.Errorf("failed to find rate for %s: %w", currencyCode, err)
	}
	if rate.RatePerUSD.IsZero() || rate.RatePerUSD.IsNegative() {
		// A zero or negative rate is corrupt data, not a conversion input.
		return decimal.Zero, fmt.Errorf("%w: %s", ErrRateUnavailable, currencyCode)
	}
	return rate.RatePerUSD, nil
}

// ConvertToUSD divides the amount by the units-per-USD rate. The result is
// deliberately unrounded; rounding happens once, at the fee/total step.
func (s *exchangeRateService) ConvertToUSD(ctx context.Context, amount decimal.Decimal, currencyCode string) (decimal.Decimal, error) {
	rate, err := s.GetRate(ctx, currencyCode)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Div(rate), nil
}

// UpsertRate stores or replaces the rate for a currency. Only admins (the
// rate collaborator authenticates as one) may write rates.
func (s *exchangeRateService) UpsertRate(ctx context.Context, currencyCode string, req dto.UpsertRateRequest, actor domain.Actor) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may update exchange rates", apperrors.ErrForbidden)
	}
	if currencyCode == usdCode {
		return nil, fmt.Errorf("%w: USD rate is fixed at 1", apperrors.ErrValidation)
	}

	rate := domain.ExchangeRate{
		CurrencyCode: currencyCode,
		RatePerUSD:   req.Rate,
		UpdatedAt:    time.Now().UTC(),
		UpdatedBy:    actor.UserID,
	}
	if err := s.rateRepo.UpsertRate(ctx, rate); err != nil {
		logger.Error("Failed to upsert exchange rate", slog.String("currency", currencyCode), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to upsert exchange rate: %w", err)
	}

	logger.Info("Exchange rate updated", slog.String("currency", currencyCode), slog.String("rate", req.Rate.String()))
	return &rate, nil
}
