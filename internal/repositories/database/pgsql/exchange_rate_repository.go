package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/apperrors"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portsrepo "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/repositories"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/models"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository stores the cached rate table pushed by the
// external rate collaborator.
type PgxExchangeRateRepository struct {
	db *pgxpool.Pool
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{db: db}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// FindRate retrieves the cached rate for a currency code.
func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	code := strings.ToUpper(currencyCode)
	query := `SELECT currency_code, rate_per_usd, updated_at, updated_by FROM exchange_rates WHERE currency_code = $1;`

	var m models.ExchangeRate
	err := r.db.QueryRow(ctx, query, code).Scan(&m.CurrencyCode, &m.RatePerUSD, &m.UpdatedAt, &m.UpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no rate stored for currency %s", code))
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// UpsertRate inserts or replaces the rate for a currency code.
func (r *PgxExchangeRateRepository) UpsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	m.CurrencyCode = strings.ToUpper(m.CurrencyCode)

	query := `
		INSERT INTO exchange_rates (currency_code, rate_per_usd, updated_at, updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (currency_code)
		DO UPDATE SET rate_per_usd = EXCLUDED.rate_per_usd, updated_at = EXCLUDED.updated_at, updated_by = EXCLUDED.updated_by;
	`
	if _, err := r.db.Exec(ctx, query, m.CurrencyCode, m.RatePerUSD, m.UpdatedAt, m.UpdatedBy); err != nil {
		return apperrors.NewAppError(500, "failed to upsert exchange rate", err)
	}
	return nil
}
