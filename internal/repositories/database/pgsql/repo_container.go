package pgsql

import (
	portsrepo "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository onto one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	donationRepo := newPgxDonationRepository(pool)

	return portsrepo.RepositoryProvider{
		CampaignRepo:     newPgxCampaignRepository(pool),
		CategoryRepo:     newPgxCategoryRepository(pool),
		DonationRepo:     donationRepo,
		UserRepo:         newPgxUserRepository(pool),
		ExchangeRateRepo: newPgxExchangeRateRepository(pool),
		StatsRepo:        newPgxStatsRepository(pool, donationRepo),
	}
}
