package services

import (
	portsrepo "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/repositories"
	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. events may be nil when no broker is configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, events portssvc.EventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Campaign = NewCampaignService(repos.CampaignRepo, repos.CategoryRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)

	// The rate facade doubles as the RateProvider the ledger divides by.
	rates := container.ExchangeRate.(portssvc.RateProvider)
	container.Donation = NewDonationService(repos.DonationRepo, repos.CampaignRepo, repos.CategoryRepo, rates, events)

	container.Stats = NewStatsService(repos.StatsRepo)
	container.GoogleAuth = NewGoogleAuthService(cfg)

	return container
}
