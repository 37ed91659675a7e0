package repositories

import (
	"context"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
)

// CampaignReader defines read operations for campaign data
type CampaignReader interface {
	// FindCampaignByID retrieves a specific campaign by its unique identifier.
	FindCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)

	// FindCampaignsByIDs retrieves multiple campaigns in one batched query.
	FindCampaignsByIDs(ctx context.Context, campaignIDs []string) (map[string]domain.Campaign, error)

	// ListCampaigns retrieves campaigns ordered by priority. When onlyActive
	// is true, inactive campaigns are excluded.
	ListCampaigns(ctx context.Context, onlyActive bool) ([]domain.Campaign, error)
}

// CampaignWriter defines write operations for campaign data
type CampaignWriter interface {
	// SaveCampaign persists a new campaign.
	SaveCampaign(ctx context.Context, campaign domain.Campaign) error

	// UpdateCampaign updates an existing campaign's details. It never touches
	// current_amount; only the donation ledger does.
	UpdateCampaign(ctx context.Context, campaign domain.Campaign) error

	// DeleteCampaign hard-deletes a campaign. Without force it fails with
	// ErrConflict when donation allocations reference the campaign. With
	// force it runs the cascade cleanup (allocation rows, then donations
	// left with no allocations, then the campaign) in a single transaction.
	DeleteCampaign(ctx context.Context, campaignID string, force bool) error
}

// CampaignRepositoryFacade combines all campaign-related repository interfaces
type CampaignRepositoryFacade interface {
	CampaignReader
	CampaignWriter
}
