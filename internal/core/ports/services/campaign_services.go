package services

import (
	"context"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
)

// CampaignReaderSvc defines read operations for campaign data
type CampaignReaderSvc interface {
	// GetCampaignByID retrieves a specific campaign by its ID.
	GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)

	// ListCampaigns retrieves campaigns, optionally limited to active ones.
	ListCampaigns(ctx context.Context, onlyActive bool) ([]domain.Campaign, error)
}

// CampaignWriterSvc defines write operations for campaign data
type CampaignWriterSvc interface {
	// CreateCampaign persists a new campaign.
	CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest, actor domain.Actor) (*domain.Campaign, error)

	// UpdateCampaign applies partial updates to a campaign.
	UpdateCampaign(ctx context.Context, campaignID string, req dto.UpdateCampaignRequest, actor domain.Actor) (*domain.Campaign, error)

	// DeleteCampaign removes a campaign. With force, donation allocations
	// referencing it are removed in the same transaction.
	DeleteCampaign(ctx context.Context, campaignID string, force bool, actor domain.Actor) error
}

// CampaignSvcFacade combines all campaign-related service interfaces
type CampaignSvcFacade interface {
	CampaignReaderSvc
	CampaignWriterSvc
}
