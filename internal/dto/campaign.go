package dto

import (
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCampaignRequest is the payload for creating a campaign.
type CreateCampaignRequest struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required,gt=0"`
	CategoryID   *string         `json:"categoryID"`
	Priority     int             `json:"priority"`
	IsActive     *bool           `json:"isActive"` // Defaults to true when omitted
}

// UpdateCampaignRequest updates campaign details. Nil fields are untouched.
// current_amount is not updatable from here under any circumstances.
type UpdateCampaignRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	TargetAmount *decimal.Decimal `json:"targetAmount" binding:"omitempty,gt=0"`
	CategoryID   *string          `json:"categoryID"`
	Priority     *int             `json:"priority"`
	IsActive     *bool            `json:"isActive"`
}

// CampaignResponse defines the data returned for a campaign.
type CampaignResponse struct {
	CampaignID    string          `json:"campaignID"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	IsActive      bool            `json:"isActive"`
	CategoryID    *string         `json:"categoryID,omitempty"`
	Priority      int             `json:"priority"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToCampaignResponse converts a domain.Campaign to CampaignResponse DTO.
func ToCampaignResponse(c *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		CampaignID:    c.CampaignID,
		Title:         c.Title,
		Description:   c.Description,
		TargetAmount:  c.TargetAmount,
		CurrentAmount: c.CurrentAmount,
		IsActive:      c.IsActive,
		CategoryID:    c.CategoryID,
		Priority:      c.Priority,
		CreatedAt:     c.CreatedAt,
	}
}

// ToCampaignResponses converts a slice of campaigns.
func ToCampaignResponses(campaigns []domain.Campaign) []CampaignResponse {
	responses := make([]CampaignResponse, len(campaigns))
	for i := range campaigns {
		responses[i] = ToCampaignResponse(&campaigns[i])
	}
	return responses
}
