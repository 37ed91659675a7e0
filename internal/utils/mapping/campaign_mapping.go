package mapping

import (
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/models"
)

// ToModelCampaign converts a domain Campaign to a model Campaign
func ToModelCampaign(d domain.Campaign) models.Campaign {
	return models.Campaign{
		CampaignID:    d.CampaignID,
		Title:         d.Title,
		Description:   d.Description,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		IsActive:      d.IsActive,
		CategoryID:    d.CategoryID,
		Priority:      d.Priority,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCampaign converts a model Campaign to a domain Campaign
func ToDomainCampaign(m models.Campaign) domain.Campaign {
	return domain.Campaign{
		CampaignID:    m.CampaignID,
		Title:         m.Title,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		IsActive:      m.IsActive,
		CategoryID:    m.CategoryID,
		Priority:      m.Priority,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:    d.CategoryID,
		Title:         d.Title,
		Description:   d.Description,
		CurrentAmount: d.CurrentAmount,
		Priority:      d.Priority,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:    m.CategoryID,
		Title:         m.Title,
		Description:   m.Description,
		CurrentAmount: m.CurrentAmount,
		Priority:      m.Priority,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
