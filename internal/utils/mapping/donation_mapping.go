package mapping

import (
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/models"
)

// ToModelDonation converts a domain Donation to a model Donation.
// Allocation lines are mapped separately; they live in their own tables.
func ToModelDonation(d domain.Donation) models.Donation {
	return models.Donation{
		DonationID:      d.DonationID,
		DonorID:         d.DonorID,
		CurrencyCode:    d.CurrencyCode,
		Amount:          d.Amount,
		AmountUSD:       d.AmountUSD,
		TeamSupport:     d.TeamSupport,
		CoverFees:       d.CoverFees,
		Fees:            d.Fees,
		TotalAmount:     d.TotalAmount,
		Type:            string(d.Type),
		Status:          string(d.Status),
		BillingDay:      d.BillingDay,
		LastBillingDate: d.LastBillingDate,
		NextBillingDate: d.NextBillingDate,
		PaymentMethod:   string(d.PaymentMethod),
		PaymentMeta:     d.PaymentMeta,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDonation converts a model Donation to a domain Donation
func ToDomainDonation(m models.Donation) domain.Donation {
	return domain.Donation{
		DonationID:      m.DonationID,
		DonorID:         m.DonorID,
		CurrencyCode:    m.CurrencyCode,
		Amount:          m.Amount,
		AmountUSD:       m.AmountUSD,
		TeamSupport:     m.TeamSupport,
		CoverFees:       m.CoverFees,
		Fees:            m.Fees,
		TotalAmount:     m.TotalAmount,
		Type:            domain.DonationType(m.Type),
		Status:          domain.SubscriptionStatus(m.Status),
		BillingDay:      m.BillingDay,
		LastBillingDate: m.LastBillingDate,
		NextBillingDate: m.NextBillingDate,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		PaymentMeta:     m.PaymentMeta,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDonationItem converts a domain DonationItem to a model DonationItem
func ToModelDonationItem(d domain.DonationItem) models.DonationItem {
	return models.DonationItem{
		ItemID:      d.ItemID,
		DonationID:  d.DonationID,
		CampaignID:  d.CampaignID,
		Amount:      d.Amount,
		AmountUSD:   d.AmountUSD,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDonationItem converts a model DonationItem to a domain DonationItem
func ToDomainDonationItem(m models.DonationItem) domain.DonationItem {
	return domain.DonationItem{
		ItemID:      m.ItemID,
		DonationID:  m.DonationID,
		CampaignID:  m.CampaignID,
		Amount:      m.Amount,
		AmountUSD:   m.AmountUSD,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDonationCategoryItem converts a domain DonationCategoryItem to its model
func ToModelDonationCategoryItem(d domain.DonationCategoryItem) models.DonationCategoryItem {
	return models.DonationCategoryItem{
		ItemID:      d.ItemID,
		DonationID:  d.DonationID,
		CategoryID:  d.CategoryID,
		Amount:      d.Amount,
		AmountUSD:   d.AmountUSD,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDonationCategoryItem converts a model DonationCategoryItem to its domain form
func ToDomainDonationCategoryItem(m models.DonationCategoryItem) domain.DonationCategoryItem {
	return domain.DonationCategoryItem{
		ItemID:      m.ItemID,
		DonationID:  m.DonationID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		AmountUSD:   m.AmountUSD,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
