package dto

import (
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CampaignAllocationInput is one allocation line directed at a campaign.
type CampaignAllocationInput struct {
	CampaignID string          `json:"campaignID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// CategoryAllocationInput is one direct allocation line to a category.
type CategoryAllocationInput struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// CreateDonationRequest is the payload for recording a donation. The charge
// has already been authorized by the payment gateway; this only records it.
type CreateDonationRequest struct {
	CurrencyCode        string                    `json:"currencyCode" binding:"required,len=3,uppercase"`
	CampaignAllocations []CampaignAllocationInput `json:"campaignAllocations" binding:"omitempty,dive"`
	CategoryAllocations []CategoryAllocationInput `json:"categoryAllocations" binding:"omitempty,dive"`
	TeamSupport         decimal.Decimal           `json:"teamSupport" binding:"omitempty,gte=0"`
	CoverFees           bool                      `json:"coverFees"`
	Type                domain.DonationType       `json:"type" binding:"required,oneof=ONE_TIME MONTHLY"`
	BillingDay          *int                      `json:"billingDay" binding:"omitempty,min=1,max=31"`
	PaymentMethod       domain.PaymentMethod      `json:"paymentMethod" binding:"required,oneof=CARD PAYPAL"`
	PaymentMeta         map[string]string         `json:"paymentMeta"`
}

// UpdateSubscriptionRequest changes the lifecycle state and/or billing day
// of a MONTHLY donation. Both fields are optional; at least one must be set.
type UpdateSubscriptionRequest struct {
	Status     *domain.SubscriptionStatus `json:"status"`
	BillingDay *int                       `json:"billingDay" binding:"omitempty,min=1,max=31"`
}

// ListDonationsParams holds parameters for listing donations.
type ListDonationsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// DonationItemResponse is one allocation line in a donation response.
type DonationItemResponse struct {
	ItemID     string          `json:"itemID"`
	CampaignID string          `json:"campaignID,omitempty"`
	CategoryID string          `json:"categoryID,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	AmountUSD  decimal.Decimal `json:"amountUSD"`
}

// DonationResponse defines the data returned for a donation.
type DonationResponse struct {
	DonationID      string                    `json:"donationID"`
	DonorID         string                    `json:"donorID"`
	CurrencyCode    string                    `json:"currencyCode"`
	Amount          decimal.Decimal           `json:"amount"`
	AmountUSD       decimal.Decimal           `json:"amountUSD"`
	TeamSupport     decimal.Decimal           `json:"teamSupport"`
	CoverFees       bool                      `json:"coverFees"`
	Fees            decimal.Decimal           `json:"fees"`
	TotalAmount     decimal.Decimal           `json:"totalAmount"`
	Type            domain.DonationType       `json:"type"`
	Status          domain.SubscriptionStatus `json:"status"`
	BillingDay      *int                      `json:"billingDay,omitempty"`
	LastBillingDate *time.Time                `json:"lastBillingDate,omitempty"`
	NextBillingDate *time.Time                `json:"nextBillingDate,omitempty"`
	PaymentMethod   domain.PaymentMethod      `json:"paymentMethod"`
	Items           []DonationItemResponse    `json:"items"`
	CategoryItems   []DonationItemResponse    `json:"categoryItems"`
	CreatedAt       time.Time                 `json:"createdAt"`
}

// ListDonationsResponse is a page of donations with the next cursor.
type ListDonationsResponse struct {
	Donations []DonationResponse `json:"donations"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToDonationResponse converts a domain.Donation to DonationResponse DTO.
func ToDonationResponse(d *domain.Donation) DonationResponse {
	items := make([]DonationItemResponse, len(d.Items))
	for i, item := range d.Items {
		items[i] = DonationItemResponse{
			ItemID:     item.ItemID,
			CampaignID: item.CampaignID,
			Amount:     item.Amount,
			AmountUSD:  item.AmountUSD,
		}
	}
	categoryItems := make([]DonationItemResponse, len(d.CategoryItems))
	for i, item := range d.CategoryItems {
		categoryItems[i] = DonationItemResponse{
			ItemID:     item.ItemID,
			CategoryID: item.CategoryID,
			Amount:     item.Amount,
			AmountUSD:  item.AmountUSD,
		}
	}
	return DonationResponse{
		DonationID:      d.DonationID,
		DonorID:         d.DonorID,
		CurrencyCode:    d.CurrencyCode,
		Amount:          d.Amount,
		AmountUSD:       d.AmountUSD,
		TeamSupport:     d.TeamSupport,
		CoverFees:       d.CoverFees,
		Fees:            d.Fees,
		TotalAmount:     d.TotalAmount,
		Type:            d.Type,
		Status:          d.Status,
		BillingDay:      d.BillingDay,
		LastBillingDate: d.LastBillingDate,
		NextBillingDate: d.NextBillingDate,
		PaymentMethod:   d.PaymentMethod,
		Items:           items,
		CategoryItems:   categoryItems,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDonationResponses converts a slice of donations.
func ToDonationResponses(donations []domain.Donation) []DonationResponse {
	responses := make([]DonationResponse, len(donations))
	for i := range donations {
		responses[i] = ToDonationResponse(&donations[i])
	}
	return responses
}
