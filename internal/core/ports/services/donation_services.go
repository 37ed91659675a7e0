package services

import (
	"context"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/AdhamRef/gozbebekleri-sub002/internal/dto"
)

// DonationReaderSvc defines read operations for donation data
type DonationReaderSvc interface {
	// GetDonationByID retrieves a specific donation by its ID.
	GetDonationByID(ctx context.Context, donationID string, actor domain.Actor) (*domain.Donation, error)

	// ListDonations retrieves a paginated list of donations (admin only).
	ListDonations(ctx context.Context, params dto.ListDonationsParams, actor domain.Actor) (*dto.ListDonationsResponse, error)

	// ListDonationsByDonor retrieves a paginated list of the donor's own donations.
	ListDonationsByDonor(ctx context.Context, donorID string, params dto.ListDonationsParams, actor domain.Actor) (*dto.ListDonationsResponse, error)
}

// DonationWriterSvc defines write operations for donation data
type DonationWriterSvc interface {
	// CreateDonation validates allocations, computes fees and USD amounts, and
	// persists the donation with its allocation items atomically.
	CreateDonation(ctx context.Context, req dto.CreateDonationRequest, actor domain.Actor) (*domain.Donation, error)

	// DeleteDonation removes a donation and reverses its effect on target totals.
	DeleteDonation(ctx context.Context, donationID string, actor domain.Actor) error
}

// SubscriptionSvc defines lifecycle operations for monthly donations
type SubscriptionSvc interface {
	// UpdateSubscription applies a status transition and/or billing day change
	// to a monthly donation.
	UpdateSubscription(ctx context.Context, donationID string, req dto.UpdateSubscriptionRequest, actor domain.Actor) (*domain.Donation, error)
}

// DonationSvcFacade combines all donation-related service interfaces
type DonationSvcFacade interface {
	DonationReaderSvc
	DonationWriterSvc
	SubscriptionSvc
}
