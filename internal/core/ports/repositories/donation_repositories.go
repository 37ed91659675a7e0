package repositories

import (
	"context"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DonationReader defines read operations for donation data
type DonationReader interface {
	// FindDonationByID retrieves a donation with its allocation lines.
	FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error)

	// ListDonations retrieves a paginated list of all donations using
	// token-based pagination, newest first, with allocations populated.
	ListDonations(ctx context.Context, limit int, nextToken *string) ([]domain.Donation, *string, error)

	// ListDonationsByDonor retrieves a paginated list of one donor's
	// donations using token-based pagination, newest first.
	ListDonationsByDonor(ctx context.Context, donorID string, limit int, nextToken *string) ([]domain.Donation, *string, error)
}

// DonationWriter defines write operations for donation data.
// These are the only code paths permitted to touch campaign/category
// current_amount.
type DonationWriter interface {
	// SaveDonation persists a donation with its allocation lines and applies
	// the given per-target USD increments to campaign/category
	// current_amount, all within a single database transaction. Increments
	// are evaluated server-side so concurrent creates never lose updates.
	SaveDonation(ctx context.Context, donation domain.Donation, campaignDeltas map[string]decimal.Decimal, categoryDeltas map[string]decimal.Decimal) error

	// DeleteDonation reverses every allocation's effect on its target's
	// current_amount and removes the donation with its allocation rows, all
	// within a single transaction. Returns ErrNotFound when the donation
	// does not exist.
	DeleteDonation(ctx context.Context, donationID string) error

	// UpdateSubscription applies a subscription change to one donation.
	// The row is read with a row lock inside the write transaction, the
	// apply callback mutates status/billing fields on the freshly read
	// donation, and the full replacement is written before commit, so
	// concurrent transitions on the same row serialize.
	UpdateSubscription(ctx context.Context, donationID string, apply func(*domain.Donation) error) (*domain.Donation, error)
}

// DonationRepositoryFacade combines all donation-related repository interfaces
type DonationRepositoryFacade interface {
	DonationReader
	DonationWriter
}
