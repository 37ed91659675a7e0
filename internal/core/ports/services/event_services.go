package services

import (
	"context"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
)

// EventPublisher broadcasts ledger facts to downstream consumers such as the
// receipt renderer. Publishing happens after commit and is best effort;
// implementations must not fail the originating request.
type EventPublisher interface {
	// PublishDonationCreated announces a committed donation.
	PublishDonationCreated(ctx context.Context, donation *domain.Donation)

	// PublishDonationDeleted announces a committed donation removal.
	PublishDonationDeleted(ctx context.Context, donationID string)
}
