package amqp

import (
	"encoding/json"
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	EventDonationCreated = "donation.created"
	EventDonationDeleted = "donation.deleted"
)

// DonationEventMessage is the wire format for ledger events. Deleted events
// carry only the event, donation ID and timestamp.
type DonationEventMessage struct {
	Event        string          `json:"event"`
	DonationID   string          `json:"donationID"`
	DonorID      string          `json:"donorID,omitempty"`
	Type         string          `json:"type,omitempty"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
	AmountUSD    decimal.Decimal `json:"amountUSD,omitempty"`
	TotalAmount  decimal.Decimal `json:"totalAmount,omitempty"`
	OccurredAt   time.Time       `json:"occurredAt"`
}

// NewDonationCreatedMessage builds the created event from a committed donation.
func NewDonationCreatedMessage(d *domain.Donation) *DonationEventMessage {
	return &DonationEventMessage{
		Event:        EventDonationCreated,
		DonationID:   d.DonationID,
		DonorID:      d.DonorID,
		Type:         string(d.Type),
		CurrencyCode: d.CurrencyCode,
		AmountUSD:    d.AmountUSD,
		TotalAmount:  d.TotalAmount,
		OccurredAt:   time.Now().UTC(),
	}
}

// NewDonationDeletedMessage builds the deleted event.
func NewDonationDeletedMessage(donationID string) *DonationEventMessage {
	return &DonationEventMessage{
		Event:      EventDonationDeleted,
		DonationID: donationID,
		OccurredAt: time.Now().UTC(),
	}
}

func (m *DonationEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// DonationEventMessageFromJSON parses a wire message.
func DonationEventMessageFromJSON(body []byte) (*DonationEventMessage, error) {
	var m DonationEventMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
