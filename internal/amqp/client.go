package amqp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	portssvc "github.com/AdhamRef/gozbebekleri-sub002/internal/core/ports/services"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Client publishes donation ledger events to a durable direct exchange.
// Publishing is best effort; failures are logged, never surfaced to the
// originating request.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
	logger       *slog.Logger
}

var _ portssvc.EventPublisher = (*Client)(nil)

func NewClient(url, exchangeName, queueName string, logger *slog.Logger) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
		logger:       logger,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// Routing key matches the queue name on a direct exchange.
	err = c.channel.QueueBind(c.queueName, c.queueName, c.exchangeName, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishDonationCreated announces a committed donation.
func (c *Client) PublishDonationCreated(ctx context.Context, donation *domain.Donation) {
	c.publish(ctx, NewDonationCreatedMessage(donation))
}

// PublishDonationDeleted announces a committed donation removal.
func (c *Client) PublishDonationDeleted(ctx context.Context, donationID string) {
	c.publish(ctx, NewDonationDeletedMessage(donationID))
}

func (c *Client) publish(ctx context.Context, msg *DonationEventMessage) {
	body, err := msg.ToJSON()
	if err != nil {
		c.logger.Error("failed to marshal donation event", "event", msg.Event, "donationID", msg.DonationID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName,
		c.queueName,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		c.logger.Error("failed to publish donation event", "event", msg.Event, "donationID", msg.DonationID, "error", err)
		return
	}

	c.logger.Info("published donation event", "event", msg.Event, "donationID", msg.DonationID, "exchange", c.exchangeName)
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
