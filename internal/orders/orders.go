// Package orders assembles confirmed orders. Orders are ephemeral: they
// are logged, optionally announced on a message queue, and never written
// to durable storage.
package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/stylemart/stylemart/internal/models"
)

// Order is built at confirmation time from the session cart and the
// checkout form fields.
type Order struct {
	ID       string `json:"order_id"`
	Username string `json:"username"`

	// Product names the single item of a direct checkout; cart orders
	// carry their items in Products instead.
	Product string `json:"product,omitempty"`

	CustomerName string           `json:"name"`
	Address      string           `json:"address"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	Products     []models.Product `json:"products"`
	TotalPrice   float64          `json:"total_price"`
}

// New assigns an order reference and captures the confirmation details.
func New(username, customerName, address, phone, email string, products []models.Product, total float64) Order {
	return Order{
		ID:           uuid.NewString(),
		Username:     username,
		CustomerName: customerName,
		Address:      address,
		Phone:        phone,
		Email:        email,
		Products:     products,
		TotalPrice:   total,
	}
}

// Log records the received order; this is the system of record.
func (o Order) Log(log *slog.Logger) {
	log.Info("order received",
		"order_id", o.ID,
		"username", o.Username,
		"name", o.CustomerName,
		"email", o.Email,
		"items", len(o.Products),
		"total_price", o.TotalPrice,
	)
}

// Publisher announces confirmed orders to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, o Order) error
}

// QueuePublisher sends the order as JSON to a RabbitMQ queue. Only active
// when queue.url is configured.
type QueuePublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// ConnectQueue dials the broker and declares the durable order queue.
func ConnectQueue(url, queue string) (*QueuePublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial queue: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &QueuePublisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *QueuePublisher) Publish(ctx context.Context, o Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publish order: %w", err)
	}
	return nil
}

// Close tears down the channel and connection.
func (p *QueuePublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
