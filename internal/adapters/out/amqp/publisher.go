package amqp

import (
	"context"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// Publisher pushes serialized order messages onto the topic exchange.
type Publisher struct {
	conn *Connection
}

func NewPublisher(conn *Connection) *Publisher {
	return &Publisher{conn: conn}
}

// Publish sends one message body with the given routing key. The body is
// already serialized; contentType describes it.
func (p *Publisher) Publish(ctx context.Context, routingKey, contentType string, body []byte) error {
	channel, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("acquire channel: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = channel.PublishWithContext(ctx, Exchange, routingKey, false, false, amqp091.Publishing{
		ContentType:  contentType,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("publish to %s/%s: %w", Exchange, routingKey, err)
	}
	return nil
}
