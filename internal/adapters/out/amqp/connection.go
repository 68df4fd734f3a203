package amqp

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	// Exchange is the topic exchange all order messages are published to.
	// Routing keys are the route destinations ("kitchen_orders", ...).
	Exchange = "order_messages"

	connectRetries    = 5
	connectRetryDelay = 2 * time.Second
)

// Connection wraps an AMQP connection and channel with retrying dial and
// topology setup.
type Connection struct {
	logger *slog.Logger
	url    string

	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func Connect(url string, logger *slog.Logger) (*Connection, error) {
	c := &Connection{
		logger: logger.With("component", "amqp"),
		url:    url,
	}
	if err := c.connect(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Connection) connect() error {
	var err error
	for attempt := 1; attempt <= connectRetries; attempt++ {
		if err = c.dial(); err == nil {
			return nil
		}
		if attempt < connectRetries {
			delay := time.Duration(attempt) * connectRetryDelay
			c.logger.Warn("broker connection failed, retrying",
				"attempt", attempt, "delay", delay, "error", err)
			time.Sleep(delay)
		}
	}
	return fmt.Errorf("connect to broker after %d attempts: %w", connectRetries, err)
}

func (c *Connection) dial() error {
	conn, err := amqp091.Dial(c.url)
	if err != nil {
		return err
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}
	if err := channel.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("declare exchange %s: %w", Exchange, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.channel = channel
	c.mu.Unlock()
	return nil
}

// Channel returns a live channel, reconnecting first if the underlying
// connection dropped.
func (c *Connection) Channel() (*amqp091.Channel, error) {
	c.mu.Lock()
	closed := c.conn == nil || c.conn.IsClosed()
	channel := c.channel
	c.mu.Unlock()

	if closed {
		if err := c.connect(); err != nil {
			return nil, err
		}
		c.mu.Lock()
		channel = c.channel
		c.mu.Unlock()
	}
	return channel, nil
}

func (c *Connection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel != nil {
		c.channel.Close()
		c.channel = nil
	}
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
