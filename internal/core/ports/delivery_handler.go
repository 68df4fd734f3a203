package ports

import "github.com/ogradyo/restaurant-simulator/internal/core/domain/model/message"

// DeliveryHandler delivers a routed message to a destination using a named
// delivery method ("console", "file", "queue", ...). A returned error counts
// against the route that requested the delivery; it never stops routing.
type DeliveryHandler interface {
	Deliver(msg message.Message, destination, method string, options map[string]string) error
}
