package ports

import "github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"

// ExternalOrderConfirmation is what a delivery platform answers when accepting
// an order. Fees are the platform's own charges, not the restaurant's totals.
type ExternalOrderConfirmation struct {
	ExternalOrderID          string  `json:"external_order_id"`
	RestaurantID             string  `json:"restaurant_id"`
	Status                   string  `json:"status"`
	EstimatedDeliveryMinutes int     `json:"estimated_delivery_minutes"`
	DeliveryFee              float64 `json:"delivery_fee"`
	ServiceFee               float64 `json:"service_fee"`
	TotalAmount              float64 `json:"total_amount"`
}

// ExternalService mimics one third-party delivery platform. Implementations
// are in-process mocks; no network calls are made.
type ExternalService interface {
	// Name returns the platform identifier ("uber_eats", ...), matching the
	// order type the service accepts.
	Name() string

	// CreateOrder registers the order with the platform and returns the
	// platform's confirmation. Orders of a foreign type are rejected.
	CreateOrder(o *order.Order) (ExternalOrderConfirmation, error)

	// OrderStatus reports the platform-side status of a previously created
	// order, or errs.ErrObjectNotFound.
	OrderStatus(externalOrderID string) (string, error)

	// UpdateOrderStatus moves a platform-side order to the given status.
	UpdateOrderStatus(externalOrderID, status string) error

	// CancelOrder cancels a platform-side order. Already delivered orders
	// cannot be cancelled.
	CancelOrder(externalOrderID string) error
}
