package messaging

import (
	"log/slog"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/message"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"
)

// RouterBuilder assembles a Router from preset integrations plus custom
// routes. Errors are collected and reported once from Build, so preset
// calls chain without per-call error handling.
type RouterBuilder struct {
	logger *slog.Logger
	routes []*Route
	errs   []error
}

func NewRouterBuilder(logger *slog.Logger) *RouterBuilder {
	return &RouterBuilder{logger: logger}
}

// WithPOSSystem routes pos and json messages for in-house order types to
// the point-of-sale integration.
func (b *RouterBuilder) WithPOSSystem() *RouterBuilder {
	return b.WithRoute(RouteConfig{
		Name:            "pos_system",
		Destination:     "pos_orders",
		Method:          "file",
		FormatFilter:    []message.Format{message.POS, message.JSON},
		OrderTypeFilter: []order.Type{order.DriveThru, order.DineIn},
	})
}

// WithKitchenDisplay routes kitchen and json messages for every order type
// to the kitchen display.
func (b *RouterBuilder) WithKitchenDisplay() *RouterBuilder {
	return b.WithRoute(RouteConfig{
		Name:         "kitchen_display",
		Destination:  "kitchen_orders",
		Method:       "file",
		FormatFilter: []message.Format{message.Kitchen, message.JSON},
	})
}

// WithDeliveryService routes delivery and json messages for third-party
// platform orders to the delivery integration.
func (b *RouterBuilder) WithDeliveryService() *RouterBuilder {
	return b.WithRoute(RouteConfig{
		Name:            "delivery_service",
		Destination:     "delivery_orders",
		Method:          "file",
		FormatFilter:    []message.Format{message.Delivery, message.JSON},
		OrderTypeFilter: []order.Type{order.UberEats, order.Grubhub, order.DoorDash},
	})
}

// WithInventorySystem routes csv and json messages for every order type to
// the inventory feed.
func (b *RouterBuilder) WithInventorySystem() *RouterBuilder {
	return b.WithRoute(RouteConfig{
		Name:         "inventory_system",
		Destination:  "inventory_updates",
		Method:       "file",
		FormatFilter: []message.Format{message.CSV, message.JSON},
	})
}

// WithAnalyticsSystem routes json messages for every order type to the
// analytics feed.
func (b *RouterBuilder) WithAnalyticsSystem() *RouterBuilder {
	return b.WithRoute(RouteConfig{
		Name:         "analytics_system",
		Destination:  "analytics_data",
		Method:       "file",
		FormatFilter: []message.Format{message.JSON},
	})
}

// WithRoute adds a custom route.
func (b *RouterBuilder) WithRoute(cfg RouteConfig) *RouterBuilder {
	route, err := NewRoute(cfg)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.routes = append(b.routes, route)
	return b
}

// Build assembles the router. The first collected error aborts the build.
func (b *RouterBuilder) Build() (*Router, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	router := NewRouter(b.logger)
	for _, route := range b.routes {
		if err := router.AddRoute(route); err != nil {
			return nil, err
		}
	}
	return router, nil
}
