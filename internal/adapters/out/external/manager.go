package external

import (
	"fmt"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"
	"github.com/ogradyo/restaurant-simulator/internal/core/ports"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

// Manager selects the platform service matching an order's type. The
// service set is fixed at construction; Manager itself holds no mutable
// state and is safe for concurrent use.
type Manager struct {
	services map[order.Type]ports.ExternalService
}

func NewManager() *Manager {
	return &Manager{
		services: map[order.Type]ports.ExternalService{
			order.UberEats: NewUberEatsService(),
			order.Grubhub:  NewGrubhubService(),
			order.DoorDash: NewDoorDashService(),
		},
	}
}

// Service returns the platform service for the given order type.
func (m *Manager) Service(orderType order.Type) (ports.ExternalService, error) {
	svc, ok := m.services[orderType]
	if !ok {
		return nil, fmt.Errorf("no platform serves %s orders: %w", orderType, errs.ErrValueIsInvalid)
	}
	return svc, nil
}

// CreateOrder registers the order with its platform.
func (m *Manager) CreateOrder(o *order.Order) (ports.ExternalOrderConfirmation, error) {
	if err := o.Validate(); err != nil {
		return ports.ExternalOrderConfirmation{}, err
	}
	svc, err := m.Service(o.Type())
	if err != nil {
		return ports.ExternalOrderConfirmation{}, err
	}
	return svc.CreateOrder(o)
}

// Statistics reports per-platform order book summaries keyed by platform
// name.
func (m *Manager) Statistics() map[string]Statistics {
	stats := make(map[string]Statistics, len(m.services))
	for _, svc := range m.services {
		if s, ok := svc.(*Service); ok {
			stats[svc.Name()] = s.Statistics()
		}
	}
	return stats
}
