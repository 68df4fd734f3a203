package external

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/kernel"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"
	"github.com/ogradyo/restaurant-simulator/internal/core/ports"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusPickedUp  = "picked_up"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// profile holds the per-platform constants that differentiate the three
// services. Everything else about the mock platforms behaves identically,
// so one Service type parameterized by profile replaces an inheritance
// hierarchy.
type profile struct {
	orderType          order.Type
	idPrefix           string
	restaurantID       string
	baseDeliveryMins   int
	distanceJitterMax  int
	deliveryFee        float64
	reducedDeliveryFee float64
	reducedFeeAbove    float64
	serviceFeeRate     float64
}

var profiles = map[order.Type]profile{
	order.UberEats: {
		orderType: order.UberEats, idPrefix: "UE", restaurantID: "acsp_123",
		baseDeliveryMins: 25, distanceJitterMax: 15,
		deliveryFee: 2.99, reducedDeliveryFee: 1.99, reducedFeeAbove: 15.00,
		serviceFeeRate: 0.15,
	},
	order.Grubhub: {
		orderType: order.Grubhub, idPrefix: "GH", restaurantID: "acsp_456",
		baseDeliveryMins: 30, distanceJitterMax: 20,
		deliveryFee: 3.99, reducedDeliveryFee: 2.99, reducedFeeAbove: 20.00,
		serviceFeeRate: 0.12,
	},
	order.DoorDash: {
		orderType: order.DoorDash, idPrefix: "DD", restaurantID: "acsp_789",
		baseDeliveryMins: 28, distanceJitterMax: 18,
		deliveryFee: 2.99, reducedDeliveryFee: 1.99, reducedFeeAbove: 12.00,
		serviceFeeRate: 0.10,
	},
}

type platformOrder struct {
	confirmation ports.ExternalOrderConfirmation
	status       string
	createdAt    time.Time
	updatedAt    time.Time
}

// Service is an in-process mock of one delivery platform.
type Service struct {
	profile profile

	mu     sync.Mutex
	orders map[string]*platformOrder
}

// NewUberEatsService, NewGrubhubService and NewDoorDashService build the
// three supported platform mocks.
func NewUberEatsService() *Service { return newService(profiles[order.UberEats]) }
func NewGrubhubService() *Service  { return newService(profiles[order.Grubhub]) }
func NewDoorDashService() *Service { return newService(profiles[order.DoorDash]) }

func newService(p profile) *Service {
	return &Service{profile: p, orders: make(map[string]*platformOrder)}
}

func (s *Service) Name() string {
	return s.profile.orderType.String()
}

// CreateOrder registers the order with the platform and quotes fees and the
// estimated delivery window.
func (s *Service) CreateOrder(o *order.Order) (ports.ExternalOrderConfirmation, error) {
	if err := o.Validate(); err != nil {
		return ports.ExternalOrderConfirmation{}, err
	}
	if o.Type() != s.profile.orderType {
		return ports.ExternalOrderConfirmation{},
			fmt.Errorf("%s cannot accept %s orders: %w", s.Name(), o.Type(), errs.ErrValueIsInvalid)
	}

	externalID := o.ExternalOrderID()
	if externalID == "" {
		externalID = fmt.Sprintf("%s%d", s.profile.idPrefix, 100000+rand.Intn(900000))
	}

	confirmation := ports.ExternalOrderConfirmation{
		ExternalOrderID:          externalID,
		RestaurantID:             s.profile.restaurantID,
		Status:                   StatusPending,
		EstimatedDeliveryMinutes: s.profile.baseDeliveryMins + 5 + rand.Intn(s.profile.distanceJitterMax-4),
		DeliveryFee:              s.deliveryFee(o.Total()),
		ServiceFee:               kernel.Round2(o.Total() * s.profile.serviceFeeRate),
		TotalAmount:              o.Total(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.orders[externalID] = &platformOrder{
		confirmation: confirmation,
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}
	return confirmation, nil
}

// deliveryFee applies the platform's reduced rate for larger orders.
func (s *Service) deliveryFee(total float64) float64 {
	if total > s.profile.reducedFeeAbove {
		return s.profile.reducedDeliveryFee
	}
	return s.profile.deliveryFee
}

func (s *Service) OrderStatus(externalOrderID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	po, ok := s.orders[externalOrderID]
	if !ok {
		return "", errs.NewObjectNotFoundError("external_order_id", externalOrderID)
	}
	return po.status, nil
}

func (s *Service) UpdateOrderStatus(externalOrderID, status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	po, ok := s.orders[externalOrderID]
	if !ok {
		return errs.NewObjectNotFoundError("external_order_id", externalOrderID)
	}
	po.status = status
	po.updatedAt = time.Now()
	return nil
}

func (s *Service) CancelOrder(externalOrderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	po, ok := s.orders[externalOrderID]
	if !ok {
		return errs.NewObjectNotFoundError("external_order_id", externalOrderID)
	}
	if po.status == StatusDelivered {
		return fmt.Errorf("order %s already delivered: %w", externalOrderID, errs.ErrValueIsInvalid)
	}
	po.status = StatusCancelled
	po.updatedAt = time.Now()
	return nil
}

// Statistics summarizes this platform's order book.
type Statistics struct {
	TotalOrders     int `json:"total_orders"`
	ActiveOrders    int `json:"active_orders"`
	CancelledOrders int `json:"cancelled_orders"`
	DeliveredOrders int `json:"delivered_orders"`
}

func (s *Service) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Statistics{TotalOrders: len(s.orders)}
	for _, po := range s.orders {
		switch po.status {
		case StatusCancelled:
			stats.CancelledOrders++
		case StatusDelivered:
			stats.DeliveredOrders++
		default:
			stats.ActiveOrders++
		}
	}
	return stats
}
