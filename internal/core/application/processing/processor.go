package processing

import (
	"math/rand"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/kernel"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/menu"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

// avgPrepMinutes is the assumed kitchen throughput per queued order, used
// when projecting wait times from queue position.
const avgPrepMinutes = 5

// externalIDPrefixes maps delivery order types to the identifier prefix used
// by the matching platform.
var externalIDPrefixes = map[order.Type]string{
	order.UberEats: "UE",
	order.Grubhub:  "GH",
	order.DoorDash: "DD",
}

// Processor is the single owner of all orders and customers. It enforces the
// order lifecycle, maintains the FIFO preparation queue, and answers queries
// over the live order set.
//
// All lifecycle operations are serialized under one lock, so concurrent calls
// on the same order are mutually exclusive. Nothing in the Processor performs
// I/O; delivery platform integrations are separate collaborators invoked by
// calling code.
type Processor struct {
	mu sync.RWMutex

	catalog   *menu.Catalog
	orders    map[string]*order.Order
	queue     []string
	completed []string
}

// NewProcessor creates a processor over the given menu catalog.
func NewProcessor(catalog *menu.Catalog) (*Processor, error) {
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}

	return &Processor{
		catalog:   catalog,
		orders:    make(map[string]*order.Order),
		queue:     make([]string, 0),
		completed: make([]string, 0),
	}, nil
}

// CreateCustomer creates a customer with a fresh identifier. Phone and email
// may be empty.
func (p *Processor) CreateCustomer(name, phone, email string, loyaltyMember bool) (order.Customer, error) {
	return order.NewCustomer(kernel.NewUUID(), name, phone, email, loyaltyMember)
}

// CreateOrder creates a pending order, computes its totals, and appends it to
// the tail of the preparation queue. Delivery orders are assigned an external
// platform identifier (service prefix plus a random six-digit number); the
// identifier is generated locally and does not contact any platform.
// The items list may be empty; emptiness is enforced at confirmation.
func (p *Processor) CreateOrder(
	orderType order.Type,
	customer order.Customer,
	items []order.Item,
	specialInstructions string,
) (*order.Order, error) {
	externalID := ""
	if orderType.IsDelivery() {
		externalID = generateExternalOrderID(orderType)
	}

	o, err := order.NewOrder(kernel.NewUUID(), orderType, customer, items,
		time.Now(), specialInstructions, externalID)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.orders[o.ID().String()] = o
	p.queue = append(p.queue, o.ID().String())

	return o, nil
}

// AddItem looks up a menu item by id and appends it as a new line on the
// order. Fails for unknown orders, unknown menu items, and orders whose lines
// are already locked.
func (p *Processor) AddItem(
	orderID kernel.UUID,
	menuItemID string,
	quantity int,
	customizations map[string]string,
	specialInstructions string,
) error {
	menuItem, err := p.catalog.Item(menuItemID)
	if err != nil {
		return err
	}

	line, err := order.NewItem(menuItem, quantity, specialInstructions, customizations)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	o, err := p.orderLocked(orderID)
	if err != nil {
		return err
	}

	return o.AddItem(line)
}

// RemoveItem deletes the line at the given zero-based index from the order.
func (p *Processor) RemoveItem(orderID kernel.UUID, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, err := p.orderLocked(orderID)
	if err != nil {
		return err
	}

	return o.RemoveItem(index)
}

// AddTip sets the tip amount on the order and recomputes its totals.
func (p *Processor) AddTip(orderID kernel.UUID, amount float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, err := p.orderLocked(orderID)
	if err != nil {
		return err
	}

	return o.AddTip(amount)
}

// ConfirmOrder transitions the order from pending to confirmed.
func (p *Processor) ConfirmOrder(orderID kernel.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, err := p.orderLocked(orderID)
	if err != nil {
		return err
	}

	return o.Confirm()
}

// StartPreparation transitions the order from confirmed to preparing and
// stamps its estimated ready time.
func (p *Processor) StartPreparation(orderID kernel.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, err := p.orderLocked(orderID)
	if err != nil {
		return err
	}

	return o.StartPreparation(time.Now())
}

// CompleteOrder transitions the order from preparing to ready.
func (p *Processor) CompleteOrder(orderID kernel.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, err := p.orderLocked(orderID)
	if err != nil {
		return err
	}

	return o.Complete()
}

// FinalizeOrder transitions the order to completed, removes it from the
// preparation queue, and records it on the completed list. Finalizing an
// already completed order succeeds without adding a duplicate entry.
func (p *Processor) FinalizeOrder(orderID kernel.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, err := p.orderLocked(orderID)
	if err != nil {
		return err
	}

	if err := o.Finalize(); err != nil {
		return err
	}

	id := orderID.String()
	p.removeFromQueueLocked(id)
	if !slices.Contains(p.completed, id) {
		p.completed = append(p.completed, id)
	}

	return nil
}

// CancelOrder transitions the order to cancelled from any non-terminal
// status and removes it from the preparation queue.
func (p *Processor) CancelOrder(orderID kernel.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, err := p.orderLocked(orderID)
	if err != nil {
		return err
	}

	if err := o.Cancel(); err != nil {
		return err
	}

	p.removeFromQueueLocked(orderID.String())
	return nil
}

// GetOrder returns the order with the given id. The returned aggregate must
// be treated as read-only by callers; all mutation goes through the Processor.
func (p *Processor) GetOrder(orderID kernel.UUID) (*order.Order, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.orderLocked(orderID)
}

// OrdersByStatus returns every order currently in the given status.
func (p *Processor) OrdersByStatus(status order.Status) []*order.Order {
	p.mu.RLock()
	defer p.mu.RUnlock()

	matched := make([]*order.Order, 0)
	for _, o := range p.orders {
		if o.Status() == status {
			matched = append(matched, o)
		}
	}
	return matched
}

// OrdersByType returns every order of the given origin channel.
func (p *Processor) OrdersByType(orderType order.Type) []*order.Order {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.ordersByTypeLocked(orderType)
}

// QueuePosition returns the 1-based position of the order in the preparation
// queue, or -1 if the order is not queued.
func (p *Processor) QueuePosition(orderID kernel.UUID) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.queuePositionLocked(orderID.String())
}

// EstimatedWaitMinutes projects how long until the order is ready: 0 for
// ready orders, -1 for unknown orders, otherwise the queue backlog ahead of
// it times the average preparation rate plus the order's own kitchen time.
func (p *Processor) EstimatedWaitMinutes(orderID kernel.UUID) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	o, err := p.orderLocked(orderID)
	if err != nil {
		return -1
	}

	if o.Status() == order.Ready {
		return 0
	}

	position := p.queuePositionLocked(orderID.String())
	if position == -1 {
		return o.EstimatedPrepMinutes()
	}

	return (position-1)*avgPrepMinutes + o.EstimatedPrepMinutes()
}

// Statistics summarizes the live order set.
type Statistics struct {
	TotalOrders       int                `json:"total_orders"`
	CompletedOrders   int                `json:"completed_orders"`
	CancelledOrders   int                `json:"cancelled_orders"`
	PendingOrders     int                `json:"pending_orders"`
	PreparingOrders   int                `json:"preparing_orders"`
	ReadyOrders       int                `json:"ready_orders"`
	AverageOrderValue float64            `json:"average_order_value"`
	OrdersByType      map[order.Type]int `json:"orders_by_type"`
}

// Statistics returns processing counters and the mean total of completed
// orders, rounded to cents (0 when nothing has completed yet).
func (p *Processor) Statistics() Statistics {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stats := Statistics{
		TotalOrders:     len(p.orders),
		CompletedOrders: len(p.completed),
		OrdersByType:    make(map[order.Type]int, len(order.Types())),
	}

	completedValue := 0.0
	completedCount := 0
	for _, o := range p.orders {
		switch o.Status() {
		case order.Pending:
			stats.PendingOrders++
		case order.Preparing:
			stats.PreparingOrders++
		case order.Ready:
			stats.ReadyOrders++
		case order.Cancelled:
			stats.CancelledOrders++
		case order.Completed:
			completedValue += o.Total()
			completedCount++
		}
	}

	if completedCount > 0 {
		stats.AverageOrderValue = kernel.Round2(completedValue / float64(completedCount))
	}

	for _, t := range order.Types() {
		stats.OrdersByType[t] = len(p.ordersByTypeLocked(t))
	}

	return stats
}

func (p *Processor) orderLocked(orderID kernel.UUID) (*order.Order, error) {
	o, ok := p.orders[orderID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
	}
	return o, nil
}

func (p *Processor) ordersByTypeLocked(orderType order.Type) []*order.Order {
	matched := make([]*order.Order, 0)
	for _, o := range p.orders {
		if o.Type() == orderType {
			matched = append(matched, o)
		}
	}
	return matched
}

func (p *Processor) queuePositionLocked(id string) int {
	for i, queued := range p.queue {
		if queued == id {
			return i + 1
		}
	}
	return -1
}

func (p *Processor) removeFromQueueLocked(id string) {
	for i, queued := range p.queue {
		if queued == id {
			p.queue = append(p.queue[:i], p.queue[i+1:]...)
			return
		}
	}
}

func generateExternalOrderID(orderType order.Type) string {
	prefix, ok := externalIDPrefixes[orderType]
	if !ok {
		prefix = "EXT"
	}
	return prefix + strconv.Itoa(100000+rand.Intn(900000))
}
