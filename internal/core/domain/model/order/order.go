package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/kernel"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoItems is returned when confirming an order with no lines.
	ErrNoItems = errors.New("order has no items")

	// ErrItemsLocked is returned when modifying lines of an order that is
	// already in the kitchen or finished.
	ErrItemsLocked = errors.New("items can only be changed while the order is pending or confirmed")
)

// taxRate is the fixed sales tax applied to every order subtotal.
const taxRate = 0.08

// prepBufferMinutes is added to the longest item preparation time to cover
// order handling around the kitchen work itself.
const prepBufferMinutes = 2

// Order is the aggregate root for a placed restaurant order. It owns the
// customer snapshot, the ordered sequence of lines, the lifecycle status, and
// every derived monetary field.
//
// Invariants:
//   - total is always >= 0 and equals Round2(subtotal + subtotal*0.08 + tip)
//   - the items list is non-empty for any order past Confirmed
//   - the external order id is set if and only if the order type is a
//     delivery type, and it is fixed at construction
//   - lines are mutable only while the status allows item changes
type Order struct {
	id                  kernel.UUID
	orderType           Type
	customer            Customer
	items               []Item
	orderTime           time.Time
	status              Status
	specialInstructions string
	externalOrderID     string
	estimatedReady      *time.Time

	subtotal float64
	tax      float64
	tip      float64
	total    float64

	isConstructed bool
}

// NewOrder creates a pending order and computes its totals. The items list
// may be empty at creation; emptiness is enforced at confirmation instead.
// externalOrderID is required for delivery order types and forbidden for the
// rest.
func NewOrder(
	id kernel.UUID,
	orderType Type,
	customer Customer,
	items []Item,
	orderTime time.Time,
	specialInstructions string,
	externalOrderID string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setCustomer(customer),
		o.setItems(items),
		o.setOrderTime(orderTime),
		o.setExternalOrderID(orderType, externalOrderID),
	); err != nil {
		return nil, err
	}

	o.specialInstructions = specialInstructions
	o.recalculateTotals()

	return o, nil
}

// Validate ensures the Order instance was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Type returns the order's origin channel.
func (o *Order) Type() Type { return o.orderType }

// Customer returns the customer snapshot owned by the order.
func (o *Order) Customer() Customer { return o.customer }

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// OrderTime returns the order creation timestamp.
func (o *Order) OrderTime() time.Time { return o.orderTime }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// SpecialInstructions returns the free-text instructions for the whole order.
func (o *Order) SpecialInstructions() string { return o.specialInstructions }

// ExternalOrderID returns the delivery platform's order identifier, empty for
// non-delivery orders.
func (o *Order) ExternalOrderID() string { return o.externalOrderID }

// EstimatedReadyTime returns the projected ready time set when preparation
// started. The second return value reports whether it has been set.
func (o *Order) EstimatedReadyTime() (time.Time, bool) {
	if o.estimatedReady == nil {
		return time.Time{}, false
	}
	return *o.estimatedReady, true
}

// Subtotal returns the sum of line prices, rounded to cents.
func (o *Order) Subtotal() float64 { return o.subtotal }

// Tax returns the tax amount, rounded to cents.
func (o *Order) Tax() float64 { return o.tax }

// Tip returns the tip amount.
func (o *Order) Tip() float64 { return o.tip }

// Total returns subtotal + tax + tip, rounded to cents.
func (o *Order) Total() float64 { return o.total }

// MaxPreparationTime returns the longest preparation time among the order's
// lines, in minutes. Zero for an empty order.
func (o *Order) MaxPreparationTime() int {
	maxPrep := 0
	for _, item := range o.items {
		if p := item.MenuItem().PreparationTime(); p > maxPrep {
			maxPrep = p
		}
	}
	return maxPrep
}

// EstimatedPrepMinutes returns the projected kitchen time for the whole
// order: the longest line preparation time plus the handling buffer.
func (o *Order) EstimatedPrepMinutes() int {
	return o.MaxPreparationTime() + prepBufferMinutes
}

// AddItem appends a line to the order and recomputes totals. Allowed only
// while the status permits item changes.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !o.status.AllowsItemChanges() {
		return ErrItemsLocked
	}

	o.items = append(o.items, item)
	o.recalculateTotals()
	return nil
}

// RemoveItem deletes the line at the given zero-based index and recomputes
// totals. Allowed only while the status permits item changes.
func (o *Order) RemoveItem(index int) error {
	if !o.status.AllowsItemChanges() {
		return ErrItemsLocked
	}
	if index < 0 || index >= len(o.items) {
		return errs.NewValueIsOutOfRangeError("item index", index, 0, len(o.items)-1)
	}

	o.items = append(o.items[:index], o.items[index+1:]...)
	o.recalculateTotals()
	return nil
}

// AddTip sets the tip amount and recomputes totals.
func (o *Order) AddTip(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("tip",
			fmt.Errorf("%.2f is negative", amount))
	}

	o.tip = amount
	o.recalculateTotals()
	return nil
}

// Confirm transitions the order from Pending to Confirmed. Fails with
// ErrNoItems when the order has no lines.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	if len(o.items) == 0 {
		return ErrNoItems
	}

	o.status = newStatus
	return nil
}

// StartPreparation transitions the order from Confirmed to Preparing and
// sets the estimated ready time to now plus the order's projected kitchen
// time. The duration is added to the full timestamp, so estimates crossing an
// hour or day boundary carry correctly.
func (o *Order) StartPreparation(now time.Time) error {
	newStatus, err := o.status.StartPreparation()
	if err != nil {
		return err
	}

	ready := now.Add(time.Duration(o.EstimatedPrepMinutes()) * time.Minute)
	o.status = newStatus
	o.estimatedReady = &ready
	return nil
}

// Complete transitions the order from Preparing to Ready.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Finalize transitions the order to Completed. Idempotent for orders that
// are already Completed.
func (o *Order) Finalize() error {
	newStatus, err := o.status.Finalize()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled from any non-terminal status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) recalculateTotals() {
	subtotal := 0.0
	for _, item := range o.items {
		subtotal += item.LinePrice()
	}

	o.subtotal = kernel.Round2(subtotal)
	o.tax = kernel.Round2(o.subtotal * taxRate)
	o.total = kernel.Round2(o.subtotal + o.subtotal*taxRate + o.tip)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setOrderTime(orderTime time.Time) error {
	if orderTime.IsZero() {
		return errs.NewValueIsRequiredError("order time")
	}
	o.orderTime = orderTime
	return nil
}

func (o *Order) setExternalOrderID(orderType Type, externalOrderID string) error {
	if orderType.IsDelivery() && externalOrderID == "" {
		return errs.NewValueIsRequiredError("external order id")
	}
	if !orderType.IsDelivery() && externalOrderID != "" {
		return errs.NewValueIsInvalidErrorWithCause("external order id",
			fmt.Errorf("order type %s does not use an external service", orderType))
	}
	o.externalOrderID = externalOrderID
	return nil
}
