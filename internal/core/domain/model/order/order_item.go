package order

import (
	"errors"
	"fmt"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/kernel"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/menu"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem constructor")

// Item is a single order line: a shared read-only reference to a menu item,
// a quantity, free-text kitchen instructions, and an open customization map.
//
// The line price is snapshotted at construction from the menu item's base
// price; it is never recomputed, so a later menu price change cannot alter an
// existing order.
type Item struct {
	menuItem            menu.Item
	quantity            int
	specialInstructions string
	customizations      map[string]string
	linePrice           float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line. Quantity must be at least 1.
// Customizations may be nil; they are copied.
func NewItem(menuItem menu.Item, quantity int, specialInstructions string, customizations map[string]string) (Item, error) {
	if err := menuItem.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	copied := make(map[string]string, len(customizations))
	for k, v := range customizations {
		copied[k] = v
	}

	return Item{
		menuItem:            menuItem,
		quantity:            quantity,
		specialInstructions: specialInstructions,
		customizations:      copied,
		linePrice:           kernel.Round2(menuItem.BasePrice() * float64(quantity)),
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItem returns the referenced menu item.
func (i Item) MenuItem() menu.Item { return i.menuItem }

// Quantity returns the number of units ordered.
func (i Item) Quantity() int { return i.quantity }

// SpecialInstructions returns the free-text kitchen instructions for the line.
func (i Item) SpecialInstructions() string { return i.specialInstructions }

// Customizations returns a copy of the customization key/value pairs.
func (i Item) Customizations() map[string]string {
	copied := make(map[string]string, len(i.customizations))
	for k, v := range i.customizations {
		copied[k] = v
	}
	return copied
}

// LinePrice returns the snapshotted price of the line (unit price x quantity).
func (i Item) LinePrice() float64 { return i.linePrice }
