package order

import (
	"fmt"

	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

// Type identifies the channel an order originated from. Delivery types
// (UberEats, Grubhub, DoorDash) additionally carry an external order
// identifier assigned by the matching platform integration.
type Type string

const (
	DriveThru Type = "drive_thru"
	DineIn    Type = "dine_in"
	UberEats  Type = "uber_eats"
	Grubhub   Type = "grubhub"
	DoorDash  Type = "doordash"
)

// Types returns every valid order type in declaration order.
func Types() []Type {
	return []Type{DriveThru, DineIn, UberEats, Grubhub, DoorDash}
}

// TypeFromString parses an order type from its wire representation.
func TypeFromString(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate reports whether the type is one of the declared values.
func (t Type) Validate() error {
	switch t {
	case DriveThru, DineIn, UberEats, Grubhub, DoorDash:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%q is not a valid order type", string(t)))
	}
}

// IsDelivery reports whether orders of this type are fulfilled through an
// external delivery platform.
func (t Type) IsDelivery() bool {
	return t == UberEats || t == Grubhub || t == DoorDash
}

// String returns the wire representation of the type.
func (t Type) String() string {
	return string(t)
}
