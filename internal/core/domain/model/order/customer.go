package order

import (
	"errors"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/kernel"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// DefaultPaymentMethod is assigned to customers who do not specify one.
const DefaultPaymentMethod = "card"

// Customer identifies who placed an order. Phone and email are optional;
// a customer is created once per order placement and never updated.
type Customer struct {
	id               kernel.UUID
	name             string
	phone            string
	email            string
	loyaltyMember    bool
	preferredPayment string

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated customer with the default payment method.
// Name is required; phone and email may be empty.
func NewCustomer(id kernel.UUID, name, phone, email string, loyaltyMember bool) (Customer, error) {
	if err := id.Validate(); err != nil {
		return Customer{}, err
	}
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("name")
	}

	return Customer{
		id:               id,
		name:             name,
		phone:            phone,
		email:            email,
		loyaltyMember:    loyaltyMember,
		preferredPayment: DefaultPaymentMethod,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c Customer) ID() kernel.UUID { return c.id }

// Name returns the customer's name.
func (c Customer) Name() string { return c.name }

// Phone returns the customer's phone number, empty if not provided.
func (c Customer) Phone() string { return c.phone }

// Email returns the customer's email address, empty if not provided.
func (c Customer) Email() string { return c.email }

// IsLoyaltyMember reports whether the customer is enrolled in the loyalty program.
func (c Customer) IsLoyaltyMember() bool { return c.loyaltyMember }

// PreferredPayment returns the customer's preferred payment method.
func (c Customer) PreferredPayment() string { return c.preferredPayment }
