package order

import (
	"errors"
	"fmt"

	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

// ErrInvalidTransition is wrapped by every status transition rejected because
// the order is not in a legal source state. Callers treat it as an expected
// business outcome, not a fault.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the kitchen
// workflow.
//
// State transitions:
//
//	Pending ──confirm──> Confirmed ──startPreparation──> Preparing ──complete──> Ready ──finalize──> Completed
//	   │                     │                               │                     │
//	   └────────cancel───────┴───────────cancel──────────────┴───────cancel───────┘
//
// Completed and Cancelled are terminal. Finalize is idempotent: a Completed
// order finalizes to Completed again.
type Status string

const (
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	Preparing Status = "preparing"
	Ready     Status = "ready"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, Completed, Cancelled}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate reports whether the status is one of the declared values.
func (s Status) Validate() error {
	switch s {
	case Pending, Confirmed, Preparing, Ready, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// AllowsItemChanges reports whether order lines may still be added or removed.
func (s Status) AllowsItemChanges() bool {
	return s == Pending || s == Confirmed
}

// Confirm transitions Pending to Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return "", fmt.Errorf("%w: cannot confirm order in status %s", ErrInvalidTransition, s)
	}
	return Confirmed, nil
}

// StartPreparation transitions Confirmed to Preparing.
func (s Status) StartPreparation() (Status, error) {
	if s != Confirmed {
		return "", fmt.Errorf("%w: cannot start preparation in status %s", ErrInvalidTransition, s)
	}
	return Preparing, nil
}

// Complete transitions Preparing to Ready.
func (s Status) Complete() (Status, error) {
	if s != Preparing {
		return "", fmt.Errorf("%w: cannot complete order in status %s", ErrInvalidTransition, s)
	}
	return Ready, nil
}

// Finalize transitions Ready to Completed. Finalizing an already Completed
// order is allowed and yields Completed again.
func (s Status) Finalize() (Status, error) {
	if s != Ready && s != Completed {
		return "", fmt.Errorf("%w: cannot finalize order in status %s", ErrInvalidTransition, s)
	}
	return Completed, nil
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return "", fmt.Errorf("%w: cannot cancel order in status %s", ErrInvalidTransition, s)
	}
	return Cancelled, nil
}
