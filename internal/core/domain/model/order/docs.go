// Package order provides domain entities and business logic for restaurant
// order management. It implements the Order aggregate root with lifecycle
// management, derived totals, and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning customer, lines, totals, and lifecycle
//   - Status: A state machine enforcing the kitchen workflow
//   - Type: The closed set of order origin channels
//   - Customer, Item: Value objects owned by the aggregate
//
// Key business rules:
//   - Lifecycle: pending -> confirmed -> preparing -> ready -> completed,
//     with cancellation possible from any non-terminal status
//   - Totals are recomputed whenever lines or the tip change; line prices are
//     snapshotted at construction
//   - Confirmation requires at least one line; lines are frozen once
//     preparation starts
//   - Delivery orders carry an external platform identifier from creation
package order
