// Package menu provides the static menu catalog for the restaurant order
// simulator.
//
// The package includes:
//   - Item: An immutable value object describing one orderable product
//   - Category: The closed set of menu categories
//   - Catalog: A read-only collection of items with lookup, filtering, and search
//
// The catalog is populated once from the standard seed menu and never mutated
// afterwards. Order lines hold shared references to catalog items; line prices
// are snapshotted at order time, so later catalog changes (were any allowed)
// would not affect existing orders.
package menu
