// Package processing owns the live order set for the restaurant.
//
// The Processor is the single source of truth for orders and customers: it
// applies state machine transitions atomically, keeps the FIFO preparation
// queue and the completed-order list in step with the lifecycle, and answers
// queries (lookup, filtering, queue position, wait projection, statistics).
//
// The Processor performs no I/O. Message generation, routing, and delivery
// platform integrations are downstream collaborators operating on order
// snapshots obtained from here.
package processing
