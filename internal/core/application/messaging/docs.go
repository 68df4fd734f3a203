// Package messaging renders orders into integration messages and routes
// them to downstream systems.
//
// Generator produces a Message in one of six formats from an order
// snapshot. Router matches messages against named filtered routes and
// hands them to the registered delivery handler, inline or through a
// single background worker. RouterBuilder wires the standard integrations.
package messaging
