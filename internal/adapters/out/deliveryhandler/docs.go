// Package deliveryhandler implements the message delivery port as a
// registry of named delivery methods.
package deliveryhandler
