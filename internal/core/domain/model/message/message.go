package message

import "github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"

// Message is an immutable snapshot of an order rendered for one consumer.
// Content holds the serialized body; Data holds the structured payload the
// body was rendered from, so delivery targets that want structured access
// do not have to parse Content back.
//
// OrderType is carried on the message itself so routing filters work the
// same for every format, including formats whose payload does not embed
// the order type.
type Message struct {
	Format      Format
	ContentType string
	Content     string
	OrderID     string
	OrderType   order.Type
	Data        any
}
