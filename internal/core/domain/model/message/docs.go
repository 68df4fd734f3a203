// Package message defines the order message value object and the set of
// serialization formats it can be rendered in. Rendering itself lives in
// the application layer; this package only models the result.
package message
