package message

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is wrapped by format validation failures. Requesting a
// message in an unknown format is a caller error, reported, never fatal.
var ErrUnsupportedFormat = errors.New("unsupported message format")

// Format selects the serialized representation of an order message.
type Format string

const (
	JSON     Format = "json"
	XML      Format = "xml"
	CSV      Format = "csv"
	POS      Format = "pos"
	Kitchen  Format = "kitchen"
	Delivery Format = "delivery"
)

// Formats returns every supported format in declaration order.
func Formats() []Format {
	return []Format{JSON, XML, CSV, POS, Kitchen, Delivery}
}

// FormatFromString parses a format from its wire representation.
func FormatFromString(s string) (Format, error) {
	f := Format(s)
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate reports whether the format is one of the supported values.
func (f Format) Validate() error {
	switch f {
	case JSON, XML, CSV, POS, Kitchen, Delivery:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// ContentType returns the MIME type of content rendered in this format.
// POS, kitchen, and delivery payloads are JSON-shaped.
func (f Format) ContentType() string {
	switch f {
	case XML:
		return "application/xml"
	case CSV:
		return "text/csv"
	default:
		return "application/json"
	}
}

// String returns the wire representation of the format.
func (f Format) String() string {
	return string(f)
}
