package deliveryhandler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/ogradyo/restaurant-simulator/internal/adapters/out/amqp"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/message"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

// Func delivers one message to a destination. Custom delivery methods
// register a Func under a method name.
type Func func(msg message.Message, destination string, options map[string]string) error

// Handler dispatches deliveries to a named method. The built-in methods
// are "file", "console", "http" and, when an AMQP publisher is attached,
// "queue". Unknown methods fail the delivery, never the router.
type Handler struct {
	logger *slog.Logger

	mu      sync.RWMutex
	methods map[string]Func
}

func New(outputDir string, logger *slog.Logger) *Handler {
	h := &Handler{
		logger:  logger.With("component", "delivery_handler"),
		methods: make(map[string]Func),
	}
	h.Register("file", fileDelivery(outputDir))
	h.Register("console", consoleDelivery(os.Stdout))
	h.Register("http", httpDelivery(http.DefaultClient))
	return h
}

// Register adds or replaces a delivery method.
func (h *Handler) Register(name string, fn Func) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.methods[name] = fn
}

// AttachQueue registers the "queue" method backed by the given publisher.
func (h *Handler) AttachQueue(publisher *amqp.Publisher) {
	h.Register("queue", func(msg message.Message, destination string, options map[string]string) error {
		routingKey := destination
		if key, ok := options["routing_key"]; ok {
			routingKey = key
		}
		return publisher.Publish(context.Background(), routingKey, msg.ContentType, []byte(msg.Content))
	})
}

func (h *Handler) Deliver(msg message.Message, destination, method string, options map[string]string) error {
	h.mu.RLock()
	fn, ok := h.methods[method]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown delivery method %q: %w", method, errs.ErrValueIsInvalid)
	}

	if err := fn(msg, destination, options); err != nil {
		return err
	}
	h.logger.Debug("message delivered",
		"order_id", msg.OrderID, "destination", destination, "method", method)
	return nil
}

// fileDelivery writes message content under outputDir/destination, one file
// per order and format.
func fileDelivery(outputDir string) Func {
	return func(msg message.Message, destination string, _ map[string]string) error {
		dir := filepath.Join(outputDir, destination)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create delivery dir: %w", err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s%s", msg.OrderID, msg.Format, extension(msg.Format)))
		if err := os.WriteFile(path, []byte(msg.Content), 0o644); err != nil {
			return fmt.Errorf("write message file: %w", err)
		}
		return nil
	}
}

func extension(format message.Format) string {
	switch format {
	case message.XML:
		return ".xml"
	case message.CSV:
		return ".csv"
	default:
		return ".json"
	}
}

func consoleDelivery(w io.Writer) Func {
	return func(msg message.Message, destination string, _ map[string]string) error {
		_, err := fmt.Fprintf(w,
			"\n==================================================\n"+
				"Destination: %s\nFormat: %s\nOrder: %s\n%s\n"+
				"==================================================\n",
			destination, msg.Format, msg.OrderID, msg.Content)
		return err
	}
}

// httpDelivery posts message content to the destination URL.
func httpDelivery(client *http.Client) Func {
	return func(msg message.Message, destination string, _ map[string]string) error {
		req, err := http.NewRequest(http.MethodPost, destination, bytes.NewReader([]byte(msg.Content)))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", msg.ContentType)
		req.Header.Set("User-Agent", "order-simulator/1.0")

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("post to %s: %w", destination, err)
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("post to %s: unexpected status %d", destination, resp.StatusCode)
		}
		return nil
	}
}
