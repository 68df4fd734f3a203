package messaging

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/message"
	"github.com/ogradyo/restaurant-simulator/internal/core/ports"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

const (
	// workerPollInterval bounds how long the async worker sleeps when the
	// queue is empty, so a missed wakeup never stalls it for good.
	workerPollInterval = 100 * time.Millisecond

	stopTimeout = 5 * time.Second
)

type queuedDelivery struct {
	route *Route
	msg   message.Message
}

// Router fans messages out to every matching route through a single
// registered DeliveryHandler.
//
// In sync mode Route delivers inline on the caller's goroutine and returns
// the names of routes whose delivery succeeded. In async mode it enqueues
// and returns immediately with no names; a single worker goroutine drains
// the queue, so each (route, message) pair gets at most one delivery
// attempt. The mode cannot change while the worker runs.
type Router struct {
	logger *slog.Logger

	mu      sync.Mutex
	routes  map[string]*Route
	names   []string
	handler ports.DeliveryHandler
	running bool
	pending []queuedDelivery

	notify chan struct{}
	stop   chan struct{}
	done   chan struct{}
}

func NewRouter(logger *slog.Logger) *Router {
	return &Router{
		logger: logger.With("component", "message_router"),
		routes: make(map[string]*Route),
		notify: make(chan struct{}, 1),
	}
}

// AddRoute registers a route. Names are unique; re-adding an existing name
// is rejected so counters cannot be silently reset.
func (r *Router) AddRoute(route *Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.routes[route.Name()]; ok {
		return fmt.Errorf("route %q: %w", route.Name(), errs.ErrValueIsInvalid)
	}
	r.routes[route.Name()] = route
	r.names = append(r.names, route.Name())
	return nil
}

// RemoveRoute drops a route by name. Unknown names are a no-op.
func (r *Router) RemoveRoute(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.routes[name]; !ok {
		return
	}
	delete(r.routes, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
}

// Route returns the registered route by name, or nil.
func (r *Router) Route(name string) *Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.routes[name]
}

// RegisterHandler sets the delivery handler. Routing without a handler is
// reported and drops the message without touching route counters.
func (r *Router) RegisterHandler(handler ports.DeliveryHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handler = handler
}

// Dispatch routes the message. It returns the names of routes that received
// the message synchronously; in async mode the list is always empty.
func (r *Router) Dispatch(msg message.Message) []string {
	r.mu.Lock()
	handler := r.handler
	if handler == nil {
		r.mu.Unlock()
		r.logger.Warn("no delivery handler registered, dropping message",
			"order_id", msg.OrderID, "format", msg.Format.String())
		return []string{}
	}

	var matched []*Route
	for _, name := range r.names {
		if route := r.routes[name]; route.Matches(msg) {
			matched = append(matched, route)
		}
	}

	if r.running {
		for _, route := range matched {
			r.pending = append(r.pending, queuedDelivery{route: route, msg: msg})
		}
		r.mu.Unlock()
		r.wake()
		return []string{}
	}
	r.mu.Unlock()

	delivered := []string{}
	for _, route := range matched {
		if r.deliver(handler, route, msg) {
			delivered = append(delivered, route.Name())
		}
	}
	return delivered
}

func (r *Router) deliver(handler ports.DeliveryHandler, route *Route, msg message.Message) bool {
	err := handler.Deliver(msg, route.Destination(), route.Method(), route.Options())
	if err != nil {
		route.recordError()
		r.logger.Error("delivery failed",
			"route", route.Name(), "destination", route.Destination(),
			"method", route.Method(), "error", err)
		return false
	}
	route.recordDelivery(time.Now())
	return true
}

// Start switches the router to async mode and launches the worker.
func (r *Router) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("router already running: %w", errs.ErrValueIsInvalid)
	}
	r.running = true
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	go r.work(r.stop, r.done)
	r.logger.Info("async routing started")
	return nil
}

// Stop signals the worker and waits for it, bounded by stopTimeout. Queued
// deliveries that have not started are abandoned.
func (r *Router) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	stop, done := r.stop, r.done
	r.mu.Unlock()

	close(stop)
	select {
	case <-done:
	case <-time.After(stopTimeout):
		r.logger.Warn("worker did not stop in time")
	}

	r.mu.Lock()
	abandoned := len(r.pending)
	r.pending = nil
	r.mu.Unlock()
	if abandoned > 0 {
		r.logger.Warn("abandoning queued deliveries", "count", abandoned)
	}
	r.logger.Info("async routing stopped")
}

func (r *Router) wake() {
	select {
	case r.notify <- struct{}{}:
	default:
	}
}

func (r *Router) work(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		default:
		}

		r.mu.Lock()
		if len(r.pending) == 0 {
			r.mu.Unlock()
			select {
			case <-stop:
				return
			case <-r.notify:
			case <-time.After(workerPollInterval):
			}
			continue
		}
		next := r.pending[0]
		r.pending = r.pending[1:]
		handler := r.handler
		r.mu.Unlock()

		if handler == nil {
			continue
		}
		r.deliver(handler, next.route, next.msg)
	}
}

// Statistics snapshots every route's counters, keyed by route name.
func (r *Router) Statistics() map[string]RouteStatistics {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := make(map[string]RouteStatistics, len(r.routes))
	for name, route := range r.routes {
		stats[name] = route.Statistics()
	}
	return stats
}

// QueueDepth reports how many deliveries are waiting for the async worker.
func (r *Router) QueueDepth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// IsRunning reports whether the async worker is active.
func (r *Router) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}
