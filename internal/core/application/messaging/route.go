package messaging

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/message"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

// RouteConfig describes one routing rule. Empty filters match everything;
// a route is enabled unless Disabled is set.
type RouteConfig struct {
	Name            string
	Destination     string
	Method          string
	FormatFilter    []message.Format
	OrderTypeFilter []order.Type
	Disabled        bool
	Options         map[string]string
}

// Route is a named routing rule with delivery counters. Counters are
// mutated only by the goroutine performing the delivery and guarded for
// concurrent statistics reads.
type Route struct {
	name            string
	destination     string
	method          string
	formatFilter    []message.Format
	orderTypeFilter []order.Type
	options         map[string]string

	mu           sync.Mutex
	enabled      bool
	delivered    int
	errorCount   int
	lastDelivery time.Time
}

func NewRoute(cfg RouteConfig) (*Route, error) {
	err := errors.Join(
		requireRouteField("name", cfg.Name),
		requireRouteField("destination", cfg.Destination),
		requireRouteField("method", cfg.Method),
	)
	for _, f := range cfg.FormatFilter {
		err = errors.Join(err, f.Validate())
	}
	for _, t := range cfg.OrderTypeFilter {
		err = errors.Join(err, t.Validate())
	}
	if err != nil {
		return nil, err
	}

	options := make(map[string]string, len(cfg.Options))
	for k, v := range cfg.Options {
		options[k] = v
	}
	return &Route{
		name:            cfg.Name,
		destination:     cfg.Destination,
		method:          cfg.Method,
		formatFilter:    slices.Clone(cfg.FormatFilter),
		orderTypeFilter: slices.Clone(cfg.OrderTypeFilter),
		options:         options,
		enabled:         !cfg.Disabled,
	}, nil
}

func requireRouteField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func (r *Route) Name() string        { return r.name }
func (r *Route) Destination() string { return r.destination }
func (r *Route) Method() string      { return r.method }

func (r *Route) Options() map[string]string {
	out := make(map[string]string, len(r.options))
	for k, v := range r.options {
		out[k] = v
	}
	return out
}

func (r *Route) IsEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// SetEnabled toggles the route. A disabled route never matches; its
// counters are kept.
func (r *Route) SetEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = enabled
}

// Matches reports whether the message passes this route's filters.
func (r *Route) Matches(msg message.Message) bool {
	if !r.IsEnabled() {
		return false
	}
	if len(r.formatFilter) > 0 && !slices.Contains(r.formatFilter, msg.Format) {
		return false
	}
	if len(r.orderTypeFilter) > 0 && !slices.Contains(r.orderTypeFilter, msg.OrderType) {
		return false
	}
	return true
}

func (r *Route) recordDelivery(at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delivered++
	r.lastDelivery = at
}

func (r *Route) recordError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorCount++
}

// RouteStatistics is a point-in-time snapshot of one route's counters.
type RouteStatistics struct {
	Destination  string     `json:"destination"`
	Method       string     `json:"method"`
	Enabled      bool       `json:"enabled"`
	Delivered    int        `json:"delivered_count"`
	Errors       int        `json:"error_count"`
	LastDelivery *time.Time `json:"last_delivery,omitempty"`
	SuccessRate  float64    `json:"success_rate"`
}

func (r *Route) Statistics() RouteStatistics {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := RouteStatistics{
		Destination: r.destination,
		Method:      r.method,
		Enabled:     r.enabled,
		Delivered:   r.delivered,
		Errors:      r.errorCount,
	}
	if !r.lastDelivery.IsZero() {
		last := r.lastDelivery
		stats.LastDelivery = &last
	}
	if total := r.delivered + r.errorCount; total > 0 {
		stats.SuccessRate = float64(r.delivered) / float64(total) * 100
	}
	return stats
}
