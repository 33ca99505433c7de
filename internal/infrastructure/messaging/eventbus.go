// Package messaging implements the in-process event bus the school registry
// publishes its domain events to.
package messaging

import (
	"errors"

	"github.com/alem-hub/school-registry/internal/domain/shared"
	"github.com/alem-hub/school-registry/pkg/logger"
)

// ErrEventBusClosed is returned by every operation on a closed bus.
var ErrEventBusClosed = errors.New("event bus is closed")

// ══════════════════════════════════════════════════════════════════════════════
// IN-MEMORY EVENT BUS
// ══════════════════════════════════════════════════════════════════════════════

// InMemoryEventBus delivers events synchronously, on the publisher's
// goroutine, in subscription order: type-specific handlers first, then
// global ones. It is not safe for concurrent use.
type InMemoryEventBus struct {
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	logger      *logger.Logger
	metrics     *EventBusMetrics
	closed      bool
}

// InMemoryEventBusConfig contains configuration for InMemoryEventBus.
type InMemoryEventBusConfig struct {
	// Logger for structured logging
	Logger *logger.Logger

	// EnableMetrics enables metrics collection
	EnableMetrics bool
}

// DefaultInMemoryEventBusConfig returns sensible defaults.
func DefaultInMemoryEventBusConfig() InMemoryEventBusConfig {
	return InMemoryEventBusConfig{
		EnableMetrics: true,
	}
}

// NewInMemoryEventBus creates a new in-memory event bus.
func NewInMemoryEventBus(config InMemoryEventBusConfig) *InMemoryEventBus {
	if config.Logger == nil {
		config.Logger = logger.Nop()
	}

	bus := &InMemoryEventBus{
		handlers: make(map[shared.EventType][]shared.EventHandler),
		logger:   config.Logger.With(logger.Component("eventbus")),
	}

	if config.EnableMetrics {
		bus.metrics = NewEventBusMetrics()
	}

	return bus
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}
	if b.closed {
		return ErrEventBusClosed
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Debug("subscribed handler", logger.EventType(eventType))

	return nil
}

// SubscribeAll registers a handler for all events.
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}
	if b.closed {
		return ErrEventBusClosed
	}

	b.allHandlers = append(b.allHandlers, handler)
	b.logger.Debug("subscribed global handler")

	return nil
}

// Publish runs every matching handler. A failing handler is logged and does
// not stop the remaining ones; Publish itself only fails on a nil event or a
// closed bus.
func (b *InMemoryEventBus) Publish(event shared.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	if b.closed {
		return ErrEventBusClosed
	}

	handlers := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	handlers = append(handlers, b.handlers[event.EventType()]...)
	handlers = append(handlers, b.allHandlers...)

	if b.metrics != nil {
		b.metrics.RecordPublish(event.EventType())
	}

	if len(handlers) == 0 {
		b.logger.Debug("no handlers for event", logger.EventType(event.EventType()))
		return nil
	}

	for _, handler := range handlers {
		err := handler(event)
		if b.metrics != nil {
			b.metrics.RecordHandlerExecution(event.EventType(), err == nil)
		}
		if err != nil {
			b.logger.Error("handler error", logger.EventType(event.EventType()), logger.Err(err))
		}
	}

	return nil
}

// Close stops the bus; later calls fail with ErrEventBusClosed.
func (b *InMemoryEventBus) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.logger.Debug("event bus closed")
	return nil
}

// Metrics returns the current metrics, or nil when disabled.
func (b *InMemoryEventBus) Metrics() *EventBusMetrics {
	return b.metrics
}

// ══════════════════════════════════════════════════════════════════════════════
// METRICS
// ══════════════════════════════════════════════════════════════════════════════

// EventBusMetrics counts what went through the bus, per event type.
type EventBusMetrics struct {
	published map[shared.EventType]int64
	succeeded map[shared.EventType]int64
	failed    map[shared.EventType]int64
}

// NewEventBusMetrics creates new metrics tracker.
func NewEventBusMetrics() *EventBusMetrics {
	return &EventBusMetrics{
		published: make(map[shared.EventType]int64),
		succeeded: make(map[shared.EventType]int64),
		failed:    make(map[shared.EventType]int64),
	}
}

// RecordPublish counts one published event.
func (m *EventBusMetrics) RecordPublish(eventType shared.EventType) {
	m.published[eventType]++
}

// RecordHandlerExecution counts one handler run for eventType.
func (m *EventBusMetrics) RecordHandlerExecution(eventType shared.EventType, success bool) {
	if success {
		m.succeeded[eventType]++
	} else {
		m.failed[eventType]++
	}
}

// Snapshot returns a copy of the counters.
func (m *EventBusMetrics) Snapshot() EventBusMetricsSnapshot {
	published, totalPublished := copyCounts(m.published)
	succeeded, totalSucceeded := copyCounts(m.succeeded)
	failed, totalFailed := copyCounts(m.failed)
	return EventBusMetricsSnapshot{
		Published:       published,
		Succeeded:       succeeded,
		Failed:          failed,
		TotalPublished:  totalPublished,
		HandlerSuccess:  totalSucceeded,
		HandlerFailures: totalFailed,
	}
}

func copyCounts(src map[shared.EventType]int64) (map[shared.EventType]int64, int64) {
	dst := make(map[shared.EventType]int64, len(src))
	var total int64
	for k, v := range src {
		dst[k] = v
		total += v
	}
	return dst, total
}

// EventBusMetricsSnapshot is a point-in-time snapshot of metrics.
// The maps are keyed by event type; the Total/Handler fields sum them.
type EventBusMetricsSnapshot struct {
	Published       map[shared.EventType]int64
	Succeeded       map[shared.EventType]int64
	Failed          map[shared.EventType]int64
	TotalPublished  int64
	HandlerSuccess  int64
	HandlerFailures int64
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// LoggingHandler returns a handler that writes every event to log at info.
func LoggingHandler(log *logger.Logger) shared.EventHandler {
	return func(event shared.Event) error {
		fields := []logger.Field{
			logger.EventType(event.EventType()),
			logger.String("event_id", event.EventID()),
			logger.String("aggregate_id", event.AggregateID()),
		}
		for k, v := range event.Payload() {
			fields = append(fields, logger.Any(k, v))
		}
		log.Info("domain event", fields...)
		return nil
	}
}
