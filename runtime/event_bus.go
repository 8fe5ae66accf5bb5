package runtime

import (
	"context"
	"log/slog"

	"partyline/domain/event"
)

// EventBus is the write end of the domain event channel drained by the
// EventFanout worker. Publishing never blocks the caller: when the buffer is
// full the event is dropped and onDrop is called.
type EventBus struct {
	log    *slog.Logger
	events chan event.DomainEvent
	onDrop func(e event.DomainEvent)
}

func NewEventBus(log *slog.Logger, bufferSize int) *EventBus {
	return &EventBus{log: log, events: make(chan event.DomainEvent, bufferSize)}
}

// WithDropHook sets the function called for every dropped event.
func (b *EventBus) WithDropHook(fn func(e event.DomainEvent)) *EventBus {
	b.onDrop = fn
	return b
}

func (b *EventBus) Publish(ctx context.Context, e event.DomainEvent) {
	if ctx.Err() != nil {
		b.drop(e, "context done")
		return
	}
	select {
	case b.events <- e:
	default:
		b.drop(e, "buffer full")
	}
}

// Events is the read end, handed to the fanout worker.
func (b *EventBus) Events() <-chan event.DomainEvent {
	return b.events
}

func (b *EventBus) drop(e event.DomainEvent, reason string) {
	b.log.Warn("Domain event dropped", "event", e.Name(), "call_id", e.Call(), "reason", reason)
	if b.onDrop != nil {
		b.onDrop(e)
	}
}
