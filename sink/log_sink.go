package sink

import (
	"context"
	"log/slog"

	"partyline/domain/event"
)

// LogSink writes one structured line per domain event.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Consume(ctx context.Context, e event.DomainEvent) error {
	attrs := []any{"event", e.Name(), "call_id", e.Call(), "at", e.OccurredAt()}
	switch evt := e.(type) {
	case event.CallCreated:
		attrs = append(attrs, "url", evt.URL, "personas", evt.Personas)
	case event.PersonaJoined:
		attrs = append(attrs, "persona", evt.Persona)
	case event.PersonaLeft:
		attrs = append(attrs, "persona", evt.Persona)
	}
	s.log.InfoContext(ctx, "Call event", attrs...)
	return nil
}
