package sink

import (
	"context"
	"sync"

	"partyline/domain/call"
	"partyline/domain/event"
	"partyline/observability"
)

// MetricsSink counts events and keeps the active call gauge. A call is active
// while at least one persona is on the line.
type MetricsSink struct {
	metrics *observability.Metrics

	mu      sync.Mutex
	members map[call.ID]int
}

func NewMetricsSink(metrics *observability.Metrics) *MetricsSink {
	return &MetricsSink{metrics: metrics, members: make(map[call.ID]int)}
}

func (s *MetricsSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.metrics.Events.WithLabelValues(e.Name()).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	switch evt := e.(type) {
	case event.CallCreated:
		s.members[evt.CallID] = len(evt.Personas)
	case event.PersonaJoined:
		s.members[evt.CallID]++
	case event.PersonaLeft:
		if s.members[evt.CallID] > 0 {
			s.members[evt.CallID]--
		}
	}
	active := 0
	for _, n := range s.members {
		if n > 0 {
			active++
		}
	}
	s.metrics.ActiveCalls.Set(float64(active))
	return nil
}
