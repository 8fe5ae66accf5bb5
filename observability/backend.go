package observability

import (
	"context"
	"time"

	"partyline/contract"
	"partyline/domain/persona"
)

// InstrumentedBackend counts and times every request of the wrapped backend.
type InstrumentedBackend struct {
	next    contract.CallBackend
	metrics *Metrics
}

func NewInstrumentedBackend(next contract.CallBackend, metrics *Metrics) *InstrumentedBackend {
	return &InstrumentedBackend{next: next, metrics: metrics}
}

func (b *InstrumentedBackend) CreateCall(ctx context.Context, url string, personas []persona.ID) (string, error) {
	start := time.Now()
	id, err := b.next.CreateCall(ctx, url, personas)
	b.observe("create", start, err)
	return id, err
}

func (b *InstrumentedBackend) AddToCall(ctx context.Context, callID string, personaID persona.ID) error {
	start := time.Now()
	err := b.next.AddToCall(ctx, callID, personaID)
	b.observe("add", start, err)
	return err
}

func (b *InstrumentedBackend) RemoveFromCall(ctx context.Context, callID string, personaID persona.ID) error {
	start := time.Now()
	err := b.next.RemoveFromCall(ctx, callID, personaID)
	b.observe("remove", start, err)
	return err
}

func (b *InstrumentedBackend) observe(op string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	b.metrics.BackendRequests.WithLabelValues(op, outcome).Inc()
	b.metrics.BackendLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
