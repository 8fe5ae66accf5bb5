package sink

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"partyline/domain/event"
	"partyline/domain/persona"
	"partyline/observability"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsSink_Tracks_Active_Calls(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	metrics := observability.NewMetrics()
	s := NewMetricsSink(metrics)
	now := time.Now()

	// Given two calls, one with a single persona
	req.NoError(s.Consume(ctx, event.CallCreated{CallID: "call-1", Personas: []persona.ID{persona.Nerd}, At: now}))
	req.NoError(s.Consume(ctx, event.CallCreated{CallID: "call-2", Personas: []persona.ID{persona.Chef, persona.Singer}, At: now}))
	req.Equal(2.0, testutil.ToFloat64(metrics.ActiveCalls))

	// When the only persona of the first call hangs up
	req.NoError(s.Consume(ctx, event.PersonaLeft{CallID: "call-1", Persona: persona.Nerd, At: now}))

	// Then only one call is still active
	req.Equal(1.0, testutil.ToFloat64(metrics.ActiveCalls))
	req.Equal(2.0, testutil.ToFloat64(metrics.Events.WithLabelValues("call_created")))
	req.Equal(1.0, testutil.ToFloat64(metrics.Events.WithLabelValues("persona_left")))

	// And joining again revives it
	req.NoError(s.Consume(ctx, event.PersonaJoined{CallID: "call-1", Persona: persona.Dancer, At: now}))
	req.Equal(2.0, testutil.ToFloat64(metrics.ActiveCalls))
}

func TestLogSink_Never_Fails(t *testing.T) {
	req := require.New(t)
	s := NewLogSink(logs.GetLoggerFromLevel(slog.LevelDebug))

	req.NoError(s.Consume(context.Background(), event.PersonaJoined{CallID: "call-1", Persona: persona.Chef, At: time.Now()}))
}
