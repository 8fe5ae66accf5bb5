package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"partyline/domain/event"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestEventBus_Drops_When_Full(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	dropped := 0
	bus := NewEventBus(logs.GetLoggerFromLevel(slog.LevelDebug), 1).
		WithDropHook(func(event.DomainEvent) { dropped++ })

	first := event.CallCreated{CallID: "call-1", At: time.Now()}
	bus.Publish(ctx, first)
	bus.Publish(ctx, event.CallCreated{CallID: "call-2", At: time.Now()})

	req.Equal(1, dropped)
	req.Equal(first, <-bus.Events())
}

func TestEventBus_Drops_On_Cancelled_Context(t *testing.T) {
	req := require.New(t)
	dropped := 0
	bus := NewEventBus(logs.GetLoggerFromLevel(slog.LevelDebug), 4).
		WithDropHook(func(event.DomainEvent) { dropped++ })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bus.Publish(ctx, event.PersonaJoined{CallID: "call-1"})

	req.Equal(1, dropped)
	req.Empty(bus.Events())
}
