//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"partyline/domain/event"
	"partyline/domain/panel"
	"partyline/domain/persona"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision without a naming method on Worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives every domain event published by the call service.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// EventPublisher is the write side of the event pipeline.
type EventPublisher interface {
	Publish(ctx context.Context, e event.DomainEvent)
}

// CallBackend is everything the panel needs from whoever runs the calls.
// Failures are opaque to the panel: any error means "backend request failed".
type CallBackend interface {
	CreateCall(ctx context.Context, url string, personas []persona.ID) (string, error)
	AddToCall(ctx context.Context, callID string, personaID persona.ID) error
	RemoveFromCall(ctx context.Context, callID string, personaID persona.ID) error
}

// PageFetcher downloads a page and returns it as markdown-like text.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Summarizer condenses page content under the given system prompt.
type Summarizer interface {
	Summarize(ctx context.Context, systemPrompt, content string) (string, error)
}

// ChangeSink receives the render diff produced after each panel update.
type ChangeSink interface {
	Render(changes []panel.Change)
}
