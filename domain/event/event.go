package event

import (
	"time"

	"partyline/domain/call"
	"partyline/domain/persona"
)

// DomainEvent is published by the call service after a state change was
// persisted.
type DomainEvent interface {
	Name() string
	Call() call.ID
	OccurredAt() time.Time
}

type CallCreated struct {
	CallID   call.ID
	URL      string
	Personas []persona.ID
	At       time.Time
}

type PersonaJoined struct {
	CallID  call.ID
	Persona persona.ID
	At      time.Time
}

type PersonaLeft struct {
	CallID  call.ID
	Persona persona.ID
	At      time.Time
}

func (e CallCreated) Name() string          { return "call_created" }
func (e CallCreated) Call() call.ID         { return e.CallID }
func (e CallCreated) OccurredAt() time.Time { return e.At }

func (e PersonaJoined) Name() string          { return "persona_joined" }
func (e PersonaJoined) Call() call.ID         { return e.CallID }
func (e PersonaJoined) OccurredAt() time.Time { return e.At }

func (e PersonaLeft) Name() string          { return "persona_left" }
func (e PersonaLeft) Call() call.ID         { return e.CallID }
func (e PersonaLeft) OccurredAt() time.Time { return e.At }
