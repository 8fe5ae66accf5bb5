package panel

import (
	"time"

	"partyline/domain/persona"
)

// Event is anything Reduce knows how to apply.
type Event interface {
	Name() string
}

type URLChanged struct {
	URL string
}

type PersonaToggled struct {
	Persona persona.ID
}

type CallRequested struct{}

// CallStarted and CallFailed carry the epoch of the CallRequested they answer.
type CallStarted struct {
	Epoch  uint64
	CallID string
}

type CallFailed struct {
	Epoch uint64
	Err   error
}

type CallReset struct{}

type MembershipRequested struct {
	Persona persona.ID
	Op      Op
}

type MembershipConfirmed struct {
	CallID  string
	Persona persona.ID
	Op      Op
	At      time.Time
}

type MembershipFailed struct {
	CallID  string
	Persona persona.ID
	Op      Op
	Err     error
}

type AnnouncementsExpired struct {
	Now time.Time
}

func (URLChanged) Name() string           { return "url_changed" }
func (PersonaToggled) Name() string       { return "persona_toggled" }
func (CallRequested) Name() string        { return "call_requested" }
func (CallStarted) Name() string          { return "call_started" }
func (CallFailed) Name() string           { return "call_failed" }
func (CallReset) Name() string            { return "call_reset" }
func (MembershipRequested) Name() string  { return "membership_requested" }
func (MembershipConfirmed) Name() string  { return "membership_confirmed" }
func (MembershipFailed) Name() string     { return "membership_failed" }
func (AnnouncementsExpired) Name() string { return "announcements_expired" }
