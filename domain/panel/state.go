// Package panel models the persona call panel as plain data: a State, the
// Events that change it, a pure Reduce function, a derived View and the Diff
// between two views. Nothing in here talks to a backend or a browser.
package panel

import (
	"maps"
	"time"

	"partyline/domain/persona"
)

// Op is the direction of a membership change during an active call.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
)

// Announcement is an accessible status message shown until it expires.
type Announcement struct {
	Message   string
	ExpiresAt time.Time
}

// State is owned by a single panel. Zero or one call session exists at a time:
// CallID is empty when no session is active.
type State struct {
	Personas      []persona.Persona
	URL           string
	Selected      map[persona.ID]struct{}
	CallID        string
	Calling       bool
	Epoch         uint64
	Pending       map[persona.ID]Op
	Alert         string
	Announcements []Announcement
	// AnnouncementTTL is how long a status message stays visible.
	AnnouncementTTL time.Duration
}

func NewState(catalog *persona.Catalog, announcementTTL time.Duration) State {
	return State{
		Personas:        catalog.All(),
		Selected:        make(map[persona.ID]struct{}),
		Pending:         make(map[persona.ID]Op),
		AnnouncementTTL: announcementTTL,
	}
}

func (s State) HasSession() bool { return s.CallID != "" }

func (s State) IsSelected(id persona.ID) bool {
	_, ok := s.Selected[id]
	return ok
}

func (s State) IsPending(id persona.ID) bool {
	_, ok := s.Pending[id]
	return ok
}

func (s State) Knows(id persona.ID) bool {
	for _, p := range s.Personas {
		if p.ID == id {
			return true
		}
	}
	return false
}

// SelectedIDs returns the selection in catalog order.
func (s State) SelectedIDs() []persona.ID {
	ids := make([]persona.ID, 0, len(s.Selected))
	for _, p := range s.Personas {
		if s.IsSelected(p.ID) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// CanStartCall reports whether the call button is usable to create a call.
func (s State) CanStartCall() bool {
	return s.URL != "" && len(s.Selected) > 0 && !s.HasSession() && !s.Calling
}

// Clone returns a deep copy so that callers can never alias the maps or
// slices of a state held elsewhere.
func (s State) Clone() State {
	c := s
	c.Personas = append([]persona.Persona(nil), s.Personas...)
	c.Selected = maps.Clone(s.Selected)
	if c.Selected == nil {
		c.Selected = make(map[persona.ID]struct{})
	}
	c.Pending = maps.Clone(s.Pending)
	if c.Pending == nil {
		c.Pending = make(map[persona.ID]Op)
	}
	c.Announcements = append([]Announcement(nil), s.Announcements...)
	return c
}
