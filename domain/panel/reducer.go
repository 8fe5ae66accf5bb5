package panel

import (
	"fmt"
)

const CallFailedAlert = "Call failed—check console for details."

// Reduce applies an event to a state and returns the resulting state.
// The input is never mutated. Events that do not apply to the current state
// (stale responses, unknown personas, requests without a session) return an
// equal copy.
func Reduce(s State, e Event) State {
	next := s.Clone()

	switch evt := e.(type) {
	case URLChanged:
		next.URL = evt.URL

	case PersonaToggled:
		if !next.Knows(evt.Persona) {
			return next
		}
		if next.IsSelected(evt.Persona) {
			delete(next.Selected, evt.Persona)
		} else {
			next.Selected[evt.Persona] = struct{}{}
		}

	case CallRequested:
		if !next.CanStartCall() {
			return next
		}
		next.Calling = true
		next.Epoch++
		next.Alert = ""

	case CallStarted:
		if !next.Calling || evt.Epoch != next.Epoch || evt.CallID == "" {
			return next
		}
		next.Calling = false
		next.CallID = evt.CallID

	case CallFailed:
		if !next.Calling || evt.Epoch != next.Epoch {
			return next
		}
		next.Calling = false
		next.Alert = CallFailedAlert

	case CallReset:
		next.CallID = ""
		next.Calling = false
		next.URL = ""
		next.Alert = ""
		next.Epoch++
		clear(next.Selected)
		clear(next.Pending)
		next.Announcements = nil

	case MembershipRequested:
		if !next.HasSession() || !next.Knows(evt.Persona) || next.IsPending(evt.Persona) {
			return next
		}
		next.Pending[evt.Persona] = evt.Op

	case MembershipConfirmed:
		if !next.HasSession() || evt.CallID != next.CallID {
			return next
		}
		delete(next.Pending, evt.Persona)
		switch evt.Op {
		case OpAdd:
			next.Selected[evt.Persona] = struct{}{}
			next.Announcements = append(next.Announcements, Announcement{
				Message:   fmt.Sprintf("Added %s to call.", evt.Persona),
				ExpiresAt: evt.At.Add(next.AnnouncementTTL),
			})
		case OpRemove:
			delete(next.Selected, evt.Persona)
			next.Announcements = append(next.Announcements, Announcement{
				Message:   fmt.Sprintf("Hung up on %s.", evt.Persona),
				ExpiresAt: evt.At.Add(next.AnnouncementTTL),
			})
		}

	case MembershipFailed:
		if !next.HasSession() || evt.CallID != next.CallID {
			return next
		}
		delete(next.Pending, evt.Persona)

	case AnnouncementsExpired:
		kept := next.Announcements[:0]
		for _, a := range next.Announcements {
			if a.ExpiresAt.After(evt.Now) {
				kept = append(kept, a)
			}
		}
		if len(kept) == 0 {
			kept = nil
		}
		next.Announcements = kept
	}

	return next
}
