//go:generate go run go.uber.org/mock/mockgen -source=panel_service.go -destination=../mocks/mock_panel_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"partyline/contract"
	"partyline/domain/panel"
	"partyline/domain/persona"
	pErrors "partyline/errors"
)

type IPanelService interface {
	SetURL(ctx context.Context, url string)
	Toggle(ctx context.Context, id persona.ID) error
	StartCall(ctx context.Context) (string, error)
	PressCallButton(ctx context.Context) error
	AddToCall(ctx context.Context, id persona.ID) error
	RemoveFromCall(ctx context.Context, id persona.ID) error
	Reset(ctx context.Context)
	View() panel.View
	State() panel.State
	Subscribe(sink contract.ChangeSink) func()
	ExpireAnnouncements(now time.Time)
}

type subscription struct {
	id   int
	sink contract.ChangeSink
}

// PanelService owns the single panel session. Every mutation goes through
// panel.Reduce under mu; backend requests are issued with mu released and
// their outcome is fed back as an event.
//
// Subscribers are called with mu held and must not call back into the service.
type PanelService struct {
	log     *slog.Logger
	catalog *persona.Catalog
	backend contract.CallBackend
	policy  panel.TogglePolicy
	now     func() time.Time
	// backendTimeout bounds a backend request once it is detached from the caller.
	backendTimeout time.Duration

	mu      sync.Mutex
	state   panel.State
	view    panel.View
	subs    []subscription
	nextSub int
}

func NewPanelService(
	log *slog.Logger,
	catalog *persona.Catalog,
	backend contract.CallBackend,
	policy panel.TogglePolicy,
	announcementTTL time.Duration,
) *PanelService {
	state := panel.NewState(catalog, announcementTTL)
	return &PanelService{
		log:     log,
		catalog: catalog,
		backend: backend,
		policy:  policy,
		now:     time.Now,
		state:   state,
		view:    panel.Render(state),
	}
}

// WithClock replaces the time source, tests only.
func (s *PanelService) WithClock(now func() time.Time) *PanelService {
	s.now = now
	return s
}

// WithBackendTimeout bounds every backend request. Zero means no bound.
func (s *PanelService) WithBackendTimeout(timeout time.Duration) *PanelService {
	s.backendTimeout = timeout
	return s
}

// backendContext detaches a backend request from its caller: once issued, a
// create, add or remove runs to completion even if the caller goes away.
func (s *PanelService) backendContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if s.backendTimeout <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, s.backendTimeout)
}

func (s *PanelService) SetURL(_ context.Context, url string) {
	s.dispatch(panel.URLChanged{URL: url})
}

// Toggle flips the checkbox of a persona. Outside a call, or with the local
// policy, only the selection changes. With the sync policy and an active call
// the toggle becomes an add or a remove and waits for the backend.
func (s *PanelService) Toggle(ctx context.Context, id persona.ID) error {
	if !s.catalog.Contains(id) {
		return fmt.Errorf("%w: %s", pErrors.ErrUnknownPersona, id)
	}

	s.mu.Lock()
	inCall := s.state.HasSession()
	selected := s.state.IsSelected(id)
	s.mu.Unlock()

	if !inCall || s.policy != panel.ToggleSync {
		s.dispatch(panel.PersonaToggled{Persona: id})
		return nil
	}
	if selected {
		return s.RemoveFromCall(ctx, id)
	}
	return s.AddToCall(ctx, id)
}

// StartCall asks the backend for a new call with the URL and the selected
// personas in catalog order. It returns the call id once the session is
// stored.
func (s *PanelService) StartCall(ctx context.Context) (string, error) {
	s.mu.Lock()
	switch {
	case s.state.HasSession() || s.state.Calling:
		s.mu.Unlock()
		return "", pErrors.ErrCallInProgress
	case !s.state.CanStartCall():
		s.mu.Unlock()
		return "", pErrors.ErrInvalidCallRequest
	}
	requested := s.apply(panel.CallRequested{})
	s.mu.Unlock()

	url, ids := requested.URL, requested.SelectedIDs()
	s.log.Info("Creating call", "url", url, "personas", ids)

	backendCtx, cancel := s.backendContext(ctx)
	defer cancel()
	callID, err := s.backend.CreateCall(backendCtx, url, ids)
	if err == nil && callID == "" {
		err = fmt.Errorf("empty call id")
	}
	if err != nil {
		s.log.Error("Error creating call", "url", url, "error", err)
		s.dispatch(panel.CallFailed{Epoch: requested.Epoch, Err: err})
		return "", fmt.Errorf("%w: %v", pErrors.ErrBackendRequestFailed, err)
	}

	after := s.dispatch(panel.CallStarted{Epoch: requested.Epoch, CallID: callID})
	if after.CallID != callID {
		s.log.Warn("Call created after the panel was reset, ignoring it", "call_id", callID)
		return "", fmt.Errorf("%w: call %s arrived after reset", pErrors.ErrNoActiveCall, callID)
	}
	s.log.Info("Call started", "call_id", callID)
	return callID, nil
}

// PressCallButton does what the call button currently shows: start a call, or
// reset the active one.
func (s *PanelService) PressCallButton(ctx context.Context) error {
	s.mu.Lock()
	inCall := s.state.HasSession()
	s.mu.Unlock()

	if inCall {
		s.Reset(ctx)
		return nil
	}
	_, err := s.StartCall(ctx)
	return err
}

func (s *PanelService) AddToCall(ctx context.Context, id persona.ID) error {
	return s.membership(ctx, id, panel.OpAdd)
}

func (s *PanelService) RemoveFromCall(ctx context.Context, id persona.ID) error {
	return s.membership(ctx, id, panel.OpRemove)
}

func (s *PanelService) membership(ctx context.Context, id persona.ID, op panel.Op) error {
	if !s.catalog.Contains(id) {
		return fmt.Errorf("%w: %s", pErrors.ErrUnknownPersona, id)
	}

	s.mu.Lock()
	switch {
	case !s.state.HasSession():
		s.mu.Unlock()
		return pErrors.ErrNoActiveCall
	case s.state.IsPending(id):
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", pErrors.ErrRequestInFlight, id)
	}
	callID := s.state.CallID
	s.apply(panel.MembershipRequested{Persona: id, Op: op})
	s.mu.Unlock()

	backendCtx, cancel := s.backendContext(ctx)
	defer cancel()
	var err error
	if op == panel.OpAdd {
		err = s.backend.AddToCall(backendCtx, callID, id)
	} else {
		err = s.backend.RemoveFromCall(backendCtx, callID, id)
	}
	if err != nil {
		s.log.Error("Membership request failed", "call_id", callID, "persona", id, "op", op, "error", err)
		s.dispatch(panel.MembershipFailed{CallID: callID, Persona: id, Op: op, Err: err})
		return fmt.Errorf("%w: %v", pErrors.ErrBackendRequestFailed, err)
	}

	s.dispatch(panel.MembershipConfirmed{CallID: callID, Persona: id, Op: op, At: s.now()})
	s.log.Info("Membership updated", "call_id", callID, "persona", id, "op", op)
	return nil
}

// Reset drops the session and clears the selection and the URL. A create-call
// still in flight is answered into the void.
func (s *PanelService) Reset(_ context.Context) {
	s.dispatch(panel.CallReset{})
	s.log.Info("Panel reset")
}

func (s *PanelService) View() panel.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *PanelService) State() panel.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers a sink for render diffs. The returned func removes it.
func (s *PanelService) Subscribe(sink contract.ChangeSink) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id: id, sink: sink})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *PanelService) ExpireAnnouncements(now time.Time) {
	s.dispatch(panel.AnnouncementsExpired{Now: now})
}

func (s *PanelService) dispatch(e panel.Event) panel.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(e)
}

// apply must be called with mu held.
func (s *PanelService) apply(e panel.Event) panel.State {
	s.state = panel.Reduce(s.state, e)
	next := panel.Render(s.state)
	changes := panel.Diff(s.view, next)
	s.view = next
	if len(changes) > 0 {
		s.log.Debug("Panel updated", "event", e.Name(), "changes", len(changes))
		for _, sub := range s.subs {
			sub.sink.Render(changes)
		}
	}
	return s.state.Clone()
}
