// Package simulated is a stand-in call backend that only waits. It answers the
// way the first prototype of the panel did: one second to create a call, half a
// second to add or remove a persona.
package simulated

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"partyline/domain/persona"
	pErrors "partyline/errors"

	"github.com/samber/lo"
)

const (
	DefaultCreateDelay = time.Second
	DefaultMemberDelay = 500 * time.Millisecond
	callIDLength       = 9
)

var callIDCharset = append(lo.LowerCaseLettersCharset, lo.NumbersCharset...)

type Backend struct {
	log         *slog.Logger
	createDelay time.Duration
	memberDelay time.Duration

	mu    sync.Mutex
	calls map[string]map[persona.ID]struct{}
	fail  error
}

func NewBackend(log *slog.Logger, createDelay, memberDelay time.Duration) *Backend {
	return &Backend{
		log:         log,
		createDelay: createDelay,
		memberDelay: memberDelay,
		calls:       make(map[string]map[persona.ID]struct{}),
	}
}

// FailWith makes every following request fail with err, nil restores success.
func (b *Backend) FailWith(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail = err
}

func (b *Backend) CreateCall(ctx context.Context, url string, personas []persona.ID) (string, error) {
	if err := b.wait(ctx, b.createDelay); err != nil {
		return "", err
	}
	id := "call-" + lo.RandomString(callIDLength, callIDCharset)

	b.mu.Lock()
	b.calls[id] = lo.Keyify(personas)
	b.mu.Unlock()

	b.log.Info("Simulated call created", "call_id", id, "url", url, "personas", personas)
	return id, nil
}

func (b *Backend) AddToCall(ctx context.Context, callID string, personaID persona.ID) error {
	return b.membership(ctx, callID, personaID, true)
}

func (b *Backend) RemoveFromCall(ctx context.Context, callID string, personaID persona.ID) error {
	return b.membership(ctx, callID, personaID, false)
}

// Members returns the personas of a simulated call, in no particular order.
func (b *Backend) Members(callID string) ([]persona.ID, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	members, ok := b.calls[callID]
	return lo.Keys(members), ok
}

func (b *Backend) membership(ctx context.Context, callID string, personaID persona.ID, join bool) error {
	if err := b.wait(ctx, b.memberDelay); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	members, ok := b.calls[callID]
	if !ok {
		return fmt.Errorf("%w: %s", pErrors.ErrCallNotFound, callID)
	}
	if join {
		members[personaID] = struct{}{}
	} else {
		delete(members, personaID)
	}
	b.log.Info("Simulated membership change", "call_id", callID, "persona", personaID, "join", join)
	return nil
}

func (b *Backend) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fail
}
