package services

import (
	"context"

	"partyline/domain/call"
	"partyline/domain/persona"
)

// LocalBackend lets the panel drive a call service living in the same process.
type LocalBackend struct {
	service ICallService
}

func NewLocalBackend(service ICallService) *LocalBackend {
	return &LocalBackend{service: service}
}

func (b *LocalBackend) CreateCall(ctx context.Context, url string, personas []persona.ID) (string, error) {
	c, err := b.service.CreateCall(ctx, call.CreateCallCommand{URL: url, Personas: personas})
	if err != nil {
		return "", err
	}
	return string(c.ID), nil
}

func (b *LocalBackend) AddToCall(ctx context.Context, callID string, personaID persona.ID) error {
	_, err := b.service.AddToCall(ctx, call.MembershipCommand{CallID: call.ID(callID), Persona: personaID})
	return err
}

func (b *LocalBackend) RemoveFromCall(ctx context.Context, callID string, personaID persona.ID) error {
	_, err := b.service.RemoveFromCall(ctx, call.MembershipCommand{CallID: call.ID(callID), Persona: personaID})
	return err
}
