package client

import (
	"context"
	"time"

	"partyline/domain/call"
	"partyline/domain/persona"
	"partyline/errors"
	"partyline/infrastructure/grpc/callapi"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// CallClient is the panel's backend when the call service runs elsewhere.
// Each request gets its own timeout on top of the caller's context.
type CallClient struct {
	api     *callapi.Client
	timeout time.Duration
}

func NewCallClient(conn grpc.ClientConnInterface, timeout time.Duration) *CallClient {
	return &CallClient{api: callapi.NewClient(conn), timeout: timeout}
}

func (c *CallClient) CreateCall(ctx context.Context, url string, personas []persona.ID) (string, error) {
	created, err := c.invoke(ctx, callapi.MethodCreateCall,
		callapi.CreateCallRequest(call.CreateCallCommand{URL: url, Personas: personas}))
	if err != nil {
		return "", err
	}
	return string(created.ID), nil
}

func (c *CallClient) AddToCall(ctx context.Context, callID string, personaID persona.ID) error {
	_, err := c.invoke(ctx, callapi.MethodAddToCall,
		callapi.MembershipRequest(call.MembershipCommand{CallID: call.ID(callID), Persona: personaID}))
	return err
}

func (c *CallClient) RemoveFromCall(ctx context.Context, callID string, personaID persona.ID) error {
	_, err := c.invoke(ctx, callapi.MethodRemoveFromCall,
		callapi.MembershipRequest(call.MembershipCommand{CallID: call.ID(callID), Persona: personaID}))
	return err
}

func (c *CallClient) GetCall(ctx context.Context, id call.ID) (call.Call, error) {
	return c.invoke(ctx, callapi.MethodGetCall, callapi.GetCallRequest(id))
}

func (c *CallClient) ListCalls(ctx context.Context, limit int) ([]call.Call, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	out, err := c.api.Invoke(ctx, callapi.MethodListCalls, callapi.ListCallsRequest(limit))
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return callapi.DecodeCalls(out)
}

func (c *CallClient) invoke(ctx context.Context, method string, in *structpb.Struct) (call.Call, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	out, err := c.api.Invoke(ctx, method, in)
	if err != nil {
		return call.Call{}, errors.FromGRPCError(err)
	}
	return callapi.DecodeCall(out)
}

func (c *CallClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
