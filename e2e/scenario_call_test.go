package e2e

import (
	"context"
	"testing"

	"partyline/domain/call"
	"partyline/domain/persona"
	pErrors "partyline/errors"
	"partyline/infrastructure/grpc/callapi"
	"partyline/infrastructure/grpc/client"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type testCallSuite struct {
	BaseGrpcSuite
}

func TestCallSuite(t *testing.T) {
	suite.Run(t, &testCallSuite{})
}

func (s *testCallSuite) TestCallLifecycle() {
	var callID string

	s.WithCallService("Create call", func(ctx context.Context, calls *client.CallClient, _ *callapi.Client) {
		// Given a page and two personas
		id, err := calls.CreateCall(ctx, s.Config.PageURL, []persona.ID{persona.CoolDude, persona.Nerd})

		// Then the call is stored with both of them
		s.Require().NoError(err)
		s.Require().NotEmpty(id)
		callID = id

		c, err := calls.GetCall(ctx, call.ID(id))
		s.Require().NoError(err)
		s.Equal([]persona.ID{persona.CoolDude, persona.Nerd}, c.Personas)
		s.NotEmpty(c.Content)
	})

	s.WithCallService("Add then remove", func(ctx context.Context, calls *client.CallClient, _ *callapi.Client) {
		s.Require().NoError(calls.AddToCall(ctx, callID, persona.Chef))
		// Adding twice is accepted
		s.Require().NoError(calls.AddToCall(ctx, callID, persona.Chef))
		s.Require().NoError(calls.RemoveFromCall(ctx, callID, persona.Nerd))

		c, err := calls.GetCall(ctx, call.ID(callID))
		s.Require().NoError(err)
		s.Equal([]persona.ID{persona.CoolDude, persona.Chef}, c.Personas)
	})

	s.WithCallService("List", func(ctx context.Context, calls *client.CallClient, _ *callapi.Client) {
		list, err := calls.ListCalls(ctx, 10)
		s.Require().NoError(err)
		s.Contains(callIDs(list), call.ID(callID))
	})
}

func (s *testCallSuite) TestUnknownCall() {
	s.WithCallService("Unknown call", func(ctx context.Context, calls *client.CallClient, _ *callapi.Client) {
		err := calls.AddToCall(ctx, "call-missing", persona.Chef)
		s.ErrorIs(err, pErrors.ErrCallNotFound)
	})
}

func (s *testCallSuite) TestMalformedPayload() {
	s.WithCallService("Malformed payload", func(ctx context.Context, _ *client.CallClient, raw *callapi.Client) {
		// A create request without url nor personas
		_, err := raw.Invoke(ctx, callapi.MethodCreateCall, &structpb.Struct{})
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func callIDs(calls []call.Call) []call.ID {
	ids := make([]call.ID, len(calls))
	for i, c := range calls {
		ids[i] = c.ID
	}
	return ids
}
