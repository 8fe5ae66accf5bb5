package client

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"partyline/domain/call"
	"partyline/domain/persona"
	pErrors "partyline/errors"
	"partyline/infrastructure/grpc/callapi"
	"partyline/infrastructure/grpc/server"
	"partyline/mocks"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

// startServer serves a CallServer backed by the given service over an
// in-memory listener and returns a client connected to it.
func startServer(t *testing.T, service *mocks.MockICallService) *CallClient {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(log)))
	callapi.RegisterCallServiceServer(s, server.NewCallServer(log, service))
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewCallClient(conn, 2*time.Second)
}

func TestCallClient_Round_Trip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockICallService(ctrl)
	client := startServer(t, service)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	created := call.Call{ID: "call-1", URL: "https://x", Personas: []persona.ID{persona.Nerd}, Content: "hi", CreatedAt: at, UpdatedAt: at}

	// Given a service answering every method
	service.EXPECT().
		CreateCall(gomock.Any(), call.CreateCallCommand{URL: "https://x", Personas: []persona.ID{persona.Nerd}}).
		Return(created, nil)
	service.EXPECT().
		AddToCall(gomock.Any(), call.MembershipCommand{CallID: "call-1", Persona: persona.Chef}).
		Return(created, nil)
	service.EXPECT().
		RemoveFromCall(gomock.Any(), call.MembershipCommand{CallID: "call-1", Persona: persona.Nerd}).
		Return(created, nil)
	service.EXPECT().GetCall(gomock.Any(), call.ID("call-1")).Return(created, nil)
	service.EXPECT().ListCalls(gomock.Any(), 50).Return([]call.Call{created}, nil)

	// When going through the client
	id, err := client.CreateCall(ctx, "https://x", []persona.ID{persona.Nerd})
	req.NoError(err)
	req.Equal("call-1", id)
	req.NoError(client.AddToCall(ctx, "call-1", persona.Chef))
	req.NoError(client.RemoveFromCall(ctx, "call-1", persona.Nerd))

	// Then the payloads survive the trip
	got, err := client.GetCall(ctx, "call-1")
	req.NoError(err)
	req.Equal(created, got)
	calls, err := client.ListCalls(ctx, 0)
	req.NoError(err)
	req.Equal([]call.Call{created}, calls)
}

func TestCallClient_Restores_Sentinel_Errors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		description string
		serviceErr  error
		want        error
	}{
		{"Should restore call not found", fmt.Errorf("%w: call-9", pErrors.ErrCallNotFound), pErrors.ErrCallNotFound},
		{"Should restore unknown persona", fmt.Errorf("%w: ghost", pErrors.ErrUnknownPersona), pErrors.ErrUnknownPersona},
		{"Should restore fetch failure", fmt.Errorf("%w: status 500", pErrors.ErrFetchFailed), pErrors.ErrFetchFailed},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockICallService(ctrl)
			client := startServer(t, service)
			service.EXPECT().AddToCall(gomock.Any(), gomock.Any()).Return(call.Call{}, tt.serviceErr)

			err := client.AddToCall(ctx, "call-9", persona.Nerd)

			require.ErrorIs(t, err, tt.want)
		})
	}
}
