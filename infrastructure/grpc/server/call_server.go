package server

import (
	"context"
	"log/slog"

	"partyline/errors"
	"partyline/infrastructure/grpc/callapi"
	"partyline/services"

	"google.golang.org/protobuf/types/known/structpb"
)

const defaultListLimit = 50

// CallServer exposes the call service over gRPC. Service errors are mapped to
// status codes; the sentinel text travels in the status message.
type CallServer struct {
	log         *slog.Logger
	callService services.ICallService
}

func NewCallServer(log *slog.Logger, callService services.ICallService) *CallServer {
	return &CallServer{log: log, callService: callService}
}

func (s *CallServer) CreateCall(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c, err := s.callService.CreateCall(ctx, callapi.ParseCreateCallRequest(req))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return callapi.EncodeCall(c), nil
}

func (s *CallServer) AddToCall(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c, err := s.callService.AddToCall(ctx, callapi.ParseMembershipRequest(req))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return callapi.EncodeCall(c), nil
}

func (s *CallServer) RemoveFromCall(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c, err := s.callService.RemoveFromCall(ctx, callapi.ParseMembershipRequest(req))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return callapi.EncodeCall(c), nil
}

func (s *CallServer) GetCall(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c, err := s.callService.GetCall(ctx, callapi.ParseGetCallRequest(req))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return callapi.EncodeCall(c), nil
}

func (s *CallServer) ListCalls(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	limit := callapi.ParseListCallsRequest(req)
	if limit <= 0 {
		limit = defaultListLimit
	}
	calls, err := s.callService.ListCalls(ctx, limit)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	s.log.Debug("Calls listed", "count", len(calls), "limit", limit)
	return callapi.EncodeCalls(calls), nil
}
