// Package callapi describes the partyline.v1.CallService gRPC service. Requests
// and responses travel as google.protobuf.Struct so that no generated code is
// needed on either side.
package callapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "partyline.v1.CallService"

const (
	MethodCreateCall     = "CreateCall"
	MethodAddToCall      = "AddToCall"
	MethodRemoveFromCall = "RemoveFromCall"
	MethodGetCall        = "GetCall"
	MethodListCalls      = "ListCalls"
)

type CallServiceServer interface {
	CreateCall(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	AddToCall(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RemoveFromCall(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetCall(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListCalls(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(srv CallServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CallServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodCreateCall, Handler: handler(MethodCreateCall, CallServiceServer.CreateCall)},
		{MethodName: MethodAddToCall, Handler: handler(MethodAddToCall, CallServiceServer.AddToCall)},
		{MethodName: MethodRemoveFromCall, Handler: handler(MethodRemoveFromCall, CallServiceServer.RemoveFromCall)},
		{MethodName: MethodGetCall, Handler: handler(MethodGetCall, CallServiceServer.GetCall)},
		{MethodName: MethodListCalls, Handler: handler(MethodListCalls, CallServiceServer.ListCalls)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "partyline/v1/call_service.proto",
}

func RegisterCallServiceServer(s grpc.ServiceRegistrar, srv CallServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// FullMethod returns "/partyline.v1.CallService/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func handler(method string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CallServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
		next := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CallServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, next)
	}
}

// Client is the thin stub over a connection, the hand-written counterpart of a
// generated client.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
