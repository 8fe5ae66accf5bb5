package errors

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// grpcCodes lists the sentinels crossing the gRPC boundary. The status message
// carries the sentinel text so FromGRPCError can restore it on the client side.
var grpcCodes = []struct {
	err  error
	code codes.Code
}{
	{ErrCallNotFound, codes.NotFound},
	{ErrUnknownPersona, codes.InvalidArgument},
	{ErrInvalidCallRequest, codes.InvalidArgument},
	{ErrInvalidPayload, codes.InvalidArgument},
	{ErrUnsupportedContent, codes.FailedPrecondition},
	{ErrFetchFailed, codes.Unavailable},
}

// MapToGRPCError converts a service error into a gRPC status error.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, c := range grpcCodes {
		if errors.Is(err, c.err) {
			return status.Error(c.code, err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError restores the sentinel wrapped by MapToGRPCError, keeping the
// remote message for context.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, c := range grpcCodes {
		if st.Code() == c.code && strings.Contains(st.Message(), c.err.Error()) {
			return &remoteError{sentinel: c.err, message: st.Message()}
		}
	}
	return err
}

// HTTPStatus picks the response status for an error returned by the services.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrCallNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownPersona),
		errors.Is(err, ErrInvalidCallRequest),
		errors.Is(err, ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, ErrCallInProgress),
		errors.Is(err, ErrNoActiveCall),
		errors.Is(err, ErrRequestInFlight):
		return http.StatusConflict
	case errors.Is(err, ErrUnsupportedContent):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrFetchFailed),
		errors.Is(err, ErrBackendRequestFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type remoteError struct {
	sentinel error
	message  string
}

func (e *remoteError) Error() string { return e.message }

func (e *remoteError) Unwrap() error { return e.sentinel }
