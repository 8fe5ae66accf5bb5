package errors

import "fmt"

var (
	ErrWorkerPanic   = fmt.Errorf("worker panic")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Panel
	ErrUnknownPersona       = fmt.Errorf("unknown persona")
	ErrInvalidCallRequest   = fmt.Errorf("a call needs a url and at least one persona")
	ErrCallInProgress       = fmt.Errorf("a call is already active or being created")
	ErrNoActiveCall         = fmt.Errorf("no active call")
	ErrRequestInFlight      = fmt.Errorf("a request for this persona is already in flight")
	ErrBackendRequestFailed = fmt.Errorf("backend request failed")

	// Backend
	ErrCallNotFound       = fmt.Errorf("invalid call ID")
	ErrFetchFailed        = fmt.Errorf("failed to fetch page")
	ErrUnsupportedContent = fmt.Errorf("unsupported content type")
	ErrSummaryFailed      = fmt.Errorf("failed to summarize content")
	ErrInvalidPayload     = fmt.Errorf("invalid payload")
)
