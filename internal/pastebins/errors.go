package pastebins

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is returned when a caller asks for a service ID that was
// never registered in this run.
var ErrNotRegistered = errors.New("paste service not registered")

// Phase names the step of an upload exchange that failed.
type Phase string

const (
	PhaseSend Phase = "send" // building or sending the request
	PhaseRead Phase = "read" // reading the response body
)

// TransportError is a network-level failure talking to a service.
type TransportError struct {
	Service Meta
	Phase   Phase
	Err     error
}

func (e *TransportError) Error() string {
	switch e.Phase {
	case PhaseRead:
		return fmt.Sprintf("failed to read %s response: %v", e.Service.Domain, e.Err)
	default:
		return fmt.Sprintf("failed to send request to %s: %v", e.Service.Domain, e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is an error the remote service reported inside an otherwise
// successful exchange. Message is the service's literal text.
type APIError struct {
	Service Meta
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Service.ID, e.Message)
}

// IsTransport reports whether err is, or wraps, a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsAPI reports whether err is, or wraps, an *APIError.
func IsAPI(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
