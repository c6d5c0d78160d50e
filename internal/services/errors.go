package services

import "fmt"

// ValidationError reports a malformed or missing inbound field, before any
// side effect has happened.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// TransportError means the upstream webhook could not be reached at all
// (DNS, connection, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("webhook unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError means the webhook answered with a non-success status or an
// unusable body.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("webhook returned %d: %s", e.Status, e.Body)
}
