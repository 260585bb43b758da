package rsvpapi

import "fmt"

// APIError is returned when the server answered with a non-2xx status.
// Detail is the server's "detail" message, empty when it sent none.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("rsvp api returned status: %d", e.Status)
	}
	return fmt.Sprintf("rsvp api returned status: %d: %s", e.Status, e.Detail)
}

// NetworkError is returned when the request could not complete (connection,
// DNS, timeout or cancellation).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "rsvp api unreachable: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when the server answered but the body is not JSON,
// e.g. a proxy or captive portal page. Nothing can be concluded about the
// confirmation, so callers treat it like a NetworkError.
type DecodeError struct {
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("rsvp api returned a non-JSON body (status %d): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
