package buildstock

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the building-stock client.
var (
	// ErrMissingCredentials indicates a privileged endpoint was called on a
	// client created without username and password. Raised before any
	// network request is made.
	ErrMissingCredentials = errors.New("this endpoint is private: provide username and password when creating the client")

	// ErrInvalidArgument indicates a locally detectable invalid parameter
	// combination. Raised before any network request is made.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCredentials indicates the token endpoint rejected the
	// provided username and password.
	ErrInvalidCredentials = errors.New("could not retrieve API token: the provided username and password are probably incorrect")

	// ErrUnauthorized indicates the service rejected the request with 403.
	ErrUnauthorized = errors.New("not authorized to perform this operation: check username and password")
)

// ClientError represents a 4xx response other than 403.
type ClientError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *ClientError) Error() string {
	return fmt.Sprintf("client error: status %d: %s", e.StatusCode, e.Body)
}

// ServerError represents a 5xx response, a transport-level failure, or any
// other unexpected condition. It is the catch-all for everything the client
// cannot attribute to the caller.
type ServerError struct {
	StatusCode int // zero when no response was received
	Err        error
}

// Error implements the error interface
func (e *ServerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected error, please contact the administrator: %v", e.Err)
	}
	return fmt.Sprintf("unexpected error, please contact the administrator: status %d", e.StatusCode)
}

// Unwrap returns the underlying transport error, if any
func (e *ServerError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a successful response carried a body the client
// could not map onto the expected record type. Distinct from the four
// request-failure kinds above.
type DecodeError struct {
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

// Unwrap returns the underlying decoding error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// classifyStatus maps a non-success HTTP status onto the error taxonomy.
// Every call site that performs a request funnels failures through this
// single decision: 403 is an authorization failure, any other 4xx is the
// caller's fault, everything else is the server's.
func classifyStatus(statusCode int, body []byte) error {
	switch {
	case statusCode == http.StatusForbidden:
		return ErrUnauthorized
	case statusCode >= 400 && statusCode <= 499:
		return &ClientError{StatusCode: statusCode, Body: string(body)}
	default:
		return &ServerError{StatusCode: statusCode}
	}
}
