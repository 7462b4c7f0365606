package strava

import "github.com/pkg/errors"

// ServiceError is the single error kind surfaced by the client. It is
// raised only when the transport call itself fails; HTTP-level failures
// such as 4xx and 5xx statuses are reported through the envelope instead.
type ServiceError struct {
	cause error
}

func newServiceError(cause error) *ServiceError {
	return &ServiceError{cause: errors.WithStack(cause)}
}

// Error reports the original transport failure, prefixed to show it
// crossed the client boundary.
func (e *ServiceError) Error() string {
	return "strava: request failed: " + e.cause.Error()
}

// Unwrap exposes the transport failure for errors.Is and errors.As.
func (e *ServiceError) Unwrap() error { return e.cause }

// Cause supports github.com/pkg/errors.Cause.
func (e *ServiceError) Cause() error { return e.cause }
