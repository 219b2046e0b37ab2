package model

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by use cases and gateways. Controllers map them to status codes.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("dependency unavailable")
	ErrBadRequest  = errors.New("bad request")
	ErrValidation  = errors.New("validation failed")
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error     string `json:"error" example:"Service Unavailable"`
	Detail    string `json:"detail,omitempty" example:"S3 bucket not configured"`
	Timestamp string `json:"timestamp,omitempty" example:"2025-01-01T00:00:00Z"`
}

// NotFoundResponse is returned for unknown routes.
type NotFoundResponse struct {
	Error              string   `json:"error" example:"Not Found"`
	Message            string   `json:"message" example:"The path /nope was not found"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// Error carries the client-facing detail of a failure. errors.Is matches both its kind
// (one of the sentinels above) and its cause.
type Error struct {
	Kind   error
	Detail string
	Cause  error
}

// NewError builds an Error whose detail is the formatted message.
func NewError(kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}
