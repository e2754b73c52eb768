package gateway

// errors.go defines the error codes used by the gateway API

import "fmt"

// GatewayError represents a structured error from the gateway handlers.
type GatewayError struct {
	// code is the gateway error code
	code ErrorCode

	// field is the request field that failed validation (invalid_input only)
	field string

	// message is the human-readable message returned to the client
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *GatewayError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *GatewayError) Code() ErrorCode { return e.code }
func (e *GatewayError) Field() string   { return e.field }
func (e *GatewayError) Unwrap() error   { return e.wrapped }

// ClientMessage is the text sent to the client in the error envelope.
//
// Primitive failures include the underlying builder error; for all other codes the
// wrapped error is only logged.
func (e *GatewayError) ClientMessage() string {
	if e.code == ErrCodePrimitiveFailed {
		return e.Error()
	}
	return e.message
}

type ErrorCode string

const (
	// ErrCodeInvalidInput is used when a request field fails to decode or validate
	ErrCodeInvalidInput ErrorCode = "invalid_input"

	// ErrCodePrimitiveFailed is used when the instruction builder or signer rejects otherwise well formed input
	ErrCodePrimitiveFailed ErrorCode = "primitive_failed"

	// ErrCodeSimulatedFailure is used by the fail=true test override on /keypair
	ErrCodeSimulatedFailure ErrorCode = "simulated_failure"

	// ErrCodeMalformedRequest is used when the request body is not valid JSON for the endpoint
	ErrCodeMalformedRequest ErrorCode = "malformed_request"

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded ErrorCode = "rate_limit_exceeded"

	// ErrCodeRequestTooLarge is used when the request body is too large
	// - this is only used in the middleware
	ErrCodeRequestTooLarge ErrorCode = "request_too_large"

	// ErrCodeNotFound and ErrCodeMethodNotAllowed are used by the router fallbacks
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeMethodNotAllowed ErrorCode = "method_not_allowed"

	// ErrCodeInternal is used when an unexpected server side error occurs
	ErrCodeInternal ErrorCode = "internal"
)

// NewInvalidInputError creates an error for a request field that failed validation.
//
// The returned error will have code ErrCodeInvalidInput.
func NewInvalidInputError(field, msg string) error {
	return &GatewayError{code: ErrCodeInvalidInput, field: field, message: msg}
}

// WrapInvalidInputError wraps the decode error for a request field.
// The wrapped error is logged but not returned to the client.
//
// The returned error will have code ErrCodeInvalidInput.
func WrapInvalidInputError(err error, field, msg string) error {
	return &GatewayError{code: ErrCodeInvalidInput, field: field, message: msg, wrapped: err}
}

// WrapPrimitiveError wraps an error reported by the ledger SDK while building or signing.
// The client message is "msg: err".
//
// The returned error will have code ErrCodePrimitiveFailed.
func WrapPrimitiveError(err error, msg string) error {
	return &GatewayError{code: ErrCodePrimitiveFailed, message: msg, wrapped: err}
}

// NewSimulatedFailureError creates the error returned when a caller asks for a simulated failure.
//
// The returned error will have code ErrCodeSimulatedFailure.
func NewSimulatedFailureError(msg string) error {
	return &GatewayError{code: ErrCodeSimulatedFailure, message: msg}
}

// WrapMalformedRequestError wraps a JSON decoding error.
//
// The returned error will have code ErrCodeMalformedRequest.
func WrapMalformedRequestError(err error, msg string) error {
	return &GatewayError{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewRateLimitError creates a rate limit exceeded error.
// Use this when the client has exceeded the rate limit.
//
// The returned error will have code ErrCodeRateLimitExceeded.
func NewRateLimitError(msg string) error {
	return &GatewayError{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewRequestTooLargeError creates a request too large error.
// Use this when the request body exceeds the maximum allowed size.
//
// The returned error will have code ErrCodeRequestTooLarge.
func NewRequestTooLargeError(msg string) error {
	return &GatewayError{code: ErrCodeRequestTooLarge, message: msg}
}

func NewNotFoundError(msg string) error {
	return &GatewayError{code: ErrCodeNotFound, message: msg}
}

func NewMethodNotAllowedError(msg string) error {
	return &GatewayError{code: ErrCodeMethodNotAllowed, message: msg}
}

// WrapInternalError wraps an existing error as an internal error.
// Use this for failures that should not normally occur.
//
// The returned error will have code ErrCodeInternal.
func WrapInternalError(err error, msg string) error {
	return &GatewayError{code: ErrCodeInternal, message: msg, wrapped: err}
}
