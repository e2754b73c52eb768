package gateway

// error_response.go maps lower level errors to the status code and message returned to the client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/information-sharing-networks/solana-gateway/internal/crypto"
	"github.com/information-sharing-networks/solana-gateway/internal/ledger"
	"github.com/information-sharing-networks/solana-gateway/internal/logger"
)

// ErrorResponse is the result of mapping an error at the HTTP boundary
type ErrorResponse struct {
	// StatusCode is the HTTP status sent to the client
	StatusCode int

	// Code is the gateway error code (logged, not sent)
	Code ErrorCode

	// Field is the offending request field, if known (logged, not sent)
	Field string

	// Message is the sanitized message placed in the envelope
	Message string
}

// Envelope returns the failure envelope for the response
func (e *ErrorResponse) Envelope() Envelope {
	return Envelope{Success: false, Error: e.Message}
}

// MapErrorToResponse maps gateway.Error, crypto.Error, ledger address errors or generic errors to an ErrorResponse.
//
// Errors caused by the request are 400. Errors that are not recognised are reported as 500 and logged as bugs.
func MapErrorToResponse(err error, r *http.Request) *ErrorResponse {
	var gatewayErr *GatewayError
	if errors.As(err, &gatewayErr) {
		return errorResponseFromGateway(gatewayErr)
	}

	var cryptoErr *crypto.CryptoError
	if errors.As(err, &cryptoErr) {
		return errorResponseFromCrypto(cryptoErr)
	}

	if errors.Is(err, ledger.ErrInvalidAddress) {
		return &ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       ErrCodeInvalidInput,
			Message:    "Invalid address",
		}
	}

	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Error("BUG: Unmapped error type in MapErrorToResponse",
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrCodeInternal,
		Message:    "Internal error",
	}
}

func errorResponseFromGateway(err *GatewayError) *ErrorResponse {
	var statusCode int

	switch err.Code() {
	case ErrCodeInvalidInput, ErrCodePrimitiveFailed, ErrCodeSimulatedFailure, ErrCodeMalformedRequest:
		statusCode = http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		statusCode = http.StatusTooManyRequests
	case ErrCodeRequestTooLarge:
		statusCode = http.StatusRequestEntityTooLarge
	case ErrCodeNotFound:
		statusCode = http.StatusNotFound
	case ErrCodeMethodNotAllowed:
		statusCode = http.StatusMethodNotAllowed
	default:
		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       ErrCodeInternal,
			Message:    "Internal error",
		}
	}

	return &ErrorResponse{
		StatusCode: statusCode,
		Code:       err.Code(),
		Field:      err.Field(),
		Message:    err.ClientMessage(),
	}
}

func errorResponseFromCrypto(err *crypto.CryptoError) *ErrorResponse {
	switch err.Code() {
	case crypto.ErrCodeValidation, crypto.ErrCodeEncoding, crypto.ErrCodeKeyManagement:
		return &ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       ErrCodeInvalidInput,
			Message:    err.Error(),
		}
	default:
		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       ErrCodeInternal,
			Message:    "Internal error",
		}
	}
}
