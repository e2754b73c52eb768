package gateway

// responses.go provides helper functions for sending HTTP responses from the gateway handlers.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/information-sharing-networks/solana-gateway/internal/logger"
)

// Envelope wraps every response body.
//
// Data is omitted on failure and Error is omitted on success.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondWithData sends a success envelope containing data
func RespondWithData(w http.ResponseWriter, statusCode int, data any) {
	RespondWithJSONPayload(w, statusCode, Envelope{Success: true, Data: data})
}

// RespondWithError sends a failure envelope for err.
//
// It logs the full error details server-side and sends the sanitized message to the client.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse := MapErrorToResponse(err, r)

	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Warn("Request failed",
		slog.String("error", err.Error()),
		slog.Int("status_code", errorResponse.StatusCode),
		slog.String("error_code", string(errorResponse.Code)),
		slog.String("field", errorResponse.Field),
	)

	RespondWithJSONPayload(w, errorResponse.StatusCode, errorResponse.Envelope())
}

// RespondWithJSONPayload sends a JSON response with the given status code
func RespondWithJSONPayload(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			// headers are already written so there is nothing else to send
			slog.Error("Failed to encode JSON response",
				slog.String("error", err.Error()),
			)
		}
	}
}

// DecodeRequestBody decodes the JSON request body into dst.
//
// An empty or malformed body (including numbers that do not fit the target type) returns
// a malformed request error. Bodies rejected by the size limit middleware return a request
// too large error.
func DecodeRequestBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return NewRequestTooLargeError("Request body too large")
		}
		return WrapMalformedRequestError(err, "Invalid request body")
	}
	return nil
}
