// handlers implements the gateway endpoints.
//
// Each handler decodes the request body, validates the fields in order (the first invalid
// field is reported), calls a single routine from the ledger or crypto packages and writes
// the result with gateway.RespondWithData. Failures are returned with gateway.RespondWithError.
//
// The handlers hold no mutable state and are safe for concurrent use.
package handlers
