// gateway package holds the request/response types, the error taxonomy and the response
// helpers shared by the gateway endpoint handlers (see gateway/handlers).
//
// **envelope**
// every response written by the handlers is wrapped in the same JSON envelope:
//
//	{"success": true, "data": {...}}
//	{"success": false, "error": "Invalid mint pubkey"}
//
// **error handling**
// handlers return errors created with the constructors in errors.go. crypto errors are also
// accepted and mapped here. Use RespondWithError() to log the error and send the envelope;
// MapErrorToResponse() decides the HTTP status and the client message.
//
// All failures caused by caller input (invalid fields, builder rejections, simulated failures)
// are 400 Bad Request.
package gateway
