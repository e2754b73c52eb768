// handlers provides general infrastructure HTTP handlers
// (health, version, docs etc)
//
// the gateway endpoints are in internal/gateway/handlers.
package handlers
