// Package server provides the HTTP server for the solana gateway.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// The router serves
//   - the gateway endpoints (see internal/gateway/handlers)
//   - common infrastructure handlers (health, version, metrics, docs)
//
// Unknown routes and unsupported methods get the same JSON envelope as the gateway endpoints.
//
// middleware is in internal/server/middleware
package server
