// Package integration contains end-to-end tests for the solana gateway.
//
// These tests start the server in-process on a free port and exercise the endpoints over HTTP
// (expected responses, envelope format, error handling, request limits and multi-step flows
// such as generate, sign then verify).
//
// These tests assume the crypto and ledger packages are working correctly (tested separately).
// If bugs are introduced in lower-level packages, there will be cascading failures here -
// fix the low-level problems first.
package integration
