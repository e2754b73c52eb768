// Package ledger wraps the solana-go SDK calls used by the gateway: address parsing,
// the system and SPL token instruction builders and associated token account derivation.
//
// Builders return an Instruction snapshot (program id, ordered account references and
// the serialized instruction data) so callers never deal with the SDK's builder types.
// All functions are pure: identical inputs produce identical instructions.
package ledger
