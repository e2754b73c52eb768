// crypto package provides the key and signature primitives used by the gateway:
// ed25519 key pair generation, base58 secret key decoding, message signing and
// strict signature verification.
//
// Keys are Solana key pairs (solana-go types): a 64 byte secret made of the 32 byte seed
// followed by the 32 byte public key, encoded as base58 text.
//
// The JWK functions are used by the keygen CLI to export key pairs for other tooling.
package crypto
