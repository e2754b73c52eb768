// this file contains functions to generate and decode Solana key pairs
//
// A Solana secret key is 64 bytes: the ed25519 seed followed by the public key.
// Secrets and public keys are exchanged as base58 text.

package crypto

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// Keypair is a Solana ed25519 key pair
type Keypair struct {
	PublicKey  solana.PublicKey
	PrivateKey solana.PrivateKey
}

// Secret returns the base58 encoding of the 64 byte secret key
func (k Keypair) Secret() string {
	return base58.Encode(k.PrivateKey)
}

// Address returns the base58 encoded public key
func (k Keypair) Address() string {
	return k.PublicKey.String()
}

// GenerateKeypair creates a new random key pair
func GenerateKeypair() (Keypair, error) {
	privateKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return Keypair{}, WrapInternalError(err, "failed to generate key pair")
	}

	return Keypair{
		PublicKey:  privateKey.PublicKey(),
		PrivateKey: privateKey,
	}, nil
}

// KeypairFromSecret decodes a base58 encoded 64 byte secret key.
//
// Returns an ErrCodeEncoding error when the text is not base58 and an
// ErrCodeKeyManagement error when the bytes are not a consistent key pair
// (wrong length, or trailing public key not derived from the seed).
func KeypairFromSecret(secret string) (Keypair, error) {
	raw, err := base58.Decode(secret)
	if err != nil {
		return Keypair{}, WrapEncodingError(err, "secret key is not valid base58")
	}

	return KeypairFromBytes(raw)
}

// KeypairFromBytes validates a raw 64 byte secret key
func KeypairFromBytes(raw []byte) (Keypair, error) {
	if len(raw) != ed25519.PrivateKeySize {
		return Keypair{}, NewKeyManagementError(
			fmt.Sprintf("secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(raw)))
	}

	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return Keypair{}, NewKeyManagementError("public key does not match secret key seed")
	}

	privateKey := make(solana.PrivateKey, ed25519.PrivateKeySize)
	copy(privateKey, raw)

	return Keypair{
		PublicKey:  privateKey.PublicKey(),
		PrivateKey: privateKey,
	}, nil
}
