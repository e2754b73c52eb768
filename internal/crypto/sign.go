package crypto

// sign.go contains the message signing and strict verification functions

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/gagliardetto/solana-go"
)

// Sign signs an arbitrary message with the key pair's private key
func Sign(k Keypair, message []byte) (solana.Signature, error) {
	signature, err := k.PrivateKey.Sign(message)
	if err != nil {
		return solana.Signature{}, WrapInternalError(err, "failed to sign message")
	}
	return signature, nil
}

// EncodeSignature returns the standard base64 encoding of a signature
func EncodeSignature(signature solana.Signature) string {
	return base64.StdEncoding.EncodeToString(signature[:])
}

// DecodeSignature decodes a standard base64 signature and checks it is 64 bytes
func DecodeSignature(encoded string) (solana.Signature, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return solana.Signature{}, WrapEncodingError(err, "signature is not valid base64")
	}

	if len(raw) != ed25519.SignatureSize {
		return solana.Signature{}, NewValidationError(
			fmt.Sprintf("signature must be %d bytes, got %d", ed25519.SignatureSize, len(raw)))
	}

	var signature solana.Signature
	copy(signature[:], raw)
	return signature, nil
}

// VerifyStrict reports whether signature is a valid signature of message by publicKey.
//
// In addition to the checks made by ed25519.Verify (canonical S, R recomputation)
// it rejects small order public keys and small order R values, so a signature cannot
// be valid for more than one key or message by construction.
// Public keys that are not curve points are never valid.
func VerifyStrict(publicKey solana.PublicKey, message []byte, signature solana.Signature) bool {
	if isSmallOrder(publicKey[:]) || isSmallOrder(signature[:32]) {
		return false
	}
	return signature.Verify(publicKey, message)
}

// isSmallOrder reports whether b is not a valid point encoding or encodes a point in
// the small order subgroup (8*P is the identity)
func isSmallOrder(b []byte) bool {
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return true
	}
	return new(edwards25519.Point).MultByCofactor(p).Equal(edwards25519.NewIdentityPoint()) == 1
}
