package crypto

import (
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// generate a key pair, encode it as text and decode it again
func TestGenerateKeypairRoundTrip(t *testing.T) {
	k, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}

	pub, err := base58.Decode(k.Address())
	if err != nil {
		t.Fatalf("address is not base58: %v", err)
	}
	if len(pub) != ed25519.PublicKeySize {
		t.Errorf("address decodes to %d bytes, want %d", len(pub), ed25519.PublicKeySize)
	}

	secret, err := base58.Decode(k.Secret())
	if err != nil {
		t.Fatalf("secret is not base58: %v", err)
	}
	if len(secret) != ed25519.PrivateKeySize {
		t.Errorf("secret decodes to %d bytes, want %d", len(secret), ed25519.PrivateKeySize)
	}

	decoded, err := KeypairFromSecret(k.Secret())
	if err != nil {
		t.Fatalf("failed to decode secret: %v", err)
	}
	if !decoded.PublicKey.Equals(k.PublicKey) {
		t.Errorf("derived public key %s, want %s", decoded.PublicKey, k.PublicKey)
	}

	parsed, err := solana.PublicKeyFromBase58(k.Address())
	if err != nil {
		t.Fatalf("address rejected by solana-go: %v", err)
	}
	if !parsed.Equals(k.PublicKey) {
		t.Error("parsed address does not match generated public key")
	}
}

func TestKeypairFromSecretErrors(t *testing.T) {
	k, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}

	// secret with the public key half replaced by another key's public key
	other, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}
	mismatched := make([]byte, 64)
	copy(mismatched, k.PrivateKey[:32])
	copy(mismatched[32:], other.PublicKey[:])

	tests := []struct {
		name     string
		secret   string
		wantCode ErrorCode
	}{
		{"empty", "", ErrCodeEncoding},
		{"not base58", "0OIl+/", ErrCodeEncoding},
		{"too short", base58.Encode(k.PrivateKey[:32]), ErrCodeKeyManagement},
		{"too long", base58.Encode(append(append([]byte{}, k.PrivateKey...), 0)), ErrCodeKeyManagement},
		{"public key mismatch", base58.Encode(mismatched), ErrCodeKeyManagement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KeypairFromSecret(tt.secret)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var cryptoErr *CryptoError
			if !errors.As(err, &cryptoErr) {
				t.Fatalf("error is not a CryptoError: %v", err)
			}
			if cryptoErr.Code() != tt.wantCode {
				t.Errorf("Code() = %q, want %q", cryptoErr.Code(), tt.wantCode)
			}
		})
	}
}

// the decoded key pair must not alias the caller's buffer
func TestKeypairFromBytesCopies(t *testing.T) {
	k, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}
	raw := append([]byte{}, k.PrivateKey...)

	decoded, err := KeypairFromBytes(raw)
	if err != nil {
		t.Fatalf("KeypairFromBytes() error: %v", err)
	}
	raw[0] ^= 0xff

	if decoded.PrivateKey[0] == raw[0] {
		t.Error("decoded private key shares memory with the input")
	}
}
