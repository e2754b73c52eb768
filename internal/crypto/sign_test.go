package crypto

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	messages := []string{"", "hello", "Send 1 SOL to the gateway", "ünïcødé ✓"}

	for _, msg := range messages {
		k, err := GenerateKeypair()
		if err != nil {
			t.Fatalf("failed to generate key pair: %v", err)
		}

		sig, err := Sign(k, []byte(msg))
		if err != nil {
			t.Fatalf("Sign(%q) error: %v", msg, err)
		}

		if !VerifyStrict(k.PublicKey, []byte(msg), sig) {
			t.Errorf("VerifyStrict(%q) = false, want true", msg)
		}

		decoded, err := DecodeSignature(EncodeSignature(sig))
		if err != nil {
			t.Fatalf("DecodeSignature() error: %v", err)
		}
		if decoded != sig {
			t.Error("signature did not survive base64 round trip")
		}
	}
}

// any single byte mutation of the message, signature or public key must fail verification
func TestVerifyStrictRejectsMutations(t *testing.T) {
	k, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}
	msg := []byte("transfer 1000 lamports")
	sig, err := Sign(k, msg)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	for i := range msg {
		mutated := append([]byte{}, msg...)
		mutated[i] ^= 0x01
		if VerifyStrict(k.PublicKey, mutated, sig) {
			t.Errorf("verification succeeded with message byte %d flipped", i)
		}
	}

	for i := range sig {
		mutated := sig
		mutated[i] ^= 0x01
		if VerifyStrict(k.PublicKey, msg, mutated) {
			t.Errorf("verification succeeded with signature byte %d flipped", i)
		}
	}

	for i := range k.PublicKey {
		mutated := k.PublicKey
		mutated[i] ^= 0x01
		if VerifyStrict(mutated, msg, sig) {
			t.Errorf("verification succeeded with public key byte %d flipped", i)
		}
	}
}

// the identity public key with R = identity and S = 0 verifies for every message under
// plain ed25519 verification; strict verification must reject it
func TestVerifyStrictRejectsSmallOrderKey(t *testing.T) {
	var identity solana.PublicKey
	identity[0] = 0x01

	var sig solana.Signature
	sig[0] = 0x01

	msg := []byte("any message at all")

	if !ed25519.Verify(ed25519.PublicKey(identity[:]), msg, sig[:]) {
		t.Skip("stdlib ed25519 rejects the small order forgery; nothing to compare against")
	}
	if VerifyStrict(identity, msg, sig) {
		t.Error("VerifyStrict accepted a signature from a small order public key")
	}
}

func TestDecodeSignatureErrors(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		wantCode ErrorCode
	}{
		{"not base64", "%%%not-base64%%%", ErrCodeEncoding},
		{"too short", base64.StdEncoding.EncodeToString(make([]byte, 63)), ErrCodeValidation},
		{"too long", base64.StdEncoding.EncodeToString(make([]byte, 65)), ErrCodeValidation},
		{"empty", "", ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSignature(tt.encoded)
			var cryptoErr *CryptoError
			if !errors.As(err, &cryptoErr) {
				t.Fatalf("expected CryptoError, got %v", err)
			}
			if cryptoErr.Code() != tt.wantCode {
				t.Errorf("Code() = %q, want %q", cryptoErr.Code(), tt.wantCode)
			}
		})
	}
}
