package crypto

import (
	"os"
	"path/filepath"
	"testing"
)

// save a key pair to JWK files, read the private key back and compare
func TestSaveAndReadKeypairJWK(t *testing.T) {
	k, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}

	tmpDir := t.TempDir()

	if err := SaveKeypairToJWKFiles(k, "test-key", tmpDir, "wallet.private.jwk", "wallet.public.jwk"); err != nil {
		t.Fatalf("failed to save key pair: %v", err)
	}

	loaded, err := ReadKeypairFromJWKFile(tmpDir, "wallet.private.jwk")
	if err != nil {
		t.Fatalf("failed to load key pair: %v", err)
	}

	if !loaded.PublicKey.Equals(k.PublicKey) {
		t.Errorf("loaded public key %s, want %s", loaded.PublicKey, k.PublicKey)
	}
	if loaded.Secret() != k.Secret() {
		t.Error("loaded secret does not match original")
	}

	// Verify file permissions
	info, err := os.Stat(filepath.Join(tmpDir, "wallet.private.jwk"))
	if err != nil {
		t.Fatalf("failed to stat private key file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("private key file permissions = %v, want 0600", info.Mode().Perm())
	}

	// the public file holds no private key
	if _, err := ReadKeypairFromJWKFile(tmpDir, "wallet.public.jwk"); err == nil {
		t.Error("expected error reading a key pair from the public JWK file")
	}
}

func TestEd25519JWKRequiresKeyID(t *testing.T) {
	k, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}
	if _, err := Ed25519PublicKeyToJWK(k.PublicKey[:], ""); err == nil {
		t.Error("expected error for empty key ID")
	}
	if _, err := Ed25519PrivateKeyToJWK(nil, "kid"); err == nil {
		t.Error("expected error for nil private key")
	}
}
