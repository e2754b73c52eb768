// JWK (JSON Web Key) export for Solana key pairs
//
// these functions convert ed25519 keys to JWK format (and back) so key pairs generated by
// the keygen CLI can be used by tooling that does not understand base58 secrets.
// Reference: https://datatracker.ietf.org/doc/html/rfc8037 (OKP keys in JWK)

package crypto

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

// Ed25519PublicKeyToJWK converts an Ed25519 public key to JWK format
func Ed25519PublicKeyToJWK(publicKey ed25519.PublicKey, keyID string) (jwk.Key, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("public key is nil")
	}
	return toJWK(publicKey, keyID)
}

// Ed25519PrivateKeyToJWK converts an Ed25519 private key to JWK format
func Ed25519PrivateKeyToJWK(privateKey ed25519.PrivateKey, keyID string) (jwk.Key, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key is nil")
	}
	return toJWK(privateKey, keyID)
}

func toJWK(raw any, keyID string) (jwk.Key, error) {
	if keyID == "" {
		return nil, fmt.Errorf("keyID is required")
	}

	key, err := jwk.Import(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWK from Ed25519 key: %w", err)
	}

	// Set key ID
	if err := key.Set(jwk.KeyIDKey, keyID); err != nil {
		return nil, fmt.Errorf("failed to set key ID: %w", err)
	}

	// Set algorithm
	if err := key.Set(jwk.AlgorithmKey, jwa.EdDSA()); err != nil {
		return nil, fmt.Errorf("failed to set algorithm: %w", err)
	}

	// Set key usage
	if err := key.Set(jwk.KeyUsageKey, jwk.ForSignature); err != nil {
		return nil, fmt.Errorf("failed to set key usage: %w", err)
	}

	return key, nil
}

// SaveKeypairToJWKFiles writes the key pair as two single key JWK sets:
// privateFilename (mode 0600) and publicFilename (mode 0644).
// note the private key is not encrypted
//
// Parameters:
//   - baseDir: The base directory to scope file access (e.g., "./keys")
//   - privateFilename, publicFilename: filenames within the base directory
func SaveKeypairToJWKFiles(k Keypair, keyID, baseDir, privateFilename, publicFilename string) error {
	privateJWK, err := Ed25519PrivateKeyToJWK(ed25519.PrivateKey(k.PrivateKey), keyID)
	if err != nil {
		return WrapKeyManagementError(err, "failed to create private JWK")
	}
	publicJWK, err := Ed25519PublicKeyToJWK(ed25519.PublicKey(k.PublicKey[:]), keyID)
	if err != nil {
		return WrapKeyManagementError(err, "failed to create public JWK")
	}

	root, err := os.OpenRoot(baseDir)
	if err != nil {
		return fmt.Errorf("failed to open root directory %s: %w", baseDir, err)
	}
	defer root.Close()

	if err := writeJWKSet(root, privateFilename, privateJWK, 0600); err != nil {
		return err
	}
	return writeJWKSet(root, publicFilename, publicJWK, 0644)
}

func writeJWKSet(root *os.Root, filename string, key jwk.Key, perm os.FileMode) error {
	jwkSet := jwk.NewSet()
	if err := jwkSet.AddKey(key); err != nil {
		return fmt.Errorf("failed to add key to JWK set: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(jwkSet, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JWK set: %w", err)
	}

	if err := root.WriteFile(filename, jsonBytes, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadKeypairFromJWKFile loads a key pair from a private JWK set written by SaveKeypairToJWKFiles
//
// Parameters:
//   - baseDir: The base directory to scope file access (e.g., "./keys")
//   - filename: The filename within the base directory (e.g., "wallet.private.jwk")
func ReadKeypairFromJWKFile(baseDir, filename string) (Keypair, error) {
	root, err := os.OpenRoot(baseDir)
	if err != nil {
		return Keypair{}, fmt.Errorf("failed to open root directory %s: %w", baseDir, err)
	}
	defer root.Close()

	jsonBytes, err := root.ReadFile(filename)
	if err != nil {
		return Keypair{}, fmt.Errorf("failed to read file: %w", err)
	}

	jwkSet, err := jwk.Parse(jsonBytes)
	if err != nil {
		return Keypair{}, WrapKeyManagementError(err, "failed to parse JWK set")
	}

	if jwkSet.Len() == 0 {
		return Keypair{}, NewKeyManagementError("JWK set is empty")
	}

	jwkKey, ok := jwkSet.Key(0)
	if !ok {
		return Keypair{}, NewKeyManagementError("failed to get key from JWK set")
	}

	var raw any
	if err := jwk.Export(jwkKey, &raw); err != nil {
		return Keypair{}, WrapKeyManagementError(err, "failed to export key")
	}

	privateKey, ok := raw.(ed25519.PrivateKey)
	if !ok {
		return Keypair{}, NewKeyManagementError("key is not an Ed25519 private key")
	}

	return KeypairFromBytes(privateKey)
}
