package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/information-sharing-networks/solana-gateway/internal/crypto"
)

// parseOutput returns the "key: value" lines printed by the commands
func parseOutput(out string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if ok {
			values[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	return values
}

func TestGenerateSignVerify(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"generate", "--name", "alice", "--outputdir", dir, "--kid", "alice-1"})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	generated := parseOutput(out.String())
	if generated["pubkey"] == "" || generated["secret"] == "" {
		t.Fatalf("generate output missing key material: %q", out.String())
	}

	for _, name := range []string{"alice.private.jwk", "alice.public.jwk"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}

	// sign with the JWK file and check the result against the secret printed by generate
	out.Reset()
	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"sign", "--keyfile", filepath.Join(dir, "alice.private.jwk"), "--message", "hello"})
	if err := root.Execute(); err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	signed := parseOutput(out.String())
	if signed["pubkey"] != generated["pubkey"] {
		t.Errorf("sign pubkey: got %s, want %s", signed["pubkey"], generated["pubkey"])
	}

	kp, err := crypto.KeypairFromSecret(generated["secret"])
	if err != nil {
		t.Fatalf("generated secret does not decode: %v", err)
	}
	sig, _ := crypto.Sign(kp, []byte("hello"))
	if signed["signature"] != crypto.EncodeSignature(sig) {
		t.Error("signature from the JWK file differs from the signature using the secret")
	}

	out.Reset()
	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"verify", "--message", "hello", "--signature", signed["signature"], "--pubkey", generated["pubkey"]})
	if err := root.Execute(); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	root = newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"verify", "--message", "goodbye", "--signature", signed["signature"], "--pubkey", generated["pubkey"]})
	if err := root.Execute(); err == nil {
		t.Error("verify should fail for a different message")
	}
}

func TestGenerateWithoutOutputDir(t *testing.T) {
	var out bytes.Buffer
	if err := runGenerate(&out, "wallet", "", ""); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if strings.Contains(out.String(), "JWK") {
		t.Error("no JWK files should be written without an output directory")
	}
}

func TestSignRequiresKey(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"sign", "--message", "hello"})
	if err := root.Execute(); err == nil {
		t.Error("sign without --secret or --keyfile should fail")
	}
}
