package handlers

import (
	"net/http"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/information-sharing-networks/solana-gateway/internal/crypto"
	"github.com/information-sharing-networks/solana-gateway/internal/gateway"
	"github.com/mr-tron/base58"
)

func TestHandleKeypair(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			w, env := doRequest(t, method, "/keypair", "")
			if w.Code != http.StatusOK {
				t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
			}

			var data gateway.KeypairResponse
			decodeData(t, env, &data)

			pub, err := solana.PublicKeyFromBase58(data.Pubkey)
			if err != nil {
				t.Fatalf("pubkey is not a valid address: %v", err)
			}

			raw, err := base58.Decode(data.Secret)
			if err != nil {
				t.Fatalf("secret is not base58: %v", err)
			}
			if len(raw) != 64 {
				t.Fatalf("secret length: got %d, want 64", len(raw))
			}

			kp, err := crypto.KeypairFromBytes(raw)
			if err != nil {
				t.Fatalf("secret is not a valid key pair: %v", err)
			}
			if !kp.PublicKey.Equals(pub) {
				t.Errorf("derived public key %s does not match pubkey %s", kp.PublicKey, pub)
			}
		})
	}
}

func TestHandleKeypairDistinct(t *testing.T) {
	_, env1 := doRequest(t, http.MethodPost, "/keypair", "")
	_, env2 := doRequest(t, http.MethodPost, "/keypair", "")

	var a, b gateway.KeypairResponse
	decodeData(t, env1, &a)
	decodeData(t, env2, &b)
	if a.Pubkey == b.Pubkey {
		t.Error("two key pairs should not share a public key")
	}
}

func TestHandleKeypairSimulatedFailure(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantFail bool
	}{
		{"fail_true", "?fail=true", true},
		{"fail_false", "?fail=false", false},
		{"fail_other", "?fail=1", false},
		{"other_param", "?x=true", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doRequest(t, http.MethodPost, "/keypair"+tt.query, "")
			if tt.wantFail {
				assertFailure(t, w, env, "Simulated failure via query param")
				return
			}
			if w.Code != http.StatusOK || !env.Success {
				t.Errorf("expected success, got %d %q", w.Code, env.Error)
			}
		})
	}
}
