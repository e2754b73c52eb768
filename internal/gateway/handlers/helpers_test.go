package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

const (
	testMint      = "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU"
	testAuthority = "5Hd2yyhrWZ3iXrLKYGpCh3aHyhoGLZXGQeVSUH8K5zGr"
	testOwner     = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	zeroAddress   = "11111111111111111111111111111111"
)

// testEnvelope is the decoded response body
type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/keypair", HandleKeypair)
	r.Post("/keypair", HandleKeypair)
	r.Post("/token/create", HandleCreateToken)
	r.Post("/token/mint", HandleMintToken)
	r.Post("/message/sign", HandleSignMessage)
	r.Post("/message/verify", HandleVerifyMessage)
	r.Post("/send/sol", HandleSendSol)
	r.Post("/send/token", NewSendTokenHandler(6).HandleSendToken)
	return r
}

// doRequest sends body to path and decodes the envelope
func doRequest(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	var env testEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return w, env
}

// decodeData decodes the data member of a success envelope into dst
func decodeData(t *testing.T, env testEnvelope, dst any) {
	t.Helper()

	if !env.Success {
		t.Fatalf("expected success, got error %q", env.Error)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}

// assertFailure checks for a 400 failure envelope with the expected message
func assertFailure(t *testing.T, w *httptest.ResponseRecorder, env testEnvelope, wantError string) {
	t.Helper()

	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
	}
	if env.Success {
		t.Error("expected success=false")
	}
	if env.Error != wantError {
		t.Errorf("error: got %q, want %q", env.Error, wantError)
	}
	if len(env.Data) != 0 {
		t.Errorf("data should be omitted on failure, got %s", env.Data)
	}
}
