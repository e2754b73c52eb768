//go:build integration

package integration

// Test environment setup and server lifecycle management.
//
// The integration tests start the solana-gateway HTTP server in-process and run tests against it.
// Configuration is loaded from environment variables the same way as the real binary.
//
// By default the server logs are not included in the test output, you can enable them with:
//
//	ENABLE_SERVER_LOGS=true go test -tags=integration -v ./test/integration
//

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/information-sharing-networks/solana-gateway/internal/config"
	"github.com/information-sharing-networks/solana-gateway/internal/logger"
	"github.com/information-sharing-networks/solana-gateway/internal/server"
)

// testEnv provides access to the running server for integration tests
type testEnv struct {
	baseURL  string
	cfg      *config.ServerEnvironment
	shutdown func()
}

// startInProcessServer starts the solana-gateway in-process for testing.
// extraEnv overrides the default test settings (e.g. RATE_LIMIT_RPS).
func startInProcessServer(t *testing.T, extraEnv map[string]string) *testEnv {
	t.Helper()

	testEnv := &testEnv{}

	t.Log("Starting in-process server...")

	var (
		host     = "localhost"
		port     = findFreePort(t)
		logLevel = "error"
	)

	enableServerLogs := os.Getenv("ENABLE_SERVER_LOGS") == "true"
	if enableServerLogs {
		logLevel = "debug"
	}

	testEnvVars := map[string]string{
		"HOST":                  host,
		"PORT":                  fmt.Sprintf("%d", port),
		"ENVIRONMENT":           "test",
		"LOG_LEVEL":             logLevel,
		"RATE_LIMIT_RPS":        "0",
		"MAX_REQUEST_BODY_SIZE": "4096",
	}
	for key, value := range extraEnv {
		testEnvVars[key] = value
	}

	// t.Setenv restores the original values when the test completes
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	cfg, err := config.NewServerConfig()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	serverInstance, err := server.NewServer(cfg, appLogger)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := serverInstance.Start(serverCtx); err != nil {
			serverDone <- err
		}
	}()

	testEnv.shutdown = func() {
		t.Log("Stopping server...")

		serverCancel()

		select {
		case err := <-serverDone:
			if err != nil {
				t.Logf("❌ Server shutdown with error: %v", err)
			} else {
				t.Log("✅ Server shut down gracefully")
			}
		case <-time.After(5 * time.Second):
			t.Log("⚠️ Server shutdown timeout")
		}
	}
	t.Cleanup(testEnv.shutdown)

	testEnv.baseURL = fmt.Sprintf("http://%s:%d", host, port)
	testEnv.cfg = cfg

	if !waitForServer(t, testEnv.baseURL+"/health", 10*time.Second) {
		t.Fatal("Server failed to start within timeout")
	}

	t.Logf("✅ Server started at %s", testEnv.baseURL)
	return testEnv
}

func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	defer listener.Close()

	addr := listener.Addr().(*net.TCPAddr)
	return addr.Port
}

func waitForServer(t *testing.T, url string, timeout time.Duration) bool {
	t.Helper()

	client := &http.Client{Timeout: 1 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}
