package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/solana-gateway/internal/config"
	"github.com/information-sharing-networks/solana-gateway/internal/logger"
	"github.com/information-sharing-networks/solana-gateway/internal/server"
	"github.com/information-sharing-networks/solana-gateway/internal/version"
)

//	@title			solana-gateway
//	@description	solana-gateway builds, signs and verifies Solana primitives and instruction payloads.
//	@description
//	@description	## Responses
//	@description	Every response is wrapped in an envelope:
//	@description	- `{"success": true, "data": {...}}`
//	@description	- `{"success": false, "error": "..."}` with status 400
//	@description
//	@description	## Common Error Responses
//	@description	All endpoints may return:
//	@description	- `404` Unknown route
//	@description	- `405` Method not supported by the route
//	@description	- `413` Request body exceeds size limit
//	@description	- `429` Rate limit exceeded
//	@description	- `500` Internal server error
//	@description
//	@description	## Request Limits
//	@description	- **Rate limiting**: per client address, default 100 rps with a burst of 200 (set RATE_LIMIT_RPS=0 to disable)
//	@description	- **Request size limits**: default 64KB, see the X-Max-Request-Size response header
//	@description
//	@description	Nothing is submitted to the network: the instruction endpoints return unsigned instruction payloads.
//	@license.name	MIT

//	@servers.url			http://localhost:3000
//	@servers.description	Development server

//	@accept		json
//	@produce	json

//	@tag.name			Keys
//	@tag.description	Key pair generation

//	@tag.name			Token
//	@tag.description	Token program instruction builders

//	@tag.name			Messages
//	@tag.description	Off-chain message signing and verification

//	@tag.name			Transfers
//	@tag.description	Transfer instruction builders

//	@tag.name			Common
//	@tag.description	Server API endpoints (health, version, etc.)

func main() {
	cmd := &cobra.Command{
		Use:   "solana-gateway",
		Short: "Solana instruction and signing gateway",
		Long:  `solana-gateway exposes HTTP endpoints that generate key pairs, sign and verify messages and build Solana instructions`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Printf("failed to load configuration: %v", err.Error())
		os.Exit(1)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.Int64("MAX_REQUEST_BODY_SIZE", cfg.MaxRequestBodySize),
		slog.Int("RATE_LIMIT_RPS", int(cfg.RateLimitRPS)),
		slog.Int("RATE_LIMIT_BURST", int(cfg.RateLimitBurst)),
		slog.Int("DEFAULT_TOKEN_DECIMALS", cfg.DefaultTokenDecimals),
		slog.Bool("METRICS_ENABLED", cfg.MetricsEnabled),
	)

	appLogger.Info("Starting server", slog.String("version", version.Get().Version))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := server.NewServer(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := server.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}
