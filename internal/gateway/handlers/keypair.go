package handlers

import (
	"log/slog"
	"net/http"

	"github.com/information-sharing-networks/solana-gateway/internal/crypto"
	"github.com/information-sharing-networks/solana-gateway/internal/gateway"
	"github.com/information-sharing-networks/solana-gateway/internal/logger"
)

// HandleKeypair godoc
//
//	@Summary		Generate a key pair
//	@Description	Generates a new random ed25519 key pair. The public key and the 64 byte secret key are base58 encoded.
//	@Description
//	@Description	Pass `fail=true` to force a failure response (used to test client error handling).
//	@Tags			Keys
//	@Produce		json
//	@Param			fail	query		bool	false	"simulate a failure"
//	@Success		200		{object}	gateway.Envelope{data=gateway.KeypairResponse}
//	@Failure		400		{object}	gateway.Envelope
//	@Router			/keypair [post]
//	@Router			/keypair [get]
func HandleKeypair(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("fail") == "true" {
		gateway.RespondWithError(w, r, gateway.NewSimulatedFailureError("Simulated failure via query param"))
		return
	}

	keypair, err := crypto.GenerateKeypair()
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(r.Context(), slog.String("pubkey", keypair.Address()))

	gateway.RespondWithData(w, http.StatusOK, gateway.KeypairResponse{
		Pubkey: keypair.Address(),
		Secret: keypair.Secret(),
	})
}
