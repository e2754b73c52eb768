package handlers

// message.go implements off-chain message signing and verification

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/information-sharing-networks/solana-gateway/internal/crypto"
	"github.com/information-sharing-networks/solana-gateway/internal/gateway"
	"github.com/information-sharing-networks/solana-gateway/internal/logger"
)

// HandleSignMessage godoc
//
//	@Summary		Sign a message
//	@Description	Signs the UTF-8 bytes of `message` with the base58 encoded 64 byte secret key.
//	@Description	The signature is returned as standard base64.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gateway.SignMessageRequest	true	"message and secret key"
//	@Success		200		{object}	gateway.Envelope{data=gateway.SignMessageResponse}
//	@Failure		400		{object}	gateway.Envelope
//	@Router			/message/sign [post]
func HandleSignMessage(w http.ResponseWriter, r *http.Request) {
	var req gateway.SignMessageRequest
	if err := gateway.DecodeRequestBody(r, &req); err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	keypair, err := crypto.KeypairFromSecret(req.Secret)
	if err != nil {
		var cryptoErr *crypto.CryptoError
		if errors.As(err, &cryptoErr) && cryptoErr.Code() == crypto.ErrCodeEncoding {
			gateway.RespondWithError(w, r, gateway.WrapInvalidInputError(err, "secret", "Invalid base58 secret key"))
			return
		}
		gateway.RespondWithError(w, r, gateway.WrapInvalidInputError(err, "secret", "Failed to deserialize secret key"))
		return
	}

	signature, err := crypto.Sign(keypair, []byte(req.Message))
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	gateway.RespondWithData(w, http.StatusOK, gateway.SignMessageResponse{
		Signature: crypto.EncodeSignature(signature),
		PublicKey: keypair.Address(),
		Message:   req.Message,
	})
}

// HandleVerifyMessage godoc
//
//	@Summary		Verify a message signature
//	@Description	Verifies a base64 ed25519 signature of `message` against `pubkey`.
//	@Description	A signature that does not verify is reported with `valid: false` and status 200.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gateway.VerifyMessageRequest	true	"message, signature and public key"
//	@Success		200		{object}	gateway.Envelope{data=gateway.VerifyMessageResponse}
//	@Failure		400		{object}	gateway.Envelope
//	@Router			/message/verify [post]
func HandleVerifyMessage(w http.ResponseWriter, r *http.Request) {
	var req gateway.VerifyMessageRequest
	if err := gateway.DecodeRequestBody(r, &req); err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	pubkey, err := parseAddressField(req.Pubkey, "pubkey", "Invalid pubkey")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	signature, err := crypto.DecodeSignature(req.Signature)
	if err != nil {
		var cryptoErr *crypto.CryptoError
		if errors.As(err, &cryptoErr) && cryptoErr.Code() == crypto.ErrCodeEncoding {
			gateway.RespondWithError(w, r, gateway.WrapInvalidInputError(err, "signature", "Invalid base64 signature"))
			return
		}
		gateway.RespondWithError(w, r, gateway.WrapInvalidInputError(err, "signature", "Invalid signature format"))
		return
	}

	valid := crypto.VerifyStrict(pubkey, []byte(req.Message), signature)
	logger.ContextWithLogAttrs(r.Context(), slog.Bool("valid", valid))

	gateway.RespondWithData(w, http.StatusOK, gateway.VerifyMessageResponse{
		Valid:   valid,
		Message: req.Message,
		Pubkey:  pubkey.String(),
	})
}
