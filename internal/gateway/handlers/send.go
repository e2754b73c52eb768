package handlers

// send.go implements the transfer instruction builders (/send/sol and /send/token)

import (
	"log/slog"
	"net/http"

	"github.com/information-sharing-networks/solana-gateway/internal/gateway"
	"github.com/information-sharing-networks/solana-gateway/internal/ledger"
	"github.com/information-sharing-networks/solana-gateway/internal/logger"
)

// HandleSendSol godoc
//
//	@Summary		Build a native transfer instruction
//	@Description	Returns the system program instruction that moves `lamports` from `from` to `to`.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gateway.SendSolRequest	true	"transfer parameters"
//	@Success		200		{object}	gateway.Envelope{data=gateway.SendSolResponse}
//	@Failure		400		{object}	gateway.Envelope
//	@Router			/send/sol [post]
func HandleSendSol(w http.ResponseWriter, r *http.Request) {
	var req gateway.SendSolRequest
	if err := gateway.DecodeRequestBody(r, &req); err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	from, err := parseAddressField(req.From, "from", "Invalid 'from' address")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	to, err := parseAddressField(req.To, "to", "Invalid 'to' address")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	lamports, err := requireField(req.Lamports, "lamports")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	inst, err := ledger.Transfer(from, to, lamports)
	if err != nil {
		gateway.RespondWithError(w, r, gateway.WrapPrimitiveError(err, "Failed to create instruction"))
		return
	}

	gateway.RespondWithData(w, http.StatusOK, gateway.NewSendSolResponse(inst))
}

// SendTokenHandler handles POST /send/token requests
type SendTokenHandler struct {
	// defaultDecimals is used when the request does not specify the mint's decimals
	defaultDecimals uint8
}

// NewSendTokenHandler creates a handler for token transfers
func NewSendTokenHandler(defaultDecimals uint8) *SendTokenHandler {
	return &SendTokenHandler{defaultDecimals: defaultDecimals}
}

// HandleSendToken godoc
//
//	@Summary		Build a token transfer instruction
//	@Description	Returns the token program TransferChecked instruction that moves `amount` base units of `mint`
//	@Description	from the owner's associated token account to `destination`.
//	@Description
//	@Description	`decimals` must match the mint; when omitted the server default (6) is used.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gateway.SendTokenRequest	true	"transfer parameters"
//	@Success		200		{object}	gateway.Envelope{data=gateway.SendTokenResponse}
//	@Failure		400		{object}	gateway.Envelope
//	@Router			/send/token [post]
func (h *SendTokenHandler) HandleSendToken(w http.ResponseWriter, r *http.Request) {
	var req gateway.SendTokenRequest
	if err := gateway.DecodeRequestBody(r, &req); err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	destination, err := parseAddressField(req.Destination, "destination", "Invalid destination address")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	mint, err := parseAddressField(req.Mint, "mint", "Invalid mint address")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	owner, err := parseAddressField(req.Owner, "owner", "Invalid owner address")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	amount, err := requireField(req.Amount, "amount")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	decimals := h.defaultDecimals
	if req.Decimals != nil {
		decimals = *req.Decimals
	}

	inst, err := ledger.TransferChecked(owner, mint, destination, amount, decimals)
	if err != nil {
		gateway.RespondWithError(w, r, gateway.WrapPrimitiveError(err, "Instruction error"))
		return
	}

	logger.ContextWithLogAttrs(r.Context(),
		slog.String("source", inst.Accounts[0].PublicKey.String()),
		slog.Int("decimals", int(decimals)),
	)

	gateway.RespondWithData(w, http.StatusOK, gateway.NewSendTokenResponse(inst))
}
