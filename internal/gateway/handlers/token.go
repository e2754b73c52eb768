package handlers

// token.go implements the token program instruction builders (/token/create and /token/mint)

import (
	"net/http"

	"github.com/information-sharing-networks/solana-gateway/internal/gateway"
	"github.com/information-sharing-networks/solana-gateway/internal/ledger"
)

// HandleCreateToken godoc
//
//	@Summary		Build an InitializeMint instruction
//	@Description	Returns the token program instruction that initializes `mint` with the given decimals and mint authority.
//	@Description	No freeze authority is set. The instruction is not signed or submitted.
//	@Tags			Token
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gateway.CreateTokenRequest	true	"mint parameters"
//	@Success		200		{object}	gateway.Envelope{data=gateway.InstructionResponse}
//	@Failure		400		{object}	gateway.Envelope
//	@Router			/token/create [post]
func HandleCreateToken(w http.ResponseWriter, r *http.Request) {
	var req gateway.CreateTokenRequest
	if err := gateway.DecodeRequestBody(r, &req); err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	mint, err := parseAddressField(req.Mint, "mint", "Invalid mint pubkey")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	mintAuthority, err := parseAddressField(req.MintAuthority, "mintAuthority", "Invalid mint authority pubkey")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	decimals, err := requireField(req.Decimals, "decimals")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	inst, err := ledger.InitializeMint(mint, mintAuthority, decimals)
	if err != nil {
		gateway.RespondWithError(w, r, gateway.WrapPrimitiveError(err, "Failed to create instruction"))
		return
	}

	gateway.RespondWithData(w, http.StatusOK, gateway.NewInstructionResponse(inst))
}

// HandleMintToken godoc
//
//	@Summary		Build a MintTo instruction
//	@Description	Returns the token program instruction that mints `amount` base units of `mint` into `destination`, signed by `authority`.
//	@Tags			Token
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gateway.MintTokenRequest	true	"mint to parameters"
//	@Success		200		{object}	gateway.Envelope{data=gateway.InstructionResponse}
//	@Failure		400		{object}	gateway.Envelope
//	@Router			/token/mint [post]
func HandleMintToken(w http.ResponseWriter, r *http.Request) {
	var req gateway.MintTokenRequest
	if err := gateway.DecodeRequestBody(r, &req); err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	mint, err := parseAddressField(req.Mint, "mint", "Invalid mint address")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	destination, err := parseAddressField(req.Destination, "destination", "Invalid destination address")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	authority, err := parseAddressField(req.Authority, "authority", "Invalid authority address")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	amount, err := requireField(req.Amount, "amount")
	if err != nil {
		gateway.RespondWithError(w, r, err)
		return
	}

	inst, err := ledger.MintTo(mint, destination, authority, amount)
	if err != nil {
		gateway.RespondWithError(w, r, gateway.WrapPrimitiveError(err, "Failed to create instruction"))
		return
	}

	gateway.RespondWithData(w, http.StatusOK, gateway.NewInstructionResponse(inst))
}
