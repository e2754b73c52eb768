package gateway

// these are the request and response bodies for the gateway endpoints.
//
// Numeric fields on requests are pointers so a missing field can be told apart from zero.

import (
	"encoding/base64"

	"github.com/information-sharing-networks/solana-gateway/internal/ledger"
)

// CreateTokenRequest is the body of POST /token/create
type CreateTokenRequest struct {
	MintAuthority string `json:"mintAuthority" example:"5Hd2yyhrWZ3iXrLKYGpCh3aHyhoGLZXGQeVSUH8K5zGr"`
	Mint          string `json:"mint" example:"4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU"`
	Decimals      *uint8 `json:"decimals" example:"6"`
}

// MintTokenRequest is the body of POST /token/mint
type MintTokenRequest struct {
	Mint        string  `json:"mint"`
	Destination string  `json:"destination"`
	Authority   string  `json:"authority"`
	Amount      *uint64 `json:"amount" example:"1000000"`
}

// SignMessageRequest is the body of POST /message/sign
//
// Secret is the base58 encoding of the 64 byte secret key (seed followed by public key).
type SignMessageRequest struct {
	Message string `json:"message" example:"Hello, Solana!"`
	Secret  string `json:"secret"`
}

// VerifyMessageRequest is the body of POST /message/verify
//
// Signature is standard base64.
type VerifyMessageRequest struct {
	Message   string `json:"message" example:"Hello, Solana!"`
	Signature string `json:"signature"`
	Pubkey    string `json:"pubkey"`
}

// SendSolRequest is the body of POST /send/sol
type SendSolRequest struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Lamports *uint64 `json:"lamports" example:"100000"`
}

// SendTokenRequest is the body of POST /send/token
//
// Decimals is optional; when omitted the server's configured default is used.
type SendTokenRequest struct {
	Destination string  `json:"destination"`
	Mint        string  `json:"mint"`
	Owner       string  `json:"owner"`
	Amount      *uint64 `json:"amount" example:"100000"`
	Decimals    *uint8  `json:"decimals,omitempty" example:"6"`
}

// KeypairResponse is returned by /keypair. Both fields are base58.
type KeypairResponse struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

// AccountMetaResponse describes one account referenced by an instruction
type AccountMetaResponse struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// InstructionResponse is returned by /token/create and /token/mint
type InstructionResponse struct {
	ProgramID       string                `json:"program_id"`
	Accounts        []AccountMetaResponse `json:"accounts"`
	InstructionData string                `json:"instruction_data"`
}

// SignMessageResponse is returned by /message/sign
type SignMessageResponse struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

// VerifyMessageResponse is returned by /message/verify.
// A signature that does not verify is a successful response with Valid set to false.
type VerifyMessageResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

// SendSolResponse is returned by /send/sol. Accounts are listed as base58 addresses only.
type SendSolResponse struct {
	ProgramID       string   `json:"program_id"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instruction_data"`
}

// TokenAccountResponse is the account shape used by /send/token
type TokenAccountResponse struct {
	Pubkey   string `json:"pubkey"`
	IsSigner bool   `json:"isSigner"`
}

// SendTokenResponse is returned by /send/token
type SendTokenResponse struct {
	ProgramID       string                 `json:"program_id"`
	Accounts        []TokenAccountResponse `json:"accounts"`
	InstructionData string                 `json:"instruction_data"`
}

// NewInstructionResponse converts an instruction to the full account metadata shape
func NewInstructionResponse(inst ledger.Instruction) InstructionResponse {
	accounts := make([]AccountMetaResponse, 0, len(inst.Accounts))
	for _, a := range inst.Accounts {
		accounts = append(accounts, AccountMetaResponse{
			Pubkey:     a.PublicKey.String(),
			IsSigner:   a.IsSigner,
			IsWritable: a.IsWritable,
		})
	}
	return InstructionResponse{
		ProgramID:       inst.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(inst.Data),
	}
}

// NewSendSolResponse converts a native transfer instruction to the address list shape
func NewSendSolResponse(inst ledger.Instruction) SendSolResponse {
	accounts := make([]string, 0, len(inst.Accounts))
	for _, a := range inst.Accounts {
		accounts = append(accounts, a.PublicKey.String())
	}
	return SendSolResponse{
		ProgramID:       inst.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(inst.Data),
	}
}

// NewSendTokenResponse converts a token transfer instruction to the /send/token shape
func NewSendTokenResponse(inst ledger.Instruction) SendTokenResponse {
	accounts := make([]TokenAccountResponse, 0, len(inst.Accounts))
	for _, a := range inst.Accounts {
		accounts = append(accounts, TokenAccountResponse{
			Pubkey:   a.PublicKey.String(),
			IsSigner: a.IsSigner,
		})
	}
	return SendTokenResponse{
		ProgramID:       inst.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(inst.Data),
	}
}
