package ledger

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

// AccountRef is one account referenced by an instruction
type AccountRef struct {
	PublicKey  solana.PublicKey
	IsSigner   bool
	IsWritable bool
}

// Instruction is a built ledger instruction
type Instruction struct {
	ProgramID solana.PublicKey
	Accounts  []AccountRef
	Data      []byte
}

// fromSDK snapshots a solana-go instruction
func fromSDK(inst solana.Instruction) (Instruction, error) {
	data, err := inst.Data()
	if err != nil {
		return Instruction{}, fmt.Errorf("failed to encode instruction data: %w", err)
	}

	metas := inst.Accounts()
	accounts := make([]AccountRef, 0, len(metas))
	for _, meta := range metas {
		accounts = append(accounts, AccountRef{
			PublicKey:  meta.PublicKey,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}

	return Instruction{
		ProgramID: inst.ProgramID(),
		Accounts:  accounts,
		Data:      data,
	}, nil
}

// InitializeMint builds an SPL token InitializeMint instruction with no freeze authority
func InitializeMint(mint, mintAuthority solana.PublicKey, decimals uint8) (Instruction, error) {
	inst, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(decimals).
		SetMintAuthority(mintAuthority).
		SetMintAccount(mint).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		return Instruction{}, err
	}
	return fromSDK(inst)
}

// MintTo builds an SPL token MintTo instruction signed by a single authority
func MintTo(mint, destination, authority solana.PublicKey, amount uint64) (Instruction, error) {
	inst, err := token.NewMintToInstruction(amount, mint, destination, authority, nil).ValidateAndBuild()
	if err != nil {
		return Instruction{}, err
	}
	return fromSDK(inst)
}

// Transfer builds a system program transfer of lamports from one account to another
func Transfer(from, to solana.PublicKey, lamports uint64) (Instruction, error) {
	inst, err := system.NewTransferInstruction(lamports, from, to).ValidateAndBuild()
	if err != nil {
		return Instruction{}, err
	}
	return fromSDK(inst)
}

// TransferChecked builds an SPL token TransferChecked instruction.
//
// The source is the owner's associated token account for mint; the owner signs.
func TransferChecked(owner, mint, destination solana.PublicKey, amount uint64, decimals uint8) (Instruction, error) {
	source, err := AssociatedTokenAddress(owner, mint)
	if err != nil {
		return Instruction{}, err
	}

	inst, err := token.NewTransferCheckedInstruction(amount, decimals, source, mint, destination, owner, nil).ValidateAndBuild()
	if err != nil {
		return Instruction{}, err
	}
	return fromSDK(inst)
}
