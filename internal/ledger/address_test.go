package ledger

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
)

// decoding then re-encoding a valid address is the identity
func TestParseAddressRoundTrip(t *testing.T) {
	addresses := []string{
		"11111111111111111111111111111111",
		"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
		"ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL",
		"SysvarRent111111111111111111111111111111111",
		solana.NewWallet().PublicKey().String(),
	}

	for _, addr := range addresses {
		pk, err := ParseAddress(addr)
		if err != nil {
			t.Errorf("ParseAddress(%q) error: %v", addr, err)
			continue
		}
		if pk.String() != addr {
			t.Errorf("round trip of %q produced %q", addr, pk.String())
		}
	}
}

func TestParseAddressInvalid(t *testing.T) {
	tests := []struct {
		name string
		addr string
	}{
		{"empty", ""},
		{"non base58 characters", "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl"},
		{"too short", "1111111111"},
		{"too long", "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DATokenkeg"},
		{"whitespace", " 11111111111111111111111111111111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddress(tt.addr)
			if err == nil {
				t.Fatalf("ParseAddress(%q) succeeded, want error", tt.addr)
			}
			if !errors.Is(err, ErrInvalidAddress) {
				t.Errorf("error does not wrap ErrInvalidAddress: %v", err)
			}
		})
	}
}

func TestAssociatedTokenAddressIsDeterministic(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	first, err := AssociatedTokenAddress(owner, mint)
	if err != nil {
		t.Fatalf("AssociatedTokenAddress() error: %v", err)
	}
	second, err := AssociatedTokenAddress(owner, mint)
	if err != nil {
		t.Fatalf("AssociatedTokenAddress() error: %v", err)
	}

	if !first.Equals(second) {
		t.Errorf("derivation is not deterministic: %s != %s", first, second)
	}
	if first.Equals(owner) || first.Equals(mint) {
		t.Error("associated token account must differ from owner and mint")
	}

	otherMint := solana.NewWallet().PublicKey()
	third, err := AssociatedTokenAddress(owner, otherMint)
	if err != nil {
		t.Fatalf("AssociatedTokenAddress() error: %v", err)
	}
	if first.Equals(third) {
		t.Error("different mints produced the same associated token account")
	}
}
