package handlers

import (
	"github.com/gagliardetto/solana-go"
	"github.com/information-sharing-networks/solana-gateway/internal/gateway"
	"github.com/information-sharing-networks/solana-gateway/internal/ledger"
)

// parseAddressField decodes a base58 address request field.
// msg is the message returned to the client when the field is invalid.
func parseAddressField(value, field, msg string) (solana.PublicKey, error) {
	pk, err := ledger.ParseAddress(value)
	if err != nil {
		return solana.PublicKey{}, gateway.WrapInvalidInputError(err, field, msg)
	}
	return pk, nil
}

// requireField returns the value of a required numeric field
func requireField[T any](value *T, field string) (T, error) {
	if value == nil {
		var zero T
		return zero, gateway.NewInvalidInputError(field, "Missing required field: "+field)
	}
	return *value, nil
}
