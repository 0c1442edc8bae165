package solana

import "github.com/gagliardetto/solana-go"

// RawAccount is an account as handed over by the account loading layer:
// its address, the program owning it and its data.
type RawAccount struct {
	Address solana.PublicKey
	Owner   solana.PublicKey
	Data    []byte
}

// Key returns the account address.
func (a *RawAccount) Key() solana.PublicKey {
	return a.Address
}

// IsTokenProgram treats both Token and Token-2022 as token programs.
func IsTokenProgram(pk solana.PublicKey) bool {
	return pk.Equals(solana.TokenProgramID) || pk.Equals(solana.Token2022ProgramID)
}
