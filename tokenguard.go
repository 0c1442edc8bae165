// Package tokenguard decides which mints may be traded and computes the
// Token-2022 transfer fees withheld on their transfers.
//
// Every function is a pure function of the account data handed in; accounts
// are loaded by the caller, for example with the helpers in package solana.
package tokenguard

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	solanago "github.com/krazyTry/tokenguard/solana"
)

// MintAccount is a mint account as loaded for the current transaction.
type MintAccount = solanago.RawAccount

var ErrInvalidAccountOwner = errors.New("invalid account owner")

// UnsupportedMintError is returned when a mint fails the trading eligibility check.
type UnsupportedMintError struct {
	Mint solana.PublicKey
}

func (e *UnsupportedMintError) Error() string {
	return fmt.Sprintf("mint %s is not supported for trading", e.Mint)
}
