package tokenguard

import (
	"fmt"

	solanago "github.com/krazyTry/tokenguard/solana"
)

// TryDeserializeMint decodes a Token or Token-2022 mint account.
func TryDeserializeMint(acc *solanago.RawAccount) (*solanago.Token, error) {
	if !solanago.IsTokenProgram(acc.Owner) {
		return nil, fmt.Errorf("%w: mint %s owned by %s", ErrInvalidAccountOwner, acc.Address, acc.Owner)
	}
	mint, err := new(solanago.TokenLayout).Decode(acc.Data)
	if err != nil {
		return nil, fmt.Errorf("deserialize mint %s: %w", acc.Address, err)
	}
	mint.Address = acc.Address
	mint.Owner = acc.Owner
	return mint, nil
}

// TryDeserializeTokenAccount decodes a Token or Token-2022 token account.
func TryDeserializeTokenAccount(acc *solanago.RawAccount) (*solanago.Account, error) {
	if !solanago.IsTokenProgram(acc.Owner) {
		return nil, fmt.Errorf("%w: token account %s owned by %s", ErrInvalidAccountOwner, acc.Address, acc.Owner)
	}
	account, err := new(solanago.AccountLayout).Decode(acc.Data)
	if err != nil {
		return nil, fmt.Errorf("deserialize token account %s: %w", acc.Address, err)
	}
	account.Address = acc.Address
	return account, nil
}
