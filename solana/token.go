package solana

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/krazyTry/tokenguard/solana/token2022"
)

// Token represents a Solana token with mint information and owner
type Token struct {
	token.Mint
	// Address of the mint
	Address solana.PublicKey
	// Owner program of the mint
	Owner solana.PublicKey
	// Extensions attached to a Token-2022 mint, empty for Token mints
	Extensions []token2022.ExtensionType
}

// TokenLayout provides methods for decoding token data
type TokenLayout struct {
}

func (l *TokenLayout) Decode(data []byte) (*Token, error) {
	state, err := token2022.Unpack(data)
	if err != nil {
		return nil, err
	}
	return &Token{Mint: state.Base, Extensions: state.ExtensionTypes()}, nil
}
