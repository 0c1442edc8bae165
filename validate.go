package tokenguard

import "errors"

var ErrMissingMint = errors.New("missing mint account")

// Validator is implemented by account structs that can check themselves.
type Validator interface {
	Validate() error
}

// ValidateAll stops at the first failing validator.
func ValidateAll(validators ...Validator) error {
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TradeMints are the two mints of a swap.
type TradeMints struct {
	Input  *MintAccount
	Output *MintAccount
}

// Validate requires both mints to deserialize and to be supported for trading.
func (m TradeMints) Validate() error {
	for _, mint := range []*MintAccount{m.Input, m.Output} {
		if mint == nil {
			return ErrMissingMint
		}
		if _, err := TryDeserializeMint(mint); err != nil {
			return err
		}
		ok, err := IsSupportedMint(mint)
		if err != nil {
			return err
		}
		if !ok {
			return &UnsupportedMintError{Mint: mint.Key()}
		}
	}
	return nil
}

var _ Validator = TradeMints{}
