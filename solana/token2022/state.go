package token2022

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go/programs/token"
)

const (
	// MintBaseSize is the size of the base mint shared by Token and Token-2022.
	MintBaseSize = 82
	// AccountBaseSize is the size of a base token account. Extended mints are
	// padded up to it so the account type byte sits at the same offset.
	AccountBaseSize = 165
	// MultisigSize is rejected as an extended mint length since it is ambiguous.
	MultisigSize = 355

	accountTypeSize = 1
	tlvTypeSize     = 2
	tlvHeaderSize   = 4

	mintIsInitializedOffset = 45
)

// AccountType is the discriminator byte written after the padding of an extended account.
type AccountType uint8

const (
	AccountTypeUninitialized AccountType = 0
	AccountTypeMint          AccountType = 1
	AccountTypeAccount       AccountType = 2
)

var (
	ErrInvalidAccountData   = errors.New("invalid account data")
	ErrUninitializedAccount = errors.New("uninitialized account")
	ErrExtensionNotFound    = errors.New("extension not found")
)

// StateWithExtensions is a mint decoded together with its TLV extensions.
type StateWithExtensions struct {
	Base       token.Mint
	Extensions []Extension
}

// Unpack decodes Token or Token-2022 mint data.
// Data of exactly MintBaseSize bytes carries no extensions.
func Unpack(data []byte) (*StateWithExtensions, error) {
	if len(data) < MintBaseSize {
		return nil, fmt.Errorf("%w: data too short for mint: got=%d want>=%d", ErrInvalidAccountData, len(data), MintBaseSize)
	}
	if data[mintIsInitializedOffset] != 1 {
		return nil, ErrUninitializedAccount
	}

	state := &StateWithExtensions{}
	if err := state.Base.Decode(data[:MintBaseSize]); err != nil {
		return nil, fmt.Errorf("%w: decode base mint: %v", ErrInvalidAccountData, err)
	}
	if len(data) == MintBaseSize {
		return state, nil
	}

	if len(data) == MultisigSize {
		return nil, fmt.Errorf("%w: multisig sized account", ErrInvalidAccountData)
	}
	if len(data) < AccountBaseSize+accountTypeSize {
		return nil, fmt.Errorf("%w: extended mint too short: got=%d", ErrInvalidAccountData, len(data))
	}
	for _, b := range data[MintBaseSize:AccountBaseSize] {
		if b != 0 {
			return nil, fmt.Errorf("%w: non-zero mint padding", ErrInvalidAccountData)
		}
	}
	if typ := AccountType(data[AccountBaseSize]); typ != AccountTypeMint {
		return nil, fmt.Errorf("%w: account type=%d want mint", ErrInvalidAccountData, typ)
	}

	exts, err := parseTLV(data[AccountBaseSize+accountTypeSize:])
	if err != nil {
		return nil, err
	}
	state.Extensions = exts
	return state, nil
}

func parseTLV(data []byte) ([]Extension, error) {
	var exts []Extension
	off := 0
	for off+tlvTypeSize <= len(data) {
		typ := ExtensionType(binary.LittleEndian.Uint16(data[off : off+tlvTypeSize]))
		// trailing space is zero filled
		if typ == ExtensionUninitialized {
			break
		}
		if !typ.Known() {
			return nil, fmt.Errorf("%w: %s extension", ErrInvalidAccountData, typ)
		}
		if off+tlvHeaderSize > len(data) {
			return nil, fmt.Errorf("%w: truncated TLV header: type=%s off=%d total=%d", ErrInvalidAccountData, typ, off, len(data))
		}
		l := int(binary.LittleEndian.Uint16(data[off+tlvTypeSize : off+tlvHeaderSize]))
		off += tlvHeaderSize

		if off+l > len(data) {
			return nil, fmt.Errorf("%w: invalid TLV length: type=%s len=%d off=%d total=%d", ErrInvalidAccountData, typ, l, off, len(data))
		}
		exts = append(exts, Extension{Type: typ, Value: data[off : off+l]})
		off += l
	}
	return exts, nil
}

// ExtensionTypes returns the extension types in the order they appear.
func (s *StateWithExtensions) ExtensionTypes() []ExtensionType {
	types := make([]ExtensionType, 0, len(s.Extensions))
	for _, e := range s.Extensions {
		types = append(types, e.Type)
	}
	return types
}

// Extension returns the raw value of the first extension of type t.
func (s *StateWithExtensions) Extension(t ExtensionType) ([]byte, error) {
	for _, e := range s.Extensions {
		if e.Type == t {
			return e.Value, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrExtensionNotFound, t)
}

// TransferFeeConfig returns the decoded transfer fee extension, or nil when the
// mint does not carry one.
func (s *StateWithExtensions) TransferFeeConfig() (*TransferFeeConfig, error) {
	raw, err := s.Extension(ExtensionTransferFeeConfig)
	if errors.Is(err, ErrExtensionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseTransferFeeConfig(raw)
}
