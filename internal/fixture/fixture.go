// Package fixture builds raw Token and Token-2022 account data for tests.
package fixture

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
	solanago "github.com/krazyTry/tokenguard/solana"
	"github.com/krazyTry/tokenguard/solana/token2022"
)

// MintData returns an initialized mint. Without extensions it is a plain
// 82 byte Token mint, otherwise a Token-2022 mint with the TLV entries appended.
func MintData(decimals uint8, supply uint64, exts ...token2022.Extension) []byte {
	data := make([]byte, token2022.MintBaseSize)
	authority := solana.MustPublicKeyFromBase58("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	binary.LittleEndian.PutUint32(data[0:4], 1)
	copy(data[4:36], authority[:])
	binary.LittleEndian.PutUint64(data[36:44], supply)
	data[44] = decimals
	data[45] = 1
	if len(exts) == 0 {
		return data
	}

	data = append(data, make([]byte, token2022.AccountBaseSize-token2022.MintBaseSize)...)
	data = append(data, byte(token2022.AccountTypeMint))
	for _, e := range exts {
		data = appendTLV(data, e)
	}
	return data
}

func appendTLV(data []byte, e token2022.Extension) []byte {
	var header [4]byte
	binary.LittleEndian.PutUint16(header[0:2], uint16(e.Type))
	binary.LittleEndian.PutUint16(header[2:4], uint16(len(e.Value)))
	data = append(data, header[:]...)
	return append(data, e.Value...)
}

// Extension returns a zero filled extension of the given size.
func Extension(t token2022.ExtensionType, size int) token2022.Extension {
	return token2022.Extension{Type: t, Value: make([]byte, size)}
}

// TransferFeeConfig encodes a transfer fee extension with no authorities.
func TransferFeeConfig(older, newer token2022.TransferFee) token2022.Extension {
	b := make([]byte, token2022.TransferFeeConfigSize)
	putTransferFee(b[72:90], older)
	putTransferFee(b[90:108], newer)
	return token2022.Extension{Type: token2022.ExtensionTransferFeeConfig, Value: b}
}

// FlatTransferFee uses the same schedule for every epoch.
func FlatTransferFee(basisPoints uint16, maximumFee uint64) token2022.Extension {
	fee := token2022.TransferFee{BasisPoints: basisPoints, MaximumFee: maximumFee}
	return TransferFeeConfig(fee, fee)
}

func putTransferFee(b []byte, fee token2022.TransferFee) {
	binary.LittleEndian.PutUint64(b[0:8], fee.Epoch)
	binary.LittleEndian.PutUint64(b[8:16], fee.MaximumFee)
	binary.LittleEndian.PutUint16(b[16:18], fee.BasisPoints)
}

// TokenAccountData returns a base token account holding amount of mint.
func TokenAccountData(mint, owner solana.PublicKey, amount uint64, state solanago.AccountState) []byte {
	data := make([]byte, token2022.AccountBaseSize)
	copy(data[0:32], mint[:])
	copy(data[32:64], owner[:])
	binary.LittleEndian.PutUint64(data[64:72], amount)
	data[108] = byte(state)
	return data
}

// Mint wraps data into an account owned by owner.
func Mint(address, owner solana.PublicKey, data []byte) *solanago.RawAccount {
	return &solanago.RawAccount{Address: address, Owner: owner, Data: data}
}
