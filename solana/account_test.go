package solana_test

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/krazyTry/tokenguard/internal/fixture"
	solanago "github.com/krazyTry/tokenguard/solana"
	"github.com/krazyTry/tokenguard/solana/token2022"
	"github.com/stretchr/testify/require"
)

var (
	mint  = solana.MustPublicKeyFromBase58("2b1kV6DkPAnxd5ixfnxCpjxmKwqjjaYmCZfHsFu24GXo")
	owner = solana.MustPublicKeyFromBase58("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
)

func TestAccountLayoutDecode(t *testing.T) {
	data := fixture.TokenAccountData(mint, owner, 1_500, solanago.AccountStateFrozen)
	// delegate
	binary.LittleEndian.PutUint32(data[72:76], 1)
	copy(data[76:108], owner[:])
	binary.LittleEndian.PutUint64(data[121:129], 500)

	acc, err := new(solanago.AccountLayout).Decode(data)
	require.NoError(t, err)
	require.Equal(t, mint, acc.Mint)
	require.Equal(t, owner, acc.Owner)
	require.Equal(t, uint64(1_500), acc.Amount)
	require.NotNil(t, acc.Delegate)
	require.Equal(t, owner, *acc.Delegate)
	require.Equal(t, uint64(500), acc.DelegatedAmount)
	require.True(t, acc.IsInitialized)
	require.True(t, acc.IsFrozen)
	require.False(t, acc.IsNative)
	require.Nil(t, acc.RentExemptReserve)
	require.Nil(t, acc.CloseAuthority)
}

func TestAccountLayoutDecodeToken2022(t *testing.T) {
	data := fixture.TokenAccountData(mint, owner, 1, solanago.AccountStateInitialized)
	// account type followed by an immutable owner extension
	data = append(data, byte(token2022.AccountTypeAccount), byte(token2022.ExtensionImmutableOwner), 0, 0, 0)

	acc, err := new(solanago.AccountLayout).Decode(data)
	require.NoError(t, err)
	require.False(t, acc.IsFrozen)

	data[token2022.AccountBaseSize] = byte(token2022.AccountTypeMint)
	_, err = new(solanago.AccountLayout).Decode(data)
	require.ErrorIs(t, err, token2022.ErrInvalidAccountData)
}

func TestAccountLayoutDecodeUninitialized(t *testing.T) {
	data := fixture.TokenAccountData(mint, owner, 1, solanago.AccountStateUninitialized)
	_, err := new(solanago.AccountLayout).Decode(data)
	require.ErrorIs(t, err, token2022.ErrUninitializedAccount)
}

func TestTokenLayoutDecode(t *testing.T) {
	token, err := new(solanago.TokenLayout).Decode(fixture.MintData(6, 10, fixture.FlatTransferFee(1, 1)))
	require.NoError(t, err)
	require.Equal(t, uint8(6), token.Decimals)
	require.Equal(t, uint64(10), token.Supply)
	require.Equal(t, []token2022.ExtensionType{token2022.ExtensionTransferFeeConfig}, token.Extensions)
}

func TestIsTokenProgram(t *testing.T) {
	require.True(t, solanago.IsTokenProgram(solana.TokenProgramID))
	require.True(t, solanago.IsTokenProgram(solana.Token2022ProgramID))
	require.False(t, solanago.IsTokenProgram(solana.SystemProgramID))
}
