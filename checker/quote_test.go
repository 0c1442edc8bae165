package checker_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/krazyTry/tokenguard/checker"
	"github.com/krazyTry/tokenguard/internal/fixture"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	acc := fixture.Mint(feeMint, solana.Token2022ProgramID, fixture.MintData(6, 1, fixture.FlatTransferFee(100, 1000)))

	q, err := checker.NewQuote(acc, 200_000, 3, false)
	require.NoError(t, err)
	require.True(t, q.Supported)
	require.Equal(t, uint64(1000), q.Fee)
	require.Equal(t, uint64(199_000), q.Received)
	require.Equal(t, "0.001", q.UIAmount(q.Fee).String())
	require.Equal(t, "0.199", q.Fields()["received"])
	require.Equal(t, []string{"transferFeeConfig"}, q.Fields()["extensions"])

	q, err = checker.NewQuote(acc, 4950, 3, true)
	require.NoError(t, err)
	require.Equal(t, uint64(50), q.Fee)
	require.Equal(t, uint64(5000), q.Sent)
	require.Equal(t, uint64(4950), q.Received)
}

func TestNewQuoteTokenProgram(t *testing.T) {
	acc := fixture.Mint(feeMint, solana.TokenProgramID, fixture.MintData(9, 1))
	q, err := checker.NewQuote(acc, 1_000_000_000, 3, true)
	require.NoError(t, err)
	require.True(t, q.Supported)
	require.Zero(t, q.Fee)
	require.Equal(t, "1", q.UIAmount(q.Sent).String())
}

func TestNewQuoteRejectsForeignOwner(t *testing.T) {
	acc := fixture.Mint(feeMint, solana.SystemProgramID, fixture.MintData(9, 1))
	_, err := checker.NewQuote(acc, 1, 3, false)
	require.Error(t, err)
}
