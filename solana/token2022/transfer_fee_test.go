package token2022_test

import (
	"math"
	"testing"

	"github.com/krazyTry/tokenguard/solana/token2022"
	"github.com/stretchr/testify/require"
)

func TestCalculateFee(t *testing.T) {
	tests := []struct {
		name   string
		fee    token2022.TransferFee
		amount uint64
		want   uint64
	}{
		{"under cap", token2022.TransferFee{BasisPoints: 100, MaximumFee: 1000}, 5000, 50},
		{"capped", token2022.TransferFee{BasisPoints: 100, MaximumFee: 1000}, 200_000, 1000},
		{"rounds up", token2022.TransferFee{BasisPoints: 100, MaximumFee: 1000}, 101, 2},
		{"zero amount", token2022.TransferFee{BasisPoints: 100, MaximumFee: 1000}, 0, 0},
		{"zero rate", token2022.TransferFee{BasisPoints: 0, MaximumFee: 1000}, 5000, 0},
		{"max rate", token2022.TransferFee{BasisPoints: token2022.MaxFeeBasisPoints, MaximumFee: 500}, 1, 1},
		{"max rate capped", token2022.TransferFee{BasisPoints: token2022.MaxFeeBasisPoints, MaximumFee: 500}, 1_000_000, 500},
		{"u64 amount", token2022.TransferFee{BasisPoints: 1, MaximumFee: math.MaxUint64}, math.MaxUint64, math.MaxUint64/10_000 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fee.CalculateFee(tt.amount)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.LessOrEqual(t, got, tt.amount)
			require.LessOrEqual(t, got, tt.fee.MaximumFee)
		})
	}
}

func TestEpochFee(t *testing.T) {
	cfg := &token2022.TransferFeeConfig{
		OlderTransferFee: token2022.TransferFee{Epoch: 0, BasisPoints: 100, MaximumFee: 1000},
		NewerTransferFee: token2022.TransferFee{Epoch: 10, BasisPoints: 200, MaximumFee: 5000},
	}
	require.Equal(t, cfg.OlderTransferFee, cfg.EpochFee(9))
	require.Equal(t, cfg.NewerTransferFee, cfg.EpochFee(10))
	require.Equal(t, cfg.NewerTransferFee, cfg.EpochFee(11))

	fee, err := cfg.CalculateEpochFee(9, 5000)
	require.NoError(t, err)
	require.Equal(t, uint64(50), fee)

	fee, err = cfg.CalculateEpochFee(10, 5000)
	require.NoError(t, err)
	require.Equal(t, uint64(100), fee)

	fee, err = cfg.CalculateInverseEpochFee(9, 4950)
	require.NoError(t, err)
	require.Equal(t, uint64(50), fee)
}

func TestCalculateInverseFee(t *testing.T) {
	fee := token2022.TransferFee{BasisPoints: 100, MaximumFee: 1000}

	pre, err := fee.CalculatePreFeeAmount(4950)
	require.NoError(t, err)
	require.Equal(t, uint64(5000), pre)

	inverse, err := fee.CalculateInverseFee(4950)
	require.NoError(t, err)
	require.Equal(t, uint64(50), inverse)

	inverse, err = fee.CalculateInverseFee(1_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), inverse)

	inverse, err = fee.CalculateInverseFee(0)
	require.NoError(t, err)
	require.Zero(t, inverse)

	sentinel := token2022.TransferFee{BasisPoints: token2022.MaxFeeBasisPoints, MaximumFee: 500}
	for _, post := range []uint64{1, 1000, 1_000_000} {
		inverse, err := sentinel.CalculateInverseFee(post)
		require.NoError(t, err)
		require.Equal(t, uint64(500), inverse)
	}
}

// Sending post plus the inverse fee must deliver at least post, and one unit
// less must not.
func TestInverseFeeIsMinimal(t *testing.T) {
	rates := []uint16{1, 25, 100, 333, 5000, 9999}
	caps := []uint64{0, 1, 7, 1000, math.MaxUint64 / 2}
	posts := []uint64{1, 2, 3, 99, 100, 101, 4950, 9999, 10_000, 123_457, 1 << 40}
	for i := uint64(1); i <= 300; i++ {
		posts = append(posts, i*37)
	}

	for _, bps := range rates {
		for _, maximumFee := range caps {
			fee := token2022.TransferFee{BasisPoints: bps, MaximumFee: maximumFee}
			for _, post := range posts {
				inverse, err := fee.CalculateInverseFee(post)
				require.NoError(t, err)
				require.LessOrEqual(t, inverse, maximumFee)

				sent := post + inverse
				withheld, err := fee.CalculateFee(sent)
				require.NoError(t, err)
				require.GreaterOrEqual(t, sent-withheld, post, "bps=%d max=%d post=%d", bps, maximumFee, post)

				if inverse == 0 {
					continue
				}
				less := sent - 1
				withheld, err = fee.CalculateFee(less)
				require.NoError(t, err)
				require.Less(t, less-withheld, post, "bps=%d max=%d post=%d", bps, maximumFee, post)
			}
		}
	}
}

func TestPreFeeAmountOverflow(t *testing.T) {
	sentinel := token2022.TransferFee{BasisPoints: token2022.MaxFeeBasisPoints, MaximumFee: math.MaxUint64}
	_, err := sentinel.CalculatePreFeeAmount(1)
	require.ErrorIs(t, err, token2022.ErrFeeOverflow)

	half := token2022.TransferFee{BasisPoints: 5000, MaximumFee: math.MaxUint64}
	_, err = half.CalculateInverseFee(math.MaxUint64)
	require.ErrorIs(t, err, token2022.ErrFeeOverflow)

	capped := token2022.TransferFee{BasisPoints: 5000, MaximumFee: 10}
	inverse, err := capped.CalculateInverseFee(math.MaxUint64 - 10)
	require.NoError(t, err)
	require.Equal(t, uint64(10), inverse)
}
