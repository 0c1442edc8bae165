package token2022

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// MaxFeeBasisPoints is 100%. A fee at this rate always charges MaximumFee.
const MaxFeeBasisPoints = 10_000

// TransferFeeConfigSize is the packed size of the TransferFeeConfig extension.
const TransferFeeConfigSize = 32 + 32 + 8 + transferFeeSize + transferFeeSize

const transferFeeSize = 8 + 8 + 2

var ErrFeeOverflow = errors.New("transfer fee overflow")

var oneInBasisPoints = big.NewInt(MaxFeeBasisPoints)

// TransferFee is the fee schedule active from Epoch onwards.
type TransferFee struct {
	Epoch       uint64 // First epoch where this fee is active
	MaximumFee  uint64 // Maximum fee assessed on a transfer, in token units
	BasisPoints uint16 // Fee rate in basis points (1/10000)
}

// TransferFeeConfig is the transfer fee extension of a Token-2022 mint.
type TransferFeeConfig struct {
	TransferFeeConfigAuthority *solana.PublicKey // nil when unset
	WithdrawWithheldAuthority  *solana.PublicKey // nil when unset
	WithheldAmount             uint64
	OlderTransferFee           TransferFee
	NewerTransferFee           TransferFee
}

// ParseTransferFeeConfig decodes the extension value.
func ParseTransferFeeConfig(b []byte) (*TransferFeeConfig, error) {
	if len(b) != TransferFeeConfigSize {
		return nil, fmt.Errorf("%w: transfer fee config: len=%d want=%d", ErrInvalidAccountData, len(b), TransferFeeConfigSize)
	}
	cfg := &TransferFeeConfig{
		TransferFeeConfigAuthority: readOptionalNonZeroPubkey(b[0:32]),
		WithdrawWithheldAuthority:  readOptionalNonZeroPubkey(b[32:64]),
		WithheldAmount:             binary.LittleEndian.Uint64(b[64:72]),
		OlderTransferFee:           readTransferFee(b[72:90]),
		NewerTransferFee:           readTransferFee(b[90:108]),
	}
	for _, fee := range []TransferFee{cfg.OlderTransferFee, cfg.NewerTransferFee} {
		if fee.BasisPoints > MaxFeeBasisPoints {
			return nil, fmt.Errorf("%w: transfer fee basis points %d exceed %d", ErrInvalidAccountData, fee.BasisPoints, MaxFeeBasisPoints)
		}
	}
	return cfg, nil
}

// all zeroes means None
func readOptionalNonZeroPubkey(b []byte) *solana.PublicKey {
	key := solana.PublicKeyFromBytes(b)
	if key.Equals(solana.PublicKey{}) {
		return nil
	}
	return &key
}

func readTransferFee(b []byte) TransferFee {
	return TransferFee{
		Epoch:       binary.LittleEndian.Uint64(b[0:8]),
		MaximumFee:  binary.LittleEndian.Uint64(b[8:16]),
		BasisPoints: binary.LittleEndian.Uint16(b[16:18]),
	}
}

// EpochFee picks the newer fee once epoch reaches its start, the older one before.
func (c *TransferFeeConfig) EpochFee(epoch uint64) TransferFee {
	if epoch >= c.NewerTransferFee.Epoch {
		return c.NewerTransferFee
	}
	return c.OlderTransferFee
}

// CalculateEpochFee returns the fee withheld when transferring preFeeAmount at epoch.
func (c *TransferFeeConfig) CalculateEpochFee(epoch, preFeeAmount uint64) (uint64, error) {
	return c.EpochFee(epoch).CalculateFee(preFeeAmount)
}

// CalculateInverseEpochFee returns the fee that has to be added to postFeeAmount
// so that postFeeAmount arrives after the transfer at epoch.
func (c *TransferFeeConfig) CalculateInverseEpochFee(epoch, postFeeAmount uint64) (uint64, error) {
	return c.EpochFee(epoch).CalculateInverseFee(postFeeAmount)
}

// CalculateFee is min(ceil(amount * bps / 10000), MaximumFee).
func (f TransferFee) CalculateFee(preFeeAmount uint64) (uint64, error) {
	if f.BasisPoints == 0 || preFeeAmount == 0 {
		return 0, nil
	}
	numerator := new(big.Int).Mul(new(big.Int).SetUint64(preFeeAmount), big.NewInt(int64(f.BasisPoints)))
	rawFee := ceilDiv(numerator, oneInBasisPoints)
	if !rawFee.IsUint64() {
		return 0, ErrFeeOverflow
	}
	return min(rawFee.Uint64(), f.MaximumFee), nil
}

// CalculatePreFeeAmount returns the smallest amount that leaves postFeeAmount after the fee.
func (f TransferFee) CalculatePreFeeAmount(postFeeAmount uint64) (uint64, error) {
	switch {
	case f.BasisPoints == 0:
		return postFeeAmount, nil
	case postFeeAmount == 0:
		return 0, nil
	case f.BasisPoints == MaxFeeBasisPoints:
		return checkedAdd(postFeeAmount, f.MaximumFee)
	}

	post := new(big.Int).SetUint64(postFeeAmount)
	numerator := new(big.Int).Mul(post, oneInBasisPoints)
	denominator := new(big.Int).Sub(oneInBasisPoints, big.NewInt(int64(f.BasisPoints)))
	rawPreFee := ceilDiv(numerator, denominator)

	if new(big.Int).Sub(rawPreFee, post).Cmp(new(big.Int).SetUint64(f.MaximumFee)) >= 0 {
		return checkedAdd(postFeeAmount, f.MaximumFee)
	}
	if !rawPreFee.IsUint64() {
		return 0, ErrFeeOverflow
	}
	return rawPreFee.Uint64(), nil
}

// CalculateInverseFee returns the fee charged on the pre-fee amount of postFeeAmount.
func (f TransferFee) CalculateInverseFee(postFeeAmount uint64) (uint64, error) {
	preFeeAmount, err := f.CalculatePreFeeAmount(postFeeAmount)
	if err != nil {
		return 0, err
	}
	return f.CalculateFee(preFeeAmount)
}

func ceilDiv(numerator, denominator *big.Int) *big.Int {
	q := new(big.Int).Add(numerator, denominator)
	q.Sub(q, big.NewInt(1))
	return q.Div(q, denominator)
}

func checkedAdd(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrFeeOverflow
	}
	return sum, nil
}
