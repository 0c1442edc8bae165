package tokenguard

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	solanago "github.com/krazyTry/tokenguard/solana"
	"github.com/krazyTry/tokenguard/solana/token2022"
)

type TransferFeeIncludedAmount struct {
	Amount      uint64
	TransferFee uint64
}

type TransferFeeExcludedAmount struct {
	Amount      uint64
	TransferFee uint64
}

func transferFeeConfig(mint *MintAccount) (*token2022.TransferFeeConfig, error) {
	if mint.Owner.Equals(solana.TokenProgramID) {
		return nil, nil
	}
	if !solanago.IsTokenProgram(mint.Owner) {
		return nil, fmt.Errorf("%w: mint %s owned by %s", ErrInvalidAccountOwner, mint.Address, mint.Owner)
	}
	state, err := token2022.Unpack(mint.Data)
	if err != nil {
		return nil, err
	}
	return state.TransferFeeConfig()
}

// TransferFee calculates the fee withheld from preFeeAmount at epoch.
func TransferFee(mint *MintAccount, preFeeAmount, epoch uint64) (uint64, error) {
	cfg, err := transferFeeConfig(mint)
	if err != nil || cfg == nil {
		return 0, err
	}
	return cfg.CalculateEpochFee(epoch, preFeeAmount)
}

// TransferInverseFee calculates the fee to add to postFeeAmount so that the
// receiver gets exactly postFeeAmount at epoch.
func TransferInverseFee(mint *MintAccount, postFeeAmount, epoch uint64) (uint64, error) {
	if mint.Owner.Equals(solana.TokenProgramID) || postFeeAmount == 0 {
		return 0, nil
	}
	cfg, err := transferFeeConfig(mint)
	if err != nil || cfg == nil {
		return 0, err
	}
	fee := cfg.EpochFee(epoch)
	if fee.BasisPoints == token2022.MaxFeeBasisPoints {
		return fee.MaximumFee, nil
	}
	return cfg.CalculateInverseEpochFee(epoch, postFeeAmount)
}

// CalculateTransferFeeExcludedAmount returns what arrives when includedAmount is sent.
func CalculateTransferFeeExcludedAmount(mint *MintAccount, includedAmount, epoch uint64) (TransferFeeExcludedAmount, error) {
	fee, err := TransferFee(mint, includedAmount, epoch)
	if err != nil {
		return TransferFeeExcludedAmount{}, err
	}
	return TransferFeeExcludedAmount{Amount: includedAmount - fee, TransferFee: fee}, nil
}

// CalculateTransferFeeIncludedAmount returns what has to be sent for excludedAmount to arrive.
func CalculateTransferFeeIncludedAmount(mint *MintAccount, excludedAmount, epoch uint64) (TransferFeeIncludedAmount, error) {
	fee, err := TransferInverseFee(mint, excludedAmount, epoch)
	if err != nil {
		return TransferFeeIncludedAmount{}, err
	}
	amount := excludedAmount + fee
	if amount < excludedAmount {
		return TransferFeeIncludedAmount{}, token2022.ErrFeeOverflow
	}
	return TransferFeeIncludedAmount{Amount: amount, TransferFee: fee}, nil
}
