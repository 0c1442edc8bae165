package checker

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/krazyTry/tokenguard"
	"github.com/krazyTry/tokenguard/solana/token2022"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Quote is the outcome of checking one transfer of a mint.
type Quote struct {
	Mint       solana.PublicKey
	Owner      solana.PublicKey
	Decimals   uint8
	Extensions []token2022.ExtensionType
	Supported  bool
	Epoch      uint64

	// Inverse quotes treat Amount as the amount to receive.
	Inverse bool
	Amount  uint64
	Fee     uint64
	// Sent is what leaves the sender, Received what reaches the receiver.
	Sent     uint64
	Received uint64
}

// NewQuote runs every check on an already loaded mint account.
func NewQuote(acc *tokenguard.MintAccount, amount, epoch uint64, inverse bool) (*Quote, error) {
	mint, err := tokenguard.TryDeserializeMint(acc)
	if err != nil {
		return nil, err
	}
	supported, err := tokenguard.IsSupportedMint(acc)
	if err != nil {
		return nil, err
	}
	q := &Quote{
		Mint:       acc.Key(),
		Owner:      acc.Owner,
		Decimals:   mint.Decimals,
		Extensions: mint.Extensions,
		Supported:  supported,
		Epoch:      epoch,
		Inverse:    inverse,
		Amount:     amount,
	}
	if inverse {
		included, err := tokenguard.CalculateTransferFeeIncludedAmount(acc, amount, epoch)
		if err != nil {
			return nil, err
		}
		q.Fee, q.Sent, q.Received = included.TransferFee, included.Amount, amount
	} else {
		excluded, err := tokenguard.CalculateTransferFeeExcludedAmount(acc, amount, epoch)
		if err != nil {
			return nil, err
		}
		q.Fee, q.Sent, q.Received = excluded.TransferFee, amount, excluded.Amount
	}
	return q, nil
}

// UIAmount converts a raw amount to token units.
func (q *Quote) UIAmount(raw uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(q.Decimals))
}

func (q *Quote) Fields() logrus.Fields {
	extensions := make([]string, 0, len(q.Extensions))
	for _, e := range q.Extensions {
		extensions = append(extensions, e.String())
	}
	return logrus.Fields{
		"mint":       q.Mint.String(),
		"owner":      q.Owner.String(),
		"extensions": extensions,
		"supported":  q.Supported,
		"epoch":      q.Epoch,
		"inverse":    q.Inverse,
		"fee":        q.UIAmount(q.Fee).String(),
		"sent":       q.UIAmount(q.Sent).String(),
		"received":   q.UIAmount(q.Received).String(),
	}
}
