package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/krazyTry/tokenguard"
	solanago "github.com/krazyTry/tokenguard/solana"
	"github.com/sirupsen/logrus"
)

type Option func(*Checker)

// WithLogger replaces the logrus standard logger.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Checker) { c.log = log }
}

// WithEpoch pins the fee epoch instead of asking the cluster.
func WithEpoch(epoch uint64) Option {
	return func(c *Checker) { c.epoch = &epoch }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.timeout = d }
}

func WithReadOptions(opts solanago.ReadOptions) Option {
	return func(c *Checker) { c.readOpts = opts }
}

// Checker loads mints over RPC and runs the tokenguard checks on them.
type Checker struct {
	rpcClient *rpc.Client
	log       *logrus.Logger
	epoch     *uint64
	timeout   time.Duration
	readOpts  solanago.ReadOptions
}

func NewChecker(rpcClient *rpc.Client, opts ...Option) *Checker {
	c := &Checker{
		rpcClient: rpcClient,
		log:       logrus.StandardLogger(),
		timeout:   time.Second * 5,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) mintAccount(ctx context.Context, mint solana.PublicKey) (*tokenguard.MintAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	acc, err := solanago.GetRawAccount(ctx, c.rpcClient, mint, c.readOpts)
	if err != nil {
		return nil, fmt.Errorf("load mint %s: %w", mint, err)
	}
	c.log.WithFields(logrus.Fields{
		"mint":  mint.String(),
		"owner": acc.Owner.String(),
		"size":  len(acc.Data),
	}).Debug("loaded mint account")
	return acc, nil
}

// Epoch returns the pinned epoch or the current cluster epoch.
func (c *Checker) Epoch(ctx context.Context) (uint64, error) {
	if c.epoch != nil {
		return *c.epoch, nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	epoch, err := solanago.GetCurrentEpoch(ctx, c.rpcClient, c.readOpts)
	if err != nil {
		return 0, fmt.Errorf("get current epoch: %w", err)
	}
	return epoch, nil
}

// SupportedMint loads the mint and checks whether it can be traded.
func (c *Checker) SupportedMint(ctx context.Context, mint solana.PublicKey) (bool, error) {
	acc, err := c.mintAccount(ctx, mint)
	if err != nil {
		return false, err
	}
	ok, err := tokenguard.IsSupportedMint(acc)
	if err != nil {
		return false, err
	}
	c.log.WithFields(logrus.Fields{"mint": mint.String(), "supported": ok}).Debug("checked mint")
	return ok, nil
}

// TransferFee returns the fee withheld when sending amount of mint.
func (c *Checker) TransferFee(ctx context.Context, mint solana.PublicKey, amount uint64) (uint64, error) {
	return c.fee(ctx, mint, amount, tokenguard.TransferFee)
}

// TransferInverseFee returns the fee to add so that amount of mint arrives.
// Unlike Quote it does not fail when amount plus the fee does not fit in a u64.
func (c *Checker) TransferInverseFee(ctx context.Context, mint solana.PublicKey, amount uint64) (uint64, error) {
	return c.fee(ctx, mint, amount, tokenguard.TransferInverseFee)
}

func (c *Checker) fee(
	ctx context.Context,
	mint solana.PublicKey,
	amount uint64,
	calc func(*tokenguard.MintAccount, uint64, uint64) (uint64, error),
) (uint64, error) {
	acc, err := c.mintAccount(ctx, mint)
	if err != nil {
		return 0, err
	}
	epoch, err := c.Epoch(ctx)
	if err != nil {
		return 0, err
	}
	fee, err := calc(acc, amount, epoch)
	if err != nil {
		return 0, err
	}
	c.log.WithFields(logrus.Fields{"mint": mint.String(), "epoch": epoch, "amount": amount, "fee": fee}).Debug("calculated transfer fee")
	return fee, nil
}

// Quote loads the mint and the epoch and builds a full Quote.
func (c *Checker) Quote(ctx context.Context, mint solana.PublicKey, amount uint64, inverse bool) (*Quote, error) {
	acc, err := c.mintAccount(ctx, mint)
	if err != nil {
		return nil, err
	}
	epoch, err := c.Epoch(ctx)
	if err != nil {
		return nil, err
	}
	q, err := NewQuote(acc, amount, epoch, inverse)
	if err != nil {
		return nil, err
	}
	c.log.WithFields(q.Fields()).Debug("quoted transfer fee")
	return q, nil
}
