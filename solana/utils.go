package solana

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ReadOptions tunes account reads.
type ReadOptions struct {
	Commitment     rpc.CommitmentType
	MinContextSlot uint64 // zero means unset
}

func (o ReadOptions) commitment() rpc.CommitmentType {
	if o.Commitment == "" {
		return rpc.CommitmentFinalized
	}
	return o.Commitment
}

func (o ReadOptions) minContextSlot() *uint64 {
	if o.MinContextSlot == 0 {
		return nil
	}
	return pointer.ToUint64(o.MinContextSlot)
}

func GetAccountInfo(ctx context.Context, rpcClient *rpc.Client, account solana.PublicKey, opts ReadOptions) (*rpc.GetAccountInfoResult, error) {
	return rpcClient.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Commitment:     opts.commitment(),
		Encoding:       solana.EncodingBase64,
		MinContextSlot: opts.minContextSlot(),
	})
}

func GetMultipleAccountInfo(ctx context.Context, rpcClient *rpc.Client, accounts []solana.PublicKey, opts ReadOptions) (*rpc.GetMultipleAccountsResult, error) {
	return rpcClient.GetMultipleAccountsWithOpts(ctx, accounts, &rpc.GetMultipleAccountsOpts{
		Commitment:     opts.commitment(),
		Encoding:       solana.EncodingBase64,
		MinContextSlot: opts.minContextSlot(),
	})
}

func GetCurrentEpoch(ctx context.Context, rpcClient *rpc.Client, opts ReadOptions) (uint64, error) {
	epochInfo, err := rpcClient.GetEpochInfo(ctx, opts.commitment())
	if err != nil {
		return 0, err
	}
	return epochInfo.Epoch, nil
}

// GetRawAccount loads a single account. rpc.ErrNotFound is returned for missing accounts.
func GetRawAccount(ctx context.Context, rpcClient *rpc.Client, account solana.PublicKey, opts ReadOptions) (*RawAccount, error) {
	out, err := GetAccountInfo(ctx, rpcClient, account, opts)
	if err != nil {
		return nil, err
	}
	if out == nil || out.Value == nil {
		return nil, rpc.ErrNotFound
	}
	return &RawAccount{
		Address: account,
		Owner:   out.Value.Owner,
		Data:    out.GetBinary(),
	}, nil
}

// GetRawAccounts loads accounts in one request. Missing accounts are nil.
func GetRawAccounts(ctx context.Context, rpcClient *rpc.Client, accounts []solana.PublicKey, opts ReadOptions) ([]*RawAccount, error) {
	outs, err := GetMultipleAccountInfo(ctx, rpcClient, accounts, opts)
	if err != nil {
		return nil, err
	}
	if len(outs.Value) != len(accounts) {
		return nil, fmt.Errorf("getMultipleAccounts returned %d accounts, want %d", len(outs.Value), len(accounts))
	}
	list := make([]*RawAccount, len(outs.Value))
	for i, out := range outs.Value {
		if out == nil {
			continue
		}
		list[i] = &RawAccount{
			Address: accounts[i],
			Owner:   out.Owner,
			Data:    out.Data.GetBinary(),
		}
	}
	return list, nil
}

func GetMultipleToken(ctx context.Context, rpcClient *rpc.Client, opts ReadOptions, tokens ...solana.PublicKey) ([]*Token, error) {
	accounts, err := GetRawAccounts(ctx, rpcClient, tokens, opts)
	if err != nil {
		return nil, err
	}
	list := make([]*Token, len(accounts))
	for i, acc := range accounts {
		if acc == nil {
			continue
		}

		token, err := new(TokenLayout).Decode(acc.Data)
		if err != nil {
			return nil, fmt.Errorf("decode mint %s: %w", acc.Address, err)
		}
		token.Address = acc.Address
		token.Owner = acc.Owner

		list[i] = token
	}
	return list, nil
}
