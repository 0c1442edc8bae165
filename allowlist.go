package tokenguard

import (
	"sync"

	"github.com/gagliardetto/solana-go"
)

// mintAllowList holds mints eligible for trading whatever extensions they carry.
var mintAllowList = [...]string{
	"HVbpJAQGNpkgBaYBZQBR1t7yFdvaYVp2vCQQfKKEN4tM", // USDP - Pax Dollar
	"FrBfWJ4qE5sCzKm3k3JaAtqZcXUh4LvJygDeketsrsH4", // ZUSD - Z.com USD
	"2u1tszSeqZ3qBWF3uNGPFc8TzMk2tdiwknnRMWGWjGWH", // USDG - Global Dollar
	"AUSD1jCcCyPLybk1YnvPWsHQSrZ46dxwoMniN4N2UEB9", // AUSD - AUSD
	"2b1kV6DkPAnxd5ixfnxCpjxmKwqjjaYmCZfHsFu24GXo", // PYUSD - Paypal USD
}

var allowListSet = sync.OnceValue(func() map[solana.PublicKey]struct{} {
	set := make(map[solana.PublicKey]struct{}, len(mintAllowList))
	for _, mint := range mintAllowList {
		set[solana.MustPublicKeyFromBase58(mint)] = struct{}{}
	}
	return set
})

// IsAllowListed reports whether mint is on the static allow-list.
func IsAllowListed(mint solana.PublicKey) bool {
	_, ok := allowListSet()[mint]
	return ok
}

// AllowList returns a copy of the allow-listed mints.
func AllowList() []solana.PublicKey {
	out := make([]solana.PublicKey, 0, len(mintAllowList))
	for _, mint := range mintAllowList {
		out = append(out, solana.MustPublicKeyFromBase58(mint))
	}
	return out
}
