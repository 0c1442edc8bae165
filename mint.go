package tokenguard

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	solanago "github.com/krazyTry/tokenguard/solana"
	"github.com/krazyTry/tokenguard/solana/token2022"
)

// supportedExtensions leave transfer semantics untouched apart from the fee.
var supportedExtensions = map[token2022.ExtensionType]struct{}{
	token2022.ExtensionTransferFeeConfig: {},
	token2022.ExtensionMetadataPointer:   {},
	token2022.ExtensionTokenMetadata:     {},
}

// IsSupportedMint checks if the mint can be traded.
//
// Token program mints and allow-listed mints always pass. Any other mint passes
// only if each of its extensions is a transfer fee config, a metadata pointer
// or token metadata. An error is returned when the mint is not owned by a
// token program or its data is malformed.
func IsSupportedMint(mint *MintAccount) (bool, error) {
	if mint.Owner.Equals(solana.TokenProgramID) {
		return true, nil
	}
	if !solanago.IsTokenProgram(mint.Owner) {
		return false, fmt.Errorf("%w: mint %s owned by %s", ErrInvalidAccountOwner, mint.Address, mint.Owner)
	}
	if IsAllowListed(mint.Key()) {
		return true, nil
	}
	state, err := token2022.Unpack(mint.Data)
	if err != nil {
		return false, err
	}
	for _, e := range state.ExtensionTypes() {
		if _, ok := supportedExtensions[e]; !ok {
			return false, nil
		}
	}
	return true, nil
}
