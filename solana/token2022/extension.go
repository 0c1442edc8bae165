package token2022

import "fmt"

// ExtensionType is the TLV tag identifying a Token-2022 extension.
type ExtensionType uint16

const (
	ExtensionUninitialized ExtensionType = iota
	ExtensionTransferFeeConfig
	ExtensionTransferFeeAmount
	ExtensionMintCloseAuthority
	ExtensionConfidentialTransferMint
	ExtensionConfidentialTransferAccount
	ExtensionDefaultAccountState
	ExtensionImmutableOwner
	ExtensionMemoTransfer
	ExtensionNonTransferable
	ExtensionInterestBearingConfig
	ExtensionCpiGuard
	ExtensionPermanentDelegate
	ExtensionNonTransferableAccount
	ExtensionTransferHook
	ExtensionTransferHookAccount
	ExtensionConfidentialTransferFeeConfig
	ExtensionConfidentialTransferFeeAmount
	ExtensionMetadataPointer
	ExtensionTokenMetadata
	ExtensionGroupPointer
	ExtensionTokenGroup
	ExtensionGroupMemberPointer
	ExtensionTokenGroupMember
	ExtensionConfidentialMintBurn
	ExtensionScaledUiAmount
	ExtensionPausable
	ExtensionPausableAccount
)

var extensionNames = map[ExtensionType]string{
	ExtensionUninitialized:                 "uninitialized",
	ExtensionTransferFeeConfig:             "transferFeeConfig",
	ExtensionTransferFeeAmount:             "transferFeeAmount",
	ExtensionMintCloseAuthority:            "mintCloseAuthority",
	ExtensionConfidentialTransferMint:      "confidentialTransferMint",
	ExtensionConfidentialTransferAccount:   "confidentialTransferAccount",
	ExtensionDefaultAccountState:           "defaultAccountState",
	ExtensionImmutableOwner:                "immutableOwner",
	ExtensionMemoTransfer:                  "memoTransfer",
	ExtensionNonTransferable:               "nonTransferable",
	ExtensionInterestBearingConfig:         "interestBearingConfig",
	ExtensionCpiGuard:                      "cpiGuard",
	ExtensionPermanentDelegate:             "permanentDelegate",
	ExtensionNonTransferableAccount:        "nonTransferableAccount",
	ExtensionTransferHook:                  "transferHook",
	ExtensionTransferHookAccount:           "transferHookAccount",
	ExtensionConfidentialTransferFeeConfig: "confidentialTransferFeeConfig",
	ExtensionConfidentialTransferFeeAmount: "confidentialTransferFeeAmount",
	ExtensionMetadataPointer:               "metadataPointer",
	ExtensionTokenMetadata:                 "tokenMetadata",
	ExtensionGroupPointer:                  "groupPointer",
	ExtensionTokenGroup:                    "tokenGroup",
	ExtensionGroupMemberPointer:            "groupMemberPointer",
	ExtensionTokenGroupMember:              "tokenGroupMember",
	ExtensionConfidentialMintBurn:          "confidentialMintBurn",
	ExtensionScaledUiAmount:                "scaledUiAmount",
	ExtensionPausable:                      "pausable",
	ExtensionPausableAccount:               "pausableAccount",
}

// Known reports whether t is an extension type this package can name.
func (t ExtensionType) Known() bool {
	_, ok := extensionNames[t]
	return ok
}

func (t ExtensionType) String() string {
	if name, ok := extensionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint16(t))
}

// Extension is one TLV entry found after the base mint.
// Value aliases the account data it was decoded from.
type Extension struct {
	Type  ExtensionType
	Value []byte
}
