package main

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/krazyTry/tokenguard"
	"github.com/mr-tron/base58"
	"github.com/tidwall/gjson"
)

// parseAccountDump reads the output of `solana account <address> --output json`.
func parseAccountDump(raw []byte) (*tokenguard.MintAccount, error) {
	/*
		{
			"pubkey": "2b1kV6DkPAnxd5ixfnxCpjxmKwqjjaYmCZfHsFu24GXo",
			"account": {
				"lamports": 4392391,
				"data": ["AQAAAN...", "base64"],
				"owner": "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb",
				"executable": false,
				"rentEpoch": 18446744073709551615,
				"space": 503
			}
		}
	*/
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("account dump is not valid JSON")
	}
	doc := gjson.ParseBytes(raw)

	address, err := solana.PublicKeyFromBase58(doc.Get("pubkey").String())
	if err != nil {
		return nil, fmt.Errorf("pubkey: %w", err)
	}
	owner, err := solana.PublicKeyFromBase58(doc.Get("account.owner").String())
	if err != nil {
		return nil, fmt.Errorf("account.owner: %w", err)
	}

	encoded := doc.Get("account.data.0")
	encoding := doc.Get("account.data.1").String()
	if !encoded.Exists() {
		return nil, errors.New("account.data missing")
	}
	var data []byte
	switch encoding {
	case "base64":
		data, err = base64.StdEncoding.DecodeString(encoded.String())
	case "base58":
		data, err = base58.Decode(encoded.String())
	default:
		return nil, fmt.Errorf("account.data: unsupported encoding %q", encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("account.data: %w", err)
	}

	return &tokenguard.MintAccount{Address: address, Owner: owner, Data: data}, nil
}
