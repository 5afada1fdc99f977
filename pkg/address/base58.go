package address

import (
	"fmt"

	"github.com/btcsuite/btcutil/base58"
)

// Legacy base58check address version bytes and the Stacks versions they
// map onto.
const (
	b58VersionP2PKH        byte = 0   // mainnet pay-to-pubkey-hash
	b58VersionP2SH         byte = 5   // mainnet pay-to-script-hash
	b58VersionTestnetP2PKH byte = 111 // testnet pay-to-pubkey-hash
	b58VersionTestnetP2SH  byte = 196 // testnet pay-to-script-hash

	c32VersionMainnetSinglesig byte = 22
	c32VersionMainnetMultisig  byte = 20
	c32VersionTestnetSinglesig byte = 26
	c32VersionTestnetMultisig  byte = 21
)

// FromBase58Address converts a legacy base58check address into the
// equivalent c32check Stacks address: same Hash160, mapped version byte.
func FromBase58Address(addr string) (string, error) {
	hash, version, err := base58.CheckDecode(addr)
	if err != nil {
		return "", fmt.Errorf("decoding base58check address: %w", err)
	}

	var c32Version byte
	switch version {
	case b58VersionP2PKH:
		c32Version = c32VersionMainnetSinglesig
	case b58VersionP2SH:
		c32Version = c32VersionMainnetMultisig
	case b58VersionTestnetP2PKH:
		c32Version = c32VersionTestnetSinglesig
	case b58VersionTestnetP2SH:
		c32Version = c32VersionTestnetMultisig
	default:
		return "", fmt.Errorf("base58 version 0x%02x has no c32 mapping: %w", version, ErrInvalidAddress)
	}

	return C32Address(c32Version, hash)
}
