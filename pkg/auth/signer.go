package auth

import (
	"encoding/binary"
	"fmt"

	"github.com/suffix-labs/stacks-signer/pkg/address"
	"github.com/suffix-labs/stacks-signer/pkg/display"
)

// SpendingConditionSigner is a read-only view over the fixed 37-byte signer
// record at the head of a spending condition: hash mode, public key hash,
// nonce and fee. It borrows the caller's buffer and stays valid only as
// long as the buffer does.
type SpendingConditionSigner struct {
	data []byte // exactly SignerLen bytes
}

// ParseSpendingConditionSigner decodes the signer record at the head of buf
// and returns the unconsumed remainder. The hash-mode byte is validated
// here; everything past it is fixed-offset and cannot fail later.
func ParseSpendingConditionSigner(buf []byte) (SpendingConditionSigner, []byte, error) {
	if len(buf) < SignerLen {
		return SpendingConditionSigner{}, nil,
			fmt.Errorf("signer record needs %d bytes, have %d: %w", SignerLen, len(buf), ErrInsufficientData)
	}
	if _, err := hashModeFromByte(buf[0]); err != nil {
		return SpendingConditionSigner{}, nil,
			fmt.Errorf("hash mode 0x%02x: %w", buf[0], err)
	}
	return SpendingConditionSigner{data: buf[:SignerLen]}, buf[SignerLen:], nil
}

// HashMode returns the signer's hash mode. The byte was validated at parse
// time.
func (s SpendingConditionSigner) HashMode() HashMode {
	m, _ := hashModeFromByte(s.data[0])
	return m
}

// PubKeyHash returns the 20-byte Hash160 of the signing key set. The bytes
// are a view into the input buffer and are opaque at this layer.
func (s SpendingConditionSigner) PubKeyHash() []byte {
	return s.data[1 : 1+PubKeyHashLen]
}

// Nonce returns the account nonce.
func (s SpendingConditionSigner) Nonce() uint64 {
	return binary.BigEndian.Uint64(s.data[21:29])
}

// Fee returns the fee in micro-STX.
func (s SpendingConditionSigner) Fee() uint64 {
	return binary.BigEndian.Uint64(s.data[29:37])
}

// NonceString renders the nonce for display.
func (s SpendingConditionSigner) NonceString() string {
	return display.Uint64(s.Nonce())
}

// FeeString renders the fee for display.
func (s SpendingConditionSigner) FeeString() string {
	return display.Uint64(s.Fee())
}

// SignerAddress derives the c32-encoded signer address for the given
// network. The hash mode selects the address version byte.
func (s SpendingConditionSigner) SignerAddress(net Network) (string, error) {
	return address.C32Address(s.HashMode().AddressVersion(net), s.PubKeyHash())
}
