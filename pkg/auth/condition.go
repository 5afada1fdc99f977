package auth

import (
	"encoding/binary"
	"fmt"
)

// TransactionSpendingCondition is the decoded authorization section of a
// transaction: the signer record plus exactly one witness, selected by the
// signer's hash mode. It is immutable after parsing except through
// ClearSignature, and is never retained beyond one signing operation.
type TransactionSpendingCondition struct {
	signer    SpendingConditionSigner
	singlesig *SinglesigSpendingCondition
	multisig  *MultisigSpendingCondition
}

// ParseTransactionSpendingCondition decodes a full spending condition at
// the head of buf and returns the unconsumed remainder. The signer record
// is decoded first; its hash mode selects the witness decoder. P2WPKH
// signers additionally require a compressed witness encoding. Parsing is
// all-or-nothing: there is no partial result.
func ParseTransactionSpendingCondition(buf []byte) (*TransactionSpendingCondition, []byte, error) {
	signer, rest, err := ParseSpendingConditionSigner(buf)
	if err != nil {
		return nil, nil, err
	}

	cond := &TransactionSpendingCondition{signer: signer}
	mode := signer.HashMode()
	if mode.IsSinglesig() {
		witness, leftover, err := ParseSinglesigSpendingCondition(rest)
		if err != nil {
			return nil, nil, err
		}
		if !witness.KeyEncoding().validForHashMode(mode) {
			return nil, nil,
				fmt.Errorf("%s signer with %s witness: %w", mode, witness.KeyEncoding(), ErrInvalidPubKeyEncoding)
		}
		cond.singlesig = &witness
		return cond, leftover, nil
	}

	witness, leftover, err := ParseMultisigSpendingCondition(rest)
	if err != nil {
		return nil, nil, err
	}
	cond.multisig = &witness
	return cond, leftover, nil
}

// Signer returns the signer record.
func (c *TransactionSpendingCondition) Signer() SpendingConditionSigner { return c.signer }

// IsSinglesig reports whether the condition carries a single-signature
// witness.
func (c *TransactionSpendingCondition) IsSinglesig() bool { return c.singlesig != nil }

// IsMultisig reports whether the condition carries a multisig witness.
func (c *TransactionSpendingCondition) IsMultisig() bool { return c.multisig != nil }

// SinglesigWitness returns the single-signature witness, or nil for a
// multisig condition.
func (c *TransactionSpendingCondition) SinglesigWitness() *SinglesigSpendingCondition {
	return c.singlesig
}

// MultisigWitness returns the multisig witness, or nil for a singlesig
// condition.
func (c *TransactionSpendingCondition) MultisigWitness() *MultisigSpendingCondition {
	return c.multisig
}

// NumAuthFields returns the multisig field count. ok is false for a
// singlesig condition.
func (c *TransactionSpendingCondition) NumAuthFields() (n uint32, ok bool) {
	if c.multisig == nil {
		return 0, false
	}
	return c.multisig.NumFields(), true
}

// RequiredSignatures returns the multisig signing policy. ok is false for
// a singlesig condition.
func (c *TransactionSpendingCondition) RequiredSignatures() (n uint16, ok bool) {
	if c.multisig == nil {
		return 0, false
	}
	return c.multisig.RequiredSignatures(), true
}

// Nonce returns the signer's account nonce.
func (c *TransactionSpendingCondition) Nonce() uint64 { return c.signer.Nonce() }

// Fee returns the fee in micro-STX.
func (c *TransactionSpendingCondition) Fee() uint64 { return c.signer.Fee() }

// NonceString renders the nonce for display.
func (c *TransactionSpendingCondition) NonceString() string { return c.signer.NonceString() }

// FeeString renders the fee for display.
func (c *TransactionSpendingCondition) FeeString() string { return c.signer.FeeString() }

// SignerAddress derives the c32-encoded signer address for the given
// network.
func (c *TransactionSpendingCondition) SignerAddress(net Network) (string, error) {
	return c.signer.SignerAddress(net)
}

// SignerPubKeyHash returns the 20-byte public key hash from the signer
// record.
func (c *TransactionSpendingCondition) SignerPubKeyHash() []byte {
	return c.signer.PubKeyHash()
}

// ClearSignature canonicalizes the witness in place so the buffer holds
// the deterministic placeholder the pre-signature digest is computed over.
// Idempotent. Requires exclusive access to the input buffer: no other
// reader may touch it during the call.
func (c *TransactionSpendingCondition) ClearSignature() {
	if c.singlesig != nil {
		c.singlesig.ClearSignature()
		return
	}
	c.multisig.ClearSignature()
}

// InitSighash writes the canonical authorization placeholder into dst and
// returns the number of bytes written: 82 zero bytes for singlesig, or
// 20 zero bytes plus the big-endian required-signature count for multisig.
// The caller prepends this to the rest of the transaction when computing
// the pre-signature digest. Fails with ErrNoData if dst is too small.
func (c *TransactionSpendingCondition) InitSighash(dst []byte) (int, error) {
	if c.IsSinglesig() && len(dst) >= singlesigSighashLen {
		for i := 0; i < singlesigSighashLen; i++ {
			dst[i] = 0
		}
		return singlesigSighashLen, nil
	}
	if c.IsMultisig() && len(dst) >= multisigSighashLen {
		for i := 0; i < multisigSighashLen-2; i++ {
			dst[i] = 0
		}
		binary.BigEndian.PutUint16(dst[multisigSighashLen-2:multisigSighashLen], c.multisig.RequiredSignatures())
		return multisigSighashLen, nil
	}
	return 0, fmt.Errorf("sighash placeholder needs %d bytes, have %d: %w",
		c.placeholderLen(), len(dst), ErrNoData)
}

func (c *TransactionSpendingCondition) placeholderLen() int {
	if c.IsSinglesig() {
		return singlesigSighashLen
	}
	return multisigSighashLen
}
