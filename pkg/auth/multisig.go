package auth

import (
	"encoding/binary"
	"fmt"
)

// MultisigSpendingCondition is the variable-length witness used by the
// P2SH and P2WSH hash modes: a bounded list of auth fields plus the number
// of signatures required for the transaction to be valid. The field list
// capacity is fixed; a wire count above it is rejected before any field is
// decoded, since the count is attacker-controlled and the structure lives
// in fixed memory.
type MultisigSpendingCondition struct {
	// raw is the exact byte span consumed for this structure, from the
	// field count through the required-signature count. Kept so
	// ClearSignature can zero it in place.
	raw                []byte
	fields             [MaxAuthFields]AuthField
	numFields          uint32
	requiredSignatures uint16
}

// ParseMultisigSpendingCondition decodes a multisig witness at the head of
// buf and returns the unconsumed remainder. Any single field failure
// aborts the whole decode.
func ParseMultisigSpendingCondition(buf []byte) (MultisigSpendingCondition, []byte, error) {
	var cond MultisigSpendingCondition

	if len(buf) < 4 {
		return cond, nil, fmt.Errorf("auth field count: %w", ErrInsufficientData)
	}
	numFields := binary.BigEndian.Uint32(buf)
	if numFields > MaxAuthFields {
		return cond, nil,
			fmt.Errorf("%d auth fields exceeds capacity %d: %w", numFields, MaxAuthFields, ErrValueOutOfRange)
	}

	rest := buf[4:]
	for i := uint32(0); i < numFields; i++ {
		field, r, err := ParseAuthField(rest)
		if err != nil {
			return MultisigSpendingCondition{}, nil, fmt.Errorf("auth field %d: %w", i, err)
		}
		cond.fields[i] = field
		rest = r
	}

	if len(rest) < 2 {
		return MultisigSpendingCondition{}, nil,
			fmt.Errorf("required signature count: %w", ErrInsufficientData)
	}
	required := binary.BigEndian.Uint16(rest)
	rest = rest[2:]
	if uint32(required) > numFields {
		return MultisigSpendingCondition{}, nil,
			fmt.Errorf("%d signatures required but only %d fields: %w", required, numFields, ErrValueOutOfRange)
	}

	cond.raw = buf[:len(buf)-len(rest)]
	cond.numFields = numFields
	cond.requiredSignatures = required
	return cond, rest, nil
}

// NumFields returns the number of decoded auth fields.
func (c *MultisigSpendingCondition) NumFields() uint32 { return c.numFields }

// RequiredSignatures returns how many signatures from the potential signer
// set the transaction needs to be valid.
func (c *MultisigSpendingCondition) RequiredSignatures() uint16 { return c.requiredSignatures }

// Fields returns the decoded auth fields in wire order.
func (c *MultisigSpendingCondition) Fields() []AuthField {
	return c.fields[:c.numFields]
}

// ClearSignature canonicalizes the witness in place: every byte of the
// consumed span is zeroed except the trailing 2-byte required-signature
// count. The individual field contents are not part of the signed payload,
// but the signing policy is. Requires exclusive access to the buffer.
func (c *MultisigSpendingCondition) ClearSignature() {
	for i := 0; i < len(c.raw)-2; i++ {
		c.raw[i] = 0
	}
}
