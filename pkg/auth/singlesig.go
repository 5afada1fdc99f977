package auth

import "fmt"

// SinglesigSpendingCondition is a view over the fixed 66-byte witness used
// by the P2PKH and P2WPKH hash modes: a key-encoding tag followed by one
// 65-byte recoverable signature.
type SinglesigSpendingCondition struct {
	data []byte // exactly SinglesigWitnessLen bytes
}

// ParseSinglesigSpendingCondition decodes a single-signature witness at the
// head of buf and returns the unconsumed remainder. The encoding tag must
// be a known value; the signature bytes are opaque here.
func ParseSinglesigSpendingCondition(buf []byte) (SinglesigSpendingCondition, []byte, error) {
	if len(buf) < SinglesigWitnessLen {
		return SinglesigSpendingCondition{}, nil,
			fmt.Errorf("singlesig witness needs %d bytes, have %d: %w", SinglesigWitnessLen, len(buf), ErrInsufficientData)
	}
	switch KeyEncoding(buf[0]) {
	case KeyEncodingCompressed, KeyEncodingUncompressed:
	default:
		return SinglesigSpendingCondition{}, nil,
			fmt.Errorf("key encoding 0x%02x: %w", buf[0], ErrInvalidPubKeyEncoding)
	}
	return SinglesigSpendingCondition{data: buf[:SinglesigWitnessLen]}, buf[SinglesigWitnessLen:], nil
}

// KeyEncoding returns the witness key encoding.
func (c SinglesigSpendingCondition) KeyEncoding() KeyEncoding {
	return KeyEncoding(c.data[0])
}

// Signature returns the 65-byte recoverable signature as a view into the
// input buffer.
func (c SinglesigSpendingCondition) Signature() []byte {
	return c.data[1:SinglesigWitnessLen]
}

// ClearSignature canonicalizes the witness in place: the encoding tag is
// reset to Compressed and the signature is zeroed. The signature cannot be
// part of the payload it signs, so the pre-signature digest is computed
// over this fixed placeholder. Requires exclusive access to the buffer.
func (c SinglesigSpendingCondition) ClearSignature() {
	c.data[0] = byte(KeyEncodingCompressed)
	for i := 1; i < SinglesigWitnessLen; i++ {
		c.data[i] = 0
	}
}
