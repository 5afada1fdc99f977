package auth

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMultisigAtCapacity(t *testing.T) {
	fields := make([][]byte, MaxAuthFields)
	for i := range fields {
		fields[i] = authFieldBytes(AuthFieldPublicKeyCompressed, byte(i))
	}
	buf := multisigBytes(MaxAuthFields, MaxAuthFields, fields...)

	cond, rest, err := ParseMultisigSpendingCondition(buf)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, uint32(MaxAuthFields), cond.NumFields())
	assert.Equal(t, uint16(MaxAuthFields), cond.RequiredSignatures())
	assert.Len(t, cond.Fields(), MaxAuthFields)
	assert.Equal(t, bytes.Repeat([]byte{0x05}, PubKeyLen), cond.Fields()[5].Contents())
}

func TestParseMultisigEmptySet(t *testing.T) {
	cond, rest, err := ParseMultisigSpendingCondition(multisigBytes(0, 0))
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, uint32(0), cond.NumFields())
	assert.Equal(t, uint16(0), cond.RequiredSignatures())
	assert.Empty(t, cond.Fields())
}

func TestParseMultisigCountChecksBeforeFields(t *testing.T) {
	// Only the 4 count bytes are present: an oversized count must fail
	// on the range check, not on missing field bytes.
	buf := binary.BigEndian.AppendUint32(nil, MaxAuthFields+1)
	_, _, err := ParseMultisigSpendingCondition(buf)
	require.ErrorIs(t, err, ErrValueOutOfRange)

	_, _, err = ParseMultisigSpendingCondition(buf[:3])
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestMultisigRawSpan(t *testing.T) {
	witness := multisigBytes(1, 1, authFieldBytes(AuthFieldSignatureCompressed, 0xff))
	trailer := []byte{0x01, 0x02}
	buf := append(append([]byte(nil), witness...), trailer...)

	cond, rest, err := ParseMultisigSpendingCondition(buf)
	require.NoError(t, err)
	assert.Equal(t, trailer, rest)

	// Clearing zeroes exactly the consumed span, nothing past it.
	cond.ClearSignature()
	assert.Equal(t, bytes.Repeat([]byte{0x00}, len(witness)-2), buf[:len(witness)-2])
	assert.Equal(t, []byte{0x00, 0x01}, buf[len(witness)-2:len(witness)])
	assert.Equal(t, trailer, buf[len(witness):])
}
