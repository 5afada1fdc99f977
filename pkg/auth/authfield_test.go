package auth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAuthFieldVariants(t *testing.T) {
	cases := []struct {
		id       AuthFieldID
		size     int
		isPubKey bool
		encoding KeyEncoding
	}{
		{AuthFieldPublicKeyCompressed, PubKeyLen, true, KeyEncodingCompressed},
		{AuthFieldPublicKeyUncompressed, PubKeyLen, true, KeyEncodingUncompressed},
		{AuthFieldSignatureCompressed, SignatureLen, false, KeyEncodingCompressed},
		{AuthFieldSignatureUncompressed, SignatureLen, false, KeyEncodingUncompressed},
	}
	for _, tc := range cases {
		buf := authFieldBytes(tc.id, 0xab)
		buf = append(buf, 0xcd) // trailing byte must be left over

		field, rest, err := ParseAuthField(buf)
		require.NoError(t, err, "tag %d", tc.id)
		assert.Equal(t, []byte{0xcd}, rest)
		assert.Equal(t, tc.id, field.ID())
		assert.Equal(t, tc.isPubKey, field.IsPublicKey())
		assert.Equal(t, !tc.isPubKey, field.IsSignature())
		assert.Equal(t, tc.encoding, field.Encoding())
		assert.Equal(t, bytes.Repeat([]byte{0xab}, tc.size), field.Contents())
	}
}

func TestParseAuthFieldBadTag(t *testing.T) {
	for _, tag := range []byte{0x04, 0x05, 0xff} {
		buf := append([]byte{tag}, bytes.Repeat([]byte{0x00}, SignatureLen)...)
		_, _, err := ParseAuthField(buf)
		assert.ErrorIs(t, err, ErrUnexpectedValue, "tag 0x%02x", tag)
	}
}

func TestParseAuthFieldShort(t *testing.T) {
	_, _, err := ParseAuthField(nil)
	require.ErrorIs(t, err, ErrInsufficientData)

	buf := authFieldBytes(AuthFieldPublicKeyCompressed, 0x02)
	_, _, err = ParseAuthField(buf[:len(buf)-1])
	require.ErrorIs(t, err, ErrInsufficientData)

	buf = authFieldBytes(AuthFieldSignatureUncompressed, 0xff)
	_, _, err = ParseAuthField(buf[:40])
	require.ErrorIs(t, err, ErrInsufficientData)
}
