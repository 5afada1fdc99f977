package address

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	cases := [][]byte{
		{0x00},
		{0x01},
		{0xff},
		{0x00, 0x00, 0x01},
		{0x00, 0xff, 0x00},
		bytes.Repeat([]byte{0x11}, 20),
		bytes.Repeat([]byte{0x00}, 20),
		{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03},
	}
	for _, data := range cases {
		encoded := Encode(data)
		decoded, err := Decode(encoded)
		require.NoError(t, err, "input %x", data)
		assert.Equal(t, data, decoded, "input %x encoded to %q", data, encoded)
	}
}

func TestEncodePreservesLeadingZeros(t *testing.T) {
	withZeros := Encode([]byte{0x00, 0x00, 0x01})
	without := Encode([]byte{0x01})
	assert.Equal(t, "00"+without, withZeros)

	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "0", Encode([]byte{0x00}))
}

func TestDecodeNormalization(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	encoded := Encode(data)

	// Lowercase and Crockford homoglyphs decode to the same bytes.
	mangled := ""
	for _, c := range encoded {
		switch c {
		case '0':
			mangled += "O"
		case '1':
			mangled += "l"
		default:
			mangled += string(c + 'a' - 'A')
		}
	}
	decoded, err := Decode(mangled)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestDecodeRejectsBadCharacters(t *testing.T) {
	_, err := Decode("U*")
	require.ErrorIs(t, err, ErrInvalidCharacter)

	_, err = Decode("ABC-DEF")
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestC32AddressKnownVector(t *testing.T) {
	hash, err := hex.DecodeString("a46ff88886c2ef9762d970b4d2c63678835bd39d")
	require.NoError(t, err)

	addr, err := C32Address(22, hash)
	require.NoError(t, err)
	assert.Equal(t, "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7", addr)
}

func TestC32AddressRoundtrip(t *testing.T) {
	hash := bytes.Repeat([]byte{0x11}, HashLen)
	for _, version := range []byte{20, 21, 22, 26} {
		addr, err := C32Address(version, hash)
		require.NoError(t, err)
		assert.Equal(t, byte('S'), addr[0])

		gotVersion, gotHash, err := DecodeC32Address(addr)
		require.NoError(t, err, "address %q", addr)
		assert.Equal(t, version, gotVersion)
		assert.Equal(t, hash, gotHash)
	}
}

func TestC32AddressZeroHash(t *testing.T) {
	addr, err := C32Address(22, make([]byte, HashLen))
	require.NoError(t, err)

	version, hash, err := DecodeC32Address(addr)
	require.NoError(t, err)
	assert.Equal(t, byte(22), version)
	assert.Equal(t, make([]byte, HashLen), hash)
}

func TestC32AddressErrors(t *testing.T) {
	_, err := C32Address(22, make([]byte, 19))
	require.ErrorIs(t, err, ErrInvalidAddress)

	_, err = C32Address(32, make([]byte, HashLen))
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDecodeC32AddressErrors(t *testing.T) {
	_, _, err := DecodeC32Address("")
	require.ErrorIs(t, err, ErrInvalidAddress)

	_, _, err = DecodeC32Address("XP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7")
	require.ErrorIs(t, err, ErrInvalidAddress)

	// Flip one payload character: the checksum must catch it.
	addr, err := C32Address(22, bytes.Repeat([]byte{0x42}, HashLen))
	require.NoError(t, err)
	tampered := []byte(addr)
	if tampered[5] != 'A' {
		tampered[5] = 'A'
	} else {
		tampered[5] = 'B'
	}
	_, _, err = DecodeC32Address(string(tampered))
	require.Error(t, err)
}
