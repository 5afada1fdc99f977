package address

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBase58Address(t *testing.T) {
	hash, err := hex.DecodeString("a46ff88886c2ef9762d970b4d2c63678835bd39d")
	require.NoError(t, err)

	cases := []struct {
		b58Version byte
		c32Version byte
	}{
		{0, 22},
		{5, 20},
		{111, 26},
		{196, 21},
	}
	for _, tc := range cases {
		legacy := base58.CheckEncode(hash, tc.b58Version)

		got, err := FromBase58Address(legacy)
		require.NoError(t, err, "b58 version %d", tc.b58Version)

		want, err := C32Address(tc.c32Version, hash)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFromBase58AddressMainnetVector(t *testing.T) {
	hash, err := hex.DecodeString("a46ff88886c2ef9762d970b4d2c63678835bd39d")
	require.NoError(t, err)

	got, err := FromBase58Address(base58.CheckEncode(hash, 0))
	require.NoError(t, err)
	assert.Equal(t, "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7", got)
}

func TestFromBase58AddressErrors(t *testing.T) {
	// Tampered checksum.
	_, err := FromBase58Address("1FzTxL9Mxnm2fdmnQEArfhzJHevwbvcH6e")
	require.Error(t, err)

	// Valid checksum, unmapped version byte.
	hash := make([]byte, 20)
	_, err = FromBase58Address(base58.CheckEncode(hash, 42))
	require.ErrorIs(t, err, ErrInvalidAddress)

	_, err = FromBase58Address("")
	require.Error(t, err)
}
