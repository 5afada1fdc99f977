package display

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64(t *testing.T) {
	assert.Equal(t, "0", Uint64(0))
	assert.Equal(t, "123", Uint64(123))
	assert.Equal(t, "456", Uint64(456))
	assert.Equal(t, "18446744073709551615", Uint64(math.MaxUint64))
}

func TestFixedPoint(t *testing.T) {
	cases := []struct {
		v        uint64
		decimals uint8
		want     string
	}{
		{0, 0, "0"},
		{123, 0, "123"},
		{1500000, 6, "1.500000"},
		{1000000, 6, "1.000000"},
		{42, 6, "0.000042"},
		{0, 6, "0.000000"},
		{999999, 6, "0.999999"},
		{math.MaxUint64, 6, "18446744073709.551615"},
		{7, 1, "0.7"},
		{70, 1, "7.0"},
	}
	for _, tc := range cases {
		got, err := FixedPoint(tc.v, tc.decimals)
		require.NoError(t, err, "FixedPoint(%d, %d)", tc.v, tc.decimals)
		assert.Equal(t, tc.want, got, "FixedPoint(%d, %d)", tc.v, tc.decimals)
	}
}

func TestFixedPointTooManyDecimals(t *testing.T) {
	_, err := FixedPoint(1, 21)
	require.ErrorIs(t, err, ErrTooManyDecimals)
}
