// Package display renders integers for the approval screen. Everything
// here formats into fixed-size stack buffers; the only allocation is the
// returned string itself.
package display

import (
	"errors"
	"strconv"
)

// MaxUint64Digits is the longest decimal rendering of a uint64.
const MaxUint64Digits = 20

// ErrTooManyDecimals means the requested fractional width exceeds what a
// uint64 rendering can carry.
var ErrTooManyDecimals = errors.New("too many decimal places")

// Uint64 renders v in decimal.
func Uint64(v uint64) string {
	var buf [MaxUint64Digits]byte
	return string(strconv.AppendUint(buf[:0], v, 10))
}

// FixedPoint renders v as a decimal with the given number of fractional
// digits, e.g. FixedPoint(1500000, 6) == "1.500000" for a micro-STX fee.
func FixedPoint(v uint64, decimals uint8) (string, error) {
	if decimals == 0 {
		return Uint64(v), nil
	}
	if int(decimals) > MaxUint64Digits {
		return "", ErrTooManyDecimals
	}

	digits := Uint64(v)
	d := int(decimals)

	// Pad to at least one integer digit: "42" with 6 decimals becomes
	// "0.000042".
	var buf [MaxUint64Digits*2 + 2]byte
	out := buf[:0]
	if len(digits) <= d {
		out = append(out, '0', '.')
		for i := 0; i < d-len(digits); i++ {
			out = append(out, '0')
		}
		out = append(out, digits...)
		return string(out), nil
	}

	out = append(out, digits[:len(digits)-d]...)
	out = append(out, '.')
	out = append(out, digits[len(digits)-d:]...)
	return string(out), nil
}
