// Package address implements the c32check text encoding used by Stacks
// addresses: Crockford base32 over a version byte, a 20-byte Hash160 and a
// 4-byte double-SHA256 checksum, prefixed with 'S'.
package address

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
)

const c32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// HashLen is the payload size of a c32check address.
const HashLen = 20

var (
	// ErrInvalidCharacter means the input contains a byte outside the
	// c32 alphabet after normalization.
	ErrInvalidCharacter = errors.New("invalid c32 character")

	// ErrChecksumMismatch means the embedded checksum does not match the
	// decoded payload.
	ErrChecksumMismatch = errors.New("c32 checksum mismatch")

	// ErrInvalidAddress means the input is not a well-formed c32check
	// address.
	ErrInvalidAddress = errors.New("invalid c32 address")
)

// Encode renders data as c32. Leading zero bytes are preserved as leading
// '0' characters.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	// Emit 5-bit groups starting from the least significant byte; the
	// result is built backwards and reversed at the end.
	out := make([]byte, 0, (len(data)*8+4)/5)
	carry := uint16(0)
	carryBits := uint(0)
	for i := len(data) - 1; i >= 0; i-- {
		b := uint16(data[i])
		lowBitsToTake := 5 - carryBits
		lowBits := b & (1<<lowBitsToTake - 1)
		out = append(out, c32Alphabet[(lowBits<<carryBits)+carry])
		carryBits = (8 + carryBits) - 5
		carry = b >> (8 - carryBits)
		if carryBits >= 5 {
			out = append(out, c32Alphabet[carry&0x1f])
			carryBits -= 5
			carry >>= 5
		}
	}
	if carryBits > 0 {
		out = append(out, c32Alphabet[carry])
	}

	// Drop the zero digits now sitting at the tail, then re-add one '0'
	// per leading zero byte of the input.
	for len(out) > 0 && out[len(out)-1] == '0' {
		out = out[:len(out)-1]
	}
	for _, b := range data {
		if b != 0 {
			break
		}
		out = append(out, '0')
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// normalize maps the homoglyphs Crockford base32 accepts onto the
// canonical alphabet: lowercase folded up, O to 0, I and L to 1.
func normalize(s string) string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "O", "0")
	s = strings.ReplaceAll(s, "L", "1")
	s = strings.ReplaceAll(s, "I", "1")
	return s
}

// Decode parses a c32 string back into bytes, accepting Crockford
// homoglyphs and either case.
func Decode(s string) ([]byte, error) {
	s = normalize(s)
	if len(s) == 0 {
		return nil, nil
	}

	out := make([]byte, 0, len(s)*5/8+1)
	carry := uint16(0)
	carryBits := uint(0)
	for i := len(s) - 1; i >= 0; i-- {
		v := strings.IndexByte(c32Alphabet, s[i])
		if v < 0 {
			return nil, fmt.Errorf("%q: %w", s[i], ErrInvalidCharacter)
		}
		carry += uint16(v) << carryBits
		carryBits += 5
		if carryBits >= 8 {
			out = append(out, byte(carry&0xff))
			carryBits -= 8
			carry >>= 8
		}
	}
	if carryBits > 0 {
		out = append(out, byte(carry))
	}

	for len(out) > 0 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}
	for i := 0; i < len(s) && s[i] == '0'; i++ {
		out = append(out, 0)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// checksum is the first 4 bytes of the double SHA-256 over the version
// byte followed by the payload.
func checksum(version byte, payload []byte) [4]byte {
	buf := make([]byte, 0, 1+len(payload))
	buf = append(buf, version)
	buf = append(buf, payload...)
	first := sha256.Sum256(buf)
	second := sha256.Sum256(first[:])
	var out [4]byte
	copy(out[:], second[:4])
	return out
}

// C32Address encodes a version byte and 20-byte hash as a checksummed
// Stacks address, e.g. "SP..." for mainnet singlesig.
func C32Address(version byte, hash []byte) (string, error) {
	if len(hash) != HashLen {
		return "", fmt.Errorf("hash must be %d bytes, got %d: %w", HashLen, len(hash), ErrInvalidAddress)
	}
	if int(version) >= len(c32Alphabet) {
		return "", fmt.Errorf("version %d out of c32 range: %w", version, ErrInvalidAddress)
	}

	check := checksum(version, hash)
	payload := make([]byte, 0, HashLen+4)
	payload = append(payload, hash...)
	payload = append(payload, check[:]...)

	var b strings.Builder
	b.Grow(2 + (len(payload)*8+4)/5)
	b.WriteByte('S')
	b.WriteByte(c32Alphabet[version])
	b.WriteString(Encode(payload))
	return b.String(), nil
}

// DecodeC32Address parses a checksummed Stacks address back into its
// version byte and 20-byte hash, verifying the checksum.
func DecodeC32Address(addr string) (byte, []byte, error) {
	norm := normalize(addr)
	if len(norm) < 3 || norm[0] != 'S' {
		return 0, nil, fmt.Errorf("%q: %w", addr, ErrInvalidAddress)
	}
	version := strings.IndexByte(c32Alphabet, norm[1])
	if version < 0 {
		return 0, nil, fmt.Errorf("version character %q: %w", norm[1], ErrInvalidAddress)
	}

	data, err := Decode(norm[2:])
	if err != nil {
		return 0, nil, err
	}
	if len(data) != HashLen+4 {
		return 0, nil, fmt.Errorf("payload is %d bytes, want %d: %w", len(data), HashLen+4, ErrInvalidAddress)
	}

	hash := data[:HashLen]
	want := checksum(byte(version), hash)
	got := data[HashLen:]
	for i := range want {
		if got[i] != want[i] {
			return 0, nil, ErrChecksumMismatch
		}
	}
	return byte(version), hash, nil
}
