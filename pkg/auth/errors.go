package auth

import "errors"

// Decoding is all-or-nothing: any failure from a sub-decoder aborts the
// whole parse with one of these sentinels, possibly wrapped with context
// via fmt.Errorf and %w. Callers match with errors.Is. A signing flow must
// treat every one of them as "reject the transaction": never retried,
// never substituted with a default.
var (
	// ErrInsufficientData means the buffer is shorter than a fixed or
	// declared length.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrUnexpectedValue means a tag or discriminant byte is outside its
	// known set.
	ErrUnexpectedValue = errors.New("unexpected value")

	// ErrInvalidPubKeyEncoding means the key encoding is not a known
	// value, or is incompatible with the signer's hash mode.
	ErrInvalidPubKeyEncoding = errors.New("invalid public key encoding")

	// ErrValueOutOfRange means a count exceeds its bound: more auth
	// fields than capacity, or more required signatures than fields.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrNoData means a destination buffer is too small for a canonical
	// sighash placeholder.
	ErrNoData = errors.New("no data")
)
