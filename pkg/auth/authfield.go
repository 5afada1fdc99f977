package auth

import "fmt"

// AuthFieldID is the wire tag of one multisig auth field. It encodes both
// the field kind (public key or signature) and the key encoding.
type AuthFieldID uint8

const (
	AuthFieldPublicKeyCompressed   AuthFieldID = 0x00
	AuthFieldPublicKeyUncompressed AuthFieldID = 0x01
	AuthFieldSignatureCompressed   AuthFieldID = 0x02
	AuthFieldSignatureUncompressed AuthFieldID = 0x03
)

// AuthField is one slot in a multisig witness set. A potential co-signer
// appears either as a bare public key (has not signed yet) or as a
// recoverable signature from which the public key can be recovered (has
// signed). The contents are a view into the input buffer.
type AuthField struct {
	id       AuthFieldID
	contents []byte // PubKeyLen or SignatureLen bytes
}

// ParseAuthField decodes one tagged auth field at the head of buf and
// returns the unconsumed remainder.
func ParseAuthField(buf []byte) (AuthField, []byte, error) {
	if len(buf) < 1 {
		return AuthField{}, nil, fmt.Errorf("auth field tag: %w", ErrInsufficientData)
	}
	id := AuthFieldID(buf[0])
	var n int
	switch id {
	case AuthFieldPublicKeyCompressed, AuthFieldPublicKeyUncompressed:
		n = PubKeyLen
	case AuthFieldSignatureCompressed, AuthFieldSignatureUncompressed:
		n = SignatureLen
	default:
		return AuthField{}, nil, fmt.Errorf("auth field tag 0x%02x: %w", buf[0], ErrUnexpectedValue)
	}
	if len(buf) < 1+n {
		return AuthField{}, nil,
			fmt.Errorf("auth field contents need %d bytes, have %d: %w", n, len(buf)-1, ErrInsufficientData)
	}
	return AuthField{id: id, contents: buf[1 : 1+n]}, buf[1+n:], nil
}

// ID returns the wire tag.
func (f AuthField) ID() AuthFieldID { return f.id }

// IsPublicKey reports whether the field carries a bare public key.
func (f AuthField) IsPublicKey() bool {
	return f.id == AuthFieldPublicKeyCompressed || f.id == AuthFieldPublicKeyUncompressed
}

// IsSignature reports whether the field carries a recoverable signature.
func (f AuthField) IsSignature() bool {
	return f.id == AuthFieldSignatureCompressed || f.id == AuthFieldSignatureUncompressed
}

// Encoding returns the key encoding the tag implies.
func (f AuthField) Encoding() KeyEncoding {
	if f.id == AuthFieldPublicKeyCompressed || f.id == AuthFieldSignatureCompressed {
		return KeyEncodingCompressed
	}
	return KeyEncodingUncompressed
}

// Contents returns the field payload: 33 bytes for public key fields,
// 65 bytes for signature fields.
func (f AuthField) Contents() []byte { return f.contents }
