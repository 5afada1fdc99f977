// Package auth decodes the authorization ("spending condition") section of
// a Stacks transaction.
//
// The input buffer comes from an untrusted host: every decoder here is
// bounded, allocation-free, and rejects malformed input outright. Decoded
// structures are read-only views over the caller's buffer; they stay valid
// only as long as that buffer does, and canonicalization (ClearSignature,
// see the sighash computation) mutates the buffer in place.
//
// Wire layout (all integers big-endian):
//
//	signer record (37 bytes): hash mode (1) | pubkey hash (20) | nonce (8) | fee (8)
//	singlesig witness (66):   key encoding (1) | recoverable signature (65)
//	multisig witness:         field count (4) | fields... | required signatures (2)
//	auth field:               tag (1) | pubkey (33) or signature (65)
package auth

// Network selects which address version bytes signer addresses use.
type Network uint8

const (
	NetworkMainnet Network = iota
	NetworkTestnet
)

// HashMode is the signer-address derivation scheme. It selects both the
// witness layout that follows the signer record and the c32 address
// version byte.
type HashMode uint8

const (
	HashModeP2PKH  HashMode = 0x00
	HashModeP2WPKH HashMode = 0x01
	HashModeP2SH   HashMode = 0x02
	HashModeP2WSH  HashMode = 0x03
)

// c32 address version bytes. P2PKH uses the singlesig versions, every
// other mode the multisig ones.
const (
	versionMainnetSinglesig byte = 22
	versionMainnetMultisig  byte = 20
	versionTestnetSinglesig byte = 26
	versionTestnetMultisig  byte = 21
)

// hashModeFromByte validates a wire byte against the known hash modes.
func hashModeFromByte(b byte) (HashMode, error) {
	switch m := HashMode(b); m {
	case HashModeP2PKH, HashModeP2WPKH, HashModeP2SH, HashModeP2WSH:
		return m, nil
	default:
		return 0, ErrUnexpectedValue
	}
}

// IsSinglesig reports whether the mode selects the single-signature
// witness layout.
func (m HashMode) IsSinglesig() bool {
	return m == HashModeP2PKH || m == HashModeP2WPKH
}

// AddressVersion returns the c32 address version byte for the mode on the
// given network.
func (m HashMode) AddressVersion(net Network) byte {
	if net == NetworkTestnet {
		if m == HashModeP2PKH {
			return versionTestnetSinglesig
		}
		return versionTestnetMultisig
	}
	if m == HashModeP2PKH {
		return versionMainnetSinglesig
	}
	return versionMainnetMultisig
}

func (m HashMode) String() string {
	switch m {
	case HashModeP2PKH:
		return "P2PKH"
	case HashModeP2WPKH:
		return "P2WPKH"
	case HashModeP2SH:
		return "P2SH"
	case HashModeP2WSH:
		return "P2WSH"
	default:
		return "unknown"
	}
}

// KeyEncoding is how a public key (given raw or embedded in a recoverable
// signature) is encoded on the wire.
type KeyEncoding uint8

const (
	KeyEncodingCompressed   KeyEncoding = 0x00
	KeyEncodingUncompressed KeyEncoding = 0x01
)

// validForHashMode enforces the protocol rule that P2WPKH witnesses may
// only be derived from compressed public keys (BIPs 141/143).
func (e KeyEncoding) validForHashMode(mode HashMode) bool {
	return mode != HashModeP2WPKH || e == KeyEncodingCompressed
}

func (e KeyEncoding) String() string {
	switch e {
	case KeyEncodingCompressed:
		return "compressed"
	case KeyEncodingUncompressed:
		return "uncompressed"
	default:
		return "unknown"
	}
}

// Structure sizes on the wire.
const (
	// SignerLen is the fixed signer record size: 1-byte hash mode,
	// 20-byte public key hash, 8-byte nonce, 8-byte fee.
	SignerLen = 37

	// SinglesigWitnessLen is the fixed single-signature witness size:
	// 1-byte key encoding plus a 65-byte recoverable signature.
	SinglesigWitnessLen = 66

	// PubKeyHashLen is the size of the Hash160 digest in the signer record.
	PubKeyHashLen = 20

	// PubKeyLen is the compressed public key size carried by pubkey
	// auth fields. Uncompressed keys are hashed, never carried raw.
	PubKeyLen = 33

	// SignatureLen is the recoverable signature size: 1-byte recovery id
	// plus the 64-byte (r, s) pair.
	SignatureLen = 65

	// MaxAuthFields bounds the multisig field list. The wire count is
	// attacker-controlled, so anything above this fails before a single
	// field is decoded.
	MaxAuthFields = 16

	// singlesigSighashLen is the canonical singlesig placeholder:
	// 16-byte fee and nonce plus the 66-byte cleared witness.
	singlesigSighashLen = 82

	// multisigSighashLen is the canonical multisig placeholder:
	// 16-byte fee and nonce, 4-byte field count, 2-byte required count.
	multisigSighashLen = 22
)
