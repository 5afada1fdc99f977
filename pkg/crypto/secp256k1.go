// Package crypto implements the secp256k1 signature operations the
// spending-condition flow needs.
//
// Stacks witnesses carry recoverable signatures: the signer's public key
// is recovered from the signature itself and verified by hashing it and
// comparing against the 20-byte hash in the signer record.
//
// Key formats:
//   - Private keys: WIF (Wallet Import Format) or raw 32 bytes
//   - Public keys: compressed 33-byte or uncompressed 65-byte
//   - Signatures: 65 bytes, recovery id followed by (r, s)
package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ripemd160"
)

// RecoverableSignatureLen is the wire size of a recoverable signature:
// 1-byte recovery id plus the 64-byte (r, s) pair.
const RecoverableSignatureLen = 65

// compactSigMagic is the header offset compact signatures use for the
// recovery id; compressed keys add compactSigCompressed on top.
const (
	compactSigMagic      byte = 27
	compactSigCompressed byte = 4
)

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// PublicKey wraps a secp256k1 public key.
type PublicKey struct {
	key *secp256k1.PublicKey
}

// ParsePrivateKeyWIF parses a WIF-encoded private key.
func ParsePrivateKeyWIF(wif string) (*PrivateKey, error) {
	decoded, err := decodeWIF(wif)
	if err != nil {
		return nil, err
	}

	key := secp256k1.PrivKeyFromBytes(decoded)
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes creates a private key from raw bytes.
func PrivateKeyFromBytes(keyBytes []byte) (*PrivateKey, error) {
	if len(keyBytes) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(keyBytes))
	}

	key := secp256k1.PrivKeyFromBytes(keyBytes)
	return &PrivateKey{key: key}, nil
}

// SignRecoverable signs digest and returns the signature in wire layout:
// recovery id byte followed by (r, s). compressed states how the public
// key will be serialized before hashing, which the recovery id commits to.
func (pk *PrivateKey) SignRecoverable(digest [32]byte, compressed bool) [RecoverableSignatureLen]byte {
	compact := ecdsa.SignCompact(pk.key, digest[:], compressed)

	var out [RecoverableSignatureLen]byte
	out[0] = (compact[0] - compactSigMagic) & 3
	copy(out[1:], compact[1:])
	return out
}

// PublicKey derives the public key.
func (pk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: pk.key.PubKey()}
}

// Bytes returns the raw 32-byte private key.
func (pk *PrivateKey) Bytes() []byte {
	return pk.key.Serialize()
}

// RecoverPublicKey recovers the signing public key from a recoverable
// signature over digest. compressed must match the encoding the signature
// was produced for.
func RecoverPublicKey(digest [32]byte, sig []byte, compressed bool) (*PublicKey, error) {
	if len(sig) != RecoverableSignatureLen {
		return nil, fmt.Errorf("recoverable signature must be %d bytes, got %d", RecoverableSignatureLen, len(sig))
	}
	if sig[0] > 3 {
		return nil, fmt.Errorf("invalid recovery id %d", sig[0])
	}

	var compact [RecoverableSignatureLen]byte
	compact[0] = compactSigMagic + sig[0]
	if compressed {
		compact[0] += compactSigCompressed
	}
	copy(compact[1:], sig[1:])

	pub, _, err := ecdsa.RecoverCompact(compact[:], digest[:])
	if err != nil {
		return nil, fmt.Errorf("recovering public key: %w", err)
	}
	return &PublicKey{key: pub}, nil
}

// SerializeCompressed returns the 33-byte compressed public key.
func (pub *PublicKey) SerializeCompressed() [33]byte {
	var result [33]byte
	copy(result[:], pub.key.SerializeCompressed())
	return result
}

// SerializeUncompressed returns the 65-byte uncompressed public key.
func (pub *PublicKey) SerializeUncompressed() [65]byte {
	var result [65]byte
	copy(result[:], pub.key.SerializeUncompressed())
	return result
}

// Bytes returns the compressed public key bytes.
func (pub *PublicKey) Bytes() []byte {
	return pub.key.SerializeCompressed()
}

// Hash returns the Hash160 of the public key serialized under the given
// encoding. This is the digest the signer record's pubkey-hash field
// carries.
func (pub *PublicKey) Hash(compressed bool) [20]byte {
	if compressed {
		return Hash160(pub.key.SerializeCompressed())
	}
	return Hash160(pub.key.SerializeUncompressed())
}

// ParsePublicKey parses a compressed or uncompressed public key.
func ParsePublicKey(pubKeyBytes []byte) (*PublicKey, error) {
	pubKey, err := secp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return &PublicKey{key: pubKey}, nil
}

// Hash160 computes RIPEMD160(SHA256(data)).
func Hash160(data []byte) [20]byte {
	sha := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(sha[:])

	var out [20]byte
	copy(out[:], r.Sum(nil))
	return out
}

// decodeWIF decodes a WIF-encoded private key.
// WIF format: version_byte || private_key (32 bytes) || [compression_flag] || checksum (4 bytes)
func decodeWIF(wif string) ([]byte, error) {
	decoded := base58.Decode(wif)
	if len(decoded) != 37 && len(decoded) != 38 {
		return nil, errors.New("invalid WIF length")
	}

	// Check version byte (0x80 for mainnet, 0xef for testnet)
	version := decoded[0]
	if version != 0x80 && version != 0xef {
		return nil, fmt.Errorf("invalid WIF version byte: 0x%02x", version)
	}

	// Extract checksum (last 4 bytes)
	checksumOffset := len(decoded) - 4
	providedChecksum := decoded[checksumOffset:]
	payload := decoded[:checksumOffset]

	// Compute checksum
	hash1 := sha256.Sum256(payload)
	hash2 := sha256.Sum256(hash1[:])
	computedChecksum := hash2[:4]

	// Verify checksum
	for i := 0; i < 4; i++ {
		if providedChecksum[i] != computedChecksum[i] {
			return nil, errors.New("WIF checksum mismatch")
		}
	}

	// Extract private key (32 bytes after version byte)
	return payload[1:33], nil
}
