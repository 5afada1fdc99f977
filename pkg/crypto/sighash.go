// Stacks signature hash computation.
//
// Every digest in the chain is SHA-512/256. The initial sighash covers the
// transaction with its authorization canonicalized to the fixed
// placeholder; each signer then folds the auth flag, fee and nonce into a
// pre-signature digest, signs that, and the signature itself is folded in
// before the next signer in a multisig set.

package crypto

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
)

// Authorization type flags, committed to by every pre-signature digest.
const (
	AuthFlagStandard  byte = 0x04
	AuthFlagSponsored byte = 0x05
)

// TxDigest computes the SHA-512/256 digest of serialized transaction
// bytes. Called with the canonicalized (cleared) transaction, it yields
// the initial sighash.
func TxDigest(data []byte) [32]byte {
	return sha512.Sum512_256(data)
}

// PresignDigest computes the digest a signer actually signs: the current
// sighash bound to the authorization flag and the signer's fee and nonce.
func PresignDigest(sighash [32]byte, authFlag byte, fee, nonce uint64) [32]byte {
	buf := make([]byte, 0, 32+1+8+8)
	buf = append(buf, sighash[:]...)
	buf = append(buf, authFlag)
	buf = binary.BigEndian.AppendUint64(buf, fee)
	buf = binary.BigEndian.AppendUint64(buf, nonce)
	return sha512.Sum512_256(buf)
}

// PostSignDigest rolls a produced signature into the sighash chain: the
// next signer in a multisig set signs over this value.
func PostSignDigest(presign [32]byte, keyEncoding byte, sig []byte) ([32]byte, error) {
	if len(sig) != RecoverableSignatureLen {
		return [32]byte{}, fmt.Errorf("recoverable signature must be %d bytes, got %d", RecoverableSignatureLen, len(sig))
	}

	buf := make([]byte, 0, 32+1+RecoverableSignatureLen)
	buf = append(buf, presign[:]...)
	buf = append(buf, keyEncoding)
	buf = append(buf, sig...)
	return sha512.Sum512_256(buf), nil
}

// VerifySignerHash recovers the public key from a recoverable signature
// over digest and reports whether its Hash160 matches pubKeyHash. This is
// how witness signatures are tied back to the signer record.
func VerifySignerHash(digest [32]byte, sig []byte, compressed bool, pubKeyHash []byte) (bool, error) {
	pub, err := RecoverPublicKey(digest, sig, compressed)
	if err != nil {
		return false, err
	}
	hash := pub.Hash(compressed)
	return bytes.Equal(hash[:], pubKeyHash), nil
}
