// Package rhx implements RHX ("Rijndael-HKDF-eXtended"), a block cipher that
// accepts the longer key sizes HBA needs (32, 64 or 128 bytes) by deriving a
// standard 256-bit AES working key from the supplied key material via
// HKDF-SHA256, then delegating block encryption to AES-256.
package rhx

import (
	stdaes "crypto/aes"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/cex-go/cex"
	"github.com/cex-go/cex/cipher"
	"github.com/cex-go/cex/key/symmetrickey"
)

// workingKeySize is the size, in bytes, of the AES-256 key RHX derives from
// its (longer) input key.
const workingKeySize = 32

// hkdfInfo binds RHX's key derivation to this construction so that the same
// raw bytes used as, say, a plain AES-256 key would not silently produce the
// same working key if misrouted through RHX.
var hkdfInfo = []byte("CEX-RHX-v1")

// RHX wraps an HKDF-derived AES-256 cipher behind the BlockCipher contract.
type RHX struct {
	blk interface {
		Encrypt(dst, src []byte)
	}
}

// New returns an uninitialized RHX block cipher.
func New() *RHX { return &RHX{} }

// Initialize derives a 256-bit AES working key from key.Key via
// HKDF-SHA256(key.Key, key.Nonce, hkdfInfo) and sets up the AES schedule.
// Legal key sizes are 32, 64 and 128 bytes, matching HBA's key-size contract.
func (r *RHX) Initialize(_ cipher.Direction, key *symmetrickey.SymmetricKey) error {
	ok := false
	for _, n := range r.LegalKeySizes() {
		if len(key.Key) == n {
			ok = true
			break
		}
	}
	if !ok {
		return cex.NewError(cex.InvalidKeySize, "rhx.Initialize", "key must be 32, 64 or 128 bytes")
	}

	working := make([]byte, workingKeySize)
	kdf := hkdf.New(sha256.New, key.Key, key.Nonce, hkdfInfo)
	if _, err := io.ReadFull(kdf, working); err != nil {
		return cex.NewError(cex.InvalidParam, "rhx.Initialize", err.Error())
	}

	blk, err := stdaes.NewCipher(working)
	if err != nil {
		return cex.NewError(cex.InvalidKeySize, "rhx.Initialize", err.Error())
	}
	r.blk = blk
	return nil
}

// EncryptBlock encrypts a single 16-byte block.
func (r *RHX) EncryptBlock(input, output []byte) {
	r.blk.Encrypt(output, input)
}

// LegalKeySizes returns RHX's legal key sizes, in bytes: 32, 64 and 128.
func (r *RHX) LegalKeySizes() []int { return []int{32, 64, 128} }

var _ cipher.BlockCipher = (*RHX)(nil)
