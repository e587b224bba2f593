// Package aes implements the cipher.BlockCipher contract over the standard
// library's AES implementation, which is constant-time and uses hardware
// AES-NI/ARMv8 crypto extensions transparently when available.
package aes

import (
	stdaes "crypto/aes"

	"github.com/cex-go/cex"
	"github.com/cex-go/cex/cipher"
	"github.com/cex-go/cex/key/symmetrickey"
)

// AES wraps crypto/aes.Block behind the BlockCipher contract.
type AES struct {
	blk interface {
		Encrypt(dst, src []byte)
	}
}

// New returns an uninitialized AES block cipher.
func New() *AES { return &AES{} }

// Initialize sets the cipher's working key. AES accepts 16-, 24- or 32-byte
// keys (AES-128/192/256); any other length is an InvalidKeySize error.
func (a *AES) Initialize(_ cipher.Direction, key *symmetrickey.SymmetricKey) error {
	blk, err := stdaes.NewCipher(key.Key)
	if err != nil {
		return cex.NewError(cex.InvalidKeySize, "aes.Initialize", err.Error())
	}
	a.blk = blk
	return nil
}

// EncryptBlock encrypts a single 16-byte block. CTR mode never calls Decrypt:
// counter mode only ever needs the forward transform to build keystream.
func (a *AES) EncryptBlock(input, output []byte) {
	a.blk.Encrypt(output, input)
}

// LegalKeySizes returns the AES key sizes, in bytes: 16, 24 and 32.
func (a *AES) LegalKeySizes() []int { return []int{16, 24, 32} }

var _ cipher.BlockCipher = (*AES)(nil)
