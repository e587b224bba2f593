// Package cipher defines the BlockCipher contract CtrMode and HBA drive, and
// the Direction each cipher is initialized with.
package cipher

import "github.com/cex-go/cex/key/symmetrickey"

// Direction selects encryption or decryption at initialization time. Most
// BlockCipher implementations in this module (CTR-only consumers) don't need
// a distinct decryption schedule, but the contract carries it since some
// ciphers do.
type Direction int

const (
	// Encrypt initializes a cipher for encryption.
	Encrypt Direction = iota
	// Decrypt initializes a cipher for decryption.
	Decrypt
)

// BlockCipher is a 128-bit block encryption primitive, consumed only via
// EncryptBlock (CTR mode never decrypts blocks directly: it XORs keystream).
type BlockCipher interface {
	Initialize(direction Direction, key *symmetrickey.SymmetricKey) error
	EncryptBlock(input, output []byte)
	LegalKeySizes() []int
}

// BlockSize is the block size, in bytes, of every cipher in this module.
const BlockSize = 16
