// Package hmacsha2 implements the HMAC variant of the mac.Mac contract, built
// on the standard library's SHA-2 implementations in the 256- and 512-bit
// flavors required by HBA.
package hmacsha2

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/cex-go/cex/mac"
)

// HMAC wraps crypto/hmac with the mac.Mac contract: construct once with the
// desired digest, then Initialize(key) before every use.
type HMAC struct {
	newHash func() hash.Hash
	tagSize int
	h       hash.Hash
}

// New256 returns an uninitialized HMAC-SHA256 MAC, 32-byte tag.
func New256() *HMAC { return &HMAC{newHash: sha256.New, tagSize: sha256.Size} }

// New512 returns an uninitialized HMAC-SHA512 MAC, 64-byte tag.
func New512() *HMAC { return &HMAC{newHash: sha512.New, tagSize: sha512.Size} }

// Initialize keys the MAC. It may be called again later to rekey it.
func (m *HMAC) Initialize(key []byte) error {
	m.h = hmac.New(m.newHash, key)
	return nil
}

// Update absorbs more message bytes.
func (m *HMAC) Update(data []byte) { m.h.Write(data) }

// Finalize writes the tag to out and returns TagSize().
func (m *HMAC) Finalize(out []byte) int {
	sum := m.h.Sum(nil)
	return copy(out, sum)
}

// TagSize returns the MAC's tag length in bytes.
func (m *HMAC) TagSize() int { return m.tagSize }

var _ mac.Mac = (*HMAC)(nil)
