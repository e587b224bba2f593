// Package sha3 implements the fixed-output Keccak hash family: SHA3-256,
// SHA3-512 and the extended-security SHA3-1024 variant. Each differs only in
// rate and, for the 1024-bit variant, round count; all three use the standard
// SHA-3 domain byte 0x06.
package sha3

import (
	"hash"

	"github.com/cex-go/cex/hazmat/keccak"
	"github.com/cex-go/cex/hazmat/sponge"
)

const domainSHA3 = 0x06

// Digest sizes and rates, in bytes, for each variant.
const (
	Size256  = 32
	Rate256  = 136
	Size512  = 64
	Rate512  = 72
	Size1024 = 128
	Rate1024 = 64
)

type digest struct {
	base *sponge.Sponge
	cur  *sponge.Sponge
	size int
}

// New256 returns a new hash.Hash computing SHA3-256 (136-byte rate, 24-round
// permutation, 32-byte digest).
func New256() hash.Hash { return newDigest(Rate256, Size256, keccak.Rounds24) }

// New512 returns a new hash.Hash computing SHA3-512 (72-byte rate, 24-round
// permutation, 64-byte digest).
func New512() hash.Hash { return newDigest(Rate512, Size512, keccak.Rounds24) }

// New1024 returns a new hash.Hash computing the extended-security SHA3-1024
// variant (64-byte rate, 48-round permutation, 128-byte digest).
func New1024() hash.Hash { return newDigest(Rate1024, Size1024, keccak.Rounds48) }

func newDigest(rate, size, rounds int) *digest {
	d := &digest{base: sponge.New(rate, domainSHA3, rounds), size: size}
	d.Reset()
	return d
}

func (d *digest) Write(p []byte) (int, error) {
	d.cur.Absorb(p)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	out := make([]byte, d.size)
	d.cur.Clone().Squeeze(out)
	return append(b, out...)
}

func (d *digest) Reset() { d.cur = d.base.Clone() }

func (d *digest) Size() int { return d.size }

func (d *digest) BlockSize() int { return d.base.Rate() }

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	var out [Size256]byte
	s := sponge.New(Rate256, domainSHA3, keccak.Rounds24)
	s.Absorb(data)
	s.Squeeze(out[:])
	return out
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	var out [Size512]byte
	s := sponge.New(Rate512, domainSHA3, keccak.Rounds24)
	s.Absorb(data)
	s.Squeeze(out[:])
	return out
}

// Sum1024 returns the SHA3-1024 digest of data.
func Sum1024(data []byte) [Size1024]byte {
	var out [Size1024]byte
	s := sponge.New(Rate1024, domainSHA3, keccak.Rounds48)
	s.Absorb(data)
	s.Squeeze(out[:])
	return out
}

var _ hash.Hash = (*digest)(nil)
