// Package sponge implements the generic Keccak sponge construction: absorb an
// arbitrary-length message into a permutation's rate region, then squeeze an
// arbitrary-length output from it. Every fixed hash, XOF and MAC in this module
// is built on top of a Sponge with a particular rate and domain byte.
package sponge

import (
	"encoding/binary"

	"github.com/cex-go/cex/hazmat/keccak"
)

// MaxRate is the size, in bytes, of the whole Keccak-p[1600] state (capacity
// 0) and bounds the staging buffer. New accepts rates of at most 168 bytes.
const MaxRate = 200

// Sponge is a Keccak-p[1600] sponge parameterised by rate, domain separation
// byte and round count. The zero value is not usable; construct with New.
type Sponge struct {
	state    keccak.State
	rate     int
	domain   byte
	rounds   int
	buf      [MaxRate]byte // rate-sized staging buffer, little-endian lane bytes
	buffered int           // bytes currently staged in buf, not yet absorbed
	squeezed int           // bytes already emitted from buf during Squeeze
	absorbed bool          // true once the domain/pad byte has been applied
}

// New returns a Sponge with the given rate (a positive multiple of 8, at most
// 168), domain separation byte and round count (keccak.Rounds24 or
// keccak.Rounds48).
func New(rate int, domain byte, rounds int) *Sponge {
	if rate <= 0 || rate%8 != 0 || rate > 168 {
		panic("sponge: invalid rate")
	}
	return &Sponge{rate: rate, domain: domain, rounds: rounds}
}

// Rate returns the sponge's rate in bytes.
func (s *Sponge) Rate() int { return s.rate }

// Clone returns an independent copy of s. Squeezing or absorbing into the
// clone has no effect on s, and vice versa.
func (s *Sponge) Clone() *Sponge {
	cp := *s
	return &cp
}

// Reset returns the sponge to its initial, empty state.
func (s *Sponge) Reset() {
	s.state = keccak.State{}
	s.buffered = 0
	s.squeezed = 0
	s.absorbed = false
}

// Absorb XORs msg into the sponge's rate region, permuting whenever a full
// rate's worth of bytes has been staged. It may be called any number of times
// before the first Squeeze; calling it after Squeeze has begun panics.
func (s *Sponge) Absorb(msg []byte) {
	if s.absorbed {
		panic("sponge: Absorb after Squeeze")
	}
	for len(msg) > 0 {
		n := s.rate - s.buffered
		if n > len(msg) {
			n = len(msg)
		}
		copy(s.buf[s.buffered:s.buffered+n], msg[:n])
		s.buffered += n
		msg = msg[n:]
		if s.buffered == s.rate {
			s.absorbBlock()
			s.buffered = 0
		}
	}
}

// absorbBlock XORs the staged rate-sized buffer into the state and permutes.
func (s *Sponge) absorbBlock() {
	xorLanes(&s.state, s.buf[:s.rate])
	s.state.Permute(s.rounds)
}

// pad applies the domain-separation byte and the final 0x80 terminator to the
// staged buffer, then absorbs the final block. It is idempotent: calling it
// more than once has no further effect.
func (s *Sponge) pad() {
	if s.absorbed {
		return
	}
	for i := s.buffered; i < s.rate; i++ {
		s.buf[i] = 0
	}
	s.buf[s.buffered] ^= s.domain
	s.buf[s.rate-1] ^= 0x80
	xorLanes(&s.state, s.buf[:s.rate])
	s.state.Permute(s.rounds)
	s.buffered = 0
	// The permutation above already produced the first squeezable block; stage
	// it now so the first Squeeze call doesn't permute again.
	readLanes(&s.state, s.buf[:s.rate])
	s.squeezed = 0
	s.absorbed = true
}

// Squeeze extracts len(out) bytes from the sponge, permuting as needed. It may
// be called repeatedly to extract output incrementally; the first call
// finalizes absorption.
func (s *Sponge) Squeeze(out []byte) {
	s.pad()
	for len(out) > 0 {
		if s.squeezed == s.rate {
			s.state.Permute(s.rounds)
			readLanes(&s.state, s.buf[:s.rate])
			s.squeezed = 0
		}
		n := s.rate - s.squeezed
		if n > len(out) {
			n = len(out)
		}
		copy(out[:n], s.buf[s.squeezed:s.squeezed+n])
		s.squeezed += n
		out = out[n:]
	}
}

// xorLanes XORs the little-endian bytes of block into the first len(block)
// bytes of state's lane representation.
func xorLanes(state *keccak.State, block []byte) {
	full := len(block) / 8
	for i := 0; i < full; i++ {
		state[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
	if rem := len(block) - full*8; rem > 0 {
		var last [8]byte
		copy(last[:rem], block[full*8:])
		state[full] ^= binary.LittleEndian.Uint64(last[:])
	}
}

// readLanes writes the little-endian bytes of state's lanes into block.
func readLanes(state *keccak.State, block []byte) {
	full := len(block) / 8
	for i := 0; i < full; i++ {
		binary.LittleEndian.PutUint64(block[i*8:], state[i])
	}
	if rem := len(block) - full*8; rem > 0 {
		var last [8]byte
		binary.LittleEndian.PutUint64(last[:], state[full])
		copy(block[full*8:], last[:rem])
	}
}
