// Package sha3p implements the parallel tree-hashing variants of SHA3-256 and
// SHA3-1024, built on hazmat/treehash. Each leaf is a full SHA-3 sponge
// seeded with a 36-byte tree-parameter block encoding its leaf index, so
// identical input produces distinct per-leaf state; the root compresses the
// concatenated leaf digests with a fresh sequential-mode SHA-3 instance.
//
// Output is deterministic for a fixed fan-out, but differs from the plain
// (non-tree) hash of the same data: fan-out is part of the algorithm's
// identity, per the tree-hash engine's contract.
package sha3p

import (
	"encoding/binary"

	"github.com/cex-go/cex/hazmat/keccak"
	"github.com/cex-go/cex/hazmat/sponge"
	"github.com/cex-go/cex/hazmat/treehash"
)

const (
	domainSHA3 = 0x06

	treeParamSize = 36

	// FanOut256 is the default fan-out for parallel SHA3-256.
	FanOut256 = 8
	// FanOut1024 is the default fan-out for parallel SHA3-1024.
	FanOut1024 = 4

	// minK is the minimum cache-aware block multiplier per spec, bounding
	// ParallelBlockSize from below.
	minK = 8
)

type leaf struct {
	s    *sponge.Sponge
	size int
}

func (l *leaf) Update(data []byte) { l.s.Absorb(data) }
func (l *leaf) Finalize(out []byte) {
	l.s.Squeeze(out[:l.size])
}

// treeParamBlock encodes leaf index i into a 36-byte tree-parameter block:
// the first 4 bytes are the little-endian node offset, the remainder zero.
func treeParamBlock(i int) []byte {
	b := make([]byte, treeParamSize)
	binary.LittleEndian.PutUint32(b[0:4], uint32(i))
	return b
}

func newEngine(rate, digestSize, rounds, fanout int) *treehash.Engine {
	params := treehash.Params{
		Fanout:            fanout,
		LeafBlock:         rate,
		ParallelBlockSize: fanout * rate * minK,
		DigestSize:        digestSize,
	}
	newLeaf := func(i int) treehash.LeafHash {
		s := sponge.New(rate, domainSHA3, rounds)
		s.Absorb(treeParamBlock(i))
		return &leaf{s: s, size: digestSize}
	}
	newRoot := func() treehash.LeafHash {
		return &leaf{s: sponge.New(rate, domainSHA3, rounds), size: digestSize}
	}
	return treehash.New(params, newLeaf, newRoot)
}

// Sum256 computes the parallel SHA3-256 digest of data with the default
// fan-out of 8.
func Sum256(data []byte) [32]byte {
	e := newEngine(136, 32, keccak.Rounds24, FanOut256)
	e.Update(data)
	var out [32]byte
	e.Finalize(out[:])
	return out
}

// Sum1024 computes the parallel SHA3-1024 digest of data with the default
// fan-out of 4, using the 48-round permutation.
func Sum1024(data []byte) [128]byte {
	e := newEngine(64, 128, keccak.Rounds48, FanOut1024)
	e.Update(data)
	var out [128]byte
	e.Finalize(out[:])
	return out
}

// New256 returns a parallel SHA3-256 engine with a caller-chosen fan-out
// (must be a power of two, up to 64) for incremental use.
func New256(fanout int) *treehash.Engine { return newEngine(136, 32, keccak.Rounds24, fanout) }

// New1024 returns a parallel SHA3-1024 engine with a caller-chosen fan-out.
func New1024(fanout int) *treehash.Engine { return newEngine(64, 128, keccak.Rounds48, fanout) }
