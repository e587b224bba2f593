// Package ctrmode implements counter-mode block-cipher keystream generation,
// with an optional parallel fast path that shards large inputs across
// goroutines while producing byte-for-byte identical output to the sequential
// path.
package ctrmode

import (
	"golang.org/x/sync/errgroup"

	"github.com/cex-go/cex"
	"github.com/cex-go/cex/cipher"
	"github.com/cex-go/cex/internal/mem"
)

// Mode is a CTR-mode transform driven by a cipher.BlockCipher. The counter is
// a 128-bit big-endian integer, incremented once per 16-byte block.
type Mode struct {
	blk               cipher.BlockCipher
	counter           [cipher.BlockSize]byte
	parallelBlockSize int
	maxDegree         int
}

// DefaultParallelBlockSize is the minimum input length, in bytes, at which
// New's parallel path engages by default.
const DefaultParallelBlockSize = 64 * 1024

// New returns a Mode driving blk, initialized with the given 16-byte nonce as
// the starting counter value. parallelBlockSize and maxDegree configure the
// parallel fast path (see Transform); passing maxDegree <= 1 disables it.
func New(blk cipher.BlockCipher, nonce []byte, parallelBlockSize, maxDegree int) (*Mode, error) {
	if len(nonce) != cipher.BlockSize {
		return nil, cex.NewError(cex.InvalidNonceSize, "ctrmode.New", "nonce must be 16 bytes")
	}
	if maxDegree > 1 {
		if maxDegree%2 != 0 {
			return nil, cex.NewError(cex.InvalidParam, "ctrmode.New", "max_degree must be even")
		}
		if parallelBlockSize%(maxDegree*cipher.BlockSize) != 0 {
			return nil, cex.NewError(cex.InvalidParam, "ctrmode.New", "parallel_block_size must be a multiple of max_degree*16")
		}
	}
	m := &Mode{blk: blk, parallelBlockSize: parallelBlockSize, maxDegree: maxDegree}
	copy(m.counter[:], nonce)
	return m, nil
}

// Transform XORs keystream derived from the current counter into src,
// writing the result to dst, and advances the counter by len(src)/16 blocks
// (rounded up). dst and src must be the same length, and src's length need
// not be a multiple of the block size.
func (m *Mode) Transform(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	if m.maxDegree > 1 && len(src) >= m.parallelBlockSize {
		m.transformParallel(dst, src)
		return
	}
	m.transformSequential(dst, src)
}

func (m *Mode) transformSequential(dst, src []byte) {
	counter := m.counter
	var ks [cipher.BlockSize]byte
	for len(src) > 0 {
		m.blk.EncryptBlock(counter[:], ks[:])
		n := cipher.BlockSize
		if n > len(src) {
			n = len(src)
		}
		mem.XORAndCopy(dst[:n], src[:n], ks[:n])
		dst, src = dst[n:], src[n:]
		incrementCounter(&counter)
	}
	m.counter = counter
}

func (m *Mode) transformParallel(dst, src []byte) {
	whole := (len(src) / m.parallelBlockSize) * m.parallelBlockSize
	segmentBytes := m.parallelBlockSize / m.maxDegree
	segmentBlocks := uint64(segmentBytes / cipher.BlockSize)

	for base := 0; base < whole; base += m.parallelBlockSize {
		baseCounter := m.counter
		chunkDst := dst[base : base+m.parallelBlockSize]
		chunkSrc := src[base : base+m.parallelBlockSize]

		var g errgroup.Group
		for i := 0; i < m.maxDegree; i++ {
			i := i
			g.Go(func() error {
				localCounter := baseCounter
				addCounter(&localCounter, uint64(i)*segmentBlocks)
				segDst := chunkDst[i*segmentBytes : (i+1)*segmentBytes]
				segSrc := chunkSrc[i*segmentBytes : (i+1)*segmentBytes]
				var ks [cipher.BlockSize]byte
				for off := 0; off < segmentBytes; off += cipher.BlockSize {
					m.blk.EncryptBlock(localCounter[:], ks[:])
					mem.XORAndCopy(segDst[off:off+cipher.BlockSize], segSrc[off:off+cipher.BlockSize], ks[:])
					incrementCounter(&localCounter)
				}
				return nil
			})
		}
		_ = g.Wait()
		addCounter(&m.counter, uint64(m.parallelBlockSize/cipher.BlockSize))
	}

	if whole < len(src) {
		m.transformSequential(dst[whole:], src[whole:])
	}
}

// incrementCounter adds 1 to the big-endian 128-bit counter.
func incrementCounter(c *[cipher.BlockSize]byte) {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]++
		if c[i] != 0 {
			return
		}
	}
}

// addCounter adds n to the big-endian 128-bit counter.
func addCounter(c *[cipher.BlockSize]byte, n uint64) {
	var carry uint64 = n
	for i := len(c) - 1; i >= 0 && carry > 0; i-- {
		sum := uint64(c[i]) + carry&0xFF
		c[i] = byte(sum)
		carry = carry>>8 + sum>>8
	}
}
