// Package treehash implements a generic multi-leaf (fan-out) tree-hashing
// engine: a message is sharded across a fixed number of leaf hash instances,
// each seeded with its leaf index, and their digests are concatenated and
// compressed by a single root hash instance. This is a "strict chain" (hash
// list), not a full binary tree, so the output is reproducible without the
// caller needing to know the fan-out beyond treating it as part of the
// algorithm's identity.
//
// SHA3-256/1024 use this engine to get multi-core speedup while still
// producing a single deterministic digest; grounded in the same leaf/root
// split used by KangarooTwelve-style tree hashing.
package treehash

import "golang.org/x/sync/errgroup"

// LeafHash is the subset of the uniform Hash contract the engine needs from
// each leaf and root instance.
type LeafHash interface {
	Update(data []byte)
	Finalize(out []byte)
}

// Params configures an Engine.
type Params struct {
	// Fanout is the number of leaves. Must be a power of two, 1 to 64.
	Fanout int
	// LeafBlock is the rate, in bytes, of the underlying per-leaf hash.
	LeafBlock int
	// ParallelBlockSize is the chunk size, in bytes, dispatched across all
	// leaves at once; must be a multiple of Fanout*LeafBlock.
	ParallelBlockSize int
	// DigestSize is the per-leaf (and root) digest size, in bytes.
	DigestSize int
}

// Engine is a configured tree-hash instance. NewLeaf is called once per leaf
// at construction with that leaf's index, so implementations can absorb a
// tree-parameter block encoding it; NewRoot is called once at Finalize time
// to construct a fresh sequential-mode hash for root compression.
type Engine struct {
	params  Params
	newRoot func() LeafHash

	leaves   []LeafHash
	buf      []byte
	buffered int
}

// New returns a configured Engine. newLeaf(i) must return a leaf hash already
// seeded with leaf index i (e.g. via a tree-parameter block absorb); newRoot
// must return a fresh, unseeded hash of the same family for root compression.
func New(p Params, newLeaf func(index int) LeafHash, newRoot func() LeafHash) *Engine {
	leaves := make([]LeafHash, p.Fanout)
	for i := range leaves {
		leaves[i] = newLeaf(i)
	}
	return &Engine{
		params:  p,
		newRoot: newRoot,
		leaves:  leaves,
		buf:     make([]byte, p.Fanout*p.LeafBlock),
	}
}

// Update absorbs more message bytes, sharding across leaves as described in
// the package doc.
func (e *Engine) Update(p []byte) {
	bufCap := len(e.buf)

	for len(p) > 0 {
		if e.buffered > 0 || len(p) < e.params.ParallelBlockSize {
			n := bufCap - e.buffered
			if n > len(p) {
				n = len(p)
			}
			copy(e.buf[e.buffered:], p[:n])
			e.buffered += n
			p = p[n:]
			if e.buffered == bufCap {
				e.absorbBuffer()
				e.buffered = 0
			}
			continue
		}

		chunkLen := (len(p) / e.params.ParallelBlockSize) * e.params.ParallelBlockSize
		e.absorbParallel(p[:chunkLen])
		p = p[chunkLen:]
	}
}

// absorbBuffer feeds each leaf its contiguous leaf_block-sized slice of the
// staged buffer.
func (e *Engine) absorbBuffer() {
	for i, leaf := range e.leaves {
		leaf.Update(e.buf[i*e.params.LeafBlock : (i+1)*e.params.LeafBlock])
	}
}

// absorbParallel dispatches chunk (a whole number of ParallelBlockSize-sized
// blocks) across leaves concurrently; leaf i reads the interleaved stream at
// offsets base+(i+j*fanout)*leaf_block within each ParallelBlockSize block.
func (e *Engine) absorbParallel(chunk []byte) {
	blocksPerLeaf := e.params.ParallelBlockSize / (e.params.Fanout * e.params.LeafBlock)

	var g errgroup.Group
	for i, leaf := range e.leaves {
		i, leaf := i, leaf
		g.Go(func() error {
			for base := 0; base < len(chunk); base += e.params.ParallelBlockSize {
				for j := 0; j < blocksPerLeaf; j++ {
					off := base + (i+j*e.params.Fanout)*e.params.LeafBlock
					leaf.Update(chunk[off : off+e.params.LeafBlock])
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Finalize pads any partially-filled buffer, finalizes every leaf, then
// compresses the concatenated leaf digests with a fresh root hash instance
// into out, which must be at least params.DigestSize bytes.
func (e *Engine) Finalize(out []byte) {
	if e.buffered > 0 {
		for i := e.buffered; i < len(e.buf); i++ {
			e.buf[i] = 0
		}
		e.absorbBuffer()
	}

	digests := make([]byte, e.params.Fanout*e.params.DigestSize)
	for i, leaf := range e.leaves {
		leaf.Finalize(digests[i*e.params.DigestSize : (i+1)*e.params.DigestSize])
	}

	root := e.newRoot()
	root.Update(digests)
	root.Finalize(out[:e.params.DigestSize])
}
