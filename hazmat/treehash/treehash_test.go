package treehash

import (
	"bytes"
	"testing"
)

// sumLeaf is a trivial LeafHash for testing the engine's chunking logic in
// isolation from any real cryptographic primitive: it just adds every
// absorbed byte into a fixed-size accumulator (modulo 256). Addition rather
// than XOR, so that repeated bytes in a 16-byte block do not cancel out.
type sumLeaf struct {
	acc [8]byte
}

func (l *sumLeaf) Update(data []byte) {
	for i, b := range data {
		l.acc[i%8] += b
	}
}

func (l *sumLeaf) Finalize(out []byte) {
	copy(out, l.acc[:])
}

func newTestEngine(fanout, leafBlock int) *Engine {
	params := Params{
		Fanout:            fanout,
		LeafBlock:         leafBlock,
		ParallelBlockSize: fanout * leafBlock * 4,
		DigestSize:        8,
	}
	newLeaf := func(index int) LeafHash {
		l := &sumLeaf{}
		l.acc[0] = byte(index) // seed so identical data on different leaves differs
		return l
	}
	newRoot := func() LeafHash { return &sumLeaf{} }
	return New(params, newLeaf, newRoot)
}

func TestFinalizeDeterministic(t *testing.T) {
	msg := bytes.Repeat([]byte{0x5}, 1000)

	e1 := newTestEngine(4, 16)
	e1.Update(msg)
	out1 := make([]byte, 8)
	e1.Finalize(out1)

	e2 := newTestEngine(4, 16)
	e2.Update(msg)
	out2 := make([]byte, 8)
	e2.Finalize(out2)

	if !bytes.Equal(out1, out2) {
		t.Fatal("Finalize not deterministic for identical input")
	}
}

func TestChunkingDoesNotAffectDigest(t *testing.T) {
	msg := bytes.Repeat([]byte{0x7}, 10000) // spans several parallel dispatch rounds

	whole := newTestEngine(4, 16)
	whole.Update(msg)
	outWhole := make([]byte, 8)
	whole.Finalize(outWhole)

	chunked := newTestEngine(4, 16)
	for i := 0; i < len(msg); i += 97 { // deliberately awkward chunk size
		end := i + 97
		if end > len(msg) {
			end = len(msg)
		}
		chunked.Update(msg[i:end])
	}
	outChunked := make([]byte, 8)
	chunked.Finalize(outChunked)

	if !bytes.Equal(outWhole, outChunked) {
		t.Fatal("feeding data in different chunk sizes changed the tree-hash digest")
	}
}

func TestDifferentFanoutProducesDifferentDigest(t *testing.T) {
	msg := bytes.Repeat([]byte{0x9}, 2000)

	e4 := newTestEngine(4, 16)
	e4.Update(msg)
	out4 := make([]byte, 8)
	e4.Finalize(out4)

	e8 := newTestEngine(8, 16)
	e8.Update(msg)
	out8 := make([]byte, 8)
	e8.Finalize(out8)

	if bytes.Equal(out4, out8) {
		t.Fatal("different fan-outs produced an identical digest")
	}
}

func TestEmptyMessageFinalizes(t *testing.T) {
	e := newTestEngine(4, 16)
	out := make([]byte, 8)
	e.Finalize(out) // must not panic on zero-length input
}
