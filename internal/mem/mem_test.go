package mem

import (
	"bytes"
	"testing"
)

func TestXORAndCopy(t *testing.T) {
	a := []byte{0x0F, 0xF0, 0xAA}
	b := []byte{0xFF, 0xFF, 0x55}
	dst := make([]byte, 3)

	XORAndCopy(dst, a, b)

	want := []byte{0xF0, 0x0F, 0xFF}
	if !bytes.Equal(dst, want) {
		t.Fatalf("XORAndCopy(dst, %x, %x) = %x, want %x", a, b, dst, want)
	}
	if !bytes.Equal(b, dst) {
		t.Fatalf("XORAndCopy must overwrite b with dst's value, got b=%x dst=%x", b, dst)
	}
}

func TestXORInPlace(t *testing.T) {
	dst := []byte{0x0F, 0xF0, 0xAA}
	src := []byte{0xFF, 0xFF, 0x55}

	XORInPlace(dst, src)

	want := []byte{0xF0, 0x0F, 0xFF}
	if !bytes.Equal(dst, want) {
		t.Fatalf("XORInPlace result = %x, want %x", dst, want)
	}
}

func TestXORInPlaceShorterDst(t *testing.T) {
	dst := []byte{0x01, 0x02}
	src := []byte{0xFF, 0xFF, 0xFF}

	XORInPlace(dst, src) // must only touch len(dst) bytes of src

	want := []byte{0xFE, 0xFD}
	if !bytes.Equal(dst, want) {
		t.Fatalf("XORInPlace with shorter dst = %x, want %x", dst, want)
	}
}

func TestXORAndReplace(t *testing.T) {
	src := []byte{0xAB, 0xCD, 0xEF}
	state := []byte{0x11, 0x22, 0x33}
	dst := make([]byte, 3)

	XORAndReplace(dst, src, state)

	wantDst := []byte{0xAB ^ 0x11, 0xCD ^ 0x22, 0xEF ^ 0x33}
	if !bytes.Equal(dst, wantDst) {
		t.Fatalf("XORAndReplace dst = %x, want %x", dst, wantDst)
	}
	if !bytes.Equal(state, src) {
		t.Fatalf("XORAndReplace must overwrite state with src, got state=%x src=%x", state, src)
	}
}
