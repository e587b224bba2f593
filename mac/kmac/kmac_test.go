package kmac

import "bytes"
import "testing"

func TestKMAC256Deterministic(t *testing.T) {
	key := []byte("kmac key")
	msg := []byte("kmac message")

	a := New256(nil)
	a.Initialize(key)
	a.Update(msg)
	outA := make([]byte, a.TagSize())
	a.Finalize(outA)

	b := New256(nil)
	b.Initialize(key)
	b.Update(msg)
	outB := make([]byte, b.TagSize())
	b.Finalize(outB)

	if !bytes.Equal(outA, outB) {
		t.Fatal("KMAC-256 not deterministic for identical key/message")
	}
}

func TestKMACKeySensitivity(t *testing.T) {
	msg := []byte("same message")

	a := New256(nil)
	a.Initialize([]byte("key-a"))
	a.Update(msg)
	outA := make([]byte, a.TagSize())
	a.Finalize(outA)

	b := New256(nil)
	b.Initialize([]byte("key-b"))
	b.Update(msg)
	outB := make([]byte, b.TagSize())
	b.Finalize(outB)

	if bytes.Equal(outA, outB) {
		t.Fatal("different keys produced the same KMAC-256 tag")
	}
}

func TestKMACCustomizationSensitivity(t *testing.T) {
	key := []byte("shared key")
	msg := []byte("shared message")

	a := New256([]byte("custom-a"))
	a.Initialize(key)
	a.Update(msg)
	outA := make([]byte, a.TagSize())
	a.Finalize(outA)

	b := New256([]byte("custom-b"))
	b.Initialize(key)
	b.Update(msg)
	outB := make([]byte, b.TagSize())
	b.Finalize(outB)

	if bytes.Equal(outA, outB) {
		t.Fatal("different customization strings produced the same KMAC-256 tag")
	}
}

func TestKMAC512And1024TagSizes(t *testing.T) {
	if (New512(nil)).TagSize() != 64 {
		t.Fatal("KMAC-512 tag size must be 64")
	}
	if (New1024(nil)).TagSize() != 128 {
		t.Fatal("KMAC-1024 tag size must be 128")
	}
}

func TestKMAC1024DeterministicAcrossUpdateSplits(t *testing.T) {
	key := []byte("key material")

	a := New1024(nil)
	a.Initialize(key)
	a.Update([]byte("hello "))
	a.Update([]byte("world"))
	outA := make([]byte, a.TagSize())
	a.Finalize(outA)

	b := New1024(nil)
	b.Initialize(key)
	b.Update([]byte("hello world"))
	outB := make([]byte, b.TagSize())
	b.Finalize(outB)

	if !bytes.Equal(outA, outB) {
		t.Fatal("splitting Update calls changed the KMAC-1024 tag")
	}
}

func TestReinitializeRekeys(t *testing.T) {
	m := New256(nil)
	m.Initialize([]byte("key-one"))
	m.Update([]byte("msg"))
	out1 := make([]byte, m.TagSize())
	m.Finalize(out1)

	m.Initialize([]byte("key-two"))
	m.Update([]byte("msg"))
	out2 := make([]byte, m.TagSize())
	m.Finalize(out2)

	if bytes.Equal(out1, out2) {
		t.Fatal("reinitializing with a different key produced the same tag")
	}
}
