package hmacsha2

import (
	"bytes"
	stdhmac "crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"testing"
)

func TestHMAC256MatchesStdlib(t *testing.T) {
	key := []byte("a secret key")
	msg := []byte("authenticate this message")

	m := New256()
	if err := m.Initialize(key); err != nil {
		t.Fatal(err)
	}
	m.Update(msg)
	got := make([]byte, m.TagSize())
	m.Finalize(got)

	ref := stdhmac.New(sha256.New, key)
	ref.Write(msg)
	want := ref.Sum(nil)

	if !bytes.Equal(got, want) {
		t.Fatalf("HMAC-SHA256 mismatch: got %x, want %x", got, want)
	}
}

func TestHMAC512MatchesStdlib(t *testing.T) {
	key := []byte("another secret key")
	msg := []byte("authenticate this other message")

	m := New512()
	if err := m.Initialize(key); err != nil {
		t.Fatal(err)
	}
	m.Update(msg)
	got := make([]byte, m.TagSize())
	m.Finalize(got)

	ref := stdhmac.New(sha512.New, key)
	ref.Write(msg)
	want := ref.Sum(nil)

	if !bytes.Equal(got, want) {
		t.Fatalf("HMAC-SHA512 mismatch: got %x, want %x", got, want)
	}
}

func TestUpdateInMultipleCallsMatchesSingleCall(t *testing.T) {
	key := []byte("key")
	m1 := New256()
	m1.Initialize(key)
	m1.Update([]byte("hello "))
	m1.Update([]byte("world"))
	out1 := make([]byte, m1.TagSize())
	m1.Finalize(out1)

	m2 := New256()
	m2.Initialize(key)
	m2.Update([]byte("hello world"))
	out2 := make([]byte, m2.TagSize())
	m2.Finalize(out2)

	if !bytes.Equal(out1, out2) {
		t.Fatal("splitting Update calls changed the tag")
	}
}

func TestReinitializeRekeys(t *testing.T) {
	m := New256()
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

func TestTagSizes(t *testing.T) {
	if New256().TagSize() != 32 {
		t.Fatal("HMAC-SHA256 tag size must be 32")
	}
	if New512().TagSize() != 64 {
		t.Fatal("HMAC-SHA512 tag size must be 64")
	}
}
