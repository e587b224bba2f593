package aes

import (
	"bytes"
	stdaes "crypto/aes"
	"testing"

	"github.com/cex-go/cex/cipher"
	"github.com/cex-go/cex/key/symmetrickey"
)

func TestEncryptBlockMatchesStdlib(t *testing.T) {
	key := bytes.Repeat([]byte{0x2B}, 32) // AES-256
	block := bytes.Repeat([]byte{0x11}, 16)

	a := New()
	if err := a.Initialize(cipher.Encrypt, symmetrickey.New(key, nil, nil)); err != nil {
		t.Fatal(err)
	}
	got := make([]byte, 16)
	a.EncryptBlock(block, got)

	ref, err := stdaes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 16)
	ref.Encrypt(want, block)

	if !bytes.Equal(got, want) {
		t.Fatalf("AES-256 EncryptBlock mismatch: got %x, want %x", got, want)
	}
}

func TestLegalKeySizes(t *testing.T) {
	a := New()
	sizes := a.LegalKeySizes()
	want := map[int]bool{16: true, 24: true, 32: true}
	if len(sizes) != 3 {
		t.Fatalf("expected 3 legal key sizes, got %d", len(sizes))
	}
	for _, s := range sizes {
		if !want[s] {
			t.Fatalf("unexpected legal key size %d", s)
		}
	}
}

func TestInitializeRejectsBadKeySize(t *testing.T) {
	a := New()
	err := a.Initialize(cipher.Encrypt, symmetrickey.New(make([]byte, 15), nil, nil))
	if err == nil {
		t.Fatal("expected an error for a 15-byte key")
	}
}

func TestEncryptBlockVariesWithKey(t *testing.T) {
	block := bytes.Repeat([]byte{0x01}, 16)

	a1 := New()
	a1.Initialize(cipher.Encrypt, symmetrickey.New(bytes.Repeat([]byte{1}, 16), nil, nil))
	out1 := make([]byte, 16)
	a1.EncryptBlock(block, out1)

	a2 := New()
	a2.Initialize(cipher.Encrypt, symmetrickey.New(bytes.Repeat([]byte{2}, 16), nil, nil))
	out2 := make([]byte, 16)
	a2.EncryptBlock(block, out2)

	if bytes.Equal(out1, out2) {
		t.Fatal("different keys produced identical ciphertext blocks")
	}
}
