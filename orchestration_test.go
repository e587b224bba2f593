package cex

import (
	"bytes"
	"testing"

	"github.com/cex-go/cex/cipher"
	"github.com/cex-go/cex/key/symmetrickey"
)

func TestNewHBAAllCombinationsRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		cipher  CipherID
		mac     MacID
		keySize int
	}{
		{"AES+HMAC-SHA256", CipherAES, MacHMACSHA256, 32},
		{"AES+HMAC-SHA512", CipherAES, MacHMACSHA512, 32},
		{"AES+KMAC-256", CipherAES, MacKMAC256, 32},
		{"RHX+HMAC-SHA512", CipherRHX, MacHMACSHA512, 64},
		{"RHX+KMAC-1024", CipherRHX, MacKMAC1024, 128},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := NewHBA(tc.cipher, tc.mac)
			if err != nil {
				t.Fatal(err)
			}
			key := symmetrickey.New(
				bytes.Repeat([]byte{0x42}, tc.keySize),
				bytes.Repeat([]byte{0x24}, 16),
				nil,
			)
			if err := enc.Initialize(cipher.Encrypt, key); err != nil {
				t.Fatal(err)
			}

			plaintext := []byte("orchestrated message")
			ciphertext := make([]byte, len(plaintext))
			if err := enc.Transform(ciphertext, plaintext); err != nil {
				t.Fatal(err)
			}
			tag := make([]byte, 32)
			if err := enc.Finalize(tag, 32); err != nil {
				t.Fatal(err)
			}

			dec, err := NewHBA(tc.cipher, tc.mac)
			if err != nil {
				t.Fatal(err)
			}
			if err := dec.Initialize(cipher.Decrypt, key); err != nil {
				t.Fatal(err)
			}
			recovered := make([]byte, len(ciphertext))
			if err := dec.Transform(recovered, ciphertext); err != nil {
				t.Fatal(err)
			}
			ok, err := dec.Verify(tag, 0, 32)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("Verify returned false for an untampered message")
			}
			if !bytes.Equal(recovered, plaintext) {
				t.Fatalf("recovered %q != original %q", recovered, plaintext)
			}
		})
	}
}

func TestNewHBAUnknownMacID(t *testing.T) {
	if _, err := NewHBA(CipherAES, MacID(999)); err == nil {
		t.Fatal("expected an error for an unknown MacID")
	}
}
