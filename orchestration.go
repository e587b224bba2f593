package cex

import (
	"github.com/cex-go/cex/aead/hba"
	ciph "github.com/cex-go/cex/cipher"
	"github.com/cex-go/cex/cipher/aes"
	"github.com/cex-go/cex/cipher/rhx"
	"github.com/cex-go/cex/mac"
	"github.com/cex-go/cex/mac/hmacsha2"
	"github.com/cex-go/cex/mac/kmac"
)

// CipherID selects the block cipher HBA drives in CTR mode.
type CipherID int

const (
	// CipherAES selects the standard-key-size AES block cipher.
	CipherAES CipherID = iota
	// CipherRHX selects RHX, an HKDF-extended AES accepting HBA's longer key
	// sizes (32/64/128 bytes) directly.
	CipherRHX
)

// MacID selects the MAC HBA authenticates ciphertext with.
type MacID int

const (
	// MacHMACSHA256 selects HMAC-SHA256 (32-byte tag).
	MacHMACSHA256 MacID = iota
	// MacHMACSHA512 selects HMAC-SHA512 (64-byte tag).
	MacHMACSHA512
	// MacKMAC256 selects KMAC-256 (32-byte tag).
	MacKMAC256
	// MacKMAC512 selects KMAC-512 (64-byte tag).
	MacKMAC512
	// MacKMAC1024 selects KMAC-1024 (128-byte tag).
	MacKMAC1024
)

// NewHBA wires a block cipher and a MAC into a ready-to-Initialize hba.Hba.
// This is the orchestration spec.md calls out as its own (small) share of the
// system: choosing algorithm names, key sizes and constructors so a caller
// only ever says "AES with HMAC-SHA256" rather than wiring sponge rates and
// cSHAKE customization by hand.
func NewHBA(cipherID CipherID, macID MacID, opts ...hba.Option) (*hba.Hba, error) {
	block, cipherName := cipherFor(cipherID)

	factory, keySize, err := macFactoryFor(macID)
	if err != nil {
		return nil, err
	}

	return hba.New(block, cipherName, factory, keySize, opts...), nil
}

func cipherFor(id CipherID) (ciph.BlockCipher, string) {
	switch id {
	case CipherRHX:
		return rhx.New(), "RHX"
	default:
		return aes.New(), "AES"
	}
}

func macFactoryFor(id MacID) (hba.MacFactory, int, error) {
	switch id {
	case MacHMACSHA256:
		return func(_ []byte) mac.Mac { return hmacsha2.New256() }, 32, nil
	case MacHMACSHA512:
		return func(_ []byte) mac.Mac { return hmacsha2.New512() }, 64, nil
	case MacKMAC256:
		return func(custom []byte) mac.Mac { return kmac.New256(custom) }, 32, nil
	case MacKMAC512:
		return func(custom []byte) mac.Mac { return kmac.New512(custom) }, 64, nil
	case MacKMAC1024:
		return func(custom []byte) mac.Mac { return kmac.New1024(custom) }, 128, nil
	default:
		return nil, 0, NewError(InvalidParam, "cex.NewHBA", "unknown mac id")
	}
}
