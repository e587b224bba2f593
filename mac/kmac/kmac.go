// Package kmac implements KMAC, the keyed MAC built on cSHAKE (NIST SP
// 800-185), in the 256-, 512- and extended-security 1024-bit variants HBA
// selects between.
package kmac

import (
	"github.com/cex-go/cex/hash/shake"
	"github.com/cex-go/cex/hazmat/keccak"
	"github.com/cex-go/cex/mac"
)

var kmacName = []byte("KMAC")

// KMAC wraps a cSHAKE instance with the mac.Mac contract.
type KMAC struct {
	rate    int
	rounds  int
	custom  []byte
	tagSize int
	x       *shake.XOF
}

// New256 returns an uninitialized KMAC-256 (136-byte rate, 32-byte tag).
func New256(custom []byte) *KMAC {
	return &KMAC{rate: shake.Rate256, rounds: keccak.Rounds24, custom: custom, tagSize: 32}
}

// New512 returns an uninitialized KMAC-512 (72-byte rate, 64-byte tag).
func New512(custom []byte) *KMAC {
	return &KMAC{rate: shake.Rate512, rounds: keccak.Rounds24, custom: custom, tagSize: 64}
}

// New1024 returns an uninitialized KMAC-1024 (64-byte rate, 48-round
// permutation, 128-byte tag).
func New1024(custom []byte) *KMAC {
	return &KMAC{rate: shake.Rate1024, rounds: keccak.Rounds48, custom: custom, tagSize: 128}
}

// Initialize keys the MAC, absorbing bytepad(encode_string(key), rate) into a
// fresh cSHAKE("KMAC", custom) instance. It may be called again to rekey.
func (k *KMAC) Initialize(key []byte) error {
	switch k.rounds {
	case keccak.Rounds48:
		k.x = shake.NewCShake1024(kmacName, k.custom)
	default:
		switch k.rate {
		case shake.Rate256:
			k.x = shake.NewCShake256(kmacName, k.custom)
		case shake.Rate512:
			k.x = shake.NewCShake512(kmacName, k.custom)
		default:
			k.x = shake.NewCShake128(kmacName, k.custom)
		}
	}
	k.x.Absorb(shake.BytePad(shake.EncodeString(key), k.rate))
	return nil
}

// Update absorbs more message bytes.
func (k *KMAC) Update(data []byte) { k.x.Absorb(data) }

// Finalize absorbs right_encode(8*TagSize()) and squeezes TagSize() bytes of
// tag into out.
func (k *KMAC) Finalize(out []byte) int {
	k.x.Absorb(shake.RightEncode(uint64(k.tagSize) * 8))
	tag := out[:k.tagSize]
	k.x.Squeeze(tag)
	return k.tagSize
}

// TagSize returns the MAC's tag length in bytes.
func (k *KMAC) TagSize() int { return k.tagSize }

var _ mac.Mac = (*KMAC)(nil)
