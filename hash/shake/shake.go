// Package shake implements the SHAKE extendable-output functions and their
// customized variant, cSHAKE, per NIST SP 800-185. Both are parameterised by
// rate; cSHAKE additionally absorbs a function-name and customization string
// before the message.
package shake

import (
	"github.com/cex-go/cex/hazmat/keccak"
	"github.com/cex-go/cex/hazmat/sponge"
)

const (
	domainSHAKE  = 0x1F
	domainCSHAKE = 0x04
)

// Rates, in bytes, for each SHAKE security level. SHAKE128/256 are the
// standard FIPS 202 rates; SHAKE512/1024 extend the family following the same
// rate-halving pattern as the SHA3-512/1024 fixed hashes, with SHAKE1024 using
// the 48-round permutation.
const (
	Rate128  = 168
	Rate256  = 136
	Rate512  = 72
	Rate1024 = 64
)

// XOF is an extendable-output function: absorb a message, then squeeze any
// amount of output.
type XOF struct {
	s      *sponge.Sponge
	rate   int
	rounds int
}

// New128 returns a plain (uncustomized) SHAKE128 XOF.
func New128() *XOF { return newShake(Rate128, keccak.Rounds24) }

// New256 returns a plain (uncustomized) SHAKE256 XOF.
func New256() *XOF { return newShake(Rate256, keccak.Rounds24) }

// New512 returns a plain (uncustomized) SHAKE512 XOF.
func New512() *XOF { return newShake(Rate512, keccak.Rounds24) }

// New1024 returns a plain (uncustomized) SHAKE1024 XOF.
func New1024() *XOF { return newShake(Rate1024, keccak.Rounds48) }

func newShake(rate, rounds int) *XOF {
	return &XOF{s: sponge.New(rate, domainSHAKE, rounds), rate: rate, rounds: rounds}
}

// NewCShake128 returns a cSHAKE128 XOF customized with name and customization.
// If both are empty, the construction degenerates to plain SHAKE128.
func NewCShake128(name, custom []byte) *XOF { return newCShake(Rate128, keccak.Rounds24, name, custom) }

// NewCShake256 returns a cSHAKE256 XOF customized with name and customization.
func NewCShake256(name, custom []byte) *XOF { return newCShake(Rate256, keccak.Rounds24, name, custom) }

// NewCShake512 returns a cSHAKE512 XOF customized with name and customization.
func NewCShake512(name, custom []byte) *XOF { return newCShake(Rate512, keccak.Rounds24, name, custom) }

// NewCShake1024 returns a cSHAKE1024 XOF customized with name and customization.
func NewCShake1024(name, custom []byte) *XOF {
	return newCShake(Rate1024, keccak.Rounds48, name, custom)
}

func newCShake(rate, rounds int, name, custom []byte) *XOF {
	if len(name) == 0 && len(custom) == 0 {
		return newShake(rate, rounds)
	}
	s := sponge.New(rate, domainCSHAKE, rounds)
	prefix := append(EncodeString(name), EncodeString(custom)...)
	s.Absorb(BytePad(prefix, rate))
	return &XOF{s: s, rate: rate, rounds: rounds}
}

// Absorb feeds msg into the XOF. It may be called any number of times before
// the first Squeeze.
func (x *XOF) Absorb(msg []byte) { x.s.Absorb(msg) }

// Squeeze extracts len(out) bytes of output.
func (x *XOF) Squeeze(out []byte) { x.s.Squeeze(out) }

// Rate returns the XOF's underlying sponge rate in bytes.
func (x *XOF) Rate() int { return x.rate }

// LeftEncode returns the NIST SP 800-185 left_encode of n: the minimum-length
// big-endian encoding of n, prefixed by its own byte length.
func LeftEncode(n uint64) []byte {
	var buf [9]byte
	i := 8
	for {
		buf[i] = byte(n)
		n >>= 8
		if n == 0 {
			break
		}
		i--
	}
	length := 9 - i
	out := make([]byte, length+1)
	out[0] = byte(length)
	copy(out[1:], buf[i:])
	return out
}

// RightEncode returns the NIST SP 800-185 right_encode of n: the symmetric
// twin of LeftEncode with the length byte at the tail.
func RightEncode(n uint64) []byte {
	var buf [9]byte
	i := 8
	for {
		buf[i] = byte(n)
		n >>= 8
		if n == 0 {
			break
		}
		i--
	}
	length := 9 - i
	out := make([]byte, length+1)
	copy(out, buf[i:])
	out[length] = byte(length)
	return out
}

// EncodeString returns left_encode(8*len(s)) || s.
func EncodeString(s []byte) []byte {
	out := LeftEncode(uint64(len(s)) * 8)
	return append(out, s...)
}

// BytePad returns left_encode(w) || x, zero-padded to a multiple of w bytes.
func BytePad(x []byte, w int) []byte {
	out := append(LeftEncode(uint64(w)), x...)
	if rem := len(out) % w; rem != 0 {
		out = append(out, make([]byte, w-rem)...)
	}
	return out
}
