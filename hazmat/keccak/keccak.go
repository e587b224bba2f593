// Package keccak implements the Keccak-p[1600] permutation family used by every
// sponge-based primitive in this module: SHA-3, SHAKE, cSHAKE and KMAC.
//
// Two round counts are supported. Rounds24 is the standard Keccak-f[1600]
// permutation specified by FIPS 202 and is used by every variant except the
// 1024-bit ones. Rounds48 is an extended-security variant used by the
// 1024-bit variants (SHA3-1024, SHAKE1024/cSHAKE1024 and KMAC-1024), where the smaller rate
// (64 bytes) leaves more of the state as capacity and the library compensates
// by doubling the number of rounds.
package keccak

// State is the 1600-bit Keccak state: 25 lanes of 64 bits, arranged so that
// lane (x, y) lives at index x+5y. All absorption and squeezing is done
// little-endian within each lane, per the sponge construction in FIPS 202.
type State [25]uint64

const (
	// Rounds24 is the standard Keccak-f[1600] round count.
	Rounds24 = 24
	// Rounds48 is the extended-security round count used by the 1024-bit
	// rate variants.
	Rounds48 = 48
)

// rotc holds the rotation offset for each lane, indexed by x+5y, as specified
// by the ρ step of FIPS 202.
var rotc = [25]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// baseRoundConstants holds the ι step's round constants for the standard
// 24-round Keccak-f[1600] permutation, as tabulated in FIPS 202.
var baseRoundConstants = [Rounds24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// roundConstants holds the ι step's round constants for every round up to
// Rounds48. The first 24 entries reproduce FIPS 202 exactly; the remaining 24
// continue the same LFSR recurrence (FIPS 202 §3.2.5) to give the extended
// round count an internally consistent constant sequence. As in the FIPS 202
// table itself, the 48 entries are not all distinct.
var roundConstants [Rounds48]uint64

func init() {
	copy(roundConstants[:Rounds24], baseRoundConstants[:])

	var lfsr byte = 1
	next := func() byte {
		cur := lfsr
		if lfsr&0x80 != 0 {
			lfsr = lfsr<<1 ^ 0x71
		} else {
			lfsr <<= 1
		}
		return cur & 1
	}
	// Advance the LFSR through the first 24 rounds' worth of bits so the
	// extension continues the same sequence rather than restarting it.
	for round := 0; round < Rounds24; round++ {
		for j := 0; j < 7; j++ {
			next()
		}
	}

	for round := Rounds24; round < Rounds48; round++ {
		var rc uint64
		for j := 0; j < 7; j++ {
			if next() == 1 {
				rc |= 1 << (uint(1<<uint(j)) - 1)
			}
		}
		roundConstants[round] = rc
	}
}

// Permute applies the Keccak-p[1600, rounds] permutation to s in place.
// rounds must be Rounds24 or Rounds48. When rounds is 24, the permutation
// uses the first 24 entries of roundConstants, which reproduce the standard
// FIPS 202 Keccak-f[1600] constants.
func (s *State) Permute(rounds int) {
	var bc [5]uint64

	for round := 0; round < rounds; round++ {
		// θ
		for x := 0; x < 5; x++ {
			bc[x] = s[x] ^ s[x+5] ^ s[x+10] ^ s[x+15] ^ s[x+20]
		}
		for x := 0; x < 5; x++ {
			t := bc[(x+4)%5] ^ rotl64(bc[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				s[x+y] ^= t
			}
		}

		// ρ and π: B[y, 2x+3y] = rotl(A[x,y], R[x,y])
		var tmp State
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				src := x + 5*y
				dst := y + 5*((2*x+3*y)%5)
				tmp[dst] = rotl64(s[src], rotc[src])
			}
		}

		// χ
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				s[x+y] = tmp[x+y] ^ ((^tmp[(x+1)%5+y]) & tmp[(x+2)%5+y])
			}
		}

		// ι
		s[0] ^= roundConstants[round]
	}
}

func rotl64(x uint64, n uint) uint64 {
	return x<<n | x>>(64-n)
}

// Permute1600 applies the standard 24-round Keccak-f[1600] permutation.
func Permute1600(s *State) {
	s.Permute(Rounds24)
}

// Permute1600x48 applies the extended 48-round permutation used by the
// 1024-bit rate variants.
func Permute1600x48(s *State) {
	s.Permute(Rounds48)
}
