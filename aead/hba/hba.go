// Package hba implements HBA (Hash-Based Authenticated encryption), a
// two-pass Encrypt-then-MAC AEAD over block-cipher CTR mode and a keyed MAC
// (HMAC-SHA2 or KMAC), with a cSHAKE-driven key schedule and a per-finalize
// MAC rekey seeded by the running byte counter.
package hba

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/cex-go/cex"
	ciph "github.com/cex-go/cex/cipher"
	"github.com/cex-go/cex/cipher/ctrmode"
	"github.com/cex-go/cex/hash/shake"
	"github.com/cex-go/cex/key/symmetrickey"
	"github.com/cex-go/cex/mac"
)

// MinTagSize is the smallest tag length, in bytes, Finalize/Verify accept.
const MinTagSize = 32

// NonceSize is HBA's required nonce length: exactly the cipher block size.
const NonceSize = 16

// omegaInfo is HBA's fixed 16-byte version tag, embedded in every instance's
// cSHAKE customization string so that two implementations agreeing on this
// constant are wire-interoperable and those that don't are not.
var omegaInfo = []byte("CHA version 1.0a")

// MacFactory constructs a fresh mac.Mac bound to the given cSHAKE
// customization string (used by KMAC; ignored by HMAC-SHA2 factories).
type MacFactory func(custom []byte) mac.Mac

// shakeProfile pairs a cSHAKE rate/round configuration with the key size that
// selects it.
type shakeProfile struct {
	keySize int
	rate    int
	rounds  int
}

var profiles = []shakeProfile{
	{32, shake.Rate256, 24},
	{64, shake.Rate512, 24},
	{128, shake.Rate1024, 48},
}

func profileFor(keySize int) (shakeProfile, bool) {
	for _, p := range profiles {
		if p.keySize == keySize {
			return p, true
		}
	}
	return shakeProfile{}, false
}

// state tracks where in the HBA lifecycle an instance is.
type state int

const (
	stateUninit state = iota
	stateReady
	stateFinalized
)

// Hba is an Encrypt-then-MAC AEAD combining CtrMode with a keyed MAC.
type Hba struct {
	blk        ciph.BlockCipher
	algoName   []byte // "HBA-" + cipher name
	macFactory MacFactory
	macKeySize int

	parallelBlockSize int
	maxDegree         int

	ctr *ctrmode.Mode
	m   mac.Mac

	custom    []byte
	keyBits   uint16
	nonceCopy []byte

	associatedData []byte
	preserveAD     bool
	counter        uint64
	direction      ciph.Direction
	st             state
	lastMacKey     []byte
}

// Option configures a Hba at construction time.
type Option func(*Hba)

// WithParallel configures the CTR transform's parallel fast path.
// parallelBlockSize is the input-length threshold, in bytes, above which
// Transform shards across maxDegree goroutines.
func WithParallel(parallelBlockSize, maxDegree int) Option {
	return func(h *Hba) {
		h.parallelBlockSize = parallelBlockSize
		h.maxDegree = maxDegree
	}
}

// WithPreserveAssociatedData keeps associated data set across Finalize calls
// instead of clearing it (the default).
func WithPreserveAssociatedData() Option {
	return func(h *Hba) { h.preserveAD = true }
}

// New returns an uninitialized Hba using blk for CTR-mode encryption and
// macFactory (together with macKeySize, the MAC's preferred/second legal key
// size: 32 for HMAC-256/KMAC-256, 64 for HMAC-512/KMAC-512, 128 for
// KMAC-1024) for authentication. cipherName is embedded in the key schedule
// (e.g. "AES", "RHX") to produce algorithm names like "HBA-AES".
func New(blk ciph.BlockCipher, cipherName string, macFactory MacFactory, macKeySize int, opts ...Option) *Hba {
	h := &Hba{
		blk:               blk,
		algoName:          append([]byte("HBA-"), cipherName...),
		macFactory:        macFactory,
		macKeySize:        macKeySize,
		parallelBlockSize: ctrmode.DefaultParallelBlockSize,
		maxDegree:         1,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Initialize sets up the cipher and MAC key schedule for direction using key.
// key.Key must be 32, 64 or 128 bytes; key.Nonce must be exactly 16 bytes;
// key.Info becomes user-supplied customization bound into every derived key.
func (h *Hba) Initialize(direction ciph.Direction, key *symmetrickey.SymmetricKey) error {
	profile, ok := profileFor(len(key.Key))
	if !ok {
		return cex.NewError(cex.InvalidKeySize, "hba.Initialize", "key must be 32, 64 or 128 bytes")
	}
	if len(key.Nonce) != NonceSize {
		return cex.NewError(cex.InvalidNonceSize, "hba.Initialize", "nonce must be 16 bytes")
	}

	h.custom = append(append([]byte(nil), omegaInfo...), key.Info...)
	h.keyBits = uint16(len(key.Key) * 8)
	h.nonceCopy = append([]byte(nil), key.Nonce...)

	name := h.nameFor(1)
	xof := newCShake(profile, name, h.custom)
	xof.Absorb(key.Key)

	ctrKey := make([]byte, len(key.Key))
	xof.Squeeze(ctrKey)
	if err := h.blk.Initialize(direction, symmetrickey.New(ctrKey, key.Nonce, key.Info)); err != nil {
		return err
	}
	ctr, err := ctrmode.New(h.blk, key.Nonce, h.parallelBlockSize, h.maxDegree)
	if err != nil {
		return err
	}
	h.ctr = ctr

	macKey := make([]byte, h.macKeySize)
	xof.Squeeze(macKey)
	h.m = h.macFactory(h.custom)
	if err := h.m.Initialize(macKey); err != nil {
		return err
	}
	h.lastMacKey = macKey
	h.m.Update(key.Nonce)

	h.associatedData = nil
	h.counter = 1
	h.direction = direction
	h.st = stateReady
	return nil
}

// nameFor builds the cSHAKE name string: LE64(counter) || LE16(keyBits) ||
// algoName.
func (h *Hba) nameFor(counter uint64) []byte {
	name := make([]byte, 8+2+len(h.algoName))
	binary.LittleEndian.PutUint64(name[0:8], counter)
	binary.LittleEndian.PutUint16(name[8:10], h.keyBits)
	copy(name[10:], h.algoName)
	return name
}

func newCShake(p shakeProfile, name, custom []byte) *shake.XOF {
	switch p.rate {
	case shake.Rate512:
		return shake.NewCShake512(name, custom)
	case shake.Rate1024:
		return shake.NewCShake1024(name, custom)
	default:
		return shake.NewCShake256(name, custom)
	}
}

// SetAssociatedData stores bytes as this message's associated data, replacing
// (not concatenating with) any previous value. Allowed only between
// Initialize and Finalize/Verify.
func (h *Hba) SetAssociatedData(data []byte) error {
	if h.st != stateReady {
		return cex.NewError(cex.IllegalOperation, "hba.SetAssociatedData", "must be called after Initialize and before Finalize")
	}
	h.associatedData = data
	return nil
}

// Transform encrypts (direction Encrypt) or decrypts (direction Decrypt) src
// into dst, which must be the same length as src, updating the MAC with the
// ciphertext and advancing the byte counter. It may be called multiple times
// per message.
func (h *Hba) Transform(dst, src []byte) error {
	if h.st == stateFinalized {
		return cex.NewError(cex.IllegalOperation, "hba.Transform", "message already finalized; call Initialize first")
	}
	if h.st != stateReady {
		return cex.NewError(cex.NotInitialized, "hba.Transform", "call Initialize first")
	}
	if h.direction == ciph.Encrypt {
		h.ctr.Transform(dst, src)
		h.m.Update(dst)
	} else {
		h.m.Update(src)
		h.ctr.Transform(dst, src)
	}
	h.counter += uint64(len(src))
	return nil
}

// Finalize absorbs associated data and a length trailer into the MAC,
// produces the tag, writes tagLen bytes of it to tagOut, and rekeys the MAC.
// tagLen must be in [MinTagSize, mac.TagSize()]. The instance is then
// finalized: Transform, SetAssociatedData, Finalize and Verify are refused
// until Initialize, which derives a fresh MAC key from the key, so the
// rekeyed MAC is not used by any later message.
func (h *Hba) Finalize(tagOut []byte, tagLen int) error {
	if h.st == stateUninit {
		return cex.NewError(cex.NotInitialized, "hba.Finalize", "call Initialize first")
	}
	if h.st != stateReady {
		return cex.NewError(cex.IllegalOperation, "hba.Finalize", "instance is not in Ready state")
	}
	if tagLen < MinTagSize || tagLen > h.m.TagSize() {
		return cex.NewError(cex.InvalidSize, "hba.Finalize", "tag length out of range")
	}
	if len(tagOut) < tagLen {
		return cex.NewError(cex.InvalidSize, "hba.Finalize", "tagOut too small")
	}

	adLen := len(h.associatedData)
	if adLen > 0 {
		h.m.Update(h.associatedData)
		if !h.preserveAD {
			h.associatedData = nil
		}
	}

	var trailer [8]byte
	binary.LittleEndian.PutUint64(trailer[:], h.counter+uint64(adLen)+uint64(NonceSize))
	h.m.Update(trailer[:])

	tag := make([]byte, h.m.TagSize())
	h.m.Finalize(tag)
	copy(tagOut, tag[:tagLen])

	h.rekey()
	h.st = stateFinalized
	return nil
}

// rekey derives a replacement MAC key from the current running counter and
// the existing MAC key, then re-initializes the MAC with it.
func (h *Hba) rekey() {
	name := h.nameFor(h.counter)
	xof := newCShake(mustProfile(h.keyBits), name, h.custom)
	xof.Absorb(h.lastMacKey)

	newKey := make([]byte, h.macKeySize)
	xof.Squeeze(newKey)
	h.lastMacKey = newKey
	h.m = h.macFactory(h.custom)
	_ = h.m.Initialize(newKey)
}

func mustProfile(keyBits uint16) shakeProfile {
	p, _ := profileFor(int(keyBits) / 8)
	return p
}

// Verify recomputes Finalize's tag if this instance hasn't finalized yet,
// then compares the first length bytes of it against
// expectedTag[offset:offset+length] in constant time, returning false if they
// differ. Verify does not clear or withhold plaintext that Transform has
// already written to its output buffer: after a false result that buffer
// still holds the decrypted bytes.
func (h *Hba) Verify(expectedTag []byte, offset, length int) (bool, error) {
	if h.st == stateReady {
		computed := make([]byte, h.m.TagSize())
		if err := h.Finalize(computed, length); err != nil {
			return false, err
		}
		return subtle.ConstantTimeCompare(computed[:length], expectedTag[offset:offset+length]) == 1, nil
	}
	if h.st == stateUninit {
		return false, cex.NewError(cex.NotInitialized, "hba.Verify", "call Initialize before Verify")
	}
	return false, cex.NewError(cex.IllegalOperation, "hba.Verify", "message already finalized; call Initialize first")
}
