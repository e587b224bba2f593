// Package symmetrickey implements the opaque key-material container shared
// by every symmetric primitive in this module: a key, an optional nonce and
// optional auxiliary info, with a defined binary wire layout and an explicit
// zeroization lifecycle.
package symmetrickey

import (
	"encoding/binary"
	"errors"
)

// SymmetricKey is a container for the raw bytes a BlockCipher or HBA instance
// is initialized with. All three fields may be empty.
type SymmetricKey struct {
	Key   []byte
	Nonce []byte
	Info  []byte
}

// New returns a SymmetricKey wrapping key, nonce and info directly (no copy).
func New(key, nonce, info []byte) *SymmetricKey {
	return &SymmetricKey{Key: key, Nonce: nonce, Info: info}
}

// MarshalBinary encodes k as u16 key_len || u16 nonce_len || u16 info_len ||
// key || nonce || info, all lengths little-endian.
func (k *SymmetricKey) MarshalBinary() ([]byte, error) {
	if len(k.Key) > 0xFFFF || len(k.Nonce) > 0xFFFF || len(k.Info) > 0xFFFF {
		return nil, errors.New("symmetrickey: field too large to encode")
	}
	out := make([]byte, 6+len(k.Key)+len(k.Nonce)+len(k.Info))
	binary.LittleEndian.PutUint16(out[0:2], uint16(len(k.Key)))
	binary.LittleEndian.PutUint16(out[2:4], uint16(len(k.Nonce)))
	binary.LittleEndian.PutUint16(out[4:6], uint16(len(k.Info)))
	n := 6
	n += copy(out[n:], k.Key)
	n += copy(out[n:], k.Nonce)
	copy(out[n:], k.Info)
	return out, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary into k, replacing
// its contents.
func (k *SymmetricKey) UnmarshalBinary(data []byte) error {
	if len(data) < 6 {
		return errors.New("symmetrickey: truncated header")
	}
	keyLen := int(binary.LittleEndian.Uint16(data[0:2]))
	nonceLen := int(binary.LittleEndian.Uint16(data[2:4]))
	infoLen := int(binary.LittleEndian.Uint16(data[4:6]))
	data = data[6:]
	if len(data) < keyLen+nonceLen+infoLen {
		return errors.New("symmetrickey: truncated body")
	}
	k.Key = append([]byte(nil), data[:keyLen]...)
	data = data[keyLen:]
	k.Nonce = append([]byte(nil), data[:nonceLen]...)
	data = data[nonceLen:]
	k.Info = append([]byte(nil), data[:infoLen]...)
	return nil
}

// Zeroize overwrites every field with zero bytes. The SymmetricKey is not
// usable afterward.
func (k *SymmetricKey) Zeroize() {
	zero(k.Key)
	zero(k.Nonce)
	zero(k.Info)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
