// Package mac defines the uniform keyed-MAC contract shared by HMAC-SHA2 and
// KMAC, so that HBA can select between them at construction time without
// caring which one it got.
package mac

// Mac is a keyed message authentication code generator.
type Mac interface {
	// Initialize (re)keys the MAC. It may be called more than once on the same
	// instance to rekey it.
	Initialize(key []byte) error
	// Update absorbs more message bytes.
	Update(data []byte)
	// Finalize writes the tag to out, which must be at least TagSize() bytes,
	// and returns the number of bytes written.
	Finalize(out []byte) int
	// TagSize returns the tag length, in bytes, produced by Finalize.
	TagSize() int
}
