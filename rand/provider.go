// Package rand defines the Provider contract key generators use for
// cryptographic randomness, and a default implementation backed by the
// operating system's CSPRNG. Concrete hardware/jitter entropy providers
// (CJP, ECP, RDP, ACP, CSP in the wider CEX library) are out of scope here:
// only the trait and one stdlib-grounded default are provided.
package rand

import "crypto/rand"

// Provider supplies cryptographic randomness to key generators.
type Provider interface {
	// Generate fills out entirely with random bytes.
	Generate(out []byte) error
	// GenerateRange fills out[offset : offset+length] with random bytes.
	GenerateRange(out []byte, offset, length int) error
	// Reset reinitializes any internal state. System's Reset is a no-op: it
	// has none, since it reads directly from the OS CSPRNG on every call.
	Reset()
}

// System is a Provider backed directly by crypto/rand.Reader.
type System struct{}

// NewSystem returns a Provider reading from the operating system's CSPRNG.
func NewSystem() *System { return &System{} }

// Generate fills out entirely with random bytes from crypto/rand.Reader.
func (System) Generate(out []byte) error {
	_, err := rand.Read(out)
	return err
}

// GenerateRange fills out[offset : offset+length] with random bytes.
func (System) GenerateRange(out []byte, offset, length int) error {
	_, err := rand.Read(out[offset : offset+length])
	return err
}

// Reset is a no-op: System has no internal state to reinitialize.
func (System) Reset() {}

var _ Provider = System{}
