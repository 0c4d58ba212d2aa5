package pubkey

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// Length is the size of a Solana public key in bytes.
const Length = 32

// PublicKey is a 32-byte Solana account or program identity.
type PublicKey [Length]byte

// ErrInvalidEncoding is returned when a literal is not valid base58.
var ErrInvalidEncoding = errors.New("invalid base58 encoding")

// WrongLengthError is returned when a literal decodes cleanly but does
// not yield exactly 32 bytes.
type WrongLengthError struct {
	Len int
}

func (e *WrongLengthError) Error() string {
	return fmt.Sprintf("decoded public key is %d bytes, expected %d", e.Len, Length)
}

// FromBase58 decodes a base58 string into a PublicKey.
func FromBase58(s string) (PublicKey, error) {
	var key PublicKey

	decoded, err := base58.Decode(s)
	if err != nil {
		return key, fmt.Errorf("%w: %q: %v", ErrInvalidEncoding, s, err)
	}

	if len(decoded) != Length {
		return key, &WrongLengthError{Len: len(decoded)}
	}

	copy(key[:], decoded)
	return key, nil
}

// FromBytes copies a 32-byte slice into a PublicKey.
func FromBytes(b []byte) (PublicKey, error) {
	var key PublicKey

	if len(b) != Length {
		return key, &WrongLengthError{Len: len(b)}
	}

	copy(key[:], b)
	return key, nil
}

// MustFromBase58 decodes a known-good base58 string and panics on
// failure. Intended for package-level constants.
func MustFromBase58(s string) PublicKey {
	key, err := FromBase58(s)
	if err != nil {
		panic(fmt.Sprintf("invalid public key %q: %v", s, err))
	}
	return key
}

// String returns the base58 representation of the key.
func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

// Bytes returns the key as a byte slice.
func (k PublicKey) Bytes() []byte {
	return k[:]
}

// Equals reports whether two keys hold the same bytes.
func (k PublicKey) Equals(other PublicKey) bool {
	return k == other
}

// IsZero reports whether the key is all zeroes (the system program ID).
func (k PublicKey) IsZero() bool {
	return k == PublicKey{}
}
