// Package pda implements Solana program derived address (PDA)
// computation: SHA-256 over the seeds, the program ID and a fixed
// domain-separation marker, with a backward bump search that stops at
// the first digest that is not a valid Ed25519 curve point.
package pda

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"

	"solana-declare-go/pkg/pubkey"
)

const (
	// MaxSeeds is the maximum number of seeds, bump included.
	MaxSeeds = 16
	// MaxSeedLen is the maximum length of a single seed in bytes.
	MaxSeedLen = 32

	// Marker is the domain-separation suffix appended to every PDA
	// hash input. Must be byte-identical across implementations or
	// derived addresses will not match.
	Marker = "ProgramDerivedAddress"
)

var (
	ErrTooManySeeds = errors.New("too many seeds: at most 16 allowed")
	ErrSeedTooLong  = errors.New("seed too long: at most 32 bytes allowed")
	ErrOnCurve      = errors.New("derived address is on the ed25519 curve")
	ErrExhausted    = errors.New("no viable program address: all 256 bump candidates are on-curve")
	ErrMismatch     = errors.New("declared address does not match the computed derivation")
)

// Derivation pairs a derived address with the bump seed that produced
// it. Computed fresh on every call, never cached.
type Derivation struct {
	Address pubkey.PublicKey
	Bump    uint8
}

// CreateProgramAddress hashes the seeds, the program ID and the Marker
// in that order and returns the digest as an address, or ErrOnCurve if
// the digest decompresses
// as a valid curve point and therefore could have a private key.
func CreateProgramAddress(seeds [][]byte, programID pubkey.PublicKey) (pubkey.PublicKey, error) {
	if len(seeds) > MaxSeeds {
		return pubkey.PublicKey{}, fmt.Errorf("%w: got %d", ErrTooManySeeds, len(seeds))
	}

	hasher := sha256.New()
	for i, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return pubkey.PublicKey{}, fmt.Errorf("%w: seed %d is %d bytes", ErrSeedTooLong, i, len(seed))
		}
		hasher.Write(seed)
	}
	hasher.Write(programID[:])
	hasher.Write([]byte(Marker))

	var address pubkey.PublicKey
	copy(address[:], hasher.Sum(nil))

	if IsOnCurve(address[:]) {
		return pubkey.PublicKey{}, ErrOnCurve
	}
	return address, nil
}

// FindProgramAddress searches bump candidates from 255 down to 0,
// appending the bump as a final one-byte seed, and returns the first
// off-curve result. The backward order is canonical: the highest
// viable bump wins, so independent implementations agree on the pair.
// Deterministic for a given (seeds, programID).
func FindProgramAddress(seeds [][]byte, programID pubkey.PublicKey) (Derivation, error) {
	if len(seeds) >= MaxSeeds {
		return Derivation{}, fmt.Errorf("%w: got %d plus bump", ErrTooManySeeds, len(seeds))
	}

	candidate := make([][]byte, len(seeds), len(seeds)+1)
	copy(candidate, seeds)

	for bump := 255; bump >= 0; bump-- {
		address, err := CreateProgramAddress(append(candidate, []byte{uint8(bump)}), programID)
		if err == nil {
			return Derivation{Address: address, Bump: uint8(bump)}, nil
		}
		if !errors.Is(err, ErrOnCurve) {
			return Derivation{}, err
		}
	}
	return Derivation{}, ErrExhausted
}

// IsOnCurve reports whether b decompresses as a point on the ed25519
// curve, ignoring the sign bit per the standard compressed-point test.
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

// ValidateDeclared checks a declared PDA triple: it decodes the claimed
// address and program ID literals, recomputes the derivation and
// compares. On success the returned Derivation carries the claimed
// literal's decoded bytes (authoritative for emission, even though they
// equal the computed ones) together with the recomputed bump. A
// mismatch is a defect in the declaration and is never patched.
func ValidateDeclared(address, programID string, seeds [][]byte) (Derivation, error) {
	claimed, err := pubkey.FromBase58(address)
	if err != nil {
		return Derivation{}, fmt.Errorf("declared address: %w", err)
	}

	program, err := pubkey.FromBase58(programID)
	if err != nil {
		return Derivation{}, fmt.Errorf("program ID: %w", err)
	}

	computed, err := FindProgramAddress(seeds, program)
	if err != nil {
		return Derivation{}, err
	}

	if !computed.Address.Equals(claimed) {
		return Derivation{}, fmt.Errorf("%w: declared %s, computed %s",
			ErrMismatch, claimed, computed.Address)
	}

	return Derivation{Address: claimed, Bump: computed.Bump}, nil
}
