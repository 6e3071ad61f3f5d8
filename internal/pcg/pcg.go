// Package pcg implements the PCG-XSH-RR 32-bit generator (pcg-random.org)
// used to cross-check exact probabilities by simulation.
//
// A Source is not safe for concurrent use; give each goroutine its own.
package pcg

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

const multiplier = 6364136223846793005

// Source is a PCG32 generator with a 64-bit state and increment 1.
type Source struct {
	state uint64
}

// New returns a Source starting from the given state.
func New(seed uint64) *Source {
	return &Source{state: seed}
}

// Seed returns a Source seeded from the operating system's entropy source.
func Seed() (*Source, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("reading entropy: %w", err)
	}
	return New(binary.LittleEndian.Uint64(b[:])), nil
}

// Next returns the next 32 random bits.
func (s *Source) Next() uint32 {
	old := s.state
	s.state = old*multiplier + 1
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return xorshifted>>rot | xorshifted<<((-rot)&31)
}

// Uint64 returns 64 random bits built from two consecutive outputs.
func (s *Source) Uint64() uint64 {
	upper := s.Next()
	lower := s.Next()
	return uint64(upper)<<32 | uint64(lower)
}

// Uniform returns a uniformly distributed value in [0, bound). Values below
// 2^64 mod bound are rejected so that the modulo introduces no bias.
// bound must be non-zero.
func (s *Source) Uniform(bound uint64) uint64 {
	threshold := -bound % bound
	for {
		if r := s.Uint64(); r >= threshold {
			return r % bound
		}
	}
}
