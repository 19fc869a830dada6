// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesrng

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Number of 32-bit words produced per refill. Each refill is one Fill and
// therefore one key erasure.
const wordBufferSize = 32

// Rng hands out 32 and 64-bit words from a buffer refilled by a Core.
//
// Read and Fill bypass the word buffer and go straight to the Core, so mixing
// them with Uint32 or Uint64 calls does not produce the same words as a
// single stream would. An Rng is not safe for concurrent use.
//
// Use NewRng or NewRngFromReader. The zero value draws from an unseeded Core.
type Rng struct {
	core    Core
	results [wordBufferSize * 4]byte
	left    int // words not yet handed out; zero means refill first
}

// NewRng creates an Rng from seed.
func NewRng(seed Seed) *Rng {
	r := &Rng{}
	r.core.init(&seed)
	return r
}

// NewRngFromReader reads a seed from rd, typically crypto/rand.Reader, and
// creates an Rng from it.
func NewRngFromReader(rd io.Reader) (*Rng, error) {
	var seed Seed
	if _, err := io.ReadFull(rd, seed[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeedRead, err)
	}
	return NewRng(seed), nil
}

func (r *Rng) generate() {
	r.core.Fill(r.results[:])
}

func (r *Rng) word(i int) uint32 {
	return binary.LittleEndian.Uint32(r.results[4*i:])
}

// next returns the next buffered word. At least one must be left.
func (r *Rng) next() uint32 {
	v := r.word(wordBufferSize - r.left)
	r.left--
	return v
}

// Uint32 returns the next 32-bit word.
func (r *Rng) Uint32() uint32 {
	if r.left == 0 {
		r.generate()
		r.left = wordBufferSize
	}
	return r.next()
}

// Uint64 returns the next two words as one 64-bit value, low word first.
// A value may straddle a refill.
func (r *Rng) Uint64() uint64 {
	switch r.left {
	case 0:
		r.generate()
		r.left = wordBufferSize
	case 1:
		lo := r.next()
		r.generate()
		r.left = wordBufferSize
		return uint64(r.next())<<32 | uint64(lo)
	}
	lo := r.next()
	return uint64(r.next())<<32 | uint64(lo)
}

// Fill overwrites p with random bytes directly from the Core.
func (r *Rng) Fill(p []byte) {
	r.core.Fill(p)
}

// Read fills p and returns len(p). It never fails.
func (r *Rng) Read(p []byte) (int, error) {
	r.core.Fill(p)
	return len(p), nil
}

const rngMarker = "aesrng.Rng{}"

// String hides the generator state.
func (r Rng) String() string { return rngMarker } //nolint:gocritic

// Format prints only the type name, whatever the verb.
func (r Rng) Format(f fmt.State, _ rune) { //nolint:gocritic
	_, _ = io.WriteString(f, rngMarker)
}
