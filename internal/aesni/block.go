// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package aesni holds the AES-128 primitives the generator is built from:
// key expansion, counter arithmetic and block encryption. Only this package
// touches the AES round instructions.
package aesni

import "encoding/binary"

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// Rounds is the number of AES-128 rounds.
	Rounds = 10
)

// Block is an opaque 128-bit value: a round key, a counter or a cipher output.
type Block [BlockSize]byte

// Schedule is an expanded AES-128 key. Index 0 is the master key.
type Schedule [Rounds + 1]Block

// KeyErasureDomain separates the counter values used to derive the next key
// from those used for output. Only the top bit of the upper 64-bit lane is set.
var KeyErasureDomain = Block{15: 0x80} //nolint:gochecknoglobals

// Add returns b with n added to its lower 64-bit lane. The lane is read as
// little-endian and wraps without carrying into the upper lane.
func (b Block) Add(n uint64) Block {
	binary.LittleEndian.PutUint64(b[0:8], binary.LittleEndian.Uint64(b[0:8])+n)
	return b
}

// Xor returns the exclusive-or of b and o.
func (b Block) Xor(o Block) Block {
	lo := binary.LittleEndian.Uint64(b[0:8]) ^ binary.LittleEndian.Uint64(o[0:8])
	hi := binary.LittleEndian.Uint64(b[8:16]) ^ binary.LittleEndian.Uint64(o[8:16])
	binary.LittleEndian.PutUint64(b[0:8], lo)
	binary.LittleEndian.PutUint64(b[8:16], hi)
	return b
}

// Load copies the first BlockSize bytes of src into a Block.
func Load(src []byte) (b Block) {
	copy(b[:], src[:BlockSize])
	return b
}
