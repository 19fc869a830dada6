// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package aesrng implements a fast-key-erasure random number generator
// built from AES-128 round instructions.
//
// A Core encrypts consecutive counter values to fill a buffer and then
// derives a new key from the cipher itself, so state captured after a call
// cannot reproduce the bytes that call or any earlier call returned.
//
// On amd64 the AES instructions are used unconditionally. Running on a CPU
// without AES-NI faults; callers are responsible for checking the platform
// before constructing a generator.
package aesrng

import "github.com/pion/aesrng/internal/aesni"

// SeedSize is the length of a Seed in bytes.
const SeedSize = 32

// Seed initialises a generator. The first 16 bytes are the AES-128 key and
// the last 16 bytes are the initial counter, used as is.
type Seed [SeedSize]byte

func (s *Seed) key() aesni.Block     { return aesni.Load(s[:aesni.BlockSize]) }
func (s *Seed) counter() aesni.Block { return aesni.Load(s[aesni.BlockSize:]) }
