// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesrng

import (
	"fmt"
	"io"

	"github.com/pion/aesrng/internal/aesni"
)

const (
	wideBatch   = 8 * aesni.BlockSize
	narrowBatch = 2 * aesni.BlockSize
)

// Core is the generator state: an expanded key and a counter.
//
// A Core is not safe for concurrent use. Give each goroutine its own Core,
// or use a LockedReader.
type Core struct {
	roundKeys aesni.Schedule
	counter   aesni.Block
}

// FromSeed creates a Core from seed.
func FromSeed(seed Seed) *Core {
	c := &Core{}
	c.init(&seed)
	return c
}

func (c *Core) init(seed *Seed) {
	c.roundKeys = aesni.ExpandKey(seed.key())
	c.counter = seed.counter()
}

// Fill overwrites buf with random bytes and then replaces the key.
//
// The key is replaced even when buf is empty, so every call changes the
// output of the next one.
func (c *Core) Fill(buf []byte) {
	var ctr [8]aesni.Block
	n := c.counter

	for len(buf) > wideBatch {
		for i := range ctr {
			ctr[i] = n.Add(uint64(i))
		}
		aesni.Encrypt8(&c.roundKeys, buf[:wideBatch], &ctr)
		n = n.Add(8)
		buf = buf[wideBatch:]
	}

	for len(buf) > narrowBatch {
		next := n.Add(1)
		aesni.Encrypt(&c.roundKeys, buf[:aesni.BlockSize], &n)
		aesni.Encrypt(&c.roundKeys, buf[aesni.BlockSize:narrowBatch], &next)
		n = n.Add(2)
		buf = buf[narrowBatch:]
	}

	for len(buf) > aesni.BlockSize {
		aesni.Encrypt(&c.roundKeys, buf[:aesni.BlockSize], &n)
		n = n.Add(1)
		buf = buf[aesni.BlockSize:]
	}

	if len(buf) > 0 {
		var tail [aesni.BlockSize]byte
		aesni.Encrypt(&c.roundKeys, tail[:], &n)
		copy(buf, tail[:])
		n = n.Add(1)
	}

	c.counter = n
	c.rekey()
}

// rekey encrypts the counter with the key erasure bit set and installs the
// result as the next key. The stored counter is left untouched.
func (c *Core) rekey() {
	erase := c.counter.Xor(aesni.KeyErasureDomain)
	var key aesni.Block
	aesni.Encrypt(&c.roundKeys, key[:], &erase)
	c.roundKeys = aesni.ExpandKey(key)
}

// Read fills p and returns len(p). It never fails.
func (c *Core) Read(p []byte) (int, error) {
	c.Fill(p)
	return len(p), nil
}

const coreMarker = "aesrng.Core{}"

// String hides the generator state.
func (c Core) String() string { return coreMarker } //nolint:gocritic

// Format prints only the type name, whatever the verb.
func (c Core) Format(f fmt.State, _ rune) { //nolint:gocritic
	_, _ = io.WriteString(f, coreMarker)
}
