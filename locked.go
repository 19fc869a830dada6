// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesrng

import (
	"fmt"
	"io"
	"sync"
)

// LockedReader serializes access to a single Core so it can be shared
// between goroutines. Independent streams per goroutine are faster; use this
// only when one stream must be shared.
type LockedReader struct {
	mu   sync.Mutex
	core Core
}

// NewLockedReader creates a LockedReader from seed.
func NewLockedReader(seed Seed) *LockedReader {
	l := &LockedReader{}
	l.core.init(&seed)
	return l
}

// Fill overwrites p with random bytes.
func (l *LockedReader) Fill(p []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.core.Fill(p)
}

// Read fills p and returns len(p). It never fails.
func (l *LockedReader) Read(p []byte) (int, error) {
	l.Fill(p)
	return len(p), nil
}

const lockedMarker = "aesrng.LockedReader{}"

// String hides the generator state.
func (l *LockedReader) String() string { return lockedMarker }

// Format prints only the type name, whatever the verb.
func (l *LockedReader) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, lockedMarker)
}
