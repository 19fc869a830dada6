// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesrng

import (
	"errors"
	"fmt"
)

var (
	// ErrSeedRead is returned when a seed cannot be read in full.
	ErrSeedRead = errors.New("failed to read seed")

	// ErrSelfTest is returned when a known-answer check fails.
	ErrSelfTest = errors.New("self test failed")
)

// SelfTestError names the known-answer vector that did not match.
type SelfTestError struct {
	Vector string // roundkeys, counter or fill
	Got    string
	Want   string
}

func (e *SelfTestError) Error() string {
	return fmt.Sprintf("%v: %s mismatch: got %s, want %s", ErrSelfTest, e.Vector, e.Got, e.Want)
}

func (e *SelfTestError) Unwrap() error {
	return ErrSelfTest
}
