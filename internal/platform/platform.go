// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package platform checks that the host can run the AES block primitive the
// generator was compiled with.
package platform

import (
	"errors"

	"github.com/pion/aesrng/internal/aesni"
	"golang.org/x/sys/cpu"
)

// ErrNoAES is returned by Check when the binary uses AES instructions the CPU
// does not provide.
var ErrNoAES = errors.New("cpu does not support AES instructions")

// HasAES reports whether the CPU provides AES round instructions.
func HasAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES
}

// Check returns ErrNoAES when the generator was built for AES instructions
// and the CPU lacks them.
func Check() error {
	return check(aesni.Hardware, cpu.X86.HasAES)
}

func check(hardware, hasAES bool) error {
	if hardware && !hasAES {
		return ErrNoAES
	}
	return nil
}
