// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
)

// Exitf reports a fatal aesrng command error on stderr and exits with
// status 1. It is only called before any generator output is written.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
