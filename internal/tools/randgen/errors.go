// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package randgen

import "errors"

var (
	errNoOutput          = errors.New("output is required")
	errNegativeBytes     = errors.New("bytes must not be negative")
	errBadChunk          = errors.New("chunk must be greater than zero")
	errBadFormat         = errors.New("format must be one of raw, hex, base64")
	errBadSeed           = errors.New("seed must be 64 hex characters")
	errSeedAndPassphrase = errors.New("seed and passphrase are mutually exclusive")
)
