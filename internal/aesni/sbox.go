// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesni

import "math/bits"

var sbox [256]byte //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	for x := 0; x < 256; x++ {
		var inv byte
		if x != 0 {
			for y := 1; y < 256; y++ {
				if gmul(byte(x), byte(y)) == 1 {
					inv = byte(y)
					break
				}
			}
		}
		sbox[x] = inv ^ bits.RotateLeft8(inv, 1) ^ bits.RotateLeft8(inv, 2) ^
			bits.RotateLeft8(inv, 3) ^ bits.RotateLeft8(inv, 4) ^ 0x63
	}
}

// xtime multiplies by x in GF(2^8) modulo the AES polynomial.
func xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ 0x1b
	}
	return a << 1
}

func gmul(a, b byte) (p byte) {
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}
