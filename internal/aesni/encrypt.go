// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesni

// Encrypt writes the block primitive of src under xk to dst[:BlockSize].
func Encrypt(xk *Schedule, dst []byte, src *Block) {
	if len(dst) < BlockSize {
		panic("aesni: output not full block")
	}
	encryptBlock(xk, dst[:BlockSize], src)
}

// Encrypt8 encrypts eight independent counter blocks into dst[:8*BlockSize].
func Encrypt8(xk *Schedule, dst []byte, src *[8]Block) {
	if len(dst) < 8*BlockSize {
		panic("aesni: output not full blocks")
	}
	encrypt8(xk, dst[:8*BlockSize], src)
}
