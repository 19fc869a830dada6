// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build !amd64 || purego

package aesni

// Hardware reports whether block encryption uses AES instructions.
const Hardware = false

func encryptBlock(xk *Schedule, dst []byte, src *Block) {
	out := EncryptReference(xk, src)
	copy(dst, out[:])
}

func encrypt8(xk *Schedule, dst []byte, src *[8]Block) {
	for i := range src {
		out := EncryptReference(xk, &src[i])
		copy(dst[i*BlockSize:], out[:])
	}
}
