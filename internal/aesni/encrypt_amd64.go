// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

//go:build amd64 && !purego

package aesni

// Hardware reports whether block encryption uses AES instructions.
const Hardware = true

// defined in encrypt_amd64.s

//go:noescape
func encryptBlockAsm(xk *Schedule, dst, src *byte)

//go:noescape
func encrypt8Asm(xk *Schedule, dst *byte, src *[8]Block)

func encryptBlock(xk *Schedule, dst []byte, src *Block) {
	encryptBlockAsm(xk, &dst[0], &src[0])
}

func encrypt8(xk *Schedule, dst []byte, src *[8]Block) {
	encrypt8Asm(xk, &dst[0], src)
}
