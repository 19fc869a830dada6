// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesni

// Portable renditions of the AESENC and AESENCLAST instructions. State
// bytes are laid out column-major, byte i at row i%4 and column i/4.

// subShift applies SubBytes and ShiftRows.
func subShift(st *Block) (t Block) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[4*c+r] = sbox[st[4*((c+r)&3)+r]]
		}
	}
	return t
}

func mixColumns(t *Block) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := t[c], t[c+1], t[c+2], t[c+3]
		t[c] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3
		t[c+1] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3
		t[c+2] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3
		t[c+3] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3)
	}
}

func encRound(st *Block, rk *Block) {
	t := subShift(st)
	mixColumns(&t)
	*st = t.Xor(*rk)
}

func encLastRound(st *Block, rk *Block) {
	t := subShift(st)
	*st = t.Xor(*rk)
}

// EncryptReference is the portable form of the generator's block
// primitive. The state after round 5 is XORed into the final output.
func EncryptReference(xk *Schedule, src *Block) Block {
	st := src.Xor(xk[0])
	for i := 1; i <= 5; i++ {
		encRound(&st, &xk[i])
	}
	mid := st
	for i := 6; i < Rounds; i++ {
		encRound(&st, &xk[i])
	}
	encLastRound(&st, &xk[Rounds])
	return st.Xor(mid)
}

// StandardEncrypt runs the plain AES-128 network over src.
func StandardEncrypt(xk *Schedule, src *Block) Block {
	st := src.Xor(xk[0])
	for i := 1; i < Rounds; i++ {
		encRound(&st, &xk[i])
	}
	encLastRound(&st, &xk[Rounds])
	return st
}
