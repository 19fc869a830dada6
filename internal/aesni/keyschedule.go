// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesni

var rcon = [Rounds]byte{1, 2, 4, 8, 16, 32, 64, 128, 27, 54} //nolint:gochecknoglobals

// ExpandKey derives the 11 round keys of AES-128 from key.
//
// Each step follows the key generation assist instruction: the assist word is
// SubWord(RotWord(w3)) ^ rcon, the previous round key is shifted and XORed
// into itself three times, and the assist word is XORed into every word.
func ExpandKey(key Block) (s Schedule) {
	t := key
	for i, rc := range rcon {
		s[i] = t
		assist := [4]byte{sbox[t[13]] ^ rc, sbox[t[14]], sbox[t[15]], sbox[t[12]]}
		for j := 4; j < BlockSize; j++ {
			t[j] ^= t[j-4]
		}
		for j := 0; j < BlockSize; j++ {
			t[j] ^= assist[j&3]
		}
	}
	s[Rounds] = t
	return s
}
