// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesrng

import "encoding/hex"

// Known answers for a seed whose key and counter halves are both the bytes
// 0 through 15.
const (
	selfTestRoundKeys = "000102030405060708090a0b0c0d0e0f" +
		"d6aa74fdd2af72fadaa678f1d6ab76fe" +
		"b692cf0b643dbdf1be9bc5006830b3fe" +
		"b6ff744ed2c2c9bf6c590cbf0469bf41" +
		"47f7f7bc95353e03f96c32bcfd058dfd" +
		"3caaa3e8a99f9deb50f3af57adf622aa" +
		"5e390f7df7a69296a7553dc10aa31f6b" +
		"14f9701ae35fe28c440adf4d4ea9c026" +
		"47438735a41c65b9e016baf4aebf7ad2" +
		"549932d1f08557681093ed9cbe2c974e" +
		"13111d7fe3944a17f307a78b4d2b30c5"

	selfTestCounter = "000102030405060708090a0b0c0d0e0f"

	selfTestFill = "ddc1766018f72b77a8218c6593de2788f2d1e380d80f0c4d0fc2c294167b8f54" +
		"a891572bf85fa4c4577a0af946d8a7c0c0b7c4efc6c580ded5616d6c99e2012f" +
		"37f3c0ccc8815a805fc312cc59ecf9bb77723f91877423bed3f5c2204b17f0cd" +
		"440543c647c4d1c55b7a5700041484ed3680785e09f51a77845578d51c7276cc" +
		"19de1941f33ad0112665e9771aba4e07a204537666a96d6f9089497ca50810f5" +
		"007940a574ef767e6aa7dc1b657bea655e6969c424c173fa346fb6f88412db45" +
		"9c6c0f6fc4c8de91"
)

func selfTestSeed() (seed Seed) {
	for i := range seed {
		seed[i] = byte(i % 16)
	}
	return seed
}

// SelfTest checks key expansion and output against known answers. It returns
// a *SelfTestError when a vector does not match.
func SelfTest() error {
	c := FromSeed(selfTestSeed())

	roundKeys := make([]byte, 0, len(c.roundKeys)*len(c.roundKeys[0]))
	for i := range c.roundKeys {
		roundKeys = append(roundKeys, c.roundKeys[i][:]...)
	}
	if got := hex.EncodeToString(roundKeys); got != selfTestRoundKeys {
		return &SelfTestError{Vector: "roundkeys", Got: got, Want: selfTestRoundKeys}
	}

	if got := hex.EncodeToString(c.counter[:]); got != selfTestCounter {
		return &SelfTestError{Vector: "counter", Got: got, Want: selfTestCounter}
	}

	buf := make([]byte, len(selfTestFill)/2)
	c.Fill(buf)
	if got := hex.EncodeToString(buf); got != selfTestFill {
		return &SelfTestError{Vector: "fill", Got: got, Want: selfTestFill}
	}

	return nil
}
