// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package randgen

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/pion/aesrng"
	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

const (
	ascendingSeedHex = "000102030405060708090a0b0c0d0e0f000102030405060708090a0b0c0d0e0f"
	ascendingFill200 = "ddc1766018f72b77a8218c6593de2788f2d1e380d80f0c4d0fc2c294167b8f54" +
		"a891572bf85fa4c4577a0af946d8a7c0c0b7c4efc6c580ded5616d6c99e2012f" +
		"37f3c0ccc8815a805fc312cc59ecf9bb77723f91877423bed3f5c2204b17f0cd" +
		"440543c647c4d1c55b7a5700041484ed3680785e09f51a77845578d51c7276cc" +
		"19de1941f33ad0112665e9771aba4e07a204537666a96d6f9089497ca50810f5" +
		"007940a574ef767e6aa7dc1b657bea655e6969c424c173fa346fb6f88412db45" +
		"9c6c0f6fc4c8de91"
)

func testConfig() Config {
	return Config{
		Bytes:         200,
		Chunk:         65536,
		Format:        FormatHex,
		Seed:          ascendingSeedHex,
		LoggerFactory: logging.NewDefaultLoggerFactory(),
	}
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("aesrng", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Bytes)
	assert.Equal(t, 65536, cfg.Chunk)
	assert.Equal(t, FormatHex, cfg.Format)
	assert.Empty(t, cfg.Seed)
	assert.Empty(t, cfg.Passphrase)
	assert.False(t, cfg.SelfTest)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("AESRNG_BYTES", "64")
	t.Setenv("AESRNG_FORMAT", "base64")
	t.Setenv("AESRNG_PASSPHRASE", "correct horse")

	fs := flag.NewFlagSet("aesrng", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-bytes", "16"})
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Bytes, "flags override env")
	assert.Equal(t, FormatBase64, cfg.Format)
	assert.Equal(t, "correct horse", cfg.Passphrase)
}

func TestParseConfigOverride(t *testing.T) {
	fs := flag.NewFlagSet("aesrng", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-bytes", "16", "-chunk", "8", "-format", "raw", "-seed", ascendingSeedHex, "-selftest"})
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Bytes)
	assert.Equal(t, 8, cfg.Chunk)
	assert.Equal(t, FormatRaw, cfg.Format)
	assert.Equal(t, ascendingSeedHex, cfg.Seed)
	assert.True(t, cfg.SelfTest)
}

func TestParseConfigBadArgs(t *testing.T) {
	fs := flag.NewFlagSet("aesrng", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	_, err := ParseConfig(fs, []string{"-invalid"})
	assert.Error(t, err)
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("AESRNG_CHUNK", "lots")

	fs := flag.NewFlagSet("aesrng", flag.ContinueOnError)
	_, err := ParseConfig(fs, nil)
	assert.Error(t, err)
}

func TestRunKnownAnswer(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Run(testConfig(), buf, nil))
	assert.Equal(t, ascendingFill200+"\n", buf.String())
}

func TestRunChunksRekey(t *testing.T) {
	cfg := testConfig()
	cfg.Chunk = 100

	buf := &bytes.Buffer{}
	require.NoError(t, Run(cfg, buf, nil))

	out := strings.TrimSpace(buf.String())
	require.Len(t, out, 400)
	assert.Equal(t, ascendingFill200[:200], out[:200])
	assert.NotEqual(t, ascendingFill200[200:], out[200:])
}

func TestRunFormats(t *testing.T) {
	expected, err := hex.DecodeString(ascendingFill200)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Format = FormatRaw
	raw := &bytes.Buffer{}
	require.NoError(t, Run(cfg, raw, nil))
	assert.Equal(t, expected, raw.Bytes())

	cfg.Format = FormatBase64
	b64 := &bytes.Buffer{}
	require.NoError(t, Run(cfg, b64, nil))
	assert.Equal(t, base64.StdEncoding.EncodeToString(expected)+"\n", b64.String())
}

func TestRunZeroBytes(t *testing.T) {
	cfg := testConfig()
	cfg.Bytes = 0

	buf := &bytes.Buffer{}
	require.NoError(t, Run(cfg, buf, nil))
	assert.Empty(t, buf.String())
}

func TestRunPassphrase(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = ""
	cfg.Passphrase = "correct horse battery staple"
	cfg.Format = FormatRaw

	buf := &bytes.Buffer{}
	require.NoError(t, Run(cfg, buf, nil))

	expected := make([]byte, 200)
	aesrng.FromSeed(sha3.Sum256([]byte(cfg.Passphrase))).Fill(expected)
	assert.Equal(t, expected, buf.Bytes())
}

func TestRunEntropy(t *testing.T) {
	seed, err := hex.DecodeString(ascendingSeedHex)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Seed = ""

	buf := &bytes.Buffer{}
	require.NoError(t, Run(cfg, buf, bytes.NewReader(seed)))
	assert.Equal(t, ascendingFill200+"\n", buf.String())
}

func TestRunDefaultEntropy(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = ""
	cfg.Bytes = 4

	buf := &bytes.Buffer{}
	require.NoError(t, Run(cfg, buf, nil))
	assert.Len(t, strings.TrimSpace(buf.String()), 8)
}

func TestRunShortEntropy(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = ""

	err := Run(cfg, &bytes.Buffer{}, bytes.NewReader([]byte{1, 2, 3}))
	assert.True(t, errors.Is(err, aesrng.ErrSeedRead), "unexpected error: %v", err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "read error dropped: %v", err)
}

func TestRunValidation(t *testing.T) {
	for name, tc := range map[string]struct {
		mutate func(*Config)
		err    error
	}{
		"negative bytes":     {func(c *Config) { c.Bytes = -1 }, errNegativeBytes},
		"zero chunk":         {func(c *Config) { c.Chunk = 0 }, errBadChunk},
		"unknown format":     {func(c *Config) { c.Format = "octal" }, errBadFormat},
		"short seed":         {func(c *Config) { c.Seed = "0001" }, errBadSeed},
		"non hex seed":       {func(c *Config) { c.Seed = strings.Repeat("zz", 32) }, errBadSeed},
		"seed and passwords": {func(c *Config) { c.Passphrase = "x" }, errSeedAndPassphrase},
	} {
		cfg := testConfig()
		tc.mutate(&cfg)
		err := Run(cfg, &bytes.Buffer{}, nil)
		assert.ErrorIs(t, err, tc.err, name)
	}
}

func TestRunNilOutput(t *testing.T) {
	assert.ErrorIs(t, Run(testConfig(), nil, nil), errNoOutput)
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("write error") }

func TestRunWriterError(t *testing.T) {
	assert.Error(t, Run(testConfig(), errWriter{}, nil))
}

func TestRunSelfTest(t *testing.T) {
	cfg := testConfig()
	cfg.SelfTest = true
	cfg.Format = "ignored"

	buf := &bytes.Buffer{}
	require.NoError(t, Run(cfg, buf, nil))

	var report selfTestReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "pass", report.SelfTest)
	assert.Empty(t, report.Error)
	assert.Contains(t, buf.String(), "\n  \"selftest\": \"pass\"")
}
