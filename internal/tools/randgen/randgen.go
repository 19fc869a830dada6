// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package randgen writes generator output for the aesrng command.
package randgen

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/pion/aesrng"
	"github.com/pion/aesrng/internal/aesni"
	"github.com/pion/aesrng/internal/config"
	"github.com/pion/aesrng/internal/platform"
	"github.com/pion/logging"
	"github.com/tidwall/pretty"
	"golang.org/x/crypto/sha3"
)

// Output formats.
const (
	FormatRaw    = "raw"
	FormatHex    = "hex"
	FormatBase64 = "base64"
)

type envConfig struct {
	Bytes      int    `env:"AESRNG_BYTES" envDefault:"32"`
	Chunk      int    `env:"AESRNG_CHUNK" envDefault:"65536"`
	Format     string `env:"AESRNG_FORMAT" envDefault:"hex"`
	Seed       string `env:"AESRNG_SEED"`
	Passphrase string `env:"AESRNG_PASSPHRASE"`
}

// Config holds configuration for random byte generation.
type Config struct {
	// Bytes is the number of random bytes to write.
	Bytes int
	// Chunk is the largest buffer filled per generator call. Every call
	// replaces the key, so the output depends on Chunk as well as the seed.
	Chunk int
	// Format is one of FormatRaw, FormatHex or FormatBase64.
	Format string
	// Seed is 32 bytes in hex. Mutually exclusive with Passphrase.
	Seed string
	// Passphrase is hashed with SHA3-256 into a seed.
	Passphrase string
	// SelfTest runs the known-answer checks instead of generating output.
	SelfTest bool

	LoggerFactory logging.LoggerFactory
}

// ParseConfig parses flags into a Config. Defaults come from the AESRNG_*
// environment variables.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var defaults envConfig
	if err := config.ParseEnv(&defaults); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Bytes:      defaults.Bytes,
		Chunk:      defaults.Chunk,
		Format:     defaults.Format,
		Seed:       defaults.Seed,
		Passphrase: defaults.Passphrase,
	}
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "number of random bytes to write")
	fs.IntVar(&cfg.Chunk, "chunk", cfg.Chunk, "bytes generated per key erasure")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: raw, hex or base64")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "32 byte seed in hex (deterministic output)")
	fs.StringVar(&cfg.Passphrase, "passphrase", cfg.Passphrase, "derive the seed from a passphrase")
	fs.BoolVar(&cfg.SelfTest, "selftest", false, "run known-answer tests and print a report")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Bytes < 0:
		return errNegativeBytes
	case c.Chunk <= 0:
		return errBadChunk
	case c.Seed != "" && c.Passphrase != "":
		return errSeedAndPassphrase
	}
	switch c.Format {
	case FormatRaw, FormatHex, FormatBase64:
	default:
		return fmt.Errorf("%w: %q", errBadFormat, c.Format)
	}
	return nil
}

// seed returns the generator seed and a description of where it came from.
func (c *Config) seed(entropy io.Reader) (seed aesrng.Seed, source string, err error) {
	switch {
	case c.Seed != "":
		b, err := hex.DecodeString(c.Seed)
		if err != nil || len(b) != aesrng.SeedSize {
			return seed, "", errBadSeed
		}
		copy(seed[:], b)
		return seed, "flag", nil
	case c.Passphrase != "":
		return sha3.Sum256([]byte(c.Passphrase)), "passphrase", nil
	default:
		if entropy == nil {
			entropy = rand.Reader
		}
		if _, err := io.ReadFull(entropy, seed[:]); err != nil {
			return seed, "", fmt.Errorf("%w: %w", aesrng.ErrSeedRead, err)
		}
		return seed, "entropy", nil
	}
}

// Run writes cfg.Bytes generator bytes to out in the configured format.
// When entropy is nil and no seed is configured, crypto/rand seeds the
// generator.
func Run(cfg Config, out io.Writer, entropy io.Reader) error {
	if out == nil {
		return errNoOutput
	}

	loggerFactory := cfg.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}
	log := loggerFactory.NewLogger("randgen")

	if cfg.SelfTest {
		return runSelfTest(out, log)
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	seed, source, err := cfg.seed(entropy)
	if err != nil {
		return err
	}
	log.Debugf("generating %d %s bytes in chunks of %d, seed from %s", cfg.Bytes, cfg.Format, cfg.Chunk, source)

	return generate(aesrng.FromSeed(seed), &cfg, out)
}

func generate(rng *aesrng.Core, cfg *Config, out io.Writer) error {
	var w io.Writer = out
	var closer io.Closer
	switch cfg.Format {
	case FormatHex:
		w = hex.NewEncoder(out)
	case FormatBase64:
		enc := base64.NewEncoder(base64.StdEncoding, out)
		w, closer = enc, enc
	}

	chunk := cfg.Chunk
	if cfg.Bytes < chunk {
		chunk = cfg.Bytes
	}
	buf := make([]byte, chunk)

	for remaining := cfg.Bytes; remaining > 0; {
		n := len(buf)
		if remaining < n {
			n = remaining
		}
		rng.Fill(buf[:n])
		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		remaining -= n
	}

	if closer != nil {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if cfg.Format != FormatRaw && cfg.Bytes > 0 {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

type selfTestReport struct {
	SelfTest    string `json:"selftest"`
	Error       string `json:"error,omitempty"`
	AESHardware bool   `json:"aes_hardware"`
	Accelerated bool   `json:"accelerated"`
}

func runSelfTest(out io.Writer, log logging.LeveledLogger) error {
	report := selfTestReport{
		SelfTest:    "pass",
		AESHardware: platform.HasAES(),
		Accelerated: aesni.Hardware,
	}

	testErr := aesrng.SelfTest()
	if testErr != nil {
		report.SelfTest = "fail"
		report.Error = testErr.Error()
		log.Errorf("self test: %v", testErr)
	} else {
		log.Info("self test passed")
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if _, err := out.Write(pretty.Pretty(raw)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return testErr
}
