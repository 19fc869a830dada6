// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Command aesrng writes fast-key-erasure AES random bytes to stdout.
package main

import (
	"flag"
	"os"

	"github.com/pion/aesrng/internal/config"
	"github.com/pion/aesrng/internal/platform"
	"github.com/pion/aesrng/internal/tools/randgen"
	"github.com/pion/logging"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		config.Exitf("load env: %v", err)
	}

	cfg, err := randgen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	if err := platform.Check(); err != nil {
		config.Exitf("platform: %v", err)
	}

	cfg.LoggerFactory = logging.NewDefaultLoggerFactory()
	if err := randgen.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("aesrng: %v", err)
	}
}
