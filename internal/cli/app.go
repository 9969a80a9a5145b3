// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

// Package cli implements the humanregex command line application.
package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// EnvPrefix prefixes every environment variable read by the application.
const EnvPrefix = "HUMANREGEX_"

// NewApp builds the application writing results to stdout and diagnostics to
// stderr through logger.
func NewApp(stdout io.Writer, stderr io.Writer, logger *logrus.Logger) *cli.App {
	return &cli.App{
		Name:  "humanregex",
		Usage: "Search and rewrite text with expressions assembled from named building blocks",
		Description: `Patterns are selected from the cookbook (--recipe), built from word lists
(--word, --words-file), file extensions (--ext) or literal text (--text).

Example:
  humanregex grep --recipe date notes.txt
  humanregex replace --recipe stop-words --with "" essay.txt`,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: trace, debug, info, warn, error",
				Value:   logrus.InfoLevel.String(),
				EnvVars: []string{EnvPrefix + "LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			return SetLogLevel(logger, c.String("log-level"))
		},
		Commands: []*cli.Command{
			RecipesCommand(),
			ShowCommand(logger),
			GrepCommand(logger),
			ReplaceCommand(logger),
		},
		// Exit codes are mapped by the caller, not by os.Exit inside Run.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
