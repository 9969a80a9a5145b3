// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	hr "github.com/woozymasta/humanregex"
)

// ReplaceCommand returns the replace CLI command.
func ReplaceCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "replace",
		Usage: "Replace every match of the selected expression",
		Description: `Prints inputs with every match replaced. The replacement may refer to
groups as $1 or ${name}.

Example:
  humanregex replace --recipe date --with '${day}.${month}.${year}' notes.txt`,
		ArgsUsage: "[FILE...]",
		Flags: append(append(patternFlags(), engineFlags()...),
			&cli.StringFlag{
				Name:     "with",
				Usage:    "Replacement text",
				Required: true,
			},
		),
		Action: withPanicHandling(func(c *cli.Context) error {
			return runReplace(c, logger)
		}),
	}
}

func runReplace(c *cli.Context, logger *logrus.Logger) error {
	pattern, err := resolvePattern(c)
	if err != nil {
		return err
	}

	engine, err := resolveEngine(c)
	if err != nil {
		return err
	}

	m, err := hr.CompileWith(engine, pattern)
	if err != nil {
		return WithStackTrace(err)
	}

	repl := c.String("with")
	paths := c.Args().Slice()
	if len(paths) == 0 {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return WithStackTrace(fmt.Errorf("stdin: %w", err))
		}

		return writeReplaced(c.App.Writer, m, string(data), repl)
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return WithStackTrace(err)
		}

		logger.WithFields(logrus.Fields{
			"file":   path,
			"engine": engine.Name(),
		}).Debug("replacing")

		if err := writeReplaced(c.App.Writer, m, string(data), repl); err != nil {
			return err
		}
	}

	return nil
}

func writeReplaced(w io.Writer, m hr.Matcher, src string, repl string) error {
	_, err := io.WriteString(w, m.ReplaceAllString(src, repl))
	return WithStackTrace(err)
}
