// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	hr "github.com/woozymasta/humanregex"
	"github.com/woozymasta/humanregex/cookbook"
)

// RecipesCommand returns the recipes CLI command.
func RecipesCommand() *cli.Command {
	return &cli.Command{
		Name:   "recipes",
		Usage:  "List cookbook recipes with their pattern text",
		Action: withPanicHandling(runRecipes),
	}
}

func runRecipes(c *cli.Context) error {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, recipe := range cookbook.All() {
		p, err := recipe.Build()
		if err != nil {
			return WithStackTrace(fmt.Errorf("recipe %s: %w", recipe.Name, err))
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", recipe.Name, recipe.Description, p)
	}

	return WithStackTrace(tw.Flush())
}

// ShowCommand returns the show CLI command.
func ShowCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the pattern text of the selected expression",
		UsageText: "humanregex show [pattern flags] [--check]",
		Flags: append(append(patternFlags(), engineFlags()...),
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Compile the pattern with the selected engine",
			},
		),
		Action: withPanicHandling(func(c *cli.Context) error {
			return runShow(c, logger)
		}),
	}
}

func runShow(c *cli.Context, logger *logrus.Logger) error {
	pattern, err := resolvePattern(c)
	if err != nil {
		return err
	}

	if c.Bool("check") {
		engine, err := resolveEngine(c)
		if err != nil {
			return err
		}

		if _, err := hr.CompileWith(engine, pattern); err != nil {
			return WithStackTrace(err)
		}

		logger.WithField("engine", engine.Name()).Debug("pattern compiles")
	}

	_, err = fmt.Fprintln(c.App.Writer, pattern.String())
	return WithStackTrace(err)
}
