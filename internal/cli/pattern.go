// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	hr "github.com/woozymasta/humanregex"
	"github.com/woozymasta/humanregex/cookbook"
)

// patternFlags select the expression a command works with.
func patternFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "recipe",
			Aliases: []string{"r"},
			Usage:   "Cookbook recipe name (see 'humanregex recipes')",
		},
		&cli.StringSliceFlag{
			Name:    "word",
			Aliases: []string{"w"},
			Usage:   "Literal word alternative, repeatable",
		},
		&cli.StringSliceFlag{
			Name:  "words-file",
			Usage: "File with one word per line, repeatable",
		},
		&cli.StringSliceFlag{
			Name:  "ext",
			Usage: "File extension such as txt or .go, repeatable",
		},
		&cli.StringFlag{
			Name:    "text",
			Aliases: []string{"t"},
			Usage:   "Literal text",
		},
		&cli.BoolFlag{
			Name:    "ignore-case",
			Aliases: []string{"i"},
			Usage:   "Match letters of the selected expression in both cases",
		},
	}
}

// engineFlags configure the matching engine.
func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "engine",
			Usage:   "Matching engine: re2 or backtracking",
			Value:   hr.EngineRE2,
			EnvVars: []string{EnvPrefix + "ENGINE"},
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Per-search timeout of the backtracking engine",
			Value:   hr.DefaultMatchTimeout,
			EnvVars: []string{EnvPrefix + "TIMEOUT"},
		},
	}
}

// resolvePattern builds the expression selected by pattern flags.
func resolvePattern(c *cli.Context) (hr.Pattern, error) {
	var (
		pattern hr.Pattern
		sources []string
	)

	if name := c.String("recipe"); name != "" {
		recipe, ok := cookbook.Lookup(name)
		if !ok {
			return nil, Errorf("unknown recipe %q", name)
		}

		p, err := recipe.Build()
		if err != nil {
			return nil, WithStackTrace(err)
		}

		pattern = p
		sources = append(sources, "--recipe")
	}

	if c.IsSet("word") || c.IsSet("words-file") {
		words := c.StringSlice("word")
		if files := c.StringSlice("words-file"); len(files) > 0 {
			loaded, err := hr.LoadWordsFiles(files...)
			if err != nil {
				return nil, WithStackTrace(err)
			}

			words = hr.MergeWords(words, loaded)
		}

		alt, err := hr.AnyOf(words...)
		if err != nil {
			return nil, WithStackTrace(err)
		}

		pattern = alt
		sources = append(sources, "--word/--words-file")
	}

	if exts := c.StringSlice("ext"); len(exts) > 0 {
		p, err := cookbook.FileExtensions(exts)
		if err != nil {
			return nil, WithStackTrace(err)
		}

		pattern = p
		sources = append(sources, "--ext")
	}

	if c.IsSet("text") {
		pattern = hr.Text(c.String("text"))
		sources = append(sources, "--text")
	}

	switch len(sources) {
	case 0:
		return nil, Errorf("no pattern: use one of --recipe, --word, --words-file, --ext, --text")
	case 1:
	default:
		return nil, Errorf("conflicting pattern sources: %s", strings.Join(sources, ", "))
	}

	if c.Bool("ignore-case") {
		pattern = hr.CaseInsensitive(pattern)
	}

	return pattern, nil
}

// resolveEngine returns engine selected by engine flags.
func resolveEngine(c *cli.Context) (hr.Engine, error) {
	timeout := c.Duration("timeout")
	if timeout < 0 {
		return nil, Errorf("timeout must not be negative, got %s", timeout)
	}

	engine, err := hr.EngineByName(c.String("engine"), hr.BacktrackingOptions{
		MatchTimeout: timeout,
	})
	if err != nil {
		return nil, WithStackTrace(fmt.Errorf("--engine: %w", err))
	}

	return engine, nil
}
