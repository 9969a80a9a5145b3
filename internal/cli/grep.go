// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	hr "github.com/woozymasta/humanregex"
	"golang.org/x/sync/errgroup"
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// highlightStyle is the ansi style of highlighted matches.
const highlightStyle = "red+b"

// maxLineSize bounds one scanned input line.
const maxLineSize = 16 * 1024 * 1024

// GrepCommand returns the grep CLI command.
func GrepCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "grep",
		Usage: "Print lines containing a match of the selected expression",
		Description: `Reads files given as arguments, or standard input when there are none.
Files are scanned concurrently; output keeps argument order.

Exit status is 0 when a line was selected, 1 when none was, 2 on error.

Example:
  humanregex grep --recipe date --only-matching notes.txt`,
		ArgsUsage: "[FILE...]",
		Flags: append(append(patternFlags(), engineFlags()...),
			&cli.BoolFlag{
				Name:    "only-matching",
				Aliases: []string{"o"},
				Usage:   "Print only the matched parts of selected lines",
			},
			&cli.BoolFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "Print only the number of selected lines per input",
			},
			&cli.StringFlag{
				Name:    "color",
				Usage:   "Highlight matches: auto, always, never",
				Value:   colorAuto,
				EnvVars: []string{EnvPrefix + "COLOR"},
			},
		),
		Action: withPanicHandling(func(c *cli.Context) error {
			return runGrep(c, logger)
		}),
	}
}

// grepOptions controls output of one grep run.
type grepOptions struct {
	// highlight wraps matches in terminal color codes.
	highlight string
	// onlyMatching prints matched parts instead of lines.
	onlyMatching bool
	// count prints number of selected lines only.
	count bool
	// prefix prints input name before every output line.
	prefix bool
}

// grepResult is output of one scanned input.
type grepResult struct {
	// lines are ready-to-print output lines.
	lines []string
	// selected is number of lines containing a match.
	selected int
}

func runGrep(c *cli.Context, logger *logrus.Logger) error {
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

	log := logger.WithFields(logrus.Fields{
		"engine":  engine.Name(),
		"pattern": pattern.String(),
	})
	log.Debug("compiled pattern")

	colored, err := useColor(c.String("color"), c.App.Writer)
	if err != nil {
		return err
	}

	paths := c.Args().Slice()
	opts := grepOptions{
		onlyMatching: c.Bool("only-matching"),
		count:        c.Bool("count"),
		prefix:       len(paths) > 1,
	}
	if colored {
		opts.highlight = ansi.ColorCode(highlightStyle) + "${0}" + ansi.Reset
	}

	var results []grepResult
	if len(paths) == 0 {
		res, err := grepReader(m, "", c.App.Reader, opts)
		if err != nil {
			return WithStackTrace(fmt.Errorf("stdin: %w", err))
		}

		results = []grepResult{res}
	} else {
		results, err = grepFiles(c, m, paths, opts)
		if err != nil {
			return err
		}
	}

	selected := 0
	for _, res := range results {
		selected += res.selected
		for _, line := range res.lines {
			if _, err := fmt.Fprintln(c.App.Writer, line); err != nil {
				return WithStackTrace(err)
			}
		}
	}

	log.WithField("selected", selected).Debug("grep finished")
	if selected == 0 {
		return errNoMatch
	}

	return nil
}

// grepFiles scans files concurrently and returns results in argument order.
func grepFiles(c *cli.Context, m hr.Matcher, paths []string, opts grepOptions) ([]grepResult, error) {
	results := make([]grepResult, len(paths))

	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return WithStackTrace(err)
			}
			defer func() { _ = f.Close() }()

			res, err := grepReader(m, path, f, opts)
			if err != nil {
				return WithStackTrace(fmt.Errorf("%s: %w", path, err))
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// grepReader scans r line by line and selects lines containing a match.
func grepReader(m hr.Matcher, name string, r io.Reader, opts grepOptions) (grepResult, error) {
	var res grepResult

	prefix := ""
	if opts.prefix {
		prefix = name + ":"
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for s.Scan() {
		line := s.Text()
		if !m.MatchString(line) {
			continue
		}

		res.selected++
		switch {
		case opts.count:
		case opts.onlyMatching:
			for _, part := range m.FindAllString(line, -1) {
				if part == "" {
					continue
				}
				res.lines = append(res.lines, prefix+part)
			}
		case opts.highlight != "":
			res.lines = append(res.lines, prefix+m.ReplaceAllString(line, opts.highlight))
		default:
			res.lines = append(res.lines, prefix+line)
		}
	}

	if err := s.Err(); err != nil {
		return grepResult{}, err
	}

	if opts.count {
		res.lines = []string{prefix + strconv.Itoa(res.selected)}
	}

	return res, nil
}

// useColor resolves --color mode for output writer w.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto, "":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}

		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, Errorf("invalid --color %q: must be auto, always or never", mode)
	}
}
