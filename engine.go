// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Engine names accepted by EngineByName.
const (
	EngineRE2          = "re2"
	EngineBacktracking = "backtracking"
)

// DefaultMatchTimeout bounds one backtracking search when options leave it unset.
const DefaultMatchTimeout = 10 * time.Second

// RE2 is the default engine backed by Go's regexp package.
//
// Matching runs in linear time. Lookaround, backreferences and the "x" and
// "-u" flags are not supported.
var RE2 Engine = re2Engine{}

type re2Engine struct{}

func (re2Engine) Name() string { return EngineRE2 }

func (re2Engine) Compile(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return re, nil
}

// BacktrackingOptions controls the backtracking engine.
type BacktrackingOptions struct {
	// MatchTimeout bounds one search; zero means DefaultMatchTimeout, negative disables it.
	MatchTimeout time.Duration `json:"match_timeout,omitempty" yaml:"match_timeout,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *BacktrackingOptions) applyDefaults() {
	if opts.MatchTimeout == 0 {
		opts.MatchTimeout = DefaultMatchTimeout
	}
}

// Backtracking returns an engine backed by regexp2, a Perl/.NET style
// backtracking matcher.
//
// A search that exceeds MatchTimeout reports no match. Group numbering
// follows .NET rules: named groups are numbered after unnamed ones.
func Backtracking(opts BacktrackingOptions) Engine {
	opts.applyDefaults()
	return backtrackEngine{opts: opts}
}

type backtrackEngine struct {
	opts BacktrackingOptions
}

func (backtrackEngine) Name() string { return EngineBacktracking }

func (e backtrackEngine) Compile(pattern string) (Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		return nil, err
	}

	if e.opts.MatchTimeout > 0 {
		re.MatchTimeout = e.opts.MatchTimeout
	}

	return backtrackMatcher{re: re}, nil
}

// EngineByName returns engine registered under name.
func EngineByName(name string, opts BacktrackingOptions) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineRE2:
		return RE2, nil
	case EngineBacktracking:
		return Backtracking(opts), nil
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", ErrUnsupportedOperation, name)
	}
}

// backtrackMatcher adapts regexp2 error-returning API to Matcher.
type backtrackMatcher struct {
	re *regexp2.Regexp
}

func (m backtrackMatcher) MatchString(s string) bool {
	ok, err := m.re.MatchString(s)
	return err == nil && ok
}

func (m backtrackMatcher) FindString(s string) string {
	match, err := m.re.FindStringMatch(s)
	if err != nil || match == nil {
		return ""
	}

	return match.String()
}

func (m backtrackMatcher) FindAllString(s string, n int) []string {
	var out []string
	m.each(s, n, func(match *regexp2.Match) {
		out = append(out, match.String())
	})

	return out
}

func (m backtrackMatcher) FindStringSubmatch(s string) []string {
	match, err := m.re.FindStringMatch(s)
	if err != nil || match == nil {
		return nil
	}

	return submatches(match)
}

func (m backtrackMatcher) FindAllStringSubmatch(s string, n int) [][]string {
	var out [][]string
	m.each(s, n, func(match *regexp2.Match) {
		out = append(out, submatches(match))
	})

	return out
}

func (m backtrackMatcher) ReplaceAllString(src string, repl string) string {
	out, err := m.re.Replace(src, repl, -1, -1)
	if err != nil {
		return src
	}

	return out
}

func (m backtrackMatcher) SubexpNames() []string {
	names := m.re.GetGroupNames()
	out := make([]string, len(names))
	for i, name := range names {
		// Unnamed groups are reported by their number.
		if _, err := strconv.Atoi(name); err == nil {
			continue
		}
		out[i] = name
	}

	return out
}

func (m backtrackMatcher) String() string {
	return m.re.String()
}

// each visits up to n successive matches, all when n < 0.
func (m backtrackMatcher) each(s string, n int, fn func(*regexp2.Match)) {
	match, err := m.re.FindStringMatch(s)
	for i := 0; err == nil && match != nil && (n < 0 || i < n); i++ {
		fn(match)
		match, err = m.re.FindNextMatch(match)
	}
}

// submatches flattens match groups, "" for groups that did not participate.
func submatches(match *regexp2.Match) []string {
	groups := match.Groups()
	out := make([]string, len(groups))
	for i := range groups {
		if len(groups[i].Captures) == 0 {
			continue
		}
		out[i] = groups[i].String()
	}

	return out
}
