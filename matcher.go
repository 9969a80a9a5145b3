// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import "fmt"

// Matcher is a compiled pattern returned by an Engine.
//
// *regexp.Regexp satisfies it directly.
type Matcher interface {
	// MatchString reports whether s contains any match.
	MatchString(s string) bool
	// FindString returns the leftmost match, or "" when there is none.
	FindString(s string) string
	// FindAllString returns up to n successive matches, all when n < 0.
	FindAllString(s string, n int) []string
	// FindStringSubmatch returns the leftmost match followed by its groups.
	FindStringSubmatch(s string) []string
	// FindAllStringSubmatch is the "All" version of FindStringSubmatch.
	FindAllStringSubmatch(s string, n int) [][]string
	// ReplaceAllString replaces matches in src, expanding $1 and ${name} in repl.
	ReplaceAllString(src string, repl string) string
	// SubexpNames returns group names indexed by group number, "" when unnamed.
	SubexpNames() []string
	// String returns the source pattern text.
	String() string
}

// Engine compiles pattern text into a Matcher.
type Engine interface {
	// Name returns short engine identifier.
	Name() string
	// Compile compiles pattern text.
	Compile(pattern string) (Matcher, error)
}

// Compile hands p to the RE2 engine.
func Compile(p Pattern) (Matcher, error) {
	return CompileWith(RE2, p)
}

// CompileWith hands p to engine.
//
// This is the only place where malformed text, for example from
// UncheckedFromText, is reported. Errors wrap ErrCompile and the engine error.
func CompileWith(engine Engine, p Pattern) (Matcher, error) {
	if engine == nil {
		engine = RE2
	}

	m, err := engine.Compile(p.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCompile, engine.Name(), err)
	}

	return m, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(p Pattern) Matcher {
	m, err := Compile(p)
	if err != nil {
		panic(err)
	}

	return m
}
