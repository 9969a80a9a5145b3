// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseWords parses a word list, one word per line, for AnyOf.
//
// Semantics:
// - blank lines and comments are ignored
// - trailing spaces are trimmed unless escaped by "\"
// - "\#" escapes a leading comment token
// - words keep input order; duplicates are kept
func ParseWords(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	words := make([]string, 0, 64)

	for line := 1; s.Scan(); line++ {
		word := strings.TrimRight(s.Text(), "\r")
		word = strings.TrimLeft(word, " \t")
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}

		word = trimTrailingSpaces(word)
		if strings.HasPrefix(word, `\#`) {
			word = word[1:]
		}

		if word == "" {
			continue
		}

		if strings.ContainsRune(word, '\x00') {
			return nil, fmt.Errorf("%w: line %d contains NUL", ErrInvalidWord, line)
		}

		words = append(words, word)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}

	return words, nil
}

// ParseWordsString parses a word list from string input.
func ParseWordsString(src string) ([]string, error) {
	return ParseWords(strings.NewReader(src))
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
