// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"fmt"
	"os"
)

// LoadWordsFile reads and parses a word list from a file.
func LoadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open words file: %w", err)
	}
	defer func() { _ = f.Close() }()

	words, err := ParseWords(f)
	if err != nil {
		return nil, fmt.Errorf("parse words file %s: %w", path, err)
	}

	return words, nil
}

// LoadWordsFiles reads word lists from files and merges them in the given order.
//
// Returned words preserve file order and line order; duplicates are dropped.
func LoadWordsFiles(paths ...string) ([]string, error) {
	sets := make([][]string, 0, len(paths))
	for _, path := range paths {
		words, err := LoadWordsFile(path)
		if err != nil {
			return nil, err
		}

		sets = append(sets, words)
	}

	return MergeWords(sets...), nil
}
