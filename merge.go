// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

// MergeWords merges word slices preserving first occurrence order.
func MergeWords(wordSets ...[]string) []string {
	total := 0
	for _, set := range wordSets {
		total += len(set)
	}

	seen := make(map[string]struct{}, total)
	out := make([]string, 0, total)
	for _, set := range wordSets {
		for _, word := range set {
			if _, ok := seen[word]; ok {
				continue
			}

			seen[word] = struct{}{}
			out = append(out, word)
		}
	}

	return out
}
