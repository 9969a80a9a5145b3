// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cookbook

import (
	"strings"

	hr "github.com/woozymasta/humanregex"
)

// NormalizeExtensions converts an extension list to bare lower-case names.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values and duplicates are skipped. Returned names preserve input order.
func NormalizeExtensions(exts []string) []string {
	names := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = strings.ToLower(ext)
		if ext == "" {
			continue
		}

		names = append(names, ext)
	}

	return hr.MergeWords(names)
}

// FileExtensions matches a path ending with one of exts, ignoring case.
func FileExtensions(exts []string) (hr.Fragment[hr.Chain], error) {
	alt, err := hr.AnyOf(NormalizeExtensions(exts)...)
	if err != nil {
		return hr.Fragment[hr.Chain]{}, err
	}

	return hr.CaseInsensitive(hr.Concat(hr.Text("."), alt, hr.EndOfText())), nil
}
