// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

// Text returns a literal fragment matching s verbatim.
//
// Every meta character is escaped and no anchors are added, so the fragment
// matches s wherever it occurs. Bytes of s that are not valid UTF-8 match
// as U+FFFD, the way the engines decode input.
func Text(s string) Fragment[Literal] {
	return Fragment[Literal]{
		text:  escapeText(s),
		inner: s,
	}
}

// EscapeAll escapes every string so it can be used as literal pattern text.
func EscapeAll(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, s := range texts {
		out = append(out, escapeText(s))
	}

	return out
}

// UncheckedFromText wraps raw pattern text in a non-capturing group.
//
// The text is not validated. It forfeits every structural guarantee of the
// category system: unbalanced input such as ")(" yields a fragment whose
// text is not self-contained, and the mistake surfaces only at Compile.
func UncheckedFromText(text string) Fragment[Chain] {
	return chain(group(text))
}
