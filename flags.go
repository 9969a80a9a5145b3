// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

// Flag groups scope a flag to the wrapped expression only.
//
// Engine support differs: RE2 accepts i, m, s and U; the backtracking engine
// accepts i, m, s and x. Unsupported flags surface as ErrCompile.

func flagGroup(flags string, target Pattern) Fragment[Chain] {
	return chain("(?" + flags + ":" + target.String() + ")")
}

// CaseInsensitive makes letters in target match both cases.
func CaseInsensitive(target Pattern) Fragment[Chain] { return flagGroup("i", target) }

// MultiLineMode makes Beginning and End match at line boundaries in target.
func MultiLineMode(target Pattern) Fragment[Chain] { return flagGroup("m", target) }

// DotMatchesNewline lets Any match newline in target.
func DotMatchesNewline(target Pattern) Fragment[Chain] { return flagGroup("s", target) }

// DisableUnicode switches target to byte-oriented matching.
//
// Neither bundled engine accepts the "-u" flag: compiling the result with RE2
// or Backtracking fails with ErrCompile. It is meant for custom engines.
func DisableUnicode(target Pattern) Fragment[Chain] { return flagGroup("-u", target) }

// IgnoreWhitespaceAndComments ignores unescaped whitespace and "#" comments in target.
func IgnoreWhitespaceAndComments(target Pattern) Fragment[Chain] { return flagGroup("x", target) }

// SwapGreed swaps the meaning of greedy and lazy repetitions in target.
func SwapGreed(target Pattern) Fragment[Chain] { return flagGroup("U", target) }
