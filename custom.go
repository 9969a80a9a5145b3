// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// WithinRange matches one character between lo and hi inclusive.
func WithinRange(lo rune, hi rune) (Fragment[CustomClass], error) {
	if !utf8.ValidRune(lo) || !utf8.ValidRune(hi) {
		return Fragment[CustomClass]{}, fmt.Errorf("%w: %U-%U is not valid Unicode", ErrInvalidRange, lo, hi)
	}

	if lo > hi {
		return Fragment[CustomClass]{}, fmt.Errorf("%w: %q > %q", ErrInvalidRange, lo, hi)
	}

	var b strings.Builder
	writeClassRange(&b, lo, hi)
	return customClass(b.String(), false), nil
}

// WithinSet matches one character listed in members.
//
// Empty members yield a class that matches nothing.
func WithinSet(members string) Fragment[CustomClass] {
	if members == "" {
		return customClass(fullRangeBody, true)
	}

	return customClass(classMembers(members), false)
}

// NotWithinSet matches one character not listed in members.
func NotWithinSet(members string) Fragment[CustomClass] {
	return Negate(WithinSet(members))
}
