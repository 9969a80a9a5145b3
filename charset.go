// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"fmt"
	"regexp/syntax"
	"slices"
	"strings"
	"unicode"
)

// runeSet is a sorted list of disjoint inclusive [lo, hi] pairs.
type runeSet []rune

// classSet returns the character set denoted by one class fragment text.
//
// The text is parsed with regexp/syntax so "\d", "[[:alpha:]]" or "\p{Greek}"
// mean exactly what the RE2 engine makes of them.
func classSet(text string) (runeSet, error) {
	re, err := syntax.Parse(text, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("%w: parse class %q: %v", ErrUnsupportedOperation, text, err)
	}

	switch re.Op {
	case syntax.OpCharClass:
		return normalizeRanges(re.Rune), nil
	case syntax.OpLiteral:
		if len(re.Rune) != 1 {
			break
		}

		r := re.Rune[0]
		set := []rune{r, r}
		if re.Flags&syntax.FoldCase != 0 {
			// Parser folds "[Aa]" into a case-folded literal.
			for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
				set = append(set, f, f)
			}
		}

		return normalizeRanges(set), nil
	case syntax.OpAnyCharNotNL:
		return runeSet{0, '\n' - 1, '\n' + 1, unicode.MaxRune}, nil
	case syntax.OpAnyChar:
		return runeSet{0, unicode.MaxRune}, nil
	case syntax.OpNoMatch:
		return runeSet{}, nil
	}

	return nil, fmt.Errorf("%w: %q does not denote a character set", ErrUnsupportedOperation, text)
}

// mustClassSet is classSet for operations without error return.
func mustClassSet(p Pattern) runeSet {
	set, err := classSet(p.String())
	if err != nil {
		panic(err)
	}

	return set
}

// normalizeRanges sorts and merges overlapping or adjacent pairs.
func normalizeRanges(pairs []rune) runeSet {
	if len(pairs) < 2 {
		return runeSet{}
	}

	type span struct{ lo, hi rune }
	spans := make([]span, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		spans = append(spans, span{lo: pairs[i], hi: pairs[i+1]})
	}

	slices.SortFunc(spans, func(a, b span) int {
		return int(a.lo) - int(b.lo)
	})

	out := make(runeSet, 0, len(pairs))
	for _, s := range spans {
		n := len(out)
		if n > 0 && s.lo <= out[n-1]+1 {
			if s.hi > out[n-1] {
				out[n-1] = s.hi
			}
			continue
		}

		out = append(out, s.lo, s.hi)
	}

	return out
}

// union returns runes present in a or b.
func (a runeSet) union(b runeSet) runeSet {
	merged := make([]rune, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return normalizeRanges(merged)
}

// complement returns runes absent from a over the whole code point space.
func (a runeSet) complement() runeSet {
	out := make(runeSet, 0, len(a)+2)
	next := rune(0)
	for i := 0; i < len(a); i += 2 {
		if a[i] > next {
			out = append(out, next, a[i]-1)
		}
		next = a[i+1] + 1
	}

	if next <= unicode.MaxRune {
		out = append(out, next, unicode.MaxRune)
	}

	return out
}

// intersect returns runes present in both a and b.
func (a runeSet) intersect(b runeSet) runeSet {
	out := make(runeSet, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := max(a[i], b[j])
		hi := min(a[i+1], b[j+1])
		if lo <= hi {
			out = append(out, lo, hi)
		}

		// Advance the pair that ends first.
		if a[i+1] < b[j+1] {
			i += 2
		} else {
			j += 2
		}
	}

	return out
}

// subtract returns runes present in a and absent from b.
func (a runeSet) subtract(b runeSet) runeSet {
	return a.intersect(b.complement())
}

// symmetricDifference returns runes present in exactly one of a and b.
func (a runeSet) symmetricDifference(b runeSet) runeSet {
	return a.subtract(b).union(b.subtract(a))
}

// contains reports whether r belongs to set.
func (a runeSet) contains(r rune) bool {
	for i := 0; i < len(a); i += 2 {
		if r < a[i] {
			return false
		}
		if r <= a[i+1] {
			return true
		}
	}

	return false
}

// class renders set as one CustomClass bracket expression.
func (a runeSet) class() Fragment[CustomClass] {
	if len(a) == 0 {
		return customClass(fullRangeBody, true)
	}

	var b strings.Builder
	for i := 0; i < len(a); i += 2 {
		writeClassRange(&b, a[i], a[i+1])
	}

	return customClass(b.String(), false)
}
