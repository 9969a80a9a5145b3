// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"fmt"
	"strings"
)

// Concat juxtaposes parts in order.
//
// Concatenation is associative and adds no grouping; operations that change
// the shape of their input group it themselves.
func Concat(parts ...Pattern) Fragment[Chain] {
	switch len(parts) {
	case 0:
		return chain("")
	case 1:
		return chain(parts[0].String())
	}

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.String())
	}

	return chain(b.String())
}

// Or matches a or b, preferring a.
func Or(a Pattern, b Pattern) Fragment[Chain] {
	return chain(group(a.String() + "|" + b.String()))
}

// Alternate matches any of options, preferring earlier ones.
func Alternate(options ...Pattern) (Fragment[Chain], error) {
	if len(options) == 0 {
		return Fragment[Chain]{}, ErrEmptyAlternation
	}

	var b strings.Builder
	b.WriteString("(?:")
	for i, opt := range options {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(opt.String())
	}
	b.WriteByte(')')

	return chain(b.String()), nil
}

// AnyOf matches any of words taken literally, preferring earlier ones.
func AnyOf(words ...string) (Fragment[Chain], error) {
	if len(words) == 0 {
		return Fragment[Chain]{}, fmt.Errorf("%w: no words", ErrEmptyAlternation)
	}

	return chain(group(strings.Join(EscapeAll(words), "|"))), nil
}

// Intersect matches one character belonging to both a and b.
//
// Zero-width classes such as WordBoundary or Beginning have no character set;
// passing one panics with an error wrapping ErrUnsupportedOperation.
func Intersect[A, B ClassCategory](a Fragment[A], b Fragment[B]) Fragment[CustomClass] {
	return mustClassSet(a).intersect(mustClassSet(b)).class()
}

// Union matches one character belonging to a or b.
func Union[A, B ClassCategory](a Fragment[A], b Fragment[B]) Fragment[CustomClass] {
	return mustClassSet(a).union(mustClassSet(b)).class()
}

// Subtract matches one character belonging to from but not to remove.
func Subtract[A, B ClassCategory](from Fragment[A], remove Fragment[B]) Fragment[CustomClass] {
	return mustClassSet(from).subtract(mustClassSet(remove)).class()
}

// SymmetricDifference matches one character belonging to exactly one of a and b.
func SymmetricDifference[A, B ClassCategory](a Fragment[A], b Fragment[B]) Fragment[CustomClass] {
	return mustClassSet(a).symmetricDifference(mustClassSet(b)).class()
}

// Negate returns the complement of one class, keeping its category.
//
// Standard classes swap with their counterpart (\d and \D, Any and None,
// \pL and \PL). Custom and POSIX classes toggle their negation marker.
// Negate(Negate(x)) reproduces the text of x exactly.
//
// Line and text anchors and zero-value class fragments have no complement;
// negating one panics with an error wrapping ErrUnsupportedOperation.
func Negate[C ClassCategory](f Fragment[C]) Fragment[C] {
	if f.text == "" {
		panic(fmt.Errorf("%w: negate zero-value class fragment", ErrUnsupportedOperation))
	}

	switch any(f).(type) {
	case Fragment[StandardClass]:
		return Fragment[C]{text: negateStandard(f.text)}
	case Fragment[CustomClass]:
		return Fragment[C]{
			text:    renderCustomClass(f.inner, !f.negated),
			inner:   f.inner,
			negated: !f.negated,
		}
	default:
		return Fragment[C]{
			text:    renderASCIIClass(f.inner, !f.negated),
			inner:   f.inner,
			negated: !f.negated,
		}
	}
}

// NegateEach matches len(l) characters where each differs from the literal
// character at the same position.
//
// It does not mean "anything but this literal": "ab" becomes "[^a][^b]",
// which rejects "xb". An empty literal yields an empty chain.
func NegateEach(l Fragment[Literal]) Fragment[Chain] {
	var b strings.Builder
	for _, r := range l.inner {
		b.WriteString("[^")
		writeClassRune(&b, r)
		b.WriteByte(']')
	}

	return chain(b.String())
}
