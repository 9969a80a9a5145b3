// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"fmt"
	"strconv"
)

// MaxRepeat is the largest repetition count accepted by Exactly, AtLeast and Between.
//
// It equals the limit of Go's regexp/syntax parser.
const MaxRepeat = 1000

func quantifier(target Pattern, suffix string) Fragment[Quantifier] {
	return Fragment[Quantifier]{text: group(target.String()) + suffix}
}

func checkRepeat(n int) error {
	if n < 0 || n > MaxRepeat {
		return fmt.Errorf("%w: count %d outside 0..%d", ErrInvalidRepetitionRange, n, MaxRepeat)
	}

	return nil
}

// Exactly matches target exactly n times.
func Exactly(n int, target Pattern) (Fragment[Quantifier], error) {
	if err := checkRepeat(n); err != nil {
		return Fragment[Quantifier]{}, err
	}

	return quantifier(target, "{"+strconv.Itoa(n)+"}"), nil
}

// AtLeast matches target n or more times.
func AtLeast(n int, target Pattern) (Fragment[Quantifier], error) {
	if err := checkRepeat(n); err != nil {
		return Fragment[Quantifier]{}, err
	}

	return quantifier(target, "{"+strconv.Itoa(n)+",}"), nil
}

// Between matches target from n to m times inclusive.
func Between(n int, m int, target Pattern) (Fragment[Quantifier], error) {
	if err := checkRepeat(n); err != nil {
		return Fragment[Quantifier]{}, err
	}

	if err := checkRepeat(m); err != nil {
		return Fragment[Quantifier]{}, err
	}

	if n > m {
		return Fragment[Quantifier]{}, fmt.Errorf("%w: %d > %d", ErrInvalidRepetitionRange, n, m)
	}

	return quantifier(target, "{"+strconv.Itoa(n)+","+strconv.Itoa(m)+"}"), nil
}

// OneOrMore matches target one or more times.
func OneOrMore(target Pattern) Fragment[Quantifier] {
	return quantifier(target, "+")
}

// ZeroOrMore matches target any number of times.
func ZeroOrMore(target Pattern) Fragment[Quantifier] {
	return quantifier(target, "*")
}

// ZeroOrOne matches target at most once.
func ZeroOrOne(target Pattern) Fragment[Quantifier] {
	return quantifier(target, "?")
}

// Lazy makes a repetition prefer the shortest match.
//
// The result is a Chain, so laziness cannot be applied twice.
func Lazy(q Fragment[Quantifier]) Fragment[Chain] {
	return chain(q.text + "?")
}
