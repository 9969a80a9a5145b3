// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepetitionText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  Fragment[Quantifier]
		want string
	}{
		{name: "exactly", got: Must(Exactly(4, Digit())), want: `(?:\d){4}`},
		{name: "at-least", got: Must(AtLeast(2, Text("ab"))), want: `(?:ab){2,}`},
		{name: "between", got: Must(Between(1, 3, Word())), want: `(?:\w){1,3}`},
		{name: "one-or-more", got: OneOrMore(Text("a")), want: `(?:a)+`},
		{name: "zero-or-more", got: ZeroOrMore(Text("a")), want: `(?:a)*`},
		{name: "zero-or-one", got: ZeroOrOne(Text("a")), want: `(?:a)?`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.got.String())
		})
	}
}

func TestRepetitionAppliesToWholeTarget(t *testing.T) {
	t.Parallel()

	m := MustCompile(Concat(BeginningOfText(), Must(Exactly(2, Text("ab"))), EndOfText()))
	assert.True(t, m.MatchString("abab"))
	assert.False(t, m.MatchString("abb"))
}

func TestBetweenRejectsReversedRange(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 20; n++ {
		for m := 0; m <= 20; m++ {
			_, err := Between(n, m, Digit())
			if n > m {
				assert.ErrorIs(t, err, ErrInvalidRepetitionRange, "Between(%d, %d)", n, m)
				continue
			}

			assert.NoError(t, err, "Between(%d, %d)", n, m)
		}
	}
}

func TestRepetitionBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "exactly-negative", err: second(Exactly(-1, Digit()))},
		{name: "exactly-too-large", err: second(Exactly(MaxRepeat+1, Digit()))},
		{name: "at-least-negative", err: second(AtLeast(-1, Digit()))},
		{name: "between-negative", err: second(Between(-1, 2, Digit()))},
		{name: "between-too-large", err: second(Between(0, MaxRepeat+1, Digit()))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tc.err, ErrInvalidRepetitionRange)
		})
	}

	largest, err := Exactly(MaxRepeat, Digit())
	require.NoError(t, err)
	_, err = Compile(largest)
	assert.NoError(t, err)
}

func TestLazyPrefersShortestMatch(t *testing.T) {
	t.Parallel()

	eager := MustCompile(ZeroOrMore(Text("a")))
	assert.Equal(t, "aaaa", eager.FindString("aaaa"))

	lazy := MustCompile(Lazy(ZeroOrMore(Text("a"))))
	assert.Equal(t, "", lazy.FindString("aaaa"))

	lazyPlus := MustCompile(Lazy(OneOrMore(Text("a"))))
	assert.Equal(t, "a", lazyPlus.FindString("aaaa"))

	assert.Equal(t, `(?:a){2,5}?`, Lazy(Must(Between(2, 5, Text("a")))).String())
}

func TestLazyOnBacktrackingEngine(t *testing.T) {
	t.Parallel()

	engine := Backtracking(BacktrackingOptions{})
	lazy, err := CompileWith(engine, Lazy(OneOrMore(Text("a"))))
	require.NoError(t, err)
	assert.Equal(t, "a", lazy.FindString("aaaa"))

	eager, err := CompileWith(engine, OneOrMore(Text("a")))
	require.NoError(t, err)
	assert.Equal(t, "aaaa", eager.FindString("aaaa"))
}

func second(_ Fragment[Quantifier], err error) error {
	return err
}

func ExampleBetween() {
	f, err := Between(2, 3, Digit())
	if err != nil {
		panic(err)
	}

	m := MustCompile(f)
	fmt.Println(f)
	fmt.Println(m.FindString("year 2024"))
	// Output:
	// (?:\d){2,3}
	// 202
}
