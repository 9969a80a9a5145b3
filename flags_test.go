// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagGroupText(t *testing.T) {
	t.Parallel()

	target := Text("a")
	tests := []struct {
		name string
		got  Fragment[Chain]
		want string
	}{
		{name: "case-insensitive", got: CaseInsensitive(target), want: "(?i:a)"},
		{name: "multi-line", got: MultiLineMode(target), want: "(?m:a)"},
		{name: "dot-newline", got: DotMatchesNewline(target), want: "(?s:a)"},
		{name: "disable-unicode", got: DisableUnicode(target), want: "(?-u:a)"},
		{name: "extended", got: IgnoreWhitespaceAndComments(target), want: "(?x:a)"},
		{name: "swap-greed", got: SwapGreed(target), want: "(?U:a)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.got.String())
		})
	}
}

func TestCaseInsensitiveIsScoped(t *testing.T) {
	t.Parallel()

	m := MustCompile(Concat(BeginningOfText(), CaseInsensitive(Text("ab")), Text("c"), EndOfText()))
	assert.True(t, m.MatchString("ABc"))
	assert.True(t, m.MatchString("abc"))
	assert.False(t, m.MatchString("abC"))
}

func TestMultiLineMode(t *testing.T) {
	t.Parallel()

	plain := MustCompile(Concat(Beginning(), Text("b")))
	assert.False(t, plain.MatchString("a\nb"))

	multi := MustCompile(MultiLineMode(Concat(Beginning(), Text("b"))))
	assert.True(t, multi.MatchString("a\nb"))
}

func TestDotMatchesNewline(t *testing.T) {
	t.Parallel()

	f := Concat(Text("a"), Any(), Text("b"))
	assert.False(t, MustCompile(f).MatchString("a\nb"))
	assert.True(t, MustCompile(DotMatchesNewline(f)).MatchString("a\nb"))
}

func TestSwapGreed(t *testing.T) {
	t.Parallel()

	m := MustCompile(SwapGreed(ZeroOrMore(Text("a"))))
	assert.Equal(t, "", m.FindString("aaa"))
}

func TestIgnoreWhitespaceAndComments(t *testing.T) {
	t.Parallel()

	f := IgnoreWhitespaceAndComments(UncheckedFromText("a b c # letters\n"))

	m, err := CompileWith(Backtracking(BacktrackingOptions{}), f)
	require.NoError(t, err)
	assert.True(t, m.MatchString("abc"))
	assert.False(t, m.MatchString("a b c"))

	_, err = Compile(f)
	assert.ErrorIs(t, err, ErrCompile)
}

func TestIgnoreWhitespaceKeepsLiteralText(t *testing.T) {
	t.Parallel()

	engine := Backtracking(BacktrackingOptions{})
	for _, in := range []string{"a b", "x\ty", "tag #1", "two\nlines"} {
		m, err := CompileWith(engine, IgnoreWhitespaceAndComments(Text(in)))
		require.NoError(t, err, "%q", in)
		assert.True(t, m.MatchString(in), "%q", in)
	}

	m, err := CompileWith(engine, IgnoreWhitespaceAndComments(Text("a b")))
	require.NoError(t, err)
	assert.False(t, m.MatchString("ab"))
}

func TestDisableUnicodeIsRejectedByBundledEngines(t *testing.T) {
	t.Parallel()

	_, err := Compile(DisableUnicode(Text("a")))
	assert.ErrorIs(t, err, ErrCompile)

	_, err = CompileWith(Backtracking(BacktrackingOptions{}), DisableUnicode(Text("a")))
	assert.ErrorIs(t, err, ErrCompile)
}
