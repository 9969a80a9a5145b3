// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextMatchesItselfVerbatim(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"a.b",
		"1+1=2",
		"(x)",
		"[a-z]",
		"^start$",
		"a|b",
		"x{3}",
		`back\slash`,
		"#comment",
		"a&b-c~d",
		"?*",
		"héllo wörld",
		"tab\tnew\nline",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			anchored := MustCompile(Concat(BeginningOfText(), Text(in), EndOfText()))
			assert.True(t, anchored.MatchString(in), "pattern %s", anchored)

			embedded := MustCompile(Text(in))
			assert.Equal(t, in, embedded.FindString("<<"+in+">>"))
		})
	}
}

func TestTextDoesNotInterpretMetaCharacters(t *testing.T) {
	t.Parallel()

	m := MustCompile(Concat(BeginningOfText(), Text("a.b*"), EndOfText()))
	assert.False(t, m.MatchString("axb"))
	assert.False(t, m.MatchString("a.bbb"))
	assert.True(t, m.MatchString("a.b*"))

	assert.Equal(t, `1\+1`, Text("1+1").String())
	assert.Equal(t, `\#x`, Text("#x").String())
}

func TestTextOnBacktrackingEngine(t *testing.T) {
	t.Parallel()

	engine := Backtracking(BacktrackingOptions{})
	for _, in := range []string{"a.b", "1+1=2", "(x)", "a&b-c~d", "#tag"} {
		m, err := CompileWith(engine, Concat(BeginningOfText(), Text(in), EndOfText()))
		require.NoError(t, err, in)
		assert.True(t, m.MatchString(in), in)
	}
}

func TestTextInvalidUTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "a\xffb", want: `a\x{FFFD}b`},
		{in: "\xc3", want: `\x{FFFD}`},
		{in: "\xe2\x82", want: `\x{FFFD}\x{FFFD}`},
		{in: "é\xff.", want: `é\x{FFFD}\.`},
	}

	engines := []Engine{RE2, Backtracking(BacktrackingOptions{})}
	for _, tc := range tests {
		f := Text(tc.in)
		assert.Equal(t, tc.want, f.String(), "%q", tc.in)

		for _, engine := range engines {
			m, err := CompileWith(engine, Concat(BeginningOfText(), f, EndOfText()))
			require.NoError(t, err, "%s %q", engine.Name(), tc.in)
			assert.True(t, m.MatchString(tc.in), "%s %q", engine.Name(), tc.in)
		}
	}
}

func TestTextEscapesWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `a\ b\tc\nd\re\ff\vg`, Text("a b\tc\nd\re\ff\vg").String())

	m := MustCompile(Concat(BeginningOfText(), Text("a b\tc\n"), EndOfText()))
	assert.True(t, m.MatchString("a b\tc\n"))
	assert.False(t, m.MatchString("ab\tc\n"))
}

func TestEscapeAll(t *testing.T) {
	t.Parallel()

	got := EscapeAll([]string{"a.b", "c", "(d)"})
	assert.Equal(t, []string{`a\.b`, "c", `\(d\)`}, got)
	assert.Empty(t, EscapeAll(nil))
}

func TestUncheckedFromText(t *testing.T) {
	t.Parallel()

	f := UncheckedFromText(`\d+`)
	assert.Equal(t, `(?:\d+)`, f.String())
	assert.True(t, MustCompile(f).MatchString("42"))

	_, err := Compile(UncheckedFromText("("))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCompile)
	assert.Contains(t, err.Error(), EngineRE2)
}

func TestMustPanicsOnError(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Must(Exactly(-1, Digit()))
	})
	assert.Equal(t, `(?:\d){2}`, Must(Exactly(2, Digit())).String())
}

func TestZeroFragmentMatchesEmpty(t *testing.T) {
	t.Parallel()

	var f Fragment[Chain]
	assert.Equal(t, "", f.String())
	assert.True(t, MustCompile(f).MatchString(""))
}
