// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: EngineRE2},
		{in: "re2", want: EngineRE2},
		{in: " RE2 ", want: EngineRE2},
		{in: "backtracking", want: EngineBacktracking},
		{in: "Backtracking", want: EngineBacktracking},
	}

	for _, tc := range tests {
		engine, err := EngineByName(tc.in, BacktrackingOptions{})
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, engine.Name(), tc.in)
	}

	_, err := EngineByName("pcre", BacktrackingOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestRE2ReturnsStdlibRegexp(t *testing.T) {
	t.Parallel()

	m, err := Compile(Text("a.b"))
	require.NoError(t, err)

	re, ok := m.(*regexp.Regexp)
	require.True(t, ok)
	assert.Equal(t, `a\.b`, re.String())
}

func TestCompileWithNilEngineUsesRE2(t *testing.T) {
	t.Parallel()

	m, err := CompileWith(nil, Digit())
	require.NoError(t, err)
	assert.IsType(t, &regexp.Regexp{}, m)
}

func TestMustCompilePanicsOnInvalidText(t *testing.T) {
	t.Parallel()

	requirePanicErrorIs(t, ErrCompile, func() {
		MustCompile(UncheckedFromText("a)("))
	})
}

func TestBacktrackingMatcher(t *testing.T) {
	t.Parallel()

	engine := Backtracking(BacktrackingOptions{MatchTimeout: time.Second})
	assert.Equal(t, EngineBacktracking, engine.Name())

	word := OneOrMore(Must(WithinRange('a', 'z')))
	m, err := CompileWith(engine, Concat(Capture(word), Text("="), Capture(OneOrMore(Digit()))))
	require.NoError(t, err)

	src := "a=1; bb=22; ccc=333"
	assert.True(t, m.MatchString(src))
	assert.False(t, m.MatchString("no pairs"))
	assert.Equal(t, "a=1", m.FindString(src))
	assert.Equal(t, "", m.FindString("none"))
	assert.Equal(t, []string{"a=1", "bb=22", "ccc=333"}, m.FindAllString(src, -1))
	assert.Equal(t, []string{"a=1", "bb=22"}, m.FindAllString(src, 2))
	assert.Nil(t, m.FindAllString("none", -1))
	assert.Equal(t, []string{"bb=22", "bb", "22"}, m.FindStringSubmatch("x bb=22"))
	assert.Nil(t, m.FindStringSubmatch("none"))

	all := m.FindAllStringSubmatch(src, -1)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"ccc=333", "ccc", "333"}, all[2])

	assert.Equal(t, "1:a; 22:bb; 333:ccc", m.ReplaceAllString(src, "$2:$1"))
	assert.Equal(t, m.String(), Concat(Capture(word), Text("="), Capture(OneOrMore(Digit()))).String())
}

func TestBacktrackingOptionalGroupIsEmpty(t *testing.T) {
	t.Parallel()

	m, err := CompileWith(Backtracking(BacktrackingOptions{}), Concat(Text("a"), ZeroOrOne(Capture(Text("b"))), Text("c")))
	require.NoError(t, err)
	assert.Equal(t, []string{"ac", ""}, m.FindStringSubmatch("ac"))
}

func TestBacktrackingOptionsDefaults(t *testing.T) {
	t.Parallel()

	var opts BacktrackingOptions
	opts.applyDefaults()
	assert.Equal(t, DefaultMatchTimeout, opts.MatchTimeout)

	opts = BacktrackingOptions{MatchTimeout: -1}
	opts.applyDefaults()
	assert.Equal(t, time.Duration(-1), opts.MatchTimeout)
}
