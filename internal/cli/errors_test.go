// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitMatch, ExitCode(nil))
	assert.Equal(t, ExitNoMatch, ExitCode(errNoMatch))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))
	assert.Equal(t, 3, ExitCode(cli.Exit("custom", 3)))
	assert.Equal(t, ExitNoMatch, ExitCode(WithStackTrace(errNoMatch)))
}

func TestWithStackTrace(t *testing.T) {
	t.Parallel()

	assert.NoError(t, WithStackTrace(nil))

	base := errors.New("boom")
	err := WithStackTrace(base)
	require.ErrorIs(t, err, base)
	assert.Equal(t, "boom", err.Error())
	assert.Contains(t, ErrorStack(err), "TestWithStackTrace")

	assert.Empty(t, ErrorStack(base))
	assert.Contains(t, ErrorStack(Errorf("code %d", 7)), "code 7")
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var got error
	func() {
		defer Recover(func(cause error) { got = cause })
		panic("boom")
	}()
	require.Error(t, got)
	assert.Equal(t, "boom", got.Error())

	sentinel := errors.New("sentinel")
	func() {
		defer Recover(func(cause error) { got = cause })
		panic(sentinel)
	}()
	assert.ErrorIs(t, got, sentinel)
}

func TestWithPanicHandling(t *testing.T) {
	t.Parallel()

	action := withPanicHandling(func(*cli.Context) error {
		panic("action failed")
	})

	err := action(nil)
	require.Error(t, err)
	assert.Equal(t, ExitError, ExitCode(err))
	assert.Contains(t, err.Error(), "action failed")
}
