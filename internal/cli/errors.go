// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cli

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
	"github.com/urfave/cli/v2"
)

// Exit codes follow grep: 0 selected lines, 1 none, 2 trouble.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// errNoMatch is returned by commands that found nothing to select.
var errNoMatch = cli.Exit("", ExitNoMatch)

// WithStackTrace wraps err with the current call stack. Nil stays nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// Errorf creates a new error with the current call stack.
func Errorf(format string, args ...any) error {
	return goerrors.Wrap(fmt.Errorf(format, args...), 1)
}

// ErrorStack returns error message with its recorded call stack, if any.
func ErrorStack(err error) string {
	var goErr *goerrors.Error
	if errors.As(err, &goErr) {
		return goErr.ErrorStack()
	}

	return ""
}

// ExitCode maps command error to process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitMatch
	}

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}

	return ExitError
}

// Recover turns a panic into an error passed to onPanic. Call it from defer.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec)
		}

		onPanic(WithStackTrace(err))
	}
}

// withPanicHandling converts panics of a command action into returned errors.
func withPanicHandling(action cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) (err error) {
		defer Recover(func(cause error) {
			err = cause
		})

		return action(c)
	}
}
