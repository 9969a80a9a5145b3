// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

// Command humanregex searches and rewrites text with cookbook expressions.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/woozymasta/humanregex/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	logger := cli.NewLogger(os.Stderr)
	app := cli.NewApp(os.Stdout, os.Stderr, logger)

	var err error
	func() {
		defer cli.Recover(func(cause error) { err = cause })
		err = app.RunContext(ctx, os.Args)
	}()
	stop()

	code := cli.ExitCode(err)
	if code == cli.ExitError {
		logger.Error(err.Error())
		if stack := cli.ErrorStack(err); stack != "" {
			logger.Debug(stack)
		}
	}

	os.Exit(code)
}
