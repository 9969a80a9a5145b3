// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing plain text records to w.
func NewLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	return logger
}

// SetLogLevel parses level and applies it to logger.
func SetLogLevel(logger *logrus.Logger, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return WithStackTrace(err)
	}

	logger.SetLevel(lvl)
	return nil
}
