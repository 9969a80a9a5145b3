// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import "errors"

// Sentinel errors for humanregex operations.
var (
	// ErrInvalidRange indicates a character range with lo > hi or invalid runes.
	ErrInvalidRange = errors.New("invalid range")
	// ErrEmptyAlternation indicates an alternation without any option.
	ErrEmptyAlternation = errors.New("empty alternation")
	// ErrInvalidRepetitionRange indicates repetition counts out of order or out of bounds.
	ErrInvalidRepetitionRange = errors.New("invalid repetition range")
	// ErrInvalidGroupName indicates a capture group name the engines cannot accept.
	ErrInvalidGroupName = errors.New("invalid group name")
	// ErrInvalidClassName indicates an unknown Unicode class name.
	ErrInvalidClassName = errors.New("invalid class name")
	// ErrUnsupportedOperation indicates an operation undefined for the fragment shape.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrCompile indicates the engine rejected assembled pattern text.
	ErrCompile = errors.New("compile pattern")
	// ErrInvalidWord indicates malformed word list input.
	ErrInvalidWord = errors.New("invalid word")
)
