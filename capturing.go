// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import "fmt"

// Capture wraps target in a numbered capturing group.
//
// Group numbers are positional and assigned by the engine at Compile.
func Capture(target Pattern) Fragment[Chain] {
	return chain("(" + target.String() + ")")
}

// NamedCapture wraps target in a capturing group called name.
//
// Names must start with an ASCII letter or underscore followed by ASCII
// letters, digits or underscores.
func NamedCapture(target Pattern, name string) (Fragment[Chain], error) {
	if !validGroupName(name) {
		return Fragment[Chain]{}, fmt.Errorf("%w: %q", ErrInvalidGroupName, name)
	}

	return chain("(?P<" + name + ">" + target.String() + ")"), nil
}

func validGroupName(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
