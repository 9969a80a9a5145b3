// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"fmt"
	"unicode"
)

// noneText is a class that matches no character at all.
const noneText = "[^" + fullRangeBody + "]"

func standard(text string) Fragment[StandardClass] {
	return Fragment[StandardClass]{text: text}
}

// Any matches any character except newline.
func Any() Fragment[StandardClass] { return standard(".") }

// None matches nothing; it is the negation of Any.
func None() Fragment[StandardClass] { return standard(noneText) }

// Digit matches an ASCII digit.
func Digit() Fragment[StandardClass] { return standard(`\d`) }

// NonDigit matches anything but an ASCII digit.
func NonDigit() Fragment[StandardClass] { return standard(`\D`) }

// Word matches an ASCII word character.
func Word() Fragment[StandardClass] { return standard(`\w`) }

// NonWord matches anything but an ASCII word character.
func NonWord() Fragment[StandardClass] { return standard(`\W`) }

// Whitespace matches ASCII whitespace.
func Whitespace() Fragment[StandardClass] { return standard(`\s`) }

// NonWhitespace matches anything but ASCII whitespace.
func NonWhitespace() Fragment[StandardClass] { return standard(`\S`) }

// WordBoundary matches the empty string at a word boundary.
func WordBoundary() Fragment[StandardClass] { return standard(`\b`) }

// NonWordBoundary matches the empty string away from a word boundary.
func NonWordBoundary() Fragment[StandardClass] { return standard(`\B`) }

// Beginning matches at the beginning of the text, or of a line in multi-line mode.
func Beginning() Fragment[StandardClass] { return standard(`^`) }

// End matches at the end of the text, or of a line in multi-line mode.
func End() Fragment[StandardClass] { return standard(`$`) }

// BeginningOfText matches only at the beginning of the text.
func BeginningOfText() Fragment[StandardClass] { return standard(`\A`) }

// EndOfText matches only at the end of the text.
func EndOfText() Fragment[StandardClass] { return standard(`\z`) }

// UnicodeClass matches one character of a Unicode general category or script,
// for example "L", "Lu" or "Greek".
func UnicodeClass(name string) (Fragment[StandardClass], error) {
	if !knownUnicodeClass(name) {
		return Fragment[StandardClass]{}, fmt.Errorf("%w: %q", ErrInvalidClassName, name)
	}

	if len(name) == 1 {
		return standard(`\p` + name), nil
	}

	return standard(`\p{` + name + `}`), nil
}

// NonUnicodeClass matches one character outside a Unicode category or script.
func NonUnicodeClass(name string) (Fragment[StandardClass], error) {
	f, err := UnicodeClass(name)
	if err != nil {
		return f, err
	}

	return Negate(f), nil
}

// knownUnicodeClass reports whether name is a category or script known to RE2.
func knownUnicodeClass(name string) bool {
	if name == "Any" {
		return true
	}

	if _, ok := unicode.Categories[name]; ok {
		return true
	}

	_, ok := unicode.Scripts[name]
	return ok
}

// standardNegations maps each standard class to its complement, both ways.
var standardNegations = func() map[string]string {
	pairs := map[string]string{
		`\d`: `\D`,
		`\w`: `\W`,
		`\s`: `\S`,
		`\b`: `\B`,
		`.`:  noneText,
	}

	out := make(map[string]string, len(pairs)*2)
	for k, v := range pairs {
		out[k] = v
		out[v] = k
	}

	return out
}()

// negateStandard returns complement text of one standard class.
func negateStandard(text string) string {
	if neg, ok := standardNegations[text]; ok {
		return neg
	}

	// Unicode classes toggle the escape letter case: \pL <-> \PL.
	if len(text) > 2 && text[0] == '\\' {
		switch text[1] {
		case 'p':
			return `\P` + text[2:]
		case 'P':
			return `\p` + text[2:]
		}
	}

	panic(fmt.Errorf("%w: negate anchor %q", ErrUnsupportedOperation, text))
}
