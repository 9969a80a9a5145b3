// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// fullRangeBody is bracket body covering every code point.
const fullRangeBody = `\x00-\x{10FFFF}`

// escapeText escapes every byte with special meaning outside a bracket expression.
//
// ASCII whitespace is escaped too, so the text keeps its meaning under
// IgnoreWhitespaceAndComments. Each byte of an invalid UTF-8 sequence becomes
// \x{FFFD}; both engines read such input bytes as U+FFFD.
func escapeText(s string) string {
	if utf8.ValidString(s) && !strings.ContainsFunc(s, needsTextEscape) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			writeTextByte(&b, c)
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString(`\x{FFFD}`)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}

	return b.String()
}

// needsTextEscape reports whether rune is rewritten by escapeText.
func needsTextEscape(r rune) bool {
	return r < utf8.RuneSelf && (isTextMeta(byte(r)) || isTextSpace(byte(r)))
}

// writeTextByte appends one ASCII byte of literal text.
func writeTextByte(b *strings.Builder, c byte) {
	switch {
	case isTextMeta(c):
		b.WriteByte('\\')
		b.WriteByte(c)
	case c == ' ':
		b.WriteString(`\ `)
	case c == '\t':
		b.WriteString(`\t`)
	case c == '\n':
		b.WriteString(`\n`)
	case c == '\v':
		b.WriteString(`\v`)
	case c == '\f':
		b.WriteString(`\f`)
	case c == '\r':
		b.WriteString(`\r`)
	default:
		b.WriteByte(c)
	}
}

// isTextMeta reports whether byte must be escaped in pattern text.
//
// Besides RE2 meta characters it covers "#", "&", "-" and "~", which are
// special in extended mode or in class set operators of other dialects.
func isTextMeta(c byte) bool {
	switch c {
	case '\\', '.', '+', '*', '?', '(', ')', '|', '[', ']', '{', '}', '^', '$', '#', '&', '-', '~':
		return true
	default:
		return false
	}
}

// isTextSpace reports whether byte is whitespace ignored in extended mode.
func isTextSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// isClassMeta reports whether byte must be escaped inside a bracket expression.
func isClassMeta(c byte) bool {
	switch c {
	case '\\', '[', ']', '^', '-', '&', '~':
		return true
	default:
		return false
	}
}

// writeClassRune appends one bracket member.
func writeClassRune(b *strings.Builder, r rune) {
	switch {
	case r < utf8.RuneSelf && isClassMeta(byte(r)):
		b.WriteByte('\\')
		b.WriteRune(r)
	case unicode.IsPrint(r):
		b.WriteRune(r)
	default:
		// Controls, surrogates and unassigned code points stay readable and valid.
		fmt.Fprintf(b, `\x{%X}`, r)
	}
}

// writeClassRange appends one inclusive bracket range.
func writeClassRange(b *strings.Builder, lo rune, hi rune) {
	writeClassRune(b, lo)
	switch {
	case hi == lo:
	case hi == lo+1:
		writeClassRune(b, hi)
	default:
		b.WriteByte('-')
		writeClassRune(b, hi)
	}
}

// classMembers renders bracket body listing runes of s in order.
func classMembers(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		writeClassRune(&b, r)
	}

	return b.String()
}

// renderCustomClass renders bracket expression from body and negation state.
func renderCustomClass(body string, negated bool) string {
	if negated {
		return "[^" + body + "]"
	}

	return "[" + body + "]"
}

// renderASCIIClass renders POSIX class from name and negation state.
func renderASCIIClass(name string, negated bool) string {
	if negated {
		return "[[:^" + name + ":]]"
	}

	return "[[:" + name + ":]]"
}

// customClass builds CustomClass fragment with typed negation state.
func customClass(body string, negated bool) Fragment[CustomClass] {
	return Fragment[CustomClass]{
		text:    renderCustomClass(body, negated),
		inner:   body,
		negated: negated,
	}
}

// asciiClass builds AsciiClass fragment with typed negation state.
func asciiClass(name string, negated bool) Fragment[AsciiClass] {
	return Fragment[AsciiClass]{
		text:    renderASCIIClass(name, negated),
		inner:   name,
		negated: negated,
	}
}
