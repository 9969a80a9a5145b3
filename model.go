// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

// Literal tags fully escaped user text.
type Literal struct{}

// StandardClass tags one predefined escape class, anchor or boundary.
type StandardClass struct{}

// CustomClass tags a bracket expression, possibly negated.
type CustomClass struct{}

// AsciiClass tags a POSIX bracket-in-bracket named class.
type AsciiClass struct{}

// Chain tags an arbitrary composite expression.
type Chain struct{}

// Quantifier tags the direct result of a repetition operator.
type Quantifier struct{}

// Category is the closed set of fragment categories.
type Category interface {
	Literal | StandardClass | CustomClass | AsciiClass | Chain | Quantifier
}

// ClassCategory is the subset of categories that denote one character.
type ClassCategory interface {
	StandardClass | CustomClass | AsciiClass
}

// Pattern is implemented by every Fragment regardless of its category.
type Pattern interface {
	// String returns stable pattern text.
	String() string

	fragment()
}

// Fragment is an immutable piece of pattern text tagged with category C.
//
// The zero value of a Literal, Chain or Quantifier fragment is empty and
// matches the empty string. Zero-value class fragments denote no class;
// Negate and the class algebra panic on them with ErrUnsupportedOperation.
type Fragment[C Category] struct {
	// text is rendered pattern text.
	text string
	// inner is literal source text, custom class body or POSIX class name.
	inner string
	// negated reports negation state of custom and POSIX classes.
	negated bool
}

// String returns fragment pattern text.
func (f Fragment[C]) String() string {
	return f.text
}

func (Fragment[C]) fragment() {}

// Must returns f and panics when err is not nil.
//
// It simplifies inline construction of fixed expressions, like regexp.MustCompile.
func Must[C Category](f Fragment[C], err error) Fragment[C] {
	if err != nil {
		panic(err)
	}

	return f
}

// chain builds Chain fragment from rendered text.
func chain(text string) Fragment[Chain] {
	return Fragment[Chain]{text: text}
}

// group wraps text in a non-capturing group.
func group(text string) string {
	return "(?:" + text + ")"
}
