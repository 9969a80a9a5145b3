// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package humanregex

// Alphanumeric matches an alphanumeric character ([0-9A-Za-z]).
func Alphanumeric() Fragment[AsciiClass] { return asciiClass("alnum", false) }

// NonAlphanumeric matches anything but an alphanumeric character ([0-9A-Za-z]).
func NonAlphanumeric() Fragment[AsciiClass] { return asciiClass("alnum", true) }

// Alphabetic matches an alphabetic character ([A-Za-z]).
func Alphabetic() Fragment[AsciiClass] { return asciiClass("alpha", false) }

// NonAlphabetic matches anything but an alphabetic character ([A-Za-z]).
func NonAlphabetic() Fragment[AsciiClass] { return asciiClass("alpha", true) }

// Lowercase matches a lowercase character ([a-z]).
func Lowercase() Fragment[AsciiClass] { return asciiClass("lower", false) }

// NonLowercase matches anything but a lowercase character ([a-z]).
func NonLowercase() Fragment[AsciiClass] { return asciiClass("lower", true) }

// Uppercase matches an uppercase character ([A-Z]).
func Uppercase() Fragment[AsciiClass] { return asciiClass("upper", false) }

// NonUppercase matches anything but an uppercase character ([A-Z]).
func NonUppercase() Fragment[AsciiClass] { return asciiClass("upper", true) }

// HexDigit matches a hexadecimal digit ([0-9A-Fa-f]).
func HexDigit() Fragment[AsciiClass] { return asciiClass("xdigit", false) }

// NonHexDigit matches anything but a hexadecimal digit ([0-9A-Fa-f]).
func NonHexDigit() Fragment[AsciiClass] { return asciiClass("xdigit", true) }

// ASCII matches an ASCII character ([\x00-\x7F]).
func ASCII() Fragment[AsciiClass] { return asciiClass("ascii", false) }

// NonASCII matches anything but an ASCII character ([\x00-\x7F]).
func NonASCII() Fragment[AsciiClass] { return asciiClass("ascii", true) }

// Blank matches a blank character ([\t ]).
func Blank() Fragment[AsciiClass] { return asciiClass("blank", false) }

// NonBlank matches anything but a blank character ([\t ]).
func NonBlank() Fragment[AsciiClass] { return asciiClass("blank", true) }

// Control matches a control character ([\x00-\x1F\x7F]).
func Control() Fragment[AsciiClass] { return asciiClass("cntrl", false) }

// NonControl matches anything but a control character ([\x00-\x1F\x7F]).
func NonControl() Fragment[AsciiClass] { return asciiClass("cntrl", true) }

// Graphical matches a graphical character ([!-~]).
func Graphical() Fragment[AsciiClass] { return asciiClass("graph", false) }

// NonGraphical matches anything but a graphical character ([!-~]).
func NonGraphical() Fragment[AsciiClass] { return asciiClass("graph", true) }

// Printable matches a printable character ([ -~]).
func Printable() Fragment[AsciiClass] { return asciiClass("print", false) }

// NonPrintable matches anything but a printable character ([ -~]).
func NonPrintable() Fragment[AsciiClass] { return asciiClass("print", true) }

// Punctuation matches a punctuation character ([!-/:-@[-`{-~]).
func Punctuation() Fragment[AsciiClass] { return asciiClass("punct", false) }

// NonPunctuation matches anything but a punctuation character ([!-/:-@[-`{-~]).
func NonPunctuation() Fragment[AsciiClass] { return asciiClass("punct", true) }

// ASCIISpace matches a whitespace character ([\t\n\v\f\r ]).
func ASCIISpace() Fragment[AsciiClass] { return asciiClass("space", false) }

// NonASCIISpace matches anything but a whitespace character ([\t\n\v\f\r ]).
func NonASCIISpace() Fragment[AsciiClass] { return asciiClass("space", true) }

// ASCIIDigit matches a digit ([0-9]).
func ASCIIDigit() Fragment[AsciiClass] { return asciiClass("digit", false) }

// NonASCIIDigit matches anything but a digit ([0-9]).
func NonASCIIDigit() Fragment[AsciiClass] { return asciiClass("digit", true) }

// ASCIIWord matches a word character ([0-9A-Za-z_]).
func ASCIIWord() Fragment[AsciiClass] { return asciiClass("word", false) }

// NonASCIIWord matches anything but a word character ([0-9A-Za-z_]).
func NonASCIIWord() Fragment[AsciiClass] { return asciiClass("word", true) }
