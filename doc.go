// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

/*
Package humanregex builds regular expressions out of small named fragments.

Every Fragment carries a category type parameter (Literal, StandardClass,
CustomClass, AsciiClass, Chain, Quantifier). Operations are declared only for
the categories where they make sense, so the Go compiler rejects meaningless
combinations such as negating a Chain or making a Chain lazy.

Basic flow:
  - build leaves with constructors (`Text`, `Digit`, `WithinRange`, `Alphabetic`)
  - combine them (`Concat`, `Alternate`, `Exactly`, `Capture`, `CaseInsensitive`)
  - refine classes (`Negate`, `Intersect`, `Subtract`, `SymmetricDifference`)
  - compile the result (`Compile` / `CompileWith`) and use the `Matcher`

Category mapping:
  - class algebra takes two class fragments and yields CustomClass
  - Negate keeps the category and is defined for class fragments only
  - repetitions yield Quantifier; Lazy accepts only Quantifier and yields Chain
  - everything else yields Chain

Construction errors (ErrInvalidRange, ErrEmptyAlternation,
ErrInvalidRepetitionRange, ErrInvalidGroupName) are returned synchronously;
use Must for fixed expressions. ErrCompile is reported only at compilation.

Engines:
  - `RE2` (default) uses Go's regexp package
  - `Backtracking` uses regexp2 for Perl-style features and extended mode
  - `Cache` memoizes compiled matchers for concurrent callers

Fragments are immutable values; concurrent construction needs no locking.
*/
package humanregex
