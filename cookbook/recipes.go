// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cookbook

import (
	hr "github.com/woozymasta/humanregex"
)

// Date matches an ISO 8601 calendar date such as "2014-01-01".
//
// Groups "year", "month" and "day" capture the parts.
func Date() (hr.Fragment[hr.Chain], error) {
	year, err := hr.NamedCapture(hr.Must(hr.Exactly(4, hr.Digit())), "year")
	if err != nil {
		return hr.Fragment[hr.Chain]{}, err
	}

	month, err := hr.NamedCapture(hr.Must(hr.Exactly(2, hr.Digit())), "month")
	if err != nil {
		return hr.Fragment[hr.Chain]{}, err
	}

	day, err := hr.NamedCapture(hr.Must(hr.Exactly(2, hr.Digit())), "day")
	if err != nil {
		return hr.Fragment[hr.Chain]{}, err
	}

	return hr.Concat(
		hr.WordBoundary(),
		year, hr.Text("-"), month, hr.Text("-"), day,
		hr.WordBoundary(),
	), nil
}

// HTMLTag matches one tag such as "<div>" or "</h1>".
//
// With greedy set the repetition runs to the last ">" on the line instead.
func HTMLTag(greedy bool) hr.Fragment[hr.Chain] {
	body := hr.OneOrMore(hr.Any())
	if greedy {
		return hr.Concat(hr.Text("<"), body, hr.Text(">"))
	}

	return hr.Concat(hr.Text("<"), hr.Lazy(body), hr.Text(">"))
}

// URLParam matches one query parameter with its leading "?", "&" or ";".
//
// Group 1 captures "key=value".
func URLParam() hr.Fragment[hr.Chain] {
	return hr.Concat(
		hr.WithinSet("?&;"),
		hr.Capture(hr.Concat(
			hr.OneOrMore(hr.NegateEach(hr.Text("="))),
			hr.Text("="),
			hr.ZeroOrMore(hr.NotWithinSet("&;")),
		)),
	)
}

// MLACitation matches one journal citation in MLA format.
//
// Groups: "authors", "title", "journal", "volume", "year", "lower_page" and
// "upper_page"; the last four are optional.
func MLACitation() (hr.Fragment[hr.Chain], error) {
	name := hr.OneOrMore(hr.Word())
	firstAuthor := hr.Lazy(hr.Must(hr.Exactly(1, hr.Concat(name, hr.Text(", "), name))))
	middleAuthors := hr.ZeroOrMore(hr.Concat(hr.Text(", "), name, hr.Text(" "), name))
	lastAuthor := hr.Lazy(hr.ZeroOrMore(hr.Concat(hr.Text(", and "), name, hr.Text(" "), name)))

	groups := []struct {
		name   string
		target hr.Pattern
	}{
		{"authors", hr.Concat(firstAuthor, middleAuthors, lastAuthor, hr.Text(". "))},
		{"title", hr.OneOrMore(hr.NotWithinSet(`"`))},
		{"journal", hr.OneOrMore(hr.Concat(name, hr.Text(" ")))},
		{"volume", hr.OneOrMore(hr.Digit())},
		{"year", hr.Must(hr.Exactly(4, hr.Digit()))},
		{"lower_page", hr.OneOrMore(hr.Digit())},
		{"upper_page", hr.OneOrMore(hr.Digit())},
	}

	captured := make(map[string]hr.Fragment[hr.Chain], len(groups))
	for _, g := range groups {
		f, err := hr.NamedCapture(g.target, g.name)
		if err != nil {
			return hr.Fragment[hr.Chain]{}, err
		}
		captured[g.name] = f
	}

	title := hr.Concat(hr.Text(`"`), captured["title"], hr.Text(`." `))
	volume := hr.ZeroOrOne(captured["volume"])
	year := hr.ZeroOrOne(hr.Concat(hr.Text(" ("), captured["year"], hr.Text(")")))
	pages := hr.ZeroOrOne(hr.Concat(
		hr.Text(": "), captured["lower_page"], hr.Text("-"), captured["upper_page"],
	))

	return hr.Lazy(hr.OneOrMore(hr.Concat(
		captured["authors"], title, captured["journal"], volume, year, pages,
		hr.Text("."), hr.ZeroOrMore(hr.Whitespace()),
	))), nil
}

// StopWords matches one whole stop word followed by whitespace.
//
// Nil words select DefaultStopWords.
func StopWords(words []string) (hr.Fragment[hr.Chain], error) {
	if words == nil {
		words = DefaultStopWords
	}

	alt, err := hr.AnyOf(words...)
	if err != nil {
		return hr.Fragment[hr.Chain]{}, err
	}

	return hr.Concat(hr.WordBoundary(), alt, hr.WordBoundary(), hr.OneOrMore(hr.Whitespace())), nil
}

// DefaultStopWords is a short list of common English stop words.
var DefaultStopWords = []string{
	"a", "about", "an", "and", "are", "as", "at", "be", "but", "by",
	"for", "from", "has", "have", "in", "into", "is", "it", "its", "of",
	"on", "or", "that", "the", "their", "this", "to", "was", "were", "with",
}
