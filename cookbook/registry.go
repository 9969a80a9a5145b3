// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cookbook

import (
	"slices"
	"strings"

	hr "github.com/woozymasta/humanregex"
)

// Recipe is one named expression builder.
type Recipe struct {
	// Name is the registry key.
	Name string `json:"name" yaml:"name"`
	// Description is a one-line human summary.
	Description string `json:"description" yaml:"description"`
	// Build assembles the expression.
	Build func() (hr.Pattern, error) `json:"-" yaml:"-"`
}

var recipes = []Recipe{
	{
		Name:        "date",
		Description: "ISO 8601 date with year, month and day groups",
		Build:       func() (hr.Pattern, error) { return Date() },
	},
	{
		Name:        "html-tag",
		Description: "one HTML tag, shortest match",
		Build:       func() (hr.Pattern, error) { return HTMLTag(false), nil },
	},
	{
		Name:        "html-tag-greedy",
		Description: "HTML tags up to the last closing bracket",
		Build:       func() (hr.Pattern, error) { return HTMLTag(true), nil },
	},
	{
		Name:        "mla-citation",
		Description: "journal citation in MLA format",
		Build:       func() (hr.Pattern, error) { return MLACitation() },
	},
	{
		Name:        "stop-words",
		Description: "common English stop words followed by whitespace",
		Build:       func() (hr.Pattern, error) { return StopWords(nil) },
	},
	{
		Name:        "url-param",
		Description: "URL query parameter, group 1 is key=value",
		Build:       func() (hr.Pattern, error) { return URLParam(), nil },
	},
}

// All returns every registered recipe sorted by name.
func All() []Recipe {
	out := slices.Clone(recipes)
	slices.SortFunc(out, func(a, b Recipe) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out
}

// Lookup returns recipe registered under name.
func Lookup(name string) (Recipe, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, r := range recipes {
		if r.Name == name {
			return r, true
		}
	}

	return Recipe{}, false
}
