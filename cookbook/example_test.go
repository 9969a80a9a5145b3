// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

package cookbook_test

import (
	"fmt"

	hr "github.com/woozymasta/humanregex"
	"github.com/woozymasta/humanregex/cookbook"
)

func ExampleDate() {
	date, err := cookbook.Date()
	if err != nil {
		panic(err)
	}

	m := hr.MustCompile(date)
	fmt.Println(m.ReplaceAllString("due 2014-01-01, paid 2014-02-15", "${day}.${month}.${year}"))
	fmt.Println(m.MatchString("14-01-01"))
	// Output:
	// due 01.01.2014, paid 15.02.2014
	// false
}

func ExampleHTMLTag() {
	src := "<b>bold</b>"

	lazy := hr.MustCompile(cookbook.HTMLTag(false))
	fmt.Println(lazy.FindAllString(src, -1))

	greedy := hr.MustCompile(cookbook.HTMLTag(true))
	fmt.Println(greedy.FindAllString(src, -1))
	// Output:
	// [<b> </b>]
	// [<b>bold</b>]
}

func ExampleURLParam() {
	m := hr.MustCompile(cookbook.URLParam())
	for _, match := range m.FindAllStringSubmatch("https://example.com/?a=1&b=2;c=3", -1) {
		fmt.Println(match[1])
	}
	// Output:
	// a=1
	// b=2
	// c=3
}

func ExampleStopWords() {
	stop, err := cookbook.StopWords(nil)
	if err != nil {
		panic(err)
	}

	m := hr.MustCompile(stop)
	fmt.Println(m.ReplaceAllString("the cat sat on a mat", ""))
	// Output:
	// cat sat mat
}

func ExampleFileExtensions() {
	f, err := cookbook.FileExtensions([]string{"*.go", ".MD"})
	if err != nil {
		panic(err)
	}

	m := hr.MustCompile(f)
	fmt.Println(f)
	fmt.Println(m.MatchString("docs/README.md"), m.MatchString("main.go.bak"))
	// Output:
	// (?i:\.(?:go|md)\z)
	// true false
}
