// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/humanregex

// Package cookbook collects ready-made expressions built with humanregex.
//
// Each recipe is also registered by name (see All and Lookup) so tools can
// select one at run time.
package cookbook
