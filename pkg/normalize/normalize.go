// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

// Package normalize canonicalizes user-supplied identifiers before they are
// compared or stored.
//
// # Usage
//
// Usernames and emails are unique keys. Two strings that render identically
// but differ in Unicode composition would otherwise register as distinct
// accounts, so both are folded to NFC here.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Identifier prepares a username or email for lookup and storage.
//
// # Transformation Pipeline
//
// 1. Composes to NFC (e + combining acute → é).
// 2. Drops control characters.
// 3. Trims surrounding whitespace.
//
// Case is preserved: usernames are case-sensitive.
func Identifier(s string) string {
	t := transform.Chain(norm.NFC, runes.Remove(runes.Predicate(unicode.IsControl)))
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	return strings.TrimSpace(result)
}
