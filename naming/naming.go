/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming converts field keys and resource type names between the
// casing conventions used by export drivers.
package naming

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToHumanWords converts a field key to capitalized, space-separated words.
// Hyphens are treated as underscores and camelCase boundaries split words,
// so "first_name", "first-name" and "firstName" all become "First Name".
func ToHumanWords(key string) string {
	snake := strcase.ToSnake(strings.ReplaceAll(key, "-", "_"))

	// Casers carry state and must not be shared between goroutines.
	caser := cases.Title(language.English)

	var words []string
	for _, word := range strings.Split(snake, "_") {
		if word == "" {
			continue
		}
		words = append(words, caser.String(word))
	}
	return strings.Join(words, " ")
}

// ToPascalCase converts delimiter-separated or camelCase text to PascalCase.
// Any rune that is not a letter or digit separates words and is dropped.
// Each word has its first letter title-cased and the rest kept as-is, so
// "userID" becomes "UserID" and "straße" becomes "Straße".
func ToPascalCase(s string) string {
	caser := cases.Title(language.Und, cases.NoLower)

	var sb strings.Builder
	for _, word := range strings.FieldsFunc(s, isSeparator) {
		sb.WriteString(caser.String(word))
	}
	return sb.String()
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Singularize returns the singular form of an English noun, preserving case.
// Words the inflector does not recognize are returned unchanged.
func Singularize(word string) string {
	if word == "" {
		return word
	}
	return inflection.Singular(word)
}

// Pluralize returns the plural form of an English noun, preserving case.
// Words the inflector does not recognize are returned unchanged.
func Pluralize(word string) string {
	if word == "" {
		return word
	}
	return inflection.Plural(word)
}

// ResourceBaseName strips a trailing "Resource" from a resource type name,
// so "UserResource" becomes "User". A name that is exactly "Resource" is
// returned unchanged.
func ResourceBaseName(typeName string) string {
	if base, ok := strings.CutSuffix(typeName, "Resource"); ok && base != "" {
		return base
	}
	return typeName
}
