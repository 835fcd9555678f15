// Package humanize turns model and field identifiers into default labels.
//
// The pipeline runs a fixed sequence of regex rewrites: "helloWorld_I_am   bob"
// becomes "Hello World I am bob". Model labels are additionally titleized
// and, for plural labels, pluralized.
package humanize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
)

var (
	capitalLetter      = regexp.MustCompile(`([A-Z])`)
	underscore         = regexp.MustCompile(`_`)
	repeatedWhitespace = regexp.MustCompile(`\s\s+`)
)

// CapitalizeFirstChar upper-cases the first character only.
func CapitalizeFirstChar(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// SpaceOnCapitalLetter inserts a space before every upper-case ASCII letter.
func SpaceOnCapitalLetter(s string) string {
	return capitalLetter.ReplaceAllString(s, " ${1}")
}

// UnderscoreToSpace replaces every underscore with a space.
func UnderscoreToSpace(s string) string {
	return underscore.ReplaceAllString(s, " ")
}

// TrimWhitespaceBetweenWords collapses runs of whitespace into one space.
func TrimWhitespaceBetweenWords(s string) string {
	return repeatedWhitespace.ReplaceAllString(s, " ")
}

// Humanize applies the full label pipeline.
func Humanize(s string) string {
	s = SpaceOnCapitalLetter(s)
	s = CapitalizeFirstChar(s)
	s = UnderscoreToSpace(s)
	s = TrimWhitespaceBetweenWords(s)
	return strings.TrimSpace(s)
}

// Titleize upper-cases the first character of every space-separated word.
func Titleize(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = CapitalizeFirstChar(w)
	}
	return strings.Join(words, " ")
}

// Pluralize returns the plural form of the last word of s.
func Pluralize(s string) string {
	return inflect.Pluralize(s)
}

// Field is the default label for a field name.
func Field(name string) string { return Humanize(name) }

// Model is the default singular label for a model name.
func Model(name string) string { return Titleize(Humanize(name)) }

// ModelPlural is the default plural label for a model name.
func ModelPlural(name string) string { return Pluralize(Titleize(Humanize(name))) }
