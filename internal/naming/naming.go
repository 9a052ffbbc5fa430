// Package naming converts free-form project names into the canonical
// forms used by the template: snake_case identifiers for package
// directories and kebab-case slugs for distribution names.
//
// All functions are pure and total. Empty input yields empty output;
// callers that require a non-empty name must check for it themselves.
package naming

import (
	"regexp"
	"strings"
)

var (
	underscoreRuns = regexp.MustCompile(`[-\s]+`)
	hyphenRuns     = regexp.MustCompile(`[_\s]+`)
	nonIdentifier  = regexp.MustCompile(`[^\w]`)
	nonSlug        = regexp.MustCompile(`[^\w-]`)
)

// Identifier converts a name to snake_case for package names.
// Runs of hyphens and whitespace collapse to a single underscore,
// anything that is not a word character is stripped, and the result
// is lowercased. Applying Identifier to its own output is a no-op.
func Identifier(name string) string {
	s := underscoreRuns.ReplaceAllString(name, "_")
	s = nonIdentifier.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// Slug converts a name to kebab-case for distribution names.
// Runs of underscores and whitespace collapse to a single hyphen,
// anything that is not a word character or hyphen is stripped, and
// the result is lowercased. Idempotent like Identifier.
func Slug(name string) string {
	s := hyphenRuns.ReplaceAllString(name, "-")
	s = nonSlug.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// Title turns a package identifier into a human-readable heading:
// underscores become spaces and each word is capitalized.
func Title(identifier string) string {
	words := strings.Split(identifier, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
