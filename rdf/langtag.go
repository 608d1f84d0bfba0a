package rdf

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var errEmptyLangTag = errors.New("empty language tag")

// ValidateLanguageTag checks tag against the LANGTAG production of
// N-Triples: letters, then hyphen-separated alphanumeric subtags.
func ValidateLanguageTag(tag string) error {
	if tag == "" {
		return errEmptyLangTag
	}
	first, rest, hasSubtags := strings.Cut(tag, "-")
	if first == "" {
		return fmt.Errorf("language tag %q: missing primary subtag", tag)
	}
	for _, r := range first {
		if !isASCIILetter(r) {
			return fmt.Errorf("language tag %q: invalid primary subtag %q", tag, first)
		}
	}
	if !hasSubtags {
		return nil
	}
	for _, sub := range strings.Split(rest, "-") {
		if sub == "" {
			return fmt.Errorf("language tag %q: empty subtag", tag)
		}
		for _, r := range sub {
			if !isASCIILetter(r) && (r < '0' || r > '9') {
				return fmt.Errorf("language tag %q: invalid subtag %q", tag, sub)
			}
		}
	}
	return nil
}

// ValidateBCP47 checks tag is a well-formed BCP 47 tag with known subtags.
// Factories apply it when strict validation is enabled.
func ValidateBCP47(tag string) error {
	if err := ValidateLanguageTag(tag); err != nil {
		return err
	}
	if _, err := language.Parse(tag); err != nil {
		return fmt.Errorf("language tag %q: %w", tag, err)
	}
	return nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
