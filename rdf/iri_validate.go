package rdf

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateIRI validates an IRI string according to RFC 3987.
// Returns an error if the IRI is invalid, nil otherwise.
//
// This function performs basic IRI validation:
// - Checks for valid scheme (required for absolute IRIs)
// - Validates IRI structure using Go's url.Parse
// - Ensures the IRI is well-formed
//
// Factories apply it when strict IRI validation is enabled.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("empty IRI")
	}

	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}

	if parsed.Scheme == "" {
		// A network-path reference needs a scheme.
		if strings.HasPrefix(iri, "//") {
			return fmt.Errorf("relative IRI without scheme: %s", iri)
		}
		if strings.Contains(iri, ":") && !strings.HasPrefix(iri, "/") && !strings.HasPrefix(iri, "./") && !strings.HasPrefix(iri, "../") {
			scheme, _, _ := strings.Cut(iri, ":")
			if !isScheme(scheme) {
				return fmt.Errorf("IRI appears to be missing a scheme: %s", iri)
			}
		}
	} else if !isScheme(parsed.Scheme) {
		return fmt.Errorf("scheme must start with a letter: %s", iri)
	}

	return validateIRIChars(iri)
}

// validateIRIChars rejects the characters N-Triples forbids inside IRIREF.
// It is the only check applied in lenient mode.
func validateIRIChars(iri string) error {
	if iri == "" {
		return fmt.Errorf("empty IRI")
	}
	for i, r := range iri {
		if r <= 0x20 {
			return fmt.Errorf("invalid control character at position %d in IRI: %q", i, iri)
		}
		if strings.ContainsRune(`<>"{}|^`+"`"+`\`, r) {
			return fmt.Errorf("invalid character '%c' at position %d in IRI (should be percent-encoded): %s", r, i, iri)
		}
	}
	return nil
}

// isScheme reports whether s matches ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && ((r >= '0' && r <= '9') || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
