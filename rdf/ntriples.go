package rdf

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// renderIRI encloses value in angle brackets, escaping the characters
// N-Triples forbids inside IRIREF as UCHAR.
func renderIRI(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('<')
	for _, r := range value {
		if r <= 0x20 || strings.ContainsRune(`<>"{}|^`+"`"+`\`, r) {
			fmt.Fprintf(&b, `\u%04X`, r)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('>')
	return b.String()
}

// escapeLiteral writes s with the N-Triples ECHAR escapes applied.
func escapeLiteral(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
}

// SafeLabel returns s when it is a valid N-Triples blank node label and a
// label hashed from s otherwise.
func SafeLabel(s string) string {
	if isBlankNodeLabel(s) {
		return s
	}
	return hashLabel(s)
}

// hashLabel derives a syntactically safe label from an arbitrary string.
func hashLabel(s string) string {
	sum := sha256.Sum256([]byte(s))
	return "h" + hex.EncodeToString(sum[:16])
}

// isBlankNodeLabel reports whether s matches the ASCII subset of the
// N-Triples BLANK_NODE_LABEL production.
func isBlankNodeLabel(s string) bool {
	if s == "" || s[len(s)-1] == '.' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		case i > 0 && (c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// String returns the triple as an N-Triples line without the trailing newline.
func (t Triple) String() string {
	return termString(t.S) + " " + t.P.String() + " " + termString(t.O) + " ."
}

// String returns the quad as an N-Quads line without the trailing newline.
func (q Quad) String() string {
	line := termString(q.S) + " " + q.P.String() + " " + termString(q.O)
	if q.G != nil {
		line += " " + q.G.String()
	}
	return line + " ."
}

func termString(t Term) string {
	if t == nil {
		return "?"
	}
	return t.String()
}
