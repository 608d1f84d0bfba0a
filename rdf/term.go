package rdf

import "strings"

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota + 1
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "IRI"
	case TermBlankNode:
		return "blank node"
	case TermLiteral:
		return "literal"
	default:
		return "unknown term"
	}
}

// Term is a value that can appear in RDF statements.
//
// The set of implementations is closed: IRI, BlankNode and Literal. Terms are
// immutable comparable values, so == is RDF term equality and any Term can be
// used as a map key.
type Term interface {
	Kind() TermKind
	// String returns the canonical N-Triples form of the term.
	String() string
	term()
}

// Subject is a term allowed in subject or graph name position: an IRI or a
// blank node.
type Subject interface {
	Term
	subject()
}

// IRI represents an RDF IRI in unescaped form.
type IRI struct {
	value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// Value returns the IRI string.
func (i IRI) Value() string { return i.value }

// IsZero reports whether the IRI is the zero value. The zero IRI is never
// produced by a factory and acts as the wildcard in patterns.
func (i IRI) IsZero() bool { return i.value == "" }

// String returns the IRI enclosed in angle brackets.
func (i IRI) String() string { return renderIRI(i.value) }

func (IRI) term()    {}
func (IRI) subject() {}

// BlankNode represents an RDF blank node. Two blank nodes are equal iff
// their unique references are equal.
type BlankNode struct {
	ref   string
	label string
}

// newBlankNode derives the syntactic label from ref, so equal references
// always carry equal labels.
func newBlankNode(ref string) BlankNode {
	return BlankNode{ref: ref, label: SafeLabel(ref)}
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// UniqueReference returns the globally unique identity of the blank node.
func (b BlankNode) UniqueReference() string { return b.ref }

// Label returns the N-Triples label of the blank node without the "_:" prefix.
func (b BlankNode) Label() string { return b.label }

// IsZero reports whether b is the zero value.
func (b BlankNode) IsZero() bool { return b.ref == "" }

// String returns the blank node label prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.label }

func (BlankNode) term()    {}
func (BlankNode) subject() {}

// Literal represents an RDF literal.
type Literal struct {
	lexical  string
	datatype IRI
	lang     string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// Lexical returns the lexical form.
func (l Literal) Lexical() string { return l.lexical }

// Datatype returns the datatype IRI. Language-tagged literals report
// rdf:langString and untagged plain literals report xsd:string.
func (l Literal) Datatype() IRI { return l.datatype }

// Language returns the lower-cased language tag and whether one is present.
func (l Literal) Language() (string, bool) { return l.lang, l.lang != "" }

// String returns the canonical N-Triples form of the literal. The datatype
// is omitted for xsd:string and rdf:langString.
func (l Literal) String() string {
	var b strings.Builder
	b.WriteByte('"')
	escapeLiteral(&b, l.lexical)
	b.WriteByte('"')
	switch {
	case l.lang != "":
		b.WriteByte('@')
		b.WriteString(l.lang)
	case l.datatype.value != XSDString:
		b.WriteString("^^")
		b.WriteString(l.datatype.String())
	}
	return b.String()
}

func (Literal) term() {}

// TermKey returns a string that identifies t uniquely among all terms and
// orders terms by kind first. It returns "" for a nil term.
func TermKey(t Term) string {
	switch v := t.(type) {
	case IRI:
		return "I" + v.value
	case BlankNode:
		return "B" + v.ref
	case Literal:
		return "L" + v.lexical + "\x00" + v.datatype.value + "\x00" + v.lang
	default:
		return ""
	}
}
