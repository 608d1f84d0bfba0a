package rdf

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
)

// Factory is the extension point a backend implements: it builds terms,
// statements and empty containers that obey the model of this package.
//
// Term constructors fail with an error matching ErrInvalidArgument on bad
// input. A partial backend may fail any method with an error matching
// ErrNotSupported.
type Factory interface {
	IRI(value string) (IRI, error)
	// BlankNode returns a new blank node distinct from every other.
	BlankNode() (BlankNode, error)
	// NamedBlankNode returns the blank node called name in this factory's
	// scope. The same name yields equal nodes from the same factory and
	// distinct nodes from different factories.
	NamedBlankNode(name string) (BlankNode, error)
	// Literal returns an xsd:string literal.
	Literal(lexical string) (Literal, error)
	TypedLiteral(lexical string, datatype IRI) (Literal, error)
	LangLiteral(lexical, lang string) (Literal, error)

	Triple(s Subject, p IRI, o Term) (Triple, error)
	// Quad builds a quad; a nil g places it in the default graph.
	Quad(g, s Subject, p IRI, o Term) (Quad, error)

	NewGraph() (Graph, error)
	NewDataset() (Dataset, error)
}

var errEmptyBlankNodeName = errors.New("empty blank node name")

// TermFactory implements the term and statement half of Factory. Backends
// embed it and add NewGraph and NewDataset.
type TermFactory struct {
	opts Options
}

// NewTermFactory returns a term factory seeded with the salt in opts.
func NewTermFactory(opts ...Option) *TermFactory {
	return &TermFactory{opts: NewOptions(opts...)}
}

// Options returns the options the factory was built with.
func (f *TermFactory) Options() Options { return f.opts }

// Salt returns the blank node salt of the factory.
func (f *TermFactory) Salt() Salt { return f.opts.Salt }

// Logger returns the factory logger.
func (f *TermFactory) Logger() *log.Logger { return f.opts.Logger }

// IRI returns the IRI for value.
func (f *TermFactory) IRI(value string) (IRI, error) {
	validate := validateIRIChars
	if f.opts.StrictValidation {
		validate = ValidateIRI
	}
	if err := validate(value); err != nil {
		return IRI{}, invalidTerm(TermIRI, value, err)
	}
	return IRI{value: value}, nil
}

// BlankNode returns a fresh blank node.
func (f *TermFactory) BlankNode() (BlankNode, error) {
	return f.opts.Salt.FreshBlankNode(), nil
}

// NamedBlankNode returns the blank node called name in the factory scope.
func (f *TermFactory) NamedBlankNode(name string) (BlankNode, error) {
	if name == "" {
		return BlankNode{}, invalidTerm(TermBlankNode, name, errEmptyBlankNodeName)
	}
	return f.opts.Salt.BlankNode(name), nil
}

// Literal returns an xsd:string literal.
func (f *TermFactory) Literal(lexical string) (Literal, error) {
	return Literal{lexical: lexical, datatype: xsdStringIRI}, nil
}

// TypedLiteral returns a literal of the given datatype. rdf:langString is
// rejected: use LangLiteral.
func (f *TermFactory) TypedLiteral(lexical string, datatype IRI) (Literal, error) {
	if datatype.IsZero() {
		return Literal{}, invalidTerm(TermLiteral, lexical, errors.New("missing datatype"))
	}
	if datatype == langStringIRI {
		return Literal{}, invalidTerm(TermLiteral, lexical, errors.New("rdf:langString requires a language tag"))
	}
	return Literal{lexical: lexical, datatype: datatype}, nil
}

// LangLiteral returns a language-tagged literal. The tag is stored
// lower-cased.
func (f *TermFactory) LangLiteral(lexical, lang string) (Literal, error) {
	validate := ValidateLanguageTag
	if f.opts.StrictValidation {
		validate = ValidateBCP47
	}
	if err := validate(lang); err != nil {
		return Literal{}, invalidTerm(TermLiteral, lexical, err)
	}
	return Literal{lexical: lexical, datatype: langStringIRI, lang: strings.ToLower(lang)}, nil
}

// Triple returns a triple.
func (f *TermFactory) Triple(s Subject, p IRI, o Term) (Triple, error) {
	return NewTriple(s, p, o)
}

// Quad returns a quad.
func (f *TermFactory) Quad(g, s Subject, p IRI, o Term) (Quad, error) {
	return NewQuad(g, s, p, o)
}
