package rdf

import (
	"errors"
	"fmt"
)

// Position names a slot of a statement.
type Position uint8

// Statement positions.
const (
	PositionSubject Position = iota + 1
	PositionPredicate
	PositionObject
	PositionGraphName
)

func (p Position) String() string {
	switch p {
	case PositionSubject:
		return "subject"
	case PositionPredicate:
		return "predicate"
	case PositionObject:
		return "object"
	case PositionGraphName:
		return "graph name"
	default:
		return fmt.Sprint("illegal position:", uint8(p))
	}
}

// Triple is an RDF triple. Triples are comparable: == is structural
// equality of all three components.
type Triple struct {
	// S is the subject.
	S Subject
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}

// NewTriple returns a triple after checking that every position is present.
func NewTriple(s Subject, p IRI, o Term) (Triple, error) {
	if err := checkPresent(s, p, o); err != nil {
		return Triple{}, err
	}
	return Triple{S: s, P: p, O: o}, nil
}

// IsZero reports whether the triple has no subject/predicate/object.
func (t Triple) IsZero() bool {
	return t.S == nil && t.P.IsZero() && t.O == nil
}

// Validate reports ErrInvalidArgument when a position is missing.
func (t Triple) Validate() error {
	return checkPresent(t.S, t.P, t.O)
}

// InGraph places the triple in the graph named g, or in the default graph
// when g is nil.
func (t Triple) InGraph(g Subject) Quad {
	return Quad{G: g, S: t.S, P: t.P, O: t.O}
}

// Quad is an RDF quad (triple + optional graph name). Quads are comparable:
// == is structural equality of all four components. A Quad is never equal
// to a Triple, even in the default graph; compare AsTriple results instead.
type Quad struct {
	// G is the graph name, or nil for the default graph.
	G Subject
	// S is the subject.
	S Subject
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}

// NewQuad returns a quad after checking that subject, predicate and object
// are present. A nil g places the quad in the default graph.
func NewQuad(g, s Subject, p IRI, o Term) (Quad, error) {
	q := Quad{G: g, S: s, P: p, O: o}
	if err := q.Validate(); err != nil {
		return Quad{}, err
	}
	return q, nil
}

// AsTriple projects the quad onto its subject, predicate and object,
// dropping the graph name.
func (q Quad) AsTriple() Triple {
	return Triple{S: q.S, P: q.P, O: q.O}
}

// InDefaultGraph reports whether the quad is in the default graph.
func (q Quad) InDefaultGraph() bool {
	return q.G == nil
}

// Validate reports ErrInvalidArgument when subject, predicate or object is
// missing or the graph name is a zero term.
func (q Quad) Validate() error {
	if q.G != nil && isZeroTerm(q.G) {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, PositionGraphName, errMissingPosition)
	}
	return checkPresent(q.S, q.P, q.O)
}

// IsZero reports whether the quad has no subject/predicate/object.
func (q Quad) IsZero() bool {
	return q.G == nil && q.AsTriple().IsZero()
}

var errMissingPosition = errors.New("missing statement position")

func checkPresent(s Subject, p IRI, o Term) error {
	var missing Position
	switch {
	case isZeroTerm(s):
		missing = PositionSubject
	case p.IsZero():
		missing = PositionPredicate
	case isZeroTerm(o):
		missing = PositionObject
	default:
		return nil
	}
	return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, missing, errMissingPosition)
}

// isZeroTerm reports whether t is nil or a zero term value, neither of which
// a factory ever produces.
func isZeroTerm(t Term) bool {
	switch v := t.(type) {
	case nil:
		return true
	case IRI:
		return v.IsZero()
	case BlankNode:
		return v.IsZero()
	case Literal:
		return v.datatype.IsZero()
	}
	return false
}
