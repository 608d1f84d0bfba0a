package rdf

// GeneralizedTriple is a triple whose positions may hold any term. It only
// exists as an intermediate form while converting statements from a native
// store; graphs never hold one.
type GeneralizedTriple struct {
	S, P, O Term
}

// GeneralizedQuad is the quad counterpart of GeneralizedTriple. A nil G
// denotes the default graph.
type GeneralizedQuad struct {
	G, S, P, O Term
}

// Generalize returns t as a GeneralizedTriple.
func (t Triple) Generalize() GeneralizedTriple {
	return GeneralizedTriple{S: t.S, P: t.P, O: t.O}
}

// Generalize returns q as a GeneralizedQuad.
func (q Quad) Generalize() GeneralizedQuad {
	return GeneralizedQuad{G: q.G, S: q.S, P: q.P, O: q.O}
}

// ToTriple converts g to a strict Triple. It fails with a *ConversionError
// when a position holds a term of a disallowed kind.
func (g GeneralizedTriple) ToTriple() (Triple, error) {
	s, err := asSubject(g.S, PositionSubject)
	if err != nil {
		return Triple{}, err
	}
	p, err := asPredicate(g.P)
	if err != nil {
		return Triple{}, err
	}
	if isZeroTerm(g.O) {
		return Triple{}, &ConversionError{Position: PositionObject, Term: g.O}
	}
	return Triple{S: s, P: p, O: g.O}, nil
}

// ToQuad converts g to a strict Quad. A literal graph name, subject or
// predicate fails with a *ConversionError.
func (g GeneralizedQuad) ToQuad() (Quad, error) {
	t, err := GeneralizedTriple{S: g.S, P: g.P, O: g.O}.ToTriple()
	if err != nil {
		return Quad{}, err
	}
	q := t.InGraph(nil)
	if g.G != nil {
		if q.G, err = asSubject(g.G, PositionGraphName); err != nil {
			return Quad{}, err
		}
	}
	return q, nil
}

func asSubject(t Term, pos Position) (Subject, error) {
	if isZeroTerm(t) {
		return nil, &ConversionError{Position: pos, Term: nil}
	}
	s, ok := t.(Subject)
	if !ok {
		return nil, &ConversionError{Position: pos, Term: t}
	}
	return s, nil
}

func asPredicate(t Term) (IRI, error) {
	if isZeroTerm(t) {
		return IRI{}, &ConversionError{Position: PositionPredicate, Term: nil}
	}
	iri, ok := t.(IRI)
	if !ok {
		return IRI{}, &ConversionError{Position: PositionPredicate, Term: t}
	}
	return iri, nil
}
