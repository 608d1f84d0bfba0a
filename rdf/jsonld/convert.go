package jsonld

import (
	"fmt"
	"strconv"
	"strings"

	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdf-commons/rdf"
)

// defaultGraph is the key json-gold uses for the default graph.
const defaultGraph = "@default"

// converter translates between json-gold nodes and rdf terms. Blank nodes
// keep their identity through the label mapper of the owning factory.
// Foreign blank nodes are stored under hashed labels and remembered so they
// come back out unchanged.
type converter struct {
	terms   *rdf.TermFactory
	mapper  rdf.LabelMapper
	foreign map[string]rdf.BlankNode
}

// remember records the foreign blank nodes of q.
func (c converter) remember(q rdf.Quad) {
	for _, t := range []rdf.Term{q.G, q.S, q.O} {
		b, ok := t.(rdf.BlankNode)
		if !ok || c.mapper.Owns(b) {
			continue
		}
		c.foreign[c.mapper.Label(b)] = b
	}
}

func (c converter) blankNode(attribute string) rdf.BlankNode {
	label := strings.TrimPrefix(attribute, "_:")
	if b, ok := c.foreign[label]; ok {
		return b
	}
	return c.mapper.BlankNode(label)
}

func (c converter) toNative(t rdf.Term) ld.Node {
	switch v := t.(type) {
	case rdf.IRI:
		return ld.IRI{Value: v.Value()}
	case rdf.BlankNode:
		return ld.BlankNode{Attribute: "_:" + c.mapper.Label(v)}
	case rdf.Literal:
		lang, _ := v.Language()
		return ld.Literal{Value: v.Lexical(), Datatype: v.Datatype().Value(), Language: lang}
	default:
		return nil
	}
}

func (c converter) fromNative(n ld.Node) (rdf.Term, error) {
	switch v := n.(type) {
	case nil:
		return nil, nil
	case ld.IRI:
		return c.terms.IRI(v.Value)
	case *ld.IRI:
		return c.terms.IRI(v.Value)
	case ld.BlankNode:
		return c.blankNode(v.Attribute), nil
	case *ld.BlankNode:
		return c.blankNode(v.Attribute), nil
	case ld.Literal:
		return c.literal(v)
	case *ld.Literal:
		return c.literal(*v)
	default:
		return nil, fmt.Errorf("jsonld: unexpected node type %T", n)
	}
}

func (c converter) literal(l ld.Literal) (rdf.Term, error) {
	if l.Language != "" {
		return c.terms.LangLiteral(l.Value, l.Language)
	}
	if l.Datatype == "" || l.Datatype == rdf.XSDString {
		return c.terms.Literal(l.Value)
	}
	dt, err := c.terms.IRI(l.Datatype)
	if err != nil {
		return nil, err
	}
	return c.terms.TypedLiteral(l.Value, dt)
}

// fromNativeQuad converts a native quad stored under graph key name. The
// generalized form is returned alongside any conversion error so callers
// can report the offending statement.
func (c converter) fromNativeQuad(q *ld.Quad, name string) (rdf.Quad, rdf.GeneralizedQuad, error) {
	var g rdf.GeneralizedQuad
	var err error
	if g.S, err = c.fromNative(q.Subject); err != nil {
		return rdf.Quad{}, g, err
	}
	if g.P, err = c.fromNative(q.Predicate); err != nil {
		return rdf.Quad{}, g, err
	}
	if g.O, err = c.fromNative(q.Object); err != nil {
		return rdf.Quad{}, g, err
	}
	if g.G, err = c.graphName(name); err != nil {
		return rdf.Quad{}, g, err
	}
	strict, err := g.ToQuad()
	return strict, g, err
}

// graphName converts a json-gold graph key to a graph name term.
func (c converter) graphName(name string) (rdf.Term, error) {
	switch {
	case name == defaultGraph || name == "":
		return nil, nil
	case strings.HasPrefix(name, "_:"):
		return c.blankNode(name), nil
	default:
		return c.terms.IRI(name)
	}
}

// graphKey returns the json-gold graph key for a graph name.
func (c converter) graphKey(g rdf.Subject) string {
	switch v := g.(type) {
	case nil:
		return defaultGraph
	case rdf.BlankNode:
		return "_:" + c.mapper.Label(v)
	case rdf.IRI:
		return v.Value()
	default:
		return defaultGraph
	}
}

func (c converter) toNativeQuad(q rdf.Quad) *ld.Quad {
	nq := &ld.Quad{
		Subject:   c.toNative(q.S),
		Predicate: c.toNative(q.P),
		Object:    c.toNative(q.O),
	}
	if q.G != nil {
		nq.Graph = c.toNative(q.G)
	}
	return nq
}

// nativeKey identifies a native quad within its graph. Every field is
// length-prefixed, so distinct quads never share a key.
func nativeKey(q *ld.Quad) string {
	var b strings.Builder
	for _, n := range []ld.Node{q.Subject, q.Predicate, q.Object} {
		writeField(&b, nodeKey(n))
	}
	return b.String()
}

// entryKey identifies a native quad within the dataset.
func entryKey(graph, quad string) string {
	var b strings.Builder
	writeField(&b, graph)
	b.WriteString(quad)
	return b.String()
}

func writeField(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

func nodeKey(n ld.Node) string {
	switch v := n.(type) {
	case nil:
		return ""
	case ld.Literal:
		dt := v.Datatype
		switch {
		case v.Language != "":
			dt = rdf.RDFLangString
		case dt == "":
			dt = rdf.XSDString
		}
		var b strings.Builder
		b.WriteByte('L')
		writeField(&b, v.Value)
		writeField(&b, dt)
		b.WriteString(strings.ToLower(v.Language))
		return b.String()
	case *ld.Literal:
		return nodeKey(*v)
	case ld.BlankNode, *ld.BlankNode:
		return "B" + n.GetValue()
	default:
		return "I" + n.GetValue()
	}
}
