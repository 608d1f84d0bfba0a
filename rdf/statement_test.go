package rdf

import (
	"errors"
	"testing"
)

func TestStatementConstruction(t *testing.T) {
	f := NewTermFactory()
	s, p := mustIRI(t, f, "urn:s"), mustIRI(t, f, "urn:p")
	o, _ := f.Literal("o")

	if _, err := NewTriple(s, p, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("missing object error = %v", err)
	}
	if _, err := NewTriple(s, IRI{}, o); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("missing predicate error = %v", err)
	}
	if _, err := NewQuad(IRI{}, s, p, o); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero graph name error = %v", err)
	}

	q, err := NewQuad(nil, s, p, o)
	if err != nil {
		t.Fatal(err)
	}
	if !q.InDefaultGraph() {
		t.Error("quad with nil graph is not in the default graph")
	}
	tr := q.AsTriple()
	if tr.InGraph(nil) != q {
		t.Error("InGraph does not invert AsTriple")
	}
	if got, want := q.String(), `<urn:s> <urn:p> "o" .`; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	named := tr.InGraph(s)
	if got, want := named.String(), `<urn:s> <urn:p> "o" <urn:s> .`; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	if !(Triple{}).IsZero() || tr.IsZero() {
		t.Error("IsZero")
	}
}

func TestGeneralizedConversion(t *testing.T) {
	f := NewTermFactory()
	s, p := mustIRI(t, f, "urn:s"), mustIRI(t, f, "urn:p")
	lit, _ := f.Literal("x")
	bnode, _ := f.BlankNode()

	tests := []struct {
		name string
		quad GeneralizedQuad
		pos  Position
	}{
		{"literal subject", GeneralizedQuad{S: lit, P: p, O: s}, PositionSubject},
		{"blank node predicate", GeneralizedQuad{S: s, P: bnode, O: s}, PositionPredicate},
		{"literal predicate", GeneralizedQuad{S: s, P: lit, O: s}, PositionPredicate},
		{"missing object", GeneralizedQuad{S: s, P: p}, PositionObject},
		{"literal graph name", GeneralizedQuad{G: lit, S: s, P: p, O: s}, PositionGraphName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.quad.ToQuad()
			var convErr *ConversionError
			if !errors.As(err, &convErr) {
				t.Fatalf("ToQuad() error = %v, want *ConversionError", err)
			}
			if convErr.Position != tt.pos {
				t.Errorf("Position = %s, want %s", convErr.Position, tt.pos)
			}
			if Code(err) != ErrCodeConversion || !errors.Is(err, ErrConversion) {
				t.Errorf("Code() = %s", Code(err))
			}
		})
	}

	q, _ := NewQuad(bnode, s, p, lit)
	back, err := q.Generalize().ToQuad()
	if err != nil || back != q {
		t.Errorf("round trip = %v, %v", back, err)
	}
	tr, err := q.AsTriple().Generalize().ToTriple()
	if err != nil || tr != q.AsTriple() {
		t.Errorf("triple round trip = %v, %v", tr, err)
	}
	if _, err := (GeneralizedTriple{S: s, P: lit, O: s}).ToTriple(); !errors.Is(err, ErrConversion) {
		t.Errorf("ToTriple() error = %v", err)
	}
}

func TestPatterns(t *testing.T) {
	f := NewTermFactory()
	s, p, g := mustIRI(t, f, "urn:s"), mustIRI(t, f, "urn:p"), mustIRI(t, f, "urn:g")
	o, _ := f.Literal("o")
	inDefault, _ := NewQuad(nil, s, p, o)
	inNamed, _ := NewQuad(g, s, p, o)

	tests := []struct {
		name    string
		pattern QuadPattern
		def     bool
		named   bool
	}{
		{"any", QuadPattern{}, true, true},
		{"default graph", QuadPattern{G: DefaultGraph}, true, false},
		{"in graph", QuadPattern{G: InGraph(g)}, false, true},
		{"in nil graph", QuadPattern{G: InGraph(nil)}, true, false},
		{"object", QuadPattern{O: o}, true, true},
		{"other predicate", QuadPattern{P: g}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pattern.Matches(inDefault); got != tt.def {
				t.Errorf("Matches(default) = %v", got)
			}
			if got := tt.pattern.Matches(inNamed); got != tt.named {
				t.Errorf("Matches(named) = %v", got)
			}
		})
	}

	if !AnyGraph.IsAny() || DefaultGraph.IsAny() {
		t.Error("IsAny")
	}
	if name, ok := InGraph(g).Name(); !ok || name != g {
		t.Errorf("Name() = %v, %v", name, ok)
	}
	if DefaultGraph.String() != "default graph" {
		t.Errorf("String() = %s", DefaultGraph)
	}
}
