package rdf

import (
	"testing"

	"github.com/google/uuid"
)

func TestSaltScopesBlankNodes(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	a := NewTermFactory(OptSalt(id))
	b := NewTermFactory(OptSalt(id))
	c := NewTermFactory()

	ax, _ := a.NamedBlankNode("x")
	bx, _ := b.NamedBlankNode("x")
	cx, _ := c.NamedBlankNode("x")
	if ax != bx {
		t.Error("factories sharing a salt disagree on a named blank node")
	}
	if ax == cx {
		t.Error("factories with different salts produced the same blank node")
	}
	if want := "urn:uuid:" + id.String() + "#x"; ax.UniqueReference() != want {
		t.Errorf("UniqueReference() = %s, want %s", ax.UniqueReference(), want)
	}
	if a.Salt().UUID() != id || a.Salt().String() != id.String() {
		t.Error("salt does not report the value it was built with")
	}

	seen := map[BlankNode]bool{}
	for i := 0; i < 100; i++ {
		n, _ := a.BlankNode()
		if seen[n] {
			t.Fatalf("fresh blank node %s repeated", n)
		}
		seen[n] = true
	}
}

func TestLabelMapper(t *testing.T) {
	salt := NewSalt()
	m := NewLabelMapper(salt)

	native := m.BlankNode("b0")
	if !m.Owns(native) {
		t.Fatal("mapper does not own its own node")
	}
	if got := m.Label(native); got != "b0" {
		t.Errorf("Label() = %q, want b0", got)
	}
	if m.BlankNode("b0") != native {
		t.Error("same native label maps to different nodes")
	}

	other := NewLabelMapper(NewSalt()).BlankNode("b0")
	if m.Owns(other) {
		t.Error("mapper owns a node from another namespace")
	}
	label := m.Label(other)
	if label == "b0" || !isBlankNodeLabel(label) {
		t.Errorf("foreign label = %q, want a hashed label", label)
	}
	if m.Label(other) != label {
		t.Error("foreign label is not deterministic")
	}

	if salt.BlankNode("b0") != native {
		t.Error("salted blank node and native label disagree")
	}

	spaced := salt.BlankNode("b 0")
	if m.Owns(spaced) {
		t.Error("mapper owns a name that is not a valid label")
	}
	if label := m.Label(spaced); !isBlankNodeLabel(label) {
		t.Errorf("Label() = %q, want a valid label", label)
	}
}
