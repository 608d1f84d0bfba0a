package rdf

import (
	"strings"

	"github.com/google/uuid"
)

// Salt scopes blank node identity to the context that created it. Every
// factory owns one Salt, fixed at construction time.
//
// Blank nodes minted through the same Salt with the same name are equal;
// the same name under a different Salt yields a different node.
type Salt struct {
	id uuid.UUID
}

// NewSalt returns a random salt.
func NewSalt() Salt {
	return Salt{id: uuid.New()}
}

// SaltFrom returns a salt with a fixed value. Two factories sharing a salt
// share blank node identity, whatever their backend.
func SaltFrom(id uuid.UUID) Salt {
	return Salt{id: id}
}

// UUID returns the salt value.
func (s Salt) UUID() uuid.UUID { return s.id }

// String returns the salt in canonical UUID form.
func (s Salt) String() string { return s.id.String() }

// BlankNode returns the blank node identified by name within this salt.
// The unique reference is "urn:uuid:<salt>#<name>".
func (s Salt) BlankNode(name string) BlankNode {
	return newBlankNode(s.prefix() + name)
}

// FreshBlankNode returns a blank node no other call will return.
func (s Salt) FreshBlankNode() BlankNode {
	return s.BlankNode(uuid.NewString())
}

func (s Salt) prefix() string { return "urn:uuid:" + s.id.String() + "#" }

// LabelMapper translates between BlankNode values and the local labels of a
// backend whose native store names blank nodes with plain strings.
//
// A native label maps to the blank node of the same name under the mapper's
// salt, so a backend and a TermFactory sharing a salt agree on named blank
// nodes. Any other blank node, or one whose name is not a valid label, gets a
// label hashed from its unique reference. That keeps two backends that
// happen to use the same local label apart.
type LabelMapper struct {
	salt   Salt
	prefix string
}

// NewLabelMapper returns a mapper for the namespace of salt.
func NewLabelMapper(salt Salt) LabelMapper {
	return LabelMapper{salt: salt, prefix: salt.prefix()}
}

// BlankNode wraps a native label.
func (m LabelMapper) BlankNode(label string) BlankNode {
	return m.salt.BlankNode(label)
}

// Owns reports whether b's name in the mapper's namespace is usable as a
// native label as is.
func (m LabelMapper) Owns(b BlankNode) bool {
	name, ok := strings.CutPrefix(b.ref, m.prefix)
	return ok && isBlankNodeLabel(name)
}

// Label returns the native label for b.
func (m LabelMapper) Label(b BlankNode) string {
	if m.Owns(b) {
		return b.ref[len(m.prefix):]
	}
	return hashLabel(b.ref)
}
