package rdf

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	f := NewTermFactory()
	_, badIRI := f.IRI("urn:a b")
	_, badLang := f.LangLiteral("x", "e n")
	_, badBlank := f.NamedBlankNode("")
	_, missing := NewTriple(nil, IRI{}, nil)

	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"iri", badIRI, ErrCodeInvalidIRI},
		{"literal", badLang, ErrCodeInvalidLiteral},
		{"blank node", badBlank, ErrCodeInvalidBlankNode},
		{"missing position", missing, ErrCodeInvalidArgument},
		{"not supported", NotSupported("add"), ErrCodeNotSupported},
		{"wrapped not supported", fmt.Errorf("backend: %w", NotSupported("add")), ErrCodeNotSupported},
		{"conversion", &ConversionError{Position: PositionSubject}, ErrCodeConversion},
		{"consumed", ErrStreamConsumed, ErrCodeInvalidState},
		{"concurrent", ErrConcurrentModification, ErrCodeConcurrentModification},
		{"closed", ErrClosed, ErrCodeClosed},
		{"other", errors.New("other"), ErrCodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestTermErrorUnwrap(t *testing.T) {
	_, err := NewTermFactory().LangLiteral("x", "")
	if !errors.Is(err, errEmptyLangTag) {
		t.Errorf("error %v does not wrap the cause", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error %v does not match ErrInvalidArgument", err)
	}
	if errors.Is(err, ErrNotSupported) {
		t.Errorf("error %v matches ErrNotSupported", err)
	}
}
