package rdf

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates malformed input to a term constructor.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidIRI indicates an invalid IRI was encountered.
	ErrCodeInvalidIRI ErrorCode = "INVALID_IRI"
	// ErrCodeInvalidLiteral indicates an invalid literal was encountered.
	ErrCodeInvalidLiteral ErrorCode = "INVALID_LITERAL"
	// ErrCodeInvalidBlankNode indicates an invalid blank node name.
	ErrCodeInvalidBlankNode ErrorCode = "INVALID_BLANK_NODE"
	// ErrCodeNotSupported indicates a backend declined an operation.
	ErrCodeNotSupported ErrorCode = "NOT_SUPPORTED"
	// ErrCodeConversion indicates a generalized statement could not be made strict.
	ErrCodeConversion ErrorCode = "CONVERSION"
	// ErrCodeInvalidState indicates a stream was iterated more than once.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
	// ErrCodeConcurrentModification indicates a container changed during iteration.
	ErrCodeConcurrentModification ErrorCode = "CONCURRENT_MODIFICATION"
	// ErrCodeClosed indicates use of a closed container.
	ErrCodeClosed ErrorCode = "CLOSED"
	// ErrCodeUnknown is returned for errors this package does not classify.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrInvalidArgument indicates malformed input such as a bad IRI or language tag.
	ErrInvalidArgument = errors.New("rdf: invalid argument")
	// ErrNotSupported indicates a partial backend declined an operation.
	ErrNotSupported = errors.New("rdf: operation not supported")
	// ErrConversion indicates a term of the wrong kind in a strict statement position.
	ErrConversion = errors.New("rdf: conversion failed")
	// ErrStreamConsumed indicates a second iteration of a single-use stream.
	ErrStreamConsumed = errors.New("rdf: stream already consumed")
	// ErrConcurrentModification indicates a container was mutated during iteration.
	ErrConcurrentModification = errors.New("rdf: concurrent modification")
	// ErrClosed indicates use of a container after Close.
	ErrClosed = errors.New("rdf: container closed")
)

// Code returns the error code for an error.
// Returns empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var termErr *TermError
	if errors.As(err, &termErr) {
		switch termErr.Kind {
		case TermIRI:
			return ErrCodeInvalidIRI
		case TermLiteral:
			return ErrCodeInvalidLiteral
		case TermBlankNode:
			return ErrCodeInvalidBlankNode
		}
		return ErrCodeInvalidArgument
	}

	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, ErrNotSupported):
		return ErrCodeNotSupported
	case errors.Is(err, ErrConversion):
		return ErrCodeConversion
	case errors.Is(err, ErrStreamConsumed):
		return ErrCodeInvalidState
	case errors.Is(err, ErrConcurrentModification):
		return ErrCodeConcurrentModification
	case errors.Is(err, ErrClosed):
		return ErrCodeClosed
	}
	return ErrCodeUnknown
}

// TermError describes a rejected term construction.
type TermError struct {
	Kind  TermKind // kind of term being built
	Value string   // offending input
	Err   error    // underlying cause
}

func (e *TermError) Error() string {
	return fmt.Sprintf("rdf: invalid %s %q: %v", e.Kind, e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TermError) Unwrap() error { return e.Err }

// Is reports ErrInvalidArgument so callers can match every construction failure.
func (e *TermError) Is(target error) bool { return target == ErrInvalidArgument }

func invalidTerm(kind TermKind, value string, cause error) error {
	return &TermError{Kind: kind, Value: value, Err: cause}
}

// ConversionError reports a generalized statement position holding a term
// of a kind the strict statement does not allow.
type ConversionError struct {
	Position Position
	Term     Term
}

func (e *ConversionError) Error() string {
	if e.Term == nil {
		return fmt.Sprintf("rdf: conversion failed: missing %s", e.Position)
	}
	return fmt.Sprintf("rdf: conversion failed: %s cannot be %s", e.Term.Kind(), e.Position)
}

// Is reports ErrConversion.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// NotSupported returns an error wrapping ErrNotSupported for the named operation.
func NotSupported(op string) error {
	return fmt.Errorf("%w: %s", ErrNotSupported, op)
}
