package rdf

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Option configures factory behavior.
type Option func(*Options)

// Options configures a factory and the containers it creates.
type Options struct {
	// Salt scopes blank node identity. Random unless set with OptSalt.
	Salt Salt

	// StrictValidation enables RFC 3987 IRI checks and BCP 47 language tag
	// checks. Lenient mode only rejects what N-Triples cannot represent.
	StrictValidation bool

	// Logger receives container lifecycle events. Discarded by default.
	Logger *log.Logger
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// OptSalt fixes the blank node salt. Factories sharing a salt share blank
// node identity, which is mostly useful in tests.
func OptSalt(id uuid.UUID) Option {
	return func(opts *Options) {
		opts.Salt = SaltFrom(id)
	}
}

// OptStrictValidation enables strict IRI and language tag validation.
func OptStrictValidation() Option {
	return func(opts *Options) {
		opts.StrictValidation = true
	}
}

// OptLogger sets the logger used by containers.
func OptLogger(logger *log.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

func defaultOptions() Options {
	return Options{
		Salt:   NewSalt(),
		Logger: log.New(io.Discard),
	}
}
