package algebra

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultPrefix labels basis monomials in Format output.
const DefaultPrefix = "OS"

// Option configures New via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the construction parameters of an Algebra.
type Options struct {
	// ordering is a []E, checked against the algebra's element type in New.
	ordering any

	// Logger receives construction and collision events. Default: zap.NewNop().
	Logger *zap.Logger

	// Prefix labels monomials in Format. Default: DefaultPrefix.
	Prefix string

	err error
}

// DefaultOptions returns Options with the default logger and prefix and the
// ground-set order as ordering.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Prefix: DefaultPrefix,
	}
}

// WithOrdering fixes the total order on the ground set. The slice must be a
// permutation of Groundset(); element k receives rank k.
func WithOrdering[E comparable](ordering []E) Option {
	return func(o *Options) {
		if ordering == nil {
			o.err = fmt.Errorf("%w: nil ordering", ErrOptionViolation)
			return
		}
		o.ordering = append([]E(nil), ordering...)
	}
}

// WithLogger sets the structured logger; nil is rejected.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithPrefix sets the monomial label used by Format, e.g. "OS" → "OS{0, 2}".
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		if prefix == "" {
			o.err = fmt.Errorf("%w: empty prefix", ErrOptionViolation)
			return
		}
		o.Prefix = prefix
	}
}

// gatherOptions applies opts over the defaults and returns the first violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}
	return o, nil
}
