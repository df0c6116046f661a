package invariant

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultParallelism is the number of degrees computed concurrently.
const DefaultParallelism = 1

// Option configures New. Invalid values surface as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of an invariant computation.
type Options struct {
	// Parallelism bounds the number of degree kernels computed at once.
	Parallelism int

	// CheckEquivariance makes New verify that A^G is closed under products.
	CheckEquivariance bool

	// Logger receives per-degree progress. Default: zap.NewNop().
	Logger *zap.Logger

	err error
}

// DefaultOptions returns sequential, unchecked, silent options.
func DefaultOptions() Options {
	return Options{Parallelism: DefaultParallelism, Logger: zap.NewNop()}
}

// WithParallelism computes up to n degrees concurrently; n must be ≥ 1.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: parallelism must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

// WithEquivarianceCheck enables the product-closure check in New.
func WithEquivarianceCheck() Option {
	return func(o *Options) { o.CheckEquivariance = true }
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
