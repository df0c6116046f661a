package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"go.uber.org/zap"

	"github.com/katalvlaran/osalg/algebra"
	"github.com/katalvlaran/osalg/invariant"
	"github.com/katalvlaran/osalg/ring"
)

// engine runs the subcommands over one algebra, whatever its coefficients.
type engine interface {
	basis(w io.Writer) error
	reduce(w io.Writer, elems []string) error
	product(w io.Writer, left, right []string) error
	relations(w io.Writer) error
	invariants(ctx context.Context, w io.Writer, parallelism int, check bool) error
	aomoto(w io.Writer, weights []int64) error
}

// session is the engine over coefficients T.
type session[T any] struct {
	cfg    *Config
	ground []string
	alg    *algebra.Algebra[string, T]
	log    *zap.Logger
}

// newEngine builds the algebra described by cfg over the ring it names.
func newEngine(cfg *Config, log *zap.Logger) (engine, error) {
	name := strings.ToUpper(strings.TrimSpace(cfg.Ring))
	switch name {
	case "", "QQ":
		return open[*big.Rat](ring.Rationals{}, cfg, log)
	case "ZZ":
		return open[*big.Int](ring.Integers{}, cfg, log)
	case "M31":
		return open[uint64](ring.M31(), cfg, log)
	case "BABYBEAR":
		return open[uint64](ring.BabyBear(), cfg, log)
	case "BN254":
		return open[fr.Element](ring.BN254{}, cfg, log)
	}
	if strings.HasPrefix(name, "GF(") && strings.HasSuffix(name, ")") {
		p, err := strconv.ParseUint(name[3:len(name)-1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: ring %q: %v", ErrInvalidConfig, cfg.Ring, err)
		}
		f, err := ring.NewPrimeField(p)
		if err != nil {
			return nil, fmt.Errorf("%w: ring %q: %v", ErrInvalidConfig, cfg.Ring, err)
		}
		return open[uint64](f, cfg, log)
	}
	return nil, fmt.Errorf("%w: unknown ring %q", ErrInvalidConfig, cfg.Ring)
}

func open[T any](r ring.Ring[T], cfg *Config, log *zap.Logger) (engine, error) {
	m, err := cfg.Matroid()
	if err != nil {
		return nil, err
	}
	opts := []algebra.Option{algebra.WithLogger(log)}
	if cfg.Prefix != "" {
		opts = append(opts, algebra.WithPrefix(cfg.Prefix))
	}
	if len(cfg.Ordering) > 0 {
		opts = append(opts, algebra.WithOrdering(cfg.Ordering))
	}
	a, err := algebra.New[string, T](r, m, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug("algebra opened",
		zap.String("ring", r.Name()),
		zap.Int("ground", m.Size()),
		zap.Int("dimension", a.Dimension()))
	return &session[T]{cfg: cfg, ground: m.Groundset(), alg: a, log: log}, nil
}

func (s *session[T]) basis(w io.Writer) error {
	fmt.Fprintf(w, "ring: %s\n", s.alg.Ring().Name())
	fmt.Fprintf(w, "dimension: %d\n", s.alg.Dimension())
	fmt.Fprintf(w, "graded: %v\n", s.alg.GradedDimensions())
	fmt.Fprintf(w, "broken circuits: %d\n", s.alg.BrokenCircuits().Len())
	for i, b := range s.alg.Basis() {
		fmt.Fprintf(w, "%4d  %s\n", i, s.alg.FormatSubset(b))
	}
	return nil
}

func (s *session[T]) reduce(w io.Writer, elems []string) error {
	x, err := s.alg.SubsetImage(elems)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s.alg.Format(x))
	return nil
}

func (s *session[T]) product(w io.Writer, left, right []string) error {
	x, err := s.alg.SubsetImage(left)
	if err != nil {
		return err
	}
	y, err := s.alg.SubsetImage(right)
	if err != nil {
		return err
	}
	p, err := s.alg.Product(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s.alg.Format(p))
	return nil
}

// relations prints the defining relations and checks that each reduces to zero.
func (s *session[T]) relations(w io.Writer) error {
	for _, rel := range s.alg.Relations() {
		v, err := s.alg.Evaluate(rel.Terms)
		if err != nil {
			return err
		}
		if !s.alg.IsZero(v) {
			return fmt.Errorf("relation of circuit %v reduces to %s", rel.Circuit, s.alg.Format(v))
		}
		fmt.Fprintln(w, s.alg.FormatRelation(rel))
	}
	return nil
}

func (s *session[T]) invariants(ctx context.Context, w io.Writer, parallelism int, check bool) error {
	opts := []invariant.Option{invariant.WithLogger(s.log), invariant.WithParallelism(parallelism)}
	if check {
		opts = append(opts, invariant.WithEquivarianceCheck())
	}
	sub, err := invariant.New[string, T, invariant.Permutation[string]](ctx, s.alg, s.cfg.Permutations(), nil, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "dimension: %d\n", sub.Dimension())
	for k := 0; k < sub.Dimension(); k++ {
		d, err := sub.DegreeOnBasis(k)
		if err != nil {
			return err
		}
		f, err := sub.Format(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%4d  degree %d  %s\n", k, d, f)
	}
	return nil
}

// aomoto builds ω = Σ weights[i]·e_{ground[i]} and prints its Betti numbers.
func (s *session[T]) aomoto(w io.Writer, weights []int64) error {
	if len(weights) != len(s.ground) {
		return fmt.Errorf("%w: %d weights for %d ground elements", ErrInvalidConfig, len(weights), len(s.ground))
	}
	r := s.alg.Ring()
	omega := s.alg.Zero()
	for i, e := range s.ground {
		g, err := s.alg.Generator(e)
		if err != nil {
			return err
		}
		omega = s.alg.Add(omega, s.alg.Scale(r.FromInt64(weights[i]), g))
	}
	cx, err := s.alg.AomotoComplex(omega)
	if err != nil {
		return err
	}
	betti, err := cx.Betti()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "omega: %s\n", s.alg.Format(omega))
	fmt.Fprintf(w, "dimensions: %v\n", cx.Dimensions())
	fmt.Fprintf(w, "betti: %v\n", betti)
	return nil
}
