package invariant

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/osalg/algebra"
	"github.com/katalvlaran/osalg/linalg"
	"github.com/katalvlaran/osalg/ring"
)

// Subalgebra is the G-invariant subalgebra of an Orlik–Solomon algebra.
// Its basis vectors are stored in ambient coordinates, grouped by degree.
// It is immutable after New and safe for concurrent use.
type Subalgebra[E comparable, T any, G any] struct {
	amb   *algebra.Algebra[E, T]
	field ring.Field[T]
	group []G
	act   Action[G, E]

	basis   []algebra.Element[T]
	degrees []int
	leading []int // ambient index of the leading coordinate of basis[k]
	log     *zap.Logger
}

// degreeBlock is the invariant part of one homogeneous component.
type degreeBlock[T any] struct {
	vectors []algebra.Element[T]
	leading []int
}

// New computes the invariant subalgebra of amb under the group generated by
// group, acting on the ground set through act. A nil act uses the group
// elements themselves (func(E) E or Apply(E) E, see Permutation).
//
// Implementation:
//   - Stage 1 (Validate): field coefficients, options, action.
//   - Stage 2 (Kernels): per degree d, stack ρ_d(g) − I over the generators
//     and take the echelonised kernel; degrees run concurrently, bounded by
//     WithParallelism and cancelled through ctx.
//   - Stage 3 (Assemble): concatenate the degree blocks in degree order and,
//     with WithEquivarianceCheck, verify closure under products.
//
// Errors: ErrNotField, ErrNoAction, ErrOptionViolation, ErrNotEquivariant,
// algebra.ErrInvalidSubset for an action image outside the ground set, and
// ctx.Err() on cancellation.
func New[E comparable, T any, G any](ctx context.Context, amb *algebra.Algebra[E, T], group []G, act Action[G, E], opts ...Option) (*Subalgebra[E, T, G], error) {
	f, ok := ring.AsField(amb.Ring())
	if !ok {
		return nil, fmt.Errorf("New: %s: %w", amb.Ring().Name(), ErrNotField)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return nil, fmt.Errorf("New: %w", o.err)
		}
	}
	if act == nil {
		var err error
		if act, err = defaultAction[G, E](group); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}

	s := &Subalgebra[E, T, G]{
		amb:   amb,
		field: f,
		group: append([]G(nil), group...),
		act:   act,
		log:   o.Logger,
	}

	dims := amb.GradedDimensions()
	blocks := make([]degreeBlock[T], len(dims))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Parallelism)
	for d := range dims {
		d := d
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			b, err := s.invariantsOfDegree(d)
			if err != nil {
				return fmt.Errorf("degree %d: %w", d, err)
			}
			blocks[d] = b
			s.log.Debug("invariant degree computed",
				zap.Int("degree", d),
				zap.Int("component", dims[d]),
				zap.Int("invariants", len(b.vectors)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	for d, b := range blocks {
		for k, v := range b.vectors {
			s.basis = append(s.basis, v)
			s.degrees = append(s.degrees, d)
			s.leading = append(s.leading, b.leading[k])
		}
	}

	if o.CheckEquivariance {
		if err := s.checkClosure(); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	s.log.Debug("invariant subalgebra ready",
		zap.Int("generators", len(group)),
		zap.Int("dimension", len(s.basis)))

	return s, nil
}

// invariantsOfDegree solves ρ_d(g)·v = v for every generator g.
func (s *Subalgebra[E, T, G]) invariantsOfDegree(d int) (degreeBlock[T], error) {
	idx := s.amb.GradedBasis(d)
	n := len(idx)
	pos := make(map[int]int, n)
	for k, i := range idx {
		pos[i] = k
	}

	parts := make([]*linalg.Matrix[T], 0, len(s.group)+1)
	empty, err := linalg.New[T](s.field, 0, n)
	if err != nil {
		return degreeBlock[T]{}, err
	}
	parts = append(parts, empty)
	id, err := linalg.Identity[T](s.field, n)
	if err != nil {
		return degreeBlock[T]{}, err
	}
	for _, g := range s.group {
		rho, err := linalg.New[T](s.field, n, n)
		if err != nil {
			return degreeBlock[T]{}, err
		}
		for col, i := range idx {
			img, err := s.BasisAction(g, i)
			if err != nil {
				return degreeBlock[T]{}, err
			}
			for k, v := range img {
				row, ok := pos[k]
				if !ok {
					return degreeBlock[T]{}, fmt.Errorf("image of basis element %d leaves degree %d: %w",
						i, d, ErrNotEquivariant)
				}
				if err := rho.Set(row, col, v); err != nil {
					return degreeBlock[T]{}, err
				}
			}
		}
		diff, err := rho.Sub(id)
		if err != nil {
			return degreeBlock[T]{}, err
		}
		parts = append(parts, diff)
	}

	system, err := linalg.Stack(parts...)
	if err != nil {
		return degreeBlock[T]{}, err
	}
	ker, err := system.Kernel()
	if err != nil {
		return degreeBlock[T]{}, err
	}

	b := degreeBlock[T]{}
	for r := 0; r < ker.Rows(); r++ {
		row, err := ker.Row(r)
		if err != nil {
			return degreeBlock[T]{}, err
		}
		v := algebra.Element[T]{}
		lead := -1
		for col, c := range row {
			if s.field.IsZero(c) {
				continue
			}
			if lead < 0 {
				lead = idx[col]
			}
			v[idx[col]] = c
		}
		b.vectors = append(b.vectors, v)
		b.leading = append(b.leading, lead)
	}
	return b, nil
}

// checkClosure verifies that every product of invariant basis vectors retracts.
func (s *Subalgebra[E, T, G]) checkClosure() error {
	for i := range s.basis {
		for j := range s.basis {
			if _, err := s.ProductOnBasis(i, j); err != nil {
				return err
			}
		}
	}
	return nil
}

// Ambient returns the ambient algebra.
func (s *Subalgebra[E, T, G]) Ambient() *algebra.Algebra[E, T] { return s.amb }

// Dimension returns dim A^G.
func (s *Subalgebra[E, T, G]) Dimension() int { return len(s.basis) }

// Basis returns the invariant basis in ambient coordinates, by degree.
func (s *Subalgebra[E, T, G]) Basis() []algebra.Element[T] {
	out := make([]algebra.Element[T], len(s.basis))
	for k, v := range s.basis {
		out[k] = s.amb.Add(s.amb.Zero(), v)
	}
	return out
}

// DegreeOnBasis returns the degree of invariant basis vector k.
func (s *Subalgebra[E, T, G]) DegreeOnBasis(k int) (int, error) {
	if err := s.checkIndex(k); err != nil {
		return 0, fmt.Errorf("DegreeOnBasis: %w", err)
	}
	return s.degrees[k], nil
}

// LiftBasis returns invariant basis vector k in ambient coordinates.
func (s *Subalgebra[E, T, G]) LiftBasis(k int) (algebra.Element[T], error) {
	if err := s.checkIndex(k); err != nil {
		return nil, fmt.Errorf("LiftBasis: %w", err)
	}
	return s.amb.Add(s.amb.Zero(), s.basis[k]), nil
}

// Lift maps invariant coordinates to the ambient algebra.
func (s *Subalgebra[E, T, G]) Lift(coords []T) (algebra.Element[T], error) {
	if len(coords) != len(s.basis) {
		return nil, fmt.Errorf("Lift: %d coordinates for dimension %d: %w",
			len(coords), len(s.basis), ErrDimensionMismatch)
	}
	out := s.amb.Zero()
	for k, c := range coords {
		out = s.amb.Add(out, s.amb.Scale(c, s.basis[k]))
	}
	return out, nil
}

// Retract returns the invariant coordinates of x.
// Errors: ErrNotInvariant when x does not lie in A^G.
func (s *Subalgebra[E, T, G]) Retract(x algebra.Element[T]) ([]T, error) {
	coords := make([]T, len(s.basis))
	rest := x
	for k, lead := range s.leading {
		coords[k] = s.amb.Coefficient(x, lead)
		rest = s.amb.Sub(rest, s.amb.Scale(coords[k], s.basis[k]))
	}
	if !s.amb.IsZero(rest) {
		return nil, fmt.Errorf("Retract: %s: %w", s.amb.Format(x), ErrNotInvariant)
	}
	return coords, nil
}

// ProductOnBasis returns the product of invariant basis vectors i and j in
// invariant coordinates.
// Errors: ErrOutOfRange; ErrNotEquivariant when the product leaves A^G.
func (s *Subalgebra[E, T, G]) ProductOnBasis(i, j int) ([]T, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, fmt.Errorf("ProductOnBasis: %w", err)
	}
	if err := s.checkIndex(j); err != nil {
		return nil, fmt.Errorf("ProductOnBasis: %w", err)
	}
	p, err := s.amb.Product(s.basis[i], s.basis[j])
	if err != nil {
		return nil, fmt.Errorf("ProductOnBasis: %w", err)
	}
	coords, err := s.Retract(p)
	if errors.Is(err, ErrNotInvariant) {
		return nil, fmt.Errorf("ProductOnBasis(%d, %d): %w", i, j, ErrNotEquivariant)
	}
	return coords, err
}

// BasisAction returns g·e_S for the ambient basis element with index i:
// the product of the images of the elements of S in ascending order.
func (s *Subalgebra[E, T, G]) BasisAction(g G, i int) (algebra.Element[T], error) {
	elems, err := s.amb.BasisSubset(i)
	if err != nil {
		return nil, fmt.Errorf("BasisAction: %w", err)
	}
	acc := s.amb.One()
	for _, e := range elems {
		img, err := s.amb.SubsetImage([]E{s.act(g, e)})
		if err != nil {
			return nil, fmt.Errorf("BasisAction: %w", err)
		}
		if acc, err = s.amb.Product(acc, img); err != nil {
			return nil, fmt.Errorf("BasisAction: %w", err)
		}
	}
	return acc, nil
}

// Act returns g·x, the linear extension of BasisAction.
func (s *Subalgebra[E, T, G]) Act(g G, x algebra.Element[T]) (algebra.Element[T], error) {
	out := s.amb.Zero()
	for _, t := range s.amb.Terms(x) {
		img, err := s.BasisAction(g, t.Index)
		if err != nil {
			return nil, fmt.Errorf("Act: %w", err)
		}
		out = s.amb.Add(out, s.amb.Scale(t.Coefficient, img))
	}
	return out, nil
}

// Format renders invariant basis vector k with the ambient formatter.
func (s *Subalgebra[E, T, G]) Format(k int) (string, error) {
	if err := s.checkIndex(k); err != nil {
		return "", fmt.Errorf("Format: %w", err)
	}
	return s.amb.Format(s.basis[k]), nil
}

func (s *Subalgebra[E, T, G]) checkIndex(k int) error {
	if k < 0 || k >= len(s.basis) {
		return fmt.Errorf("index %d for dimension %d: %w", k, len(s.basis), ErrOutOfRange)
	}
	return nil
}
