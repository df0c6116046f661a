package algebra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/osalg/linalg"
)

// AomotoComplex is the cochain complex A^0 → A^1 → … → A^top with
// differential x ↦ ω·x for a degree-one element ω.
type AomotoComplex[T any] struct {
	dims []int
	diff []*linalg.Matrix[T] // diff[d]: A^d → A^{d+1}, dims[d+1] × dims[d]
}

// AomotoComplex builds the complex of ω. Column k of the degree-d matrix
// holds the coordinates of ω·b_k, b_k the k-th basis element of degree d.
//
// Errors: ErrNotHomogeneous unless ω is homogeneous of degree 1;
// ErrOutOfRange for indices outside the basis.
func (a *Algebra[E, T]) AomotoComplex(omega Element[T]) (*AomotoComplex[T], error) {
	deg, err := a.Degree(omega)
	if err != nil {
		return nil, fmt.Errorf("AomotoComplex: %w", err)
	}
	if deg != 1 {
		return nil, fmt.Errorf("AomotoComplex: ω has degree %d, want 1: %w", deg, ErrNotHomogeneous)
	}

	dims := a.GradedDimensions()
	graded := make([][]int, len(dims)+1)
	pos := make(map[int]int, len(a.basis))
	for d := range dims {
		graded[d] = a.GradedBasis(d)
		for k, i := range graded[d] {
			pos[i] = k
		}
	}

	cx := &AomotoComplex[T]{dims: dims, diff: make([]*linalg.Matrix[T], len(dims))}
	for d := range dims {
		m, err := linalg.New(a.ring, len(graded[d+1]), len(graded[d]))
		if err != nil {
			return nil, fmt.Errorf("AomotoComplex: %w", err)
		}
		for col, i := range graded[d] {
			img, err := a.product(omega, Element[T]{i: a.ring.One()})
			if err != nil {
				return nil, fmt.Errorf("AomotoComplex: %w", err)
			}
			for k, v := range img {
				if err := m.Set(pos[k], col, v); err != nil {
					return nil, fmt.Errorf("AomotoComplex: %w", err)
				}
			}
		}
		cx.diff[d] = m
	}

	a.log.Debug("aomoto complex built", zap.Ints("dimensions", dims))
	return cx, nil
}

// Dimensions returns dim A^d for every degree of the complex.
func (c *AomotoComplex[T]) Dimensions() []int { return append([]int(nil), c.dims...) }

// Differential returns the matrix of A^d → A^{d+1}.
func (c *AomotoComplex[T]) Differential(d int) (*linalg.Matrix[T], error) {
	if d < 0 || d >= len(c.diff) {
		return nil, fmt.Errorf("Differential(%d): %w", d, ErrOutOfRange)
	}
	return c.diff[d].Clone(), nil
}

// Betti returns the cohomology dimensions dim ker d_k − rank d_{k-1}.
// Requires a field; otherwise linalg.ErrNotField.
func (c *AomotoComplex[T]) Betti() ([]int, error) {
	ranks := make([]int, len(c.diff))
	for d, m := range c.diff {
		r, err := m.Rank()
		if err != nil {
			return nil, fmt.Errorf("Betti: %w", err)
		}
		ranks[d] = r
	}
	out := make([]int, len(c.dims))
	for d, dim := range c.dims {
		out[d] = dim - ranks[d]
		if d > 0 {
			out[d] -= ranks[d-1]
		}
	}
	return out, nil
}
