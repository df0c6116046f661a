package algebra

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/osalg/ring"
	"github.com/katalvlaran/osalg/subset"
)

// ProductOnBasis returns e_A · e_B for basis elements i = e_A and j = e_B.
//
// Implementation:
//   - Stage 1: an empty factor is the unit; overlapping sets give zero.
//   - Stage 2: a single generator x is inserted into B with sign (-1)^k,
//     k = |{b ∈ B : b < x}|, and the result reduced.
//   - Stage 3: for |A| ≥ 2 start from ±e_B (+ iff |A| mod 4 < 2, the sign of
//     reversing A) and left-multiply by the generators of A in ascending order.
//
// Results are memoised per (i, j).
// Errors: ErrOutOfRange, ErrIncompleteBasis.
func (a *Algebra[E, T]) ProductOnBasis(i, j int) (Element[T], error) {
	if err := a.checkIndex(i); err != nil {
		return nil, fmt.Errorf("ProductOnBasis: %w", err)
	}
	if err := a.checkIndex(j); err != nil {
		return nil, fmt.Errorf("ProductOnBasis: %w", err)
	}
	r, err := a.productOnBasis(i, j)
	if err != nil {
		return nil, fmt.Errorf("ProductOnBasis: %w", err)
	}
	return r.clone(), nil
}

func (a *Algebra[E, T]) productOnBasis(i, j int) (Element[T], error) {
	key := strconv.Itoa(i) + "|" + strconv.Itoa(j)
	return a.products.get(key, func() (Element[T], error) {
		return a.multiplyBasis(i, j)
	})
}

func (a *Algebra[E, T]) multiplyBasis(i, j int) (Element[T], error) {
	left, right := a.basis[i], a.basis[j]
	switch {
	case left.IsEmpty():
		return Element[T]{j: a.ring.One()}, nil
	case right.IsEmpty():
		return Element[T]{i: a.ring.One()}, nil
	case !left.Disjoint(right):
		return Element[T]{}, nil
	}

	if left.Len() == 1 {
		x, _ := left.Min()
		r, err := a.reduce(right.With(x))
		if err != nil {
			return nil, err
		}
		return a.Scale(ring.Sign(a.ring, right.CountBelow(x)), r), nil
	}

	sign := a.ring.One()
	if left.Len()%4 >= 2 {
		sign = a.ring.Neg(sign)
	}
	acc := Element[T]{j: sign}
	for _, x := range left.Ranks() {
		g, err := a.reduce(subset.Of(x))
		if err != nil {
			return nil, err
		}
		if acc, err = a.product(g, acc); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Product returns x·y, the bilinear extension of ProductOnBasis.
// Errors: ErrOutOfRange when x or y mention a non-basis index.
func (a *Algebra[E, T]) Product(x, y Element[T]) (Element[T], error) {
	if err := a.validate(x); err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}
	if err := a.validate(y); err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}
	r, err := a.product(x, y)
	if err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}
	return r, nil
}

// product assumes validated operands and returns a fresh element.
func (a *Algebra[E, T]) product(x, y Element[T]) (Element[T], error) {
	out := Element[T]{}
	for _, i := range x.indices() {
		cx := x[i]
		if a.ring.IsZero(cx) {
			continue
		}
		for _, j := range y.indices() {
			cy := y[j]
			if a.ring.IsZero(cy) {
				continue
			}
			r, err := a.productOnBasis(i, j)
			if err != nil {
				return nil, err
			}
			a.addScaled(out, a.ring.Mul(cx, cy), r)
		}
	}
	return out, nil
}

// Prod multiplies xs left to right; the empty product is One().
func (a *Algebra[E, T]) Prod(xs ...Element[T]) (Element[T], error) {
	acc := a.One()
	for k, x := range xs {
		if err := a.validate(x); err != nil {
			return nil, fmt.Errorf("Prod: factor %d: %w", k, err)
		}
		var err error
		if acc, err = a.product(acc, x); err != nil {
			return nil, fmt.Errorf("Prod: %w", err)
		}
	}
	return acc, nil
}
