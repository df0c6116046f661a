package algebra

import (
	"fmt"
	"sort"
)

// Element is a sparse linear combination of basis elements: basis index →
// coefficient. Absent indices are zero. Elements produced by this package
// never store zero coefficients and are never mutated after being returned.
type Element[T any] map[int]T

// Term is one basis element of an Element with its coefficient.
type Term[E comparable, T any] struct {
	Index       int
	Subset      []E
	Coefficient T
}

// clone returns a shallow copy; coefficients are immutable values.
func (x Element[T]) clone() Element[T] {
	out := make(Element[T], len(x))
	for k, v := range x {
		out[k] = v
	}
	return out
}

// indices returns the support of x in ascending order.
func (x Element[T]) indices() []int {
	keys := make([]int, 0, len(x))
	for k := range x {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// addScaled performs dst += c·src in place; dst must be owned by the caller.
func (a *Algebra[E, T]) addScaled(dst Element[T], c T, src Element[T]) {
	for k, v := range src {
		term := a.ring.Mul(c, v)
		if cur, ok := dst[k]; ok {
			term = a.ring.Add(cur, term)
		}
		if a.ring.IsZero(term) {
			delete(dst, k)
			continue
		}
		dst[k] = term
	}
}

// Add returns x + y.
func (a *Algebra[E, T]) Add(x, y Element[T]) Element[T] {
	out := a.normalize(x)
	a.addScaled(out, a.ring.One(), y)
	return out
}

// Sub returns x − y.
func (a *Algebra[E, T]) Sub(x, y Element[T]) Element[T] {
	out := a.normalize(x)
	a.addScaled(out, a.ring.Neg(a.ring.One()), y)
	return out
}

// Neg returns −x.
func (a *Algebra[E, T]) Neg(x Element[T]) Element[T] {
	return a.Scale(a.ring.Neg(a.ring.One()), x)
}

// Scale returns c·x.
func (a *Algebra[E, T]) Scale(c T, x Element[T]) Element[T] {
	out := make(Element[T], len(x))
	a.addScaled(out, c, x)
	return out
}

// IsZero reports whether every coefficient of x is zero.
func (a *Algebra[E, T]) IsZero(x Element[T]) bool {
	for _, v := range x {
		if !a.ring.IsZero(v) {
			return false
		}
	}
	return true
}

// Equal reports whether x and y have the same coefficients.
func (a *Algebra[E, T]) Equal(x, y Element[T]) bool {
	return a.IsZero(a.Sub(x, y))
}

// Coefficient returns the coefficient of basis element i in x.
func (a *Algebra[E, T]) Coefficient(x Element[T], i int) T {
	if v, ok := x[i]; ok {
		return v
	}
	return a.ring.Zero()
}

// normalize copies x without zero coefficients.
func (a *Algebra[E, T]) normalize(x Element[T]) Element[T] {
	out := make(Element[T], len(x))
	for k, v := range x {
		if !a.ring.IsZero(v) {
			out[k] = v
		}
	}
	return out
}

// validate checks that every index of x is a basis index.
func (a *Algebra[E, T]) validate(x Element[T]) error {
	for k := range x {
		if err := a.checkIndex(k); err != nil {
			return err
		}
	}
	return nil
}

// IsHomogeneous reports whether all non-zero terms of x share one degree.
// Zero is homogeneous.
func (a *Algebra[E, T]) IsHomogeneous(x Element[T]) bool {
	deg := -1
	for k, v := range x {
		if a.ring.IsZero(v) || k < 0 || k >= len(a.basis) {
			continue
		}
		d := a.basis[k].Len()
		if deg >= 0 && d != deg {
			return false
		}
		deg = d
	}
	return true
}

// Degree returns the degree of a homogeneous non-zero element.
// Errors: ErrNotHomogeneous for zero or mixed-degree x; ErrOutOfRange for
// indices outside the basis.
func (a *Algebra[E, T]) Degree(x Element[T]) (int, error) {
	if err := a.validate(x); err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}
	if a.IsZero(x) {
		return 0, fmt.Errorf("Degree: zero has no degree: %w", ErrNotHomogeneous)
	}
	if !a.IsHomogeneous(x) {
		return 0, fmt.Errorf("Degree: %w", ErrNotHomogeneous)
	}
	for k, v := range x {
		if !a.ring.IsZero(v) {
			return a.basis[k].Len(), nil
		}
	}
	return 0, nil
}

// HomogeneousComponent returns the degree-d part of x.
func (a *Algebra[E, T]) HomogeneousComponent(x Element[T], d int) Element[T] {
	out := Element[T]{}
	for k, v := range x {
		if k >= 0 && k < len(a.basis) && a.basis[k].Len() == d && !a.ring.IsZero(v) {
			out[k] = v
		}
	}
	return out
}

// Terms lists the non-zero terms of x in basis order. Indices outside the
// basis are skipped.
func (a *Algebra[E, T]) Terms(x Element[T]) []Term[E, T] {
	var out []Term[E, T]
	for _, k := range x.indices() {
		v := x[k]
		if a.ring.IsZero(v) || k < 0 || k >= len(a.basis) {
			continue
		}
		out = append(out, Term[E, T]{Index: k, Subset: a.order.Elems(a.basis[k]), Coefficient: v})
	}
	return out
}
