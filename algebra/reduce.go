package algebra

import (
	"fmt"

	"github.com/katalvlaran/osalg/subset"
)

// SubsetImage returns e_S written in the NBC basis, where S is the set of
// the given ground elements. Order of elems does not matter: e_S always
// means the product of generators in ascending ordering position.
//
// Errors: ErrInvalidSubset for an unknown or repeated element,
// ErrIncompleteBasis when the matroid's NBC sets are inconsistent with its
// circuits.
func (a *Algebra[E, T]) SubsetImage(elems []E) (Element[T], error) {
	s, err := a.order.Set(elems)
	if err != nil {
		return nil, fmt.Errorf("SubsetImage: %w", err)
	}
	r, err := a.reduce(s)
	if err != nil {
		return nil, fmt.Errorf("SubsetImage: %w", err)
	}
	return r.clone(), nil
}

// reduce is the memoised reduction in rank space. The returned element is
// shared with the cache and must not be modified.
func (a *Algebra[E, T]) reduce(s subset.Set) (Element[T], error) {
	return a.reductions.get(s.Key(), func() (Element[T], error) {
		return a.reduceUncached(s)
	})
}

// reduceUncached rewrites e_S with the first broken circuit B ⊆ S.
//
// With pivot i and S' = S ∪ {i} in ascending order, the relation ∂e_{B∪i} = 0
// gives e_S = Σ_{j ∈ B} ± e_{S'∖j}. The sign starts at +1 and flips after
// every element that follows i in S'. Each S'∖j trades j for the smaller
// pivot, so the recursion terminates.
func (a *Algebra[E, T]) reduceUncached(s subset.Set) (Element[T], error) {
	bc, found := a.broken.Find(s)
	if !found {
		i, ok := a.index[s.Key()]
		if !ok {
			return nil, fmt.Errorf("%v: %w", a.order.Elems(s), ErrIncompleteBasis)
		}
		return Element[T]{i: a.ring.One()}, nil
	}

	pivot := bc.Pivot
	if s.Has(pivot) {
		// S contains a whole circuit.
		return Element[T]{}, nil
	}

	withPivot := s.With(pivot)
	coeff := a.ring.One()
	flip := false
	out := Element[T]{}
	for _, j := range withPivot.Ranks() {
		if bc.Set.Has(j) {
			r, err := a.reduce(withPivot.Without(j))
			if err != nil {
				return nil, err
			}
			a.addScaled(out, coeff, r)
		}
		if flip {
			coeff = a.ring.Neg(coeff)
		}
		if j == pivot {
			flip = true
		}
	}
	return out, nil
}
