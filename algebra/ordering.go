package algebra

import (
	"fmt"

	"github.com/katalvlaran/osalg/subset"
)

// Ordering is a total order on the ground set: a bijection E → {0, …, n-1}.
// It is immutable after construction.
type Ordering[E comparable] struct {
	elems []E
	rank  map[E]int
}

// NewOrdering validates that ordering is a permutation of ground.
// A nil ordering selects the ground-set order.
func NewOrdering[E comparable](ground, ordering []E) (*Ordering[E], error) {
	if ordering == nil {
		ordering = ground
	}
	if len(ordering) != len(ground) {
		return nil, fmt.Errorf("NewOrdering: %d elements for a ground set of %d: %w",
			len(ordering), len(ground), ErrInvalidOrdering)
	}

	inGround := make(map[E]struct{}, len(ground))
	for _, e := range ground {
		inGround[e] = struct{}{}
	}
	rank := make(map[E]int, len(ordering))
	for i, e := range ordering {
		if _, ok := inGround[e]; !ok {
			return nil, fmt.Errorf("NewOrdering: %v is not a ground element: %w", e, ErrInvalidOrdering)
		}
		if _, dup := rank[e]; dup {
			return nil, fmt.Errorf("NewOrdering: %v repeated: %w", e, ErrInvalidOrdering)
		}
		rank[e] = i
	}

	return &Ordering[E]{elems: append([]E(nil), ordering...), rank: rank}, nil
}

// Len returns the size of the ground set.
func (o *Ordering[E]) Len() int { return len(o.elems) }

// Rank returns the position of e, or false if e is not a ground element.
func (o *Ordering[E]) Rank(e E) (int, bool) {
	r, ok := o.rank[e]
	return r, ok
}

// At returns the element of rank k. It panics when k is out of range, like
// a slice index.
func (o *Ordering[E]) At(k int) E { return o.elems[k] }

// Elements returns the ground set in order.
func (o *Ordering[E]) Elements() []E { return append([]E(nil), o.elems...) }

// Set converts elements to a rank subset.
// Errors: ErrInvalidSubset for an unknown or repeated element.
func (o *Ordering[E]) Set(elems []E) (subset.Set, error) {
	ranks := make([]int, len(elems))
	seen := make(map[E]struct{}, len(elems))
	for i, e := range elems {
		r, ok := o.rank[e]
		if !ok {
			return subset.Set{}, fmt.Errorf("%v is not a ground element: %w", e, ErrInvalidSubset)
		}
		if _, dup := seen[e]; dup {
			return subset.Set{}, fmt.Errorf("%v repeated: %w", e, ErrInvalidSubset)
		}
		seen[e] = struct{}{}
		ranks[i] = r
	}
	return subset.Of(ranks...), nil
}

// Elems maps a rank subset back to elements, ascending in the order.
func (o *Ordering[E]) Elems(s subset.Set) []E {
	rs := s.Ranks()
	out := make([]E, len(rs))
	for i, r := range rs {
		out[i] = o.elems[r]
	}
	return out
}
