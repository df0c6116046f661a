package matroid

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/osalg/subset"
)

// CircuitMatroid is a matroid presented by its ground set and circuits.
// It is immutable after construction and safe for concurrent use.
type CircuitMatroid[E comparable] struct {
	ground   []E
	index    map[E]int // position in ground
	circuits [][]E
}

var _ Matroid[int] = (*CircuitMatroid[int])(nil)

// FromCircuits builds a matroid from explicit circuits.
// Stage 1 (Validate): ground has no duplicates; every circuit is non-empty,
// duplicate-free and drawn from ground.
// Stage 2 (Finalize): copy inputs so later caller mutations cannot leak in.
//
// The circuit axioms themselves are not verified here; see CheckAxioms.
// Complexity: O(|ground| + Σ|C|).
func FromCircuits[E comparable](ground []E, circuits [][]E) (*CircuitMatroid[E], error) {
	index := make(map[E]int, len(ground))
	for i, e := range ground {
		if _, dup := index[e]; dup {
			return nil, fmt.Errorf("FromCircuits: ground element %v: %w", e, ErrDuplicateElement)
		}
		index[e] = i
	}

	cs := make([][]E, 0, len(circuits))
	for ci, c := range circuits {
		if len(c) == 0 {
			return nil, fmt.Errorf("FromCircuits: circuit #%d: %w", ci, ErrEmptyCircuit)
		}
		seen := make(map[E]struct{}, len(c))
		for _, e := range c {
			if _, ok := index[e]; !ok {
				return nil, fmt.Errorf("FromCircuits: circuit #%d element %v: %w", ci, e, ErrUnknownElement)
			}
			if _, dup := seen[e]; dup {
				return nil, fmt.Errorf("FromCircuits: circuit #%d element %v: %w", ci, e, ErrDuplicateElement)
			}
			seen[e] = struct{}{}
		}
		cs = append(cs, append([]E(nil), c...))
	}

	return &CircuitMatroid[E]{
		ground:   append([]E(nil), ground...),
		index:    index,
		circuits: cs,
	}, nil
}

// Groundset returns a copy of the ground set in construction order.
func (m *CircuitMatroid[E]) Groundset() []E { return append([]E(nil), m.ground...) }

// Circuits returns a deep copy of the circuits in construction order.
func (m *CircuitMatroid[E]) Circuits() [][]E {
	out := make([][]E, len(m.circuits))
	for i, c := range m.circuits {
		out[i] = append([]E(nil), c...)
	}
	return out
}

// Size returns |E|.
func (m *CircuitMatroid[E]) Size() int { return len(m.ground) }

// IsDependent reports whether elems contains a circuit.
func (m *CircuitMatroid[E]) IsDependent(elems []E) (bool, error) {
	s, err := m.toSet(elems, nil)
	if err != nil {
		return false, err
	}
	for _, c := range m.circuitSets(nil) {
		if c.IsSubsetOf(s) {
			return true, nil
		}
	}
	return false, nil
}

// BrokenCircuits returns C ∖ min(C) for every circuit, ranked by ordering.
// Each broken circuit is listed in ascending ordering position.
func (m *CircuitMatroid[E]) BrokenCircuits(ordering []E) ([][]E, error) {
	rank, err := m.rankOf(ordering)
	if err != nil {
		return nil, err
	}
	out := make([][]E, 0, len(m.circuits))
	for _, c := range m.circuitSets(rank) {
		lo, _ := c.Min()
		out = append(out, m.elems(c.Without(lo), ordering))
	}
	return out, nil
}

// NoBrokenCircuitsSets enumerates the NBC sets for ordering.
// Implementation:
//   - Stage 1: validate ordering and rank every circuit by it.
//   - Stage 2: bucket broken circuits by their largest rank, so that when a
//     rank r is appended only the broken circuits ending in r need checking.
//   - Stage 3: depth-first extension in ascending rank order with pruning.
//   - Stage 4: sort by (size, lexicographic rank) and translate back to E.
//
// Complexity: O(#NBC · n · B) where B bounds the broken circuits per bucket.
func (m *CircuitMatroid[E]) NoBrokenCircuitsSets(ordering []E) ([][]E, error) {
	rank, err := m.rankOf(ordering)
	if err != nil {
		return nil, err
	}
	n := len(ordering)

	// A broken circuit is only completed by its largest element.
	byMax := make([][]subset.Set, n)
	emptyBroken := false
	for _, c := range m.circuitSets(rank) {
		lo, _ := c.Min()
		bc := c.Without(lo)
		rs := bc.Ranks()
		if len(rs) == 0 {
			// A loop: ∅ is broken, so nothing is NBC.
			emptyBroken = true
			continue
		}
		hi := rs[len(rs)-1]
		byMax[hi] = append(byMax[hi], bc)
	}
	if emptyBroken {
		return [][]E{}, nil
	}

	var nbc []subset.Set
	var extend func(cur subset.Set, next int)
	extend = func(cur subset.Set, next int) {
		nbc = append(nbc, cur)
		for r := next; r < n; r++ {
			cand := cur.With(r)
			if containsAny(cand, byMax[r]) {
				continue
			}
			extend(cand, r+1)
		}
	}
	extend(subset.Set{}, 0)

	sort.Slice(nbc, func(i, j int) bool { return nbc[i].Less(nbc[j]) })
	out := make([][]E, len(nbc))
	for i, s := range nbc {
		out[i] = m.elems(s, ordering)
	}

	return out, nil
}

// CheckAxioms verifies the circuit axioms on the supplied circuits:
//  1. no circuit properly contains another (incomparability);
//  2. for distinct C1, C2 and e ∈ C1 ∩ C2 some circuit lies in (C1 ∪ C2) ∖ {e}.
//
// Complexity: O(k^3 · n) for k circuits.
func (m *CircuitMatroid[E]) CheckAxioms() error {
	cs := m.circuitSets(nil)
	for i := range cs {
		for j := range cs {
			if i == j {
				continue
			}
			if cs[i].IsSubsetOf(cs[j]) {
				if cs[i].Equal(cs[j]) {
					return fmt.Errorf("CheckAxioms: circuits #%d and #%d coincide: %w", i, j, ErrCircuitAxiom)
				}
				return fmt.Errorf("CheckAxioms: circuit #%d inside #%d: %w", i, j, ErrCircuitAxiom)
			}
			if i > j {
				continue
			}
			union := cs[i].Union(cs[j])
			for _, e := range cs[i].Ranks() {
				if !cs[j].Has(e) {
					continue
				}
				rest := union.Without(e)
				if !containsAny(rest, cs) {
					return fmt.Errorf("CheckAxioms: elimination of %v from #%d and #%d: %w",
						m.ground[e], i, j, ErrCircuitAxiom)
				}
			}
		}
	}
	return nil
}

// rankOf validates ordering and returns element → position.
func (m *CircuitMatroid[E]) rankOf(ordering []E) (map[E]int, error) {
	if len(ordering) != len(m.ground) {
		return nil, fmt.Errorf("ordering of %d elements for ground set of %d: %w",
			len(ordering), len(m.ground), ErrInvalidOrdering)
	}
	rank := make(map[E]int, len(ordering))
	for i, e := range ordering {
		if _, ok := m.index[e]; !ok {
			return nil, fmt.Errorf("ordering element %v: %w", e, ErrInvalidOrdering)
		}
		if _, dup := rank[e]; dup {
			return nil, fmt.Errorf("ordering element %v repeated: %w", e, ErrInvalidOrdering)
		}
		rank[e] = i
	}
	return rank, nil
}

// circuitSets converts circuits to subsets; a nil rank uses ground positions.
func (m *CircuitMatroid[E]) circuitSets(rank map[E]int) []subset.Set {
	if rank == nil {
		rank = m.index
	}
	out := make([]subset.Set, len(m.circuits))
	for i, c := range m.circuits {
		rs := make([]int, len(c))
		for k, e := range c {
			rs[k] = rank[e]
		}
		out[i] = subset.Of(rs...)
	}
	return out
}

func (m *CircuitMatroid[E]) toSet(elems []E, rank map[E]int) (subset.Set, error) {
	if rank == nil {
		rank = m.index
	}
	rs := make([]int, 0, len(elems))
	seen := make(map[E]struct{}, len(elems))
	for _, e := range elems {
		r, ok := rank[e]
		if !ok {
			return subset.Set{}, fmt.Errorf("element %v: %w", e, ErrUnknownElement)
		}
		if _, dup := seen[e]; dup {
			return subset.Set{}, fmt.Errorf("element %v: %w", e, ErrDuplicateElement)
		}
		seen[e] = struct{}{}
		rs = append(rs, r)
	}
	return subset.Of(rs...), nil
}

// elems maps ranks back to elements of ordering.
func (m *CircuitMatroid[E]) elems(s subset.Set, ordering []E) []E {
	rs := s.Ranks()
	out := make([]E, len(rs))
	for i, r := range rs {
		out[i] = ordering[r]
	}
	return out
}

func containsAny(s subset.Set, candidates []subset.Set) bool {
	for _, c := range candidates {
		if c.IsSubsetOf(s) {
			return true
		}
	}
	return false
}
