// Package subset provides Set, an immutable subset of a ranked ground set
// {0, …, n-1}, backed by a bit-set. Ranks are the positions of ground-set
// elements in a fixed total order, so ascending iteration over a Set is
// iteration in that order.
//
// Every method returns a new Set and leaves its receiver untouched; a Set is
// therefore safe to share between goroutines and to use as a cache key via
// Key. The zero value is the empty set.
package subset

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set is an immutable set of non-negative ranks.
type Set struct {
	bits *bitset.BitSet // nil means empty
}

// Of returns the set containing the given ranks. Duplicates collapse.
// Negative ranks panic: they are a programmer error, never user input.
func Of(ranks ...int) Set {
	if len(ranks) == 0 {
		return Set{}
	}
	b := bitset.New(0)
	for _, r := range ranks {
		if r < 0 {
			panic("subset: negative rank " + strconv.Itoa(r))
		}
		b.Set(uint(r))
	}

	return Set{bits: b}
}

// Len returns the cardinality.
func (s Set) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// IsEmpty reports whether s has no elements.
func (s Set) IsEmpty() bool { return s.Len() == 0 }

// Has reports whether rank r belongs to s.
func (s Set) Has(r int) bool {
	if s.bits == nil || r < 0 {
		return false
	}
	return s.bits.Test(uint(r))
}

// With returns s ∪ {r}.
func (s Set) With(r int) Set {
	if r < 0 {
		panic("subset: negative rank " + strconv.Itoa(r))
	}
	b := s.clone()
	b.Set(uint(r))
	return Set{bits: b}
}

// Without returns s ∖ {r}.
func (s Set) Without(r int) Set {
	if !s.Has(r) {
		return s
	}
	b := s.clone()
	b.Clear(uint(r))
	return Set{bits: b}
}

// Union returns s ∪ t.
func (s Set) Union(t Set) Set {
	switch {
	case s.bits == nil:
		return t
	case t.bits == nil:
		return s
	}
	return Set{bits: s.bits.Union(t.bits)}
}

// IsSubsetOf reports whether s ⊆ t.
func (s Set) IsSubsetOf(t Set) bool {
	if s.bits == nil {
		return true
	}
	if t.bits == nil {
		return s.bits.None()
	}
	return t.bits.IsSuperSet(s.bits)
}

// Disjoint reports whether s ∩ t = ∅.
func (s Set) Disjoint(t Set) bool {
	if s.bits == nil || t.bits == nil {
		return true
	}
	return s.bits.IntersectionCardinality(t.bits) == 0
}

// Min returns the smallest rank, or (-1, false) for the empty set.
func (s Set) Min() (int, bool) {
	if s.bits == nil {
		return -1, false
	}
	i, ok := s.bits.NextSet(0)
	if !ok {
		return -1, false
	}
	return int(i), true
}

// CountBelow returns |{x ∈ s : x < r}|, i.e. the 0-based position r would
// take in the sorted sequence of s ∪ {r}.
func (s Set) CountBelow(r int) int {
	if s.bits == nil {
		return 0
	}
	n := 0
	for i, ok := s.bits.NextSet(0); ok && int(i) < r; i, ok = s.bits.NextSet(i + 1) {
		n++
	}
	return n
}

// Ranks returns the elements in ascending order.
func (s Set) Ranks() []int {
	out := make([]int, 0, s.Len())
	if s.bits == nil {
		return out
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Equal reports whether s and t hold the same ranks.
func (s Set) Equal(t Set) bool {
	return s.Len() == t.Len() && s.IsSubsetOf(t)
}

// Less orders sets by cardinality, then lexicographically by ascending ranks.
// This is the canonical order of an algebra basis.
func (s Set) Less(t Set) bool {
	if ls, lt := s.Len(), t.Len(); ls != lt {
		return ls < lt
	}
	a, b := s.Ranks(), t.Ranks()
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Key returns a canonical string usable as a map key: equal sets have equal
// keys regardless of how their bit-sets were grown.
func (s Set) Key() string {
	if s.bits == nil {
		return ""
	}
	var sb strings.Builder
	buf := make([]byte, 0, 8)
	first := true
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		buf = strconv.AppendUint(buf[:0], uint64(i), 10)
		sb.Write(buf)
	}

	return sb.String()
}

// String renders s as "{0, 2, 5}".
func (s Set) String() string {
	return "{" + strings.ReplaceAll(s.Key(), ",", ", ") + "}"
}

func (s Set) clone() *bitset.BitSet {
	if s.bits == nil {
		return bitset.New(0)
	}
	return s.bits.Clone()
}
