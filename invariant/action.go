package invariant

import "fmt"

// Action maps a ground element e to its image under group element g.
type Action[G any, E comparable] func(g G, e E) E

// Permutation is a finite permutation given by its non-fixed points.
// Elements missing from the map are fixed.
type Permutation[E comparable] map[E]E

// Apply returns the image of e.
func (p Permutation[E]) Apply(e E) E {
	if img, ok := p[e]; ok {
		return img
	}
	return e
}

// Cycle returns the permutation e0 → e1 → … → e_{k-1} → e0.
func Cycle[E comparable](elems ...E) Permutation[E] {
	p := make(Permutation[E], len(elems))
	for i, e := range elems {
		p[e] = elems[(i+1)%len(elems)]
	}
	return p
}

// applier is implemented by group elements that know their own action.
type applier[E comparable] interface {
	Apply(E) E
}

// defaultAction returns the action of group elements that are themselves
// func(E) E values or appliers. Every element of group is checked.
func defaultAction[G any, E comparable](group []G) (Action[G, E], error) {
	for i, g := range group {
		switch any(g).(type) {
		case func(E) E, applier[E]:
		default:
			return nil, fmt.Errorf("group element #%d of type %T: %w", i, g, ErrNoAction)
		}
	}
	return func(g G, e E) E {
		switch v := any(g).(type) {
		case func(E) E:
			return v(e)
		case applier[E]:
			return v.Apply(e)
		}
		return e
	}, nil
}
