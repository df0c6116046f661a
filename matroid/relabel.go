package matroid

import "fmt"

// Relabel returns the matroid obtained by renaming every element of m with
// label. Ground-set and circuit order are preserved.
//
// Errors: ErrDuplicateElement if label is not injective on the ground set.
func Relabel[E, F comparable](m *CircuitMatroid[E], label func(E) F) (*CircuitMatroid[F], error) {
	ground := make([]F, len(m.ground))
	for i, e := range m.ground {
		ground[i] = label(e)
	}
	circuits := make([][]F, len(m.circuits))
	for k, c := range m.circuits {
		circuits[k] = make([]F, len(c))
		for i, e := range c {
			circuits[k][i] = label(e)
		}
	}
	out, err := FromCircuits(ground, circuits)
	if err != nil {
		return nil, fmt.Errorf("Relabel: %w", err)
	}
	return out, nil
}

// Indexed numbers the elements of m by their ground-set position, so the
// i-th element becomes i.
func Indexed[E comparable](m *CircuitMatroid[E]) *CircuitMatroid[int] {
	out := &CircuitMatroid[int]{
		ground:   make([]int, len(m.ground)),
		index:    make(map[int]int, len(m.ground)),
		circuits: make([][]int, len(m.circuits)),
	}
	for i := range m.ground {
		out.ground[i] = i
		out.index[i] = i
	}
	for k, c := range m.circuits {
		out.circuits[k] = make([]int, len(c))
		for i, e := range c {
			out.circuits[k][i] = m.index[e]
		}
	}
	return out
}
