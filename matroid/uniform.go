package matroid

import "fmt"

// Uniform returns U(r, n) on ground set {0, …, n-1}: every set of size ≤ r is
// independent, so the circuits are exactly the (r+1)-subsets.
// Circuits are generated in lexicographic order.
//
// Errors: ErrInvalidParameter when n < 0, r < 0 or r > n.
// Complexity: O(C(n, r+1) · r).
func Uniform(r, n int) (*CircuitMatroid[int], error) {
	if n < 0 || r < 0 || r > n {
		return nil, fmt.Errorf("Uniform(%d, %d): %w", r, n, ErrInvalidParameter)
	}
	ground := make([]int, n)
	for i := range ground {
		ground[i] = i
	}

	var circuits [][]int
	if r < n {
		combo := make([]int, 0, r+1)
		var gen func(start int)
		gen = func(start int) {
			if len(combo) == r+1 {
				circuits = append(circuits, append([]int(nil), combo...))
				return
			}
			for i := start; i <= n-(r+1-len(combo)); i++ {
				combo = append(combo, i)
				gen(i + 1)
				combo = combo[:len(combo)-1]
			}
		}
		gen(0)
	}

	return FromCircuits(ground, circuits)
}
