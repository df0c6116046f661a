// Package osalg computes Orlik–Solomon algebras of finite matroids: exact,
// memoized structure constants over any commutative coefficient ring.
//
// 🚀 What is osalg?
//
//	A deterministic, concurrency-safe library that brings together:
//		• Coefficient rings: ℚ, ℤ, GF(p), the BN254 scalar field, or your own
//		• Matroid collaborators: explicit circuits, uniform and graphic matroids
//		• Reduction of any exterior monomial e_S to the no-broken-circuit basis
//		• Multiplication of basis elements with skew-commutative signs
//		• Invariant subalgebras under a group acting on the ground set
//		• Defining relations and Aomoto complexes
//
// Under the hood, everything is organized under these subpackages:
//
//	ring/      — Ring / Field capability interfaces and concrete rings
//	subset/    — immutable bit-set subsets of a ranked ground set
//	core/      — thread-safe undirected multigraph with numbered edge IDs
//	builder/   — deterministic graph fixtures (complete graphs, cycles)
//	matroid/   — the Matroid collaborator interface and small constructors,
//	             including the cycle matroid of a core.Graph
//	linalg/    — exact matrices: echelon form, rank, kernel over a field
//	algebra/   — the Orlik–Solomon algebra A(M) itself
//	invariant/ — the invariant subalgebra A(M)^G
//	cmd/osalg  — command-line front-end over YAML matroid descriptions
//
// Quick example (uniform matroid U(2,3), one circuit {0,1,2}):
//
//	m, _ := matroid.Uniform(2, 3)
//	a, _ := algebra.New[int, *big.Rat](ring.Rationals{}, m)
//	x, _ := a.SubsetImage([]int{1, 2})
//	fmt.Println(a.Format(x)) // -OS{0, 1} + OS{0, 2}
//
//	go get github.com/katalvlaran/osalg
package osalg
