// Package invariant computes the subalgebra A(M)^G of an Orlik–Solomon
// algebra fixed by a group G acting on the ground set.
//
// A group element g acts on a basis element e_S, S = {s1 < … < sk}, by
// g·e_S = e_{g(s1)} ⋯ e_{g(sk)}, the product taken in the ambient algebra.
// When the action maps circuits to circuits this is a graded algebra
// automorphism, so the fixed space splits by degree:
//
//	A^G = ⊕_d ker( stack_g (ρ_d(g) − I) )
//
// Each degree is an independent exact kernel computation (package linalg)
// and runs on its own goroutine, bounded by WithParallelism. Kernel bases are
// in reduced echelon form, so every invariant vector has a distinct leading
// ambient basis index; Retract reads coordinates off those positions.
//
// The coefficient ring must be a field. Equivariance of the action is the
// caller's responsibility unless WithEquivarianceCheck is given.
package invariant
