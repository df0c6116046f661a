// Package algebra implements the Orlik–Solomon algebra A(M) of a matroid M
// over a caller-chosen commutative ring.
//
// What
//
//	A(M) is the exterior algebra on the ground set modulo the ideal generated
//	by ∂e_C for every circuit C. Given a total order on the ground set, the
//	no-broken-circuit (NBC) sets index a basis, sorted by cardinality and then
//	lexicographically by rank. This package reduces arbitrary exterior
//	monomials to that basis and multiplies basis elements with the correct
//	skew-commutative signs.
//
// Core API
//
//   - New(r, m, opts...)      build the algebra; WithOrdering, WithLogger, WithPrefix.
//   - SubsetImage(elems)      e_S reduced to the NBC basis.
//   - ProductOnBasis(i, j)    product of two basis elements.
//   - Product, Prod           bilinear extension and left fold.
//   - Degree, IsHomogeneous   grading helpers; GradedDimensions.
//   - Relations               the circuit relations ∂e_C.
//   - AomotoComplex           the cochain complex (A, ω·) and its Betti numbers.
//
// Elements
//
//	Element[T] is a sparse map from basis index to non-zero coefficient.
//	Elements are values: every operation returns a fresh map and never
//	mutates its operands.
//
// Reduction
//
//	Every circuit C contributes a broken circuit C ∖ min(C) with pivot min(C).
//	reduce(S) finds the first broken circuit B ⊆ S with pivot i. If i ∈ S the
//	monomial contains a circuit and vanishes; otherwise the relation ∂e_{B∪i}
//	rewrites e_S as a signed sum of e_{S∪i∖j} for j ∈ B, each of which is
//	reduced recursively. A set containing no broken circuit is itself NBC.
//
// Concurrency
//
//	An Algebra is safe for concurrent use. Reductions and basis products are
//	memoised; concurrent requests for the same key share a single computation
//	through golang.org/x/sync/singleflight.
//
// Errors
//
//   - ErrNilRing, ErrNilMatroid         construction with missing collaborators.
//   - ErrInvalidOrdering                 ordering is not a permutation of the ground set.
//   - ErrInvalidSubset                   unknown or repeated element in SubsetImage.
//   - ErrIncompleteBasis                 reduction reached an NBC set the matroid did not report.
//   - ErrNotHomogeneous                  Degree/AomotoComplex on mixed-degree input.
//   - ErrOutOfRange                      basis index outside [0, Dimension()).
//   - ErrOptionViolation                 invalid functional option.
package algebra
