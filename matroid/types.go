package matroid

import "errors"

// Sentinel errors for matroid construction and queries.
var (
	// ErrDuplicateElement is returned when an element is listed twice where a set is expected.
	ErrDuplicateElement = errors.New("matroid: duplicate element")

	// ErrUnknownElement is returned when an element outside the ground set is referenced.
	ErrUnknownElement = errors.New("matroid: element not in ground set")

	// ErrEmptyCircuit is returned for a circuit without elements.
	ErrEmptyCircuit = errors.New("matroid: empty circuit")

	// ErrInvalidOrdering is returned when an ordering is not a permutation of the ground set.
	ErrInvalidOrdering = errors.New("matroid: ordering is not a permutation of the ground set")

	// ErrInvalidParameter is returned for nonsensical constructor arguments.
	ErrInvalidParameter = errors.New("matroid: invalid parameter")

	// ErrCircuitAxiom is returned by CheckAxioms when the circuit axioms fail.
	ErrCircuitAxiom = errors.New("matroid: circuit axiom violated")
)

// Matroid is the collaborator consumed by the algebra.
//
// Groundset returns the elements in the matroid's natural order; that order
// is the default ordering of an algebra built on it. Circuits returns the
// minimal dependent sets. NoBrokenCircuitsSets returns every subset that
// contains no broken circuit with respect to ordering.
type Matroid[E comparable] interface {
	Groundset() []E
	Circuits() [][]E
	NoBrokenCircuitsSets(ordering []E) ([][]E, error)
}
