package invariant

import "errors"

var (
	// ErrNotField is returned when the ambient coefficient ring has no division.
	ErrNotField = errors.New("invariant: coefficient ring is not a field")

	// ErrNoAction is returned when no action is given and a group element is
	// neither a func(E) E nor has an Apply(E) E method.
	ErrNoAction = errors.New("invariant: no action on the ground set")

	// ErrNotInvariant is returned by Retract for an element outside A^G.
	ErrNotInvariant = errors.New("invariant: element is not invariant")

	// ErrNotEquivariant indicates that a product of invariants left A^G.
	ErrNotEquivariant = errors.New("invariant: action is not equivariant")

	// ErrOutOfRange indicates an invariant basis index outside [0, Dimension()).
	ErrOutOfRange = errors.New("invariant: basis index out of range")

	// ErrDimensionMismatch indicates a coordinate vector of the wrong length.
	ErrDimensionMismatch = errors.New("invariant: coordinate length mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("invariant: invalid option supplied")
)
