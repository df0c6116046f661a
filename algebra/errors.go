package algebra

import "errors"

// Sentinel errors. Callers match them with errors.Is; context is added with
// fmt.Errorf("Op: %w", ErrX).
var (
	// ErrNilRing is returned by New when no coefficient ring is given.
	ErrNilRing = errors.New("algebra: nil coefficient ring")

	// ErrNilMatroid is returned by New when no matroid is given.
	ErrNilMatroid = errors.New("algebra: nil matroid")

	// ErrInvalidOrdering indicates an ordering that is not a permutation of the ground set.
	ErrInvalidOrdering = errors.New("algebra: ordering is not a permutation of the ground set")

	// ErrInvalidSubset indicates a subset with an unknown or repeated ground element.
	ErrInvalidSubset = errors.New("algebra: invalid ground-set subset")

	// ErrIncompleteBasis indicates that a reduction produced an NBC set missing
	// from the matroid's reported basis.
	ErrIncompleteBasis = errors.New("algebra: reduction left the reported NBC basis")

	// ErrNotHomogeneous is returned when a homogeneous element is required.
	ErrNotHomogeneous = errors.New("algebra: element is not homogeneous")

	// ErrOutOfRange indicates a basis index outside [0, Dimension()).
	ErrOutOfRange = errors.New("algebra: basis index out of range")

	// ErrOptionViolation is returned by New when an invalid Option was supplied.
	ErrOptionViolation = errors.New("algebra: invalid option supplied")
)
