// SPDX-License-Identifier: MIT

// Package linalg provides exact dense matrices over a ring.Ring and the
// handful of field kernels the invariant and Aomoto computations need.
//
// What
//
//   - Matrix[T]: row-major dense storage over an arbitrary ring.Ring[T].
//   - Construction: New, Identity, FromRows; shape 0×c and r×0 are legal
//     (empty homogeneous components are common).
//   - Structural ops: At, Set, Row, Clone, Equal, Sub, Stack.
//   - Field kernels: Echelon (reduced row echelon form), Rank, Kernel.
//
// Why
//
//	Invariant subspaces and cohomology dimensions are kernel computations
//	that must be exact: coefficients live in ℚ or a finite field, never in
//	floating point. Kernels therefore require the matrix ring to be a
//	ring.Field and fail with ErrNotField otherwise.
//
// Determinism
//
//	Gauss–Jordan elimination scans columns left to right and picks the first
//	non-zero entry at or below the current row as pivot. Kernel bases are
//	returned in reduced echelon form themselves (leading coefficient 1,
//	zeros above and below every leading position), which makes them
//	canonical for a given subspace.
//
// Errors
//
//   - ErrBadShape          negative dimensions or ragged rows.
//   - ErrOutOfRange        index outside the matrix.
//   - ErrDimensionMismatch operand shapes disagree.
//   - ErrNotField          a field kernel was requested over a non-field ring.
//   - ErrNilRing           a matrix was requested without a ring.
package linalg
