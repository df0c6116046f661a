// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set. All kernels return these sentinels,
// optionally wrapped as fmt.Errorf("Op: %w", ErrX); callers match them with
// errors.Is. No kernel panics on user-triggered conditions.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (negative or ragged).
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNotField is returned when an operation needs division but the ring has none.
	ErrNotField = errors.New("linalg: coefficient ring is not a field")

	// ErrNilRing is returned when a matrix is constructed without a ring.
	ErrNilRing = errors.New("linalg: nil ring")
)

// Operation tags for uniform error wrapping.
const (
	opNew      = "New"
	opAt       = "At"
	opSet      = "Set"
	opSub      = "Sub"
	opStack    = "Stack"
	opFromRows = "FromRows"
	opEchelon  = "Echelon"
	opKernel   = "Kernel"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
