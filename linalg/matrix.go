// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/osalg/ring"
)

// Matrix is a row-major dense matrix with entries in a ring.Ring[T].
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Entries are treated as immutable values: Set stores, it never aliases.
type Matrix[T any] struct {
	ring ring.Ring[T]
	r, c int
	data []T
}

// New creates an rows×cols matrix filled with the ring zero.
// Stage 1 (Validate): ring non-nil, rows ≥ 0, cols ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice and fill with Zero().
// Complexity: O(rows*cols).
func New[T any](r ring.Ring[T], rows, cols int) (*Matrix[T], error) {
	if r == nil {
		return nil, linalgErrorf(opNew, ErrNilRing)
	}
	if rows < 0 || cols < 0 {
		return nil, linalgErrorf(opNew, fmt.Errorf("%d×%d: %w", rows, cols, ErrBadShape))
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = r.Zero()
	}

	return &Matrix[T]{ring: r, r: rows, c: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity[T any](r ring.Ring[T], n int) (*Matrix[T], error) {
	m, err := New(r, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = r.One()
	}
	return m, nil
}

// FromRows builds a matrix with the given column count from explicit rows.
// Every row must have exactly cols entries.
func FromRows[T any](r ring.Ring[T], cols int, rows [][]T) (*Matrix[T], error) {
	m, err := New(r, len(rows), cols)
	if err != nil {
		return nil, linalgErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, linalgErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w",
				i, len(row), cols, ErrBadShape))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Ring returns the coefficient ring.
func (m *Matrix[T]) Ring() ring.Ring[T] { return m.ring }

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Matrix[T]) indexOf(tag string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", tag, row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At returns the entry at (row, col).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	return append([]T(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Clone returns a copy with independent backing storage.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{ring: m.ring, r: m.r, c: m.c, data: append([]T(nil), m.data...)}
}

// Equal reports whether o has the same shape and entries, compared in m's ring.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.ring.Equal(m.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every entry is zero.
func (m *Matrix[T]) IsZero() bool {
	for _, v := range m.data {
		if !m.ring.IsZero(v) {
			return false
		}
	}
	return true
}

// Sub returns m − o.
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	if err := validateSameShape(m, o); err != nil {
		return nil, linalgErrorf(opSub, err)
	}
	out := &Matrix[T]{ring: m.ring, r: m.r, c: m.c, data: make([]T, len(m.data))}
	for i := range m.data {
		out.data[i] = m.ring.Sub(m.data[i], o.data[i])
	}
	return out, nil
}

// Mul returns the product m·o.
// Complexity: O(r·k·c), skipping zero entries of m.
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if o == nil || m.c != o.r {
		return nil, linalgErrorf("Mul", ErrDimensionMismatch)
	}
	out, err := New(m.ring, m.r, o.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			a := m.data[i*m.c+k]
			if m.ring.IsZero(a) {
				continue
			}
			for j := 0; j < o.c; j++ {
				b := o.data[k*o.c+j]
				if m.ring.IsZero(b) {
					continue
				}
				out.data[i*o.c+j] = m.ring.Add(out.data[i*o.c+j], m.ring.Mul(a, b))
			}
		}
	}
	return out, nil
}

// Transpose returns mᵀ.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := &Matrix[T]{ring: m.ring, r: m.c, c: m.r, data: make([]T, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	return out
}

// Stack concatenates matrices vertically. All parts must share a column
// count; the ring of the first part is used for the result.
func Stack[T any](parts ...*Matrix[T]) (*Matrix[T], error) {
	if len(parts) == 0 {
		return nil, linalgErrorf(opStack, ErrBadShape)
	}
	for i, p := range parts {
		if p == nil {
			return nil, linalgErrorf(opStack, fmt.Errorf("part %d is nil: %w", i, ErrBadShape))
		}
		if p.c != parts[0].c {
			return nil, linalgErrorf(opStack, fmt.Errorf("part %d has %d columns, want %d: %w",
				i, p.c, parts[0].c, ErrDimensionMismatch))
		}
	}
	out := &Matrix[T]{ring: parts[0].ring, c: parts[0].c}
	for _, p := range parts {
		out.r += p.r
		out.data = append(out.data, p.data...)
	}
	return out, nil
}

// String renders one bracketed row per line using the ring formatter.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.ring.Format(m.data[i*m.c+j]))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// validateSameShape returns ErrDimensionMismatch unless a and b agree in shape.
func validateSameShape[T any](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrDimensionMismatch
	}
	if a.r != b.r {
		return fmt.Errorf("rows %d vs %d: %w", a.r, b.r, ErrDimensionMismatch)
	}
	if a.c != b.c {
		return fmt.Errorf("columns %d vs %d: %w", a.c, b.c, ErrDimensionMismatch)
	}
	return nil
}
