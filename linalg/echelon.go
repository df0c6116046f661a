// SPDX-License-Identifier: MIT
// Package linalg: exact Gauss–Jordan kernels.
//
// Purpose:
//   - Reduced row echelon form, rank and a canonical kernel basis over a field.
//
// Notes:
//   - All kernels work on a clone; operands are never mutated.
//   - Pivot choice is the first non-zero entry at or below the current row.

package linalg

import (
	"github.com/katalvlaran/osalg/ring"
)

// field returns m's ring as a ring.Field or ErrNotField.
func (m *Matrix[T]) field(tag string) (ring.Field[T], error) {
	f, ok := ring.AsField(m.ring)
	if !ok {
		return nil, linalgErrorf(tag, ErrNotField)
	}
	return f, nil
}

// Echelon returns the reduced row echelon form of m and its pivot columns.
//
// Implementation:
//   - Stage 1: clone m; require a field.
//   - Stage 2: for each column left to right, pick the first non-zero entry at
//     or below the current row, swap it up, scale to 1, clear the column
//     above and below.
//
// Zero rows end up at the bottom. Complexity: O(r·c·min(r, c)).
func (m *Matrix[T]) Echelon() (*Matrix[T], []int, error) {
	f, err := m.field(opEchelon)
	if err != nil {
		return nil, nil, err
	}
	out := m.Clone()
	pivots := make([]int, 0, min(m.r, m.c))

	row := 0
	for col := 0; col < out.c && row < out.r; col++ {
		p := -1
		for i := row; i < out.r; i++ {
			if !f.IsZero(out.data[i*out.c+col]) {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		out.swapRows(p, row)

		inv, err := f.Inv(out.data[row*out.c+col])
		if err != nil {
			return nil, nil, linalgErrorf(opEchelon, err)
		}
		out.scaleRow(row, inv)
		for i := 0; i < out.r; i++ {
			if i == row {
				continue
			}
			factor := out.data[i*out.c+col]
			if f.IsZero(factor) {
				continue
			}
			out.addRowMultiple(i, row, f.Neg(factor))
		}

		pivots = append(pivots, col)
		row++
	}

	return out, pivots, nil
}

// Rank returns the rank of m over its field.
func (m *Matrix[T]) Rank() (int, error) {
	_, pivots, err := m.Echelon()
	if err != nil {
		return 0, err
	}
	return len(pivots), nil
}

// Kernel returns a basis of the right kernel {v : m·v = 0} as the rows of a
// k×Cols() matrix, k = Cols() − Rank(). The basis is itself in reduced row
// echelon form, so two matrices with the same kernel yield equal results.
//
// Implementation:
//   - Stage 1: Echelon(m); every non-pivot column f gives the vector with
//     v[f] = 1 and v[p_i] = −R[i][f] on pivot columns.
//   - Stage 2: echelonise those vectors.
//
// An r×0 matrix has a 0×0 kernel; a 0×c matrix has the full c-dimensional
// kernel (the identity).
func (m *Matrix[T]) Kernel() (*Matrix[T], error) {
	f, err := m.field(opKernel)
	if err != nil {
		return nil, err
	}
	rref, pivots, err := m.Echelon()
	if err != nil {
		return nil, linalgErrorf(opKernel, err)
	}

	isPivot := make([]bool, m.c)
	for _, p := range pivots {
		isPivot[p] = true
	}
	basis, err := New[T](f, m.c-len(pivots), m.c)
	if err != nil {
		return nil, linalgErrorf(opKernel, err)
	}
	k := 0
	for free := 0; free < m.c; free++ {
		if isPivot[free] {
			continue
		}
		basis.data[k*m.c+free] = f.One()
		for i, p := range pivots {
			basis.data[k*m.c+p] = f.Neg(rref.data[i*m.c+free])
		}
		k++
	}

	canon, _, err := basis.Echelon()
	if err != nil {
		return nil, linalgErrorf(opKernel, err)
	}
	return canon, nil
}

func (m *Matrix[T]) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

func (m *Matrix[T]) scaleRow(i int, s T) {
	for j := 0; j < m.c; j++ {
		m.data[i*m.c+j] = m.ring.Mul(m.data[i*m.c+j], s)
	}
}

// addRowMultiple performs row[dst] += s · row[src].
func (m *Matrix[T]) addRowMultiple(dst, src int, s T) {
	for j := 0; j < m.c; j++ {
		v := m.data[src*m.c+j]
		if m.ring.IsZero(v) {
			continue
		}
		m.data[dst*m.c+j] = m.ring.Add(m.data[dst*m.c+j], m.ring.Mul(s, v))
	}
}
