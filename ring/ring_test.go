package ring_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/osalg/ring"
)

// checkAxioms exercises the commutative ring laws on a small sample of integers.
func checkAxioms[T any](t *testing.T, r ring.Ring[T]) {
	t.Helper()
	sample := []int64{-7, -2, -1, 0, 1, 3, 11}
	for _, x := range sample {
		a := r.FromInt64(x)
		assert.True(t, r.Equal(r.Add(a, r.Zero()), a), "%s: a+0", r.Name())
		assert.True(t, r.Equal(r.Mul(a, r.One()), a), "%s: a*1", r.Name())
		assert.True(t, r.IsZero(r.Add(a, r.Neg(a))), "%s: a-a", r.Name())
		for _, y := range sample {
			b := r.FromInt64(y)
			assert.True(t, r.Equal(r.Add(a, b), r.FromInt64(x+y)), "%s: %d+%d", r.Name(), x, y)
			assert.True(t, r.Equal(r.Mul(a, b), r.FromInt64(x*y)), "%s: %d*%d", r.Name(), x, y)
			assert.True(t, r.Equal(r.Sub(a, b), r.FromInt64(x-y)), "%s: %d-%d", r.Name(), x, y)
			assert.True(t, r.Equal(r.Mul(a, b), r.Mul(b, a)), "%s: commutativity", r.Name())
		}
	}
}

// checkInverses verifies a*a^-1 == 1 and the zero-division sentinel.
func checkInverses[T any](t *testing.T, f ring.Field[T]) {
	t.Helper()
	for _, x := range []int64{-5, -1, 1, 2, 9} {
		a := f.FromInt64(x)
		inv, err := f.Inv(a)
		require.NoError(t, err)
		assert.True(t, f.Equal(f.Mul(a, inv), f.One()), "%s: %d * %d^-1", f.Name(), x, x)
	}
	_, err := f.Inv(f.Zero())
	assert.True(t, errors.Is(err, ring.ErrDivisionByZero))
}

func TestRationals(t *testing.T) {
	checkAxioms[*big.Rat](t, ring.Rationals{})
	checkInverses[*big.Rat](t, ring.Rationals{})

	q := ring.Rationals{}
	half, err := ring.Div[*big.Rat](q, q.One(), q.FromInt64(-2))
	require.NoError(t, err)
	assert.Equal(t, "-1/2", q.Format(half))
	assert.Equal(t, "3", q.Format(q.FromInt64(3)))
	assert.Equal(t, int64(0), q.Characteristic().Int64())
}

func TestRationals_NoAliasing(t *testing.T) {
	q := ring.Rationals{}
	a := q.FromInt64(2)
	b := q.FromInt64(3)
	_ = q.Add(a, b)
	_ = q.Neg(a)
	assert.Equal(t, "2", q.Format(a))
	assert.Equal(t, "3", q.Format(b))
}

func TestIntegers(t *testing.T) {
	checkAxioms[*big.Int](t, ring.Integers{})

	_, ok := ring.AsField[*big.Int](ring.Integers{})
	assert.False(t, ok, "ZZ must not be a field")
	_, ok = ring.AsField[*big.Rat](ring.Rationals{})
	assert.True(t, ok)
}

func TestPrimeField(t *testing.T) {
	for _, p := range []uint64{2, 3, 7, 101, ring.M31Modulus, ring.BabyBearModulus} {
		f, err := ring.NewPrimeField(p)
		require.NoError(t, err)
		checkAxioms[uint64](t, f)
		if p > 3 {
			checkInverses[uint64](t, f)
		}
		assert.Equal(t, p, f.Characteristic().Uint64())
	}

	f := ring.M31()
	assert.Equal(t, "GF(2147483647)", f.Name())
	assert.Equal(t, uint64(ring.M31Modulus-1), f.FromInt64(-1))
	assert.Equal(t, f.FromInt64(math.MaxInt64%ring.M31Modulus), f.FromInt64(math.MaxInt64))
	assert.Equal(t, f.FromInt64(-1), f.Add(f.FromInt64(math.MinInt64), f.FromInt64(math.MaxInt64)))
}

func TestPrimeField_InvalidModulus(t *testing.T) {
	for _, p := range []uint64{0, 1, 4, 91, 1 << 32, (1 << 32) + 15} {
		_, err := ring.NewPrimeField(p)
		assert.ErrorIs(t, err, ring.ErrInvalidModulus, "p=%d", p)
	}
}

func TestBN254(t *testing.T) {
	checkAxioms[fr.Element](t, ring.BN254{})
	checkInverses[fr.Element](t, ring.BN254{})

	f := ring.BN254{}
	assert.Equal(t, "1", f.Format(f.One()))
	assert.Equal(t, 254, f.Characteristic().BitLen())
}

func TestSign(t *testing.T) {
	q := ring.Rationals{}
	assert.Equal(t, "1", q.Format(ring.Sign[*big.Rat](q, 0)))
	assert.Equal(t, "-1", q.Format(ring.Sign[*big.Rat](q, 3)))
	assert.Equal(t, "1", q.Format(ring.Sign[*big.Rat](q, 4)))
}
