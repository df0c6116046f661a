package algebra_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/osalg/algebra"
	"github.com/katalvlaran/osalg/linalg"
	"github.com/katalvlaran/osalg/ring"
)

func TestRelations(t *testing.T) {
	a := newQQ(t, triangle(t))
	rels := a.Relations()
	require.Len(t, rels, 1)
	assert.Equal(t, []int{0, 1, 2}, rels[0].Circuit)
	assert.Equal(t, "e1*e2 - e0*e2 + e0*e1", a.FormatRelation(rels[0]))

	for _, fx := range fixtures(t) {
		a := newQQ(t, fx.m, fx.opts...)
		assert.Len(t, a.Relations(), len(fx.m.Circuits()), fx.name)
		for _, rel := range a.Relations() {
			x, err := a.Evaluate(rel.Terms)
			require.NoError(t, err)
			assert.True(t, a.IsZero(x), "%s: relation of %v is %s", fx.name, rel.Circuit, a.Format(x))
		}
	}

	_, err := a.Evaluate([]algebra.Monomial[int, *big.Rat]{{Elements: []int{5}, Coefficient: qq.One()}})
	assert.ErrorIs(t, err, algebra.ErrInvalidSubset)
}

func TestRelations_SharedBrokenCircuit(t *testing.T) {
	// In U(1,3) the circuits {0,2} and {1,2} share the broken circuit {2}.
	a := newQQ(t, uniform(t, 1, 3))
	rels := a.Relations()
	require.Len(t, rels, 3)
	assert.Equal(t, 2, a.BrokenCircuits().Len())

	want := []string{"-e1 + e0", "-e2 + e0", "-e2 + e1"}
	for k, rel := range rels {
		assert.Equal(t, want[k], a.FormatRelation(rel))
		x, err := a.Evaluate(rel.Terms)
		require.NoError(t, err)
		assert.True(t, a.IsZero(x), "relation of %v is %s", rel.Circuit, a.Format(x))
	}

	u24 := newQQ(t, uniform(t, 2, 4))
	assert.Len(t, u24.Relations(), 4)
}

func TestFormatRelation_Coefficients(t *testing.T) {
	a := newQQ(t, triangle(t))
	rel := algebra.Relation[int, *big.Rat]{Terms: []algebra.Monomial[int, *big.Rat]{
		{Elements: []int{0, 1}, Coefficient: big.NewRat(-3, 2)},
		{Elements: nil, Coefficient: qq.One()},
		{Elements: []int{2}, Coefficient: big.NewRat(-1, 1)},
	}}
	assert.Equal(t, "-3/2*e0*e1 + 1 - e2", a.FormatRelation(rel))
}

func TestAomotoComplex(t *testing.T) {
	a := newQQ(t, triangle(t))
	g0, g1, g2 := gen(t, a, 0), gen(t, a, 1), gen(t, a, 2)

	cx, err := a.AomotoComplex(g0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, cx.Dimensions())
	betti, err := cx.Betti()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, betti)

	d0, err := cx.Differential(0)
	require.NoError(t, err)
	assert.Equal(t, "[1]\n[0]\n[0]\n", d0.String())
	d1, err := cx.Differential(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d1.Rows())
	assert.Equal(t, 3, d1.Cols())
	top, err := cx.Differential(2)
	require.NoError(t, err)
	assert.Equal(t, 0, top.Rows())
	_, err = cx.Differential(3)
	assert.ErrorIs(t, err, algebra.ErrOutOfRange)

	// d1·d0 = 0 since ω² = 0.
	sq, err := d1.Mul(d0)
	require.NoError(t, err)
	assert.True(t, sq.IsZero())

	// A resonant weight: coefficients summing to zero.
	omega := a.Add(a.Scale(qq.FromInt64(-2), g0), a.Add(g1, g2))
	cx, err = a.AomotoComplex(omega)
	require.NoError(t, err)
	betti, err = cx.Betti()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, betti)
}

func TestAomotoComplex_Errors(t *testing.T) {
	a := newQQ(t, triangle(t))

	_, err := a.AomotoComplex(a.One())
	assert.ErrorIs(t, err, algebra.ErrNotHomogeneous)
	_, err = a.AomotoComplex(a.Zero())
	assert.ErrorIs(t, err, algebra.ErrNotHomogeneous)
	_, err = a.AomotoComplex(a.Add(a.One(), gen(t, a, 0)))
	assert.ErrorIs(t, err, algebra.ErrNotHomogeneous)

	zz, err := algebra.New[int, *big.Int](ring.Integers{}, triangle(t))
	require.NoError(t, err)
	g, err := zz.Generator(0)
	require.NoError(t, err)
	cx, err := zz.AomotoComplex(g)
	require.NoError(t, err)
	_, err = cx.Betti()
	assert.ErrorIs(t, err, linalg.ErrNotField)
}

func TestGradingHelpers(t *testing.T) {
	a := newQQ(t, triangle(t))
	x := a.Add(a.One(), a.Add(gen(t, a, 1), prod(t, a, gen(t, a, 1), gen(t, a, 2))))

	assert.False(t, a.IsHomogeneous(x))
	_, err := a.Degree(x)
	assert.ErrorIs(t, err, algebra.ErrNotHomogeneous)

	assert.Equal(t, "OS{}", a.Format(a.HomogeneousComponent(x, 0)))
	assert.Equal(t, "OS{1}", a.Format(a.HomogeneousComponent(x, 1)))
	top := a.HomogeneousComponent(x, 2)
	assert.Equal(t, "-OS{0, 1} + OS{0, 2}", a.Format(top))
	d, err := a.Degree(top)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.True(t, a.IsHomogeneous(a.Zero()))
	assert.Equal(t, "0", a.Format(a.HomogeneousComponent(x, 3)))
}

func TestElementArithmetic(t *testing.T) {
	a := newQQ(t, triangle(t))
	g0, g1 := gen(t, a, 0), gen(t, a, 1)

	sum := a.Add(g0, a.Scale(big.NewRat(3, 2), g1))
	assert.Equal(t, "OS{0} + 3/2*OS{1}", a.Format(sum))
	assert.Equal(t, "-OS{0} - 3/2*OS{1}", a.Format(a.Neg(sum)))
	assert.True(t, a.IsZero(a.Sub(sum, sum)))
	assert.True(t, a.IsZero(a.Scale(qq.Zero(), sum)))
	assert.Equal(t, "3/2", qq.Format(a.Coefficient(sum, 2)))
	assert.Equal(t, "0", qq.Format(a.Coefficient(sum, 5)))

	// Stored zeros are ignored.
	withZero := algebra.Element[*big.Rat]{1: qq.One(), 2: qq.Zero()}
	assert.True(t, a.Equal(withZero, g0))
	assert.True(t, a.IsHomogeneous(withZero))

	terms := a.Terms(sum)
	require.Len(t, terms, 2)
	assert.Equal(t, []int{1}, terms[1].Subset)
	assert.Equal(t, 2, terms[1].Index)
}

func TestFormat_PrimeField(t *testing.T) {
	f, err := ring.NewPrimeField(7)
	require.NoError(t, err)
	a, err := algebra.New[int, uint64](f, triangle(t))
	require.NoError(t, err)

	x, err := a.SubsetImage([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "6*OS{0, 1} + OS{0, 2}", a.Format(x))
}

func TestBrokenCircuitCollisionIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	a := newQQ(t, doubledTriangle(t), algebra.WithLogger(zap.New(core)))

	// {0,2,4} and {1,2,4} both break to {2,4}; likewise for {2,5}, {3,4}, {3,5}.
	assert.Equal(t, 4, logs.Len())
	assert.Equal(t, 7, a.BrokenCircuits().Len())

	var pivot int
	for _, bc := range a.BrokenCircuits().Entries() {
		if elems := a.Ordering().Elems(bc.Set); len(elems) == 2 && elems[0] == 2 && elems[1] == 4 {
			pivot = bc.Pivot
		}
	}
	assert.Equal(t, 1, pivot, "last circuit wins")
}

func TestConcurrentReductions(t *testing.T) {
	m := completeGraph(t, 4)
	shared := newQQ(t, m)
	fresh := newQQ(t, m)

	want := make(map[int]string)
	for k, s := range subsets(6) {
		want[k] = image(t, fresh, s...)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8*len(want))
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			all := subsets(6)
			for k := range all {
				idx := (k + offset*7) % len(all)
				x, err := shared.SubsetImage(all[idx])
				if err != nil {
					errs <- err.Error()
					continue
				}
				if got := shared.Format(x); got != want[idx] {
					errs <- got
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
