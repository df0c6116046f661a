package algebra_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/osalg/algebra"
	"github.com/katalvlaran/osalg/builder"
	"github.com/katalvlaran/osalg/core"
	"github.com/katalvlaran/osalg/matroid"
	"github.com/katalvlaran/osalg/ring"
)

type qqAlgebra = algebra.Algebra[int, *big.Rat]

var qq = ring.Rationals{}

// fixture is a named small matroid used across the property tests.
type fixture struct {
	name string
	m    *matroid.CircuitMatroid[int]
	opts []algebra.Option
}

func mustCircuits(t testing.TB, n int, circuits ...[]int) *matroid.CircuitMatroid[int] {
	t.Helper()
	ground := make([]int, n)
	for i := range ground {
		ground[i] = i
	}
	m, err := matroid.FromCircuits(ground, circuits)
	require.NoError(t, err)
	return m
}

// graphic returns the cycle matroid of g with edge i numbered i-1.
func graphic(t testing.TB, g *core.Graph) *matroid.CircuitMatroid[int] {
	t.Helper()
	m, err := matroid.Graphic(g)
	require.NoError(t, err)
	return matroid.Indexed(m)
}

func completeGraph(t testing.TB, n int) *matroid.CircuitMatroid[int] {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Complete(n))
	require.NoError(t, err)
	return graphic(t, g)
}

func cycleGraph(t testing.TB, n int) *matroid.CircuitMatroid[int] {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(n))
	require.NoError(t, err)
	return graphic(t, g)
}

func triangle(t testing.TB) *matroid.CircuitMatroid[int] { return mustCircuits(t, 3, []int{0, 1, 2}) }

// parallel builds the graph with the given [from, to] edges, parallel
// edges allowed, in order.
func parallel(t testing.TB, edges ...[2]string) *matroid.CircuitMatroid[int] {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return graphic(t, g)
}

// multigraph is 1=2 doubled plus the triangle 2-3-4.
func multigraph(t testing.TB) *matroid.CircuitMatroid[int] {
	t.Helper()
	return parallel(t, [2]string{"1", "2"}, [2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"}, [2]string{"4", "2"})
}

// doubledTriangle has every edge of a triangle twice, copies adjacent.
func doubledTriangle(t testing.TB) *matroid.CircuitMatroid[int] {
	t.Helper()
	return parallel(t, [2]string{"1", "2"}, [2]string{"1", "2"}, [2]string{"1", "3"}, [2]string{"1", "3"}, [2]string{"2", "3"}, [2]string{"2", "3"})
}

func uniform(t testing.TB, r, n int) *matroid.CircuitMatroid[int] {
	t.Helper()
	m, err := matroid.Uniform(r, n)
	require.NoError(t, err)
	return m
}

func fixtures(t testing.TB) []fixture {
	return []fixture{
		{"triangle", triangle(t), nil},
		{"U(3,4)", uniform(t, 3, 4), nil},
		{"U(1,3)", uniform(t, 1, 3), nil},
		{"U(2,2)", uniform(t, 2, 2), nil},
		{"K4", completeGraph(t, 4), nil},
		{"multigraph", multigraph(t), nil},
		{"doubled triangle", doubledTriangle(t), nil},
		{"C5", cycleGraph(t, 5), nil},
		{"K4 shuffled", completeGraph(t, 4), []algebra.Option{algebra.WithOrdering([]int{5, 3, 1, 0, 4, 2})}},
		{"U(3,4) shuffled", uniform(t, 3, 4), []algebra.Option{algebra.WithOrdering([]int{2, 0, 3, 1})}},
		{"multigraph shuffled", multigraph(t), []algebra.Option{algebra.WithOrdering([]int{4, 1, 3, 0, 2})}},
	}
}

func newQQ(t testing.TB, m matroid.Matroid[int], opts ...algebra.Option) *qqAlgebra {
	t.Helper()
	a, err := algebra.New[int, *big.Rat](qq, m, opts...)
	require.NoError(t, err)
	return a
}

// image formats e_S.
func image(t testing.TB, a *qqAlgebra, elems ...int) string {
	t.Helper()
	x, err := a.SubsetImage(elems)
	require.NoError(t, err)
	return a.Format(x)
}

func gen(t testing.TB, a *qqAlgebra, x int) algebra.Element[*big.Rat] {
	t.Helper()
	g, err := a.Generator(x)
	require.NoError(t, err)
	return g
}

func prod(t testing.TB, a *qqAlgebra, xs ...algebra.Element[*big.Rat]) algebra.Element[*big.Rat] {
	t.Helper()
	p, err := a.Prod(xs...)
	require.NoError(t, err)
	return p
}

func basisIndex(t testing.TB, a *qqAlgebra, elems ...int) int {
	t.Helper()
	i, ok := a.BasisIndex(elems)
	require.True(t, ok, "%v is not an NBC set", elems)
	return i
}

// subsets returns every subset of {0, …, n-1}, each ascending.
func subsets(n int) [][]int {
	var out [][]int
	for mask := 0; mask < 1<<n; mask++ {
		var s []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				s = append(s, i)
			}
		}
		out = append(out, s)
	}
	return out
}
