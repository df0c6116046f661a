package algebra_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/osalg/algebra"
	"github.com/katalvlaran/osalg/builder"
	"github.com/katalvlaran/osalg/matroid"
	"github.com/katalvlaran/osalg/ring"
)

// ExampleNew builds the algebra of three lines through a point in the plane
// (the triangle circuit) and reduces a non-NBC monomial.
func ExampleNew() {
	m, err := matroid.FromCircuits([]int{0, 1, 2}, [][]int{{0, 1, 2}})
	if err != nil {
		panic(err)
	}
	a, err := algebra.New[int, *big.Rat](ring.Rationals{}, m)
	if err != nil {
		panic(err)
	}

	fmt.Println("dimension:", a.Dimension())
	fmt.Println("basis:", a.Basis())

	x, err := a.SubsetImage([]int{1, 2})
	if err != nil {
		panic(err)
	}
	fmt.Println("e1e2 =", a.Format(x))
	// Output:
	// dimension: 6
	// basis: [[] [0] [1] [2] [0 1] [0 2]]
	// e1e2 = -OS{0, 1} + OS{0, 2}
}

// ExampleAlgebra_Prod multiplies generators of the graphic matroid of K4,
// whose ground elements are the edge IDs e1..e6.
func ExampleAlgebra_Prod() {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Complete(4))
	if err != nil {
		panic(err)
	}
	m, err := matroid.Graphic(g)
	if err != nil {
		panic(err)
	}
	a, err := algebra.New[string, *big.Rat](ring.Rationals{}, m)
	if err != nil {
		panic(err)
	}

	gen := func(x string) algebra.Element[*big.Rat] {
		e, err := a.Generator(x)
		if err != nil {
			panic(err)
		}
		return e
	}
	p, err := a.Prod(gen("e4"), gen("e3"), gen("e5"))
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Format(p))
	fmt.Println(a.GradedDimensions())
	// Output:
	// -OS{e1, e3, e4} - OS{e1, e4, e5}
	// [1 6 11 6]
}
