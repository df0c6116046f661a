package algebra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/osalg/ring"
)

// Monomial is ±c·e_{x1}⋯e_{xk} over ground elements listed in ascending
// ordering position.
type Monomial[E comparable, T any] struct {
	Elements    []E
	Coefficient T
}

// Relation is the image ∂e_C of a circuit C in the exterior algebra:
// Σ_k ±e_{C∖c_k}. Together they generate the Orlik–Solomon ideal.
type Relation[E comparable, T any] struct {
	Circuit []E
	Terms   []Monomial[E, T]
}

// Relations returns one relation per circuit of the matroid, in the
// matroid's circuit order. With C = {c_0 < … < c_{k-1}} the term omitting
// c_m carries sign (-1)^{k+1+m}, so the leading term is positive for |C| odd.
// Circuits sharing a broken circuit each keep their own relation.
func (a *Algebra[E, T]) Relations() []Relation[E, T] {
	out := make([]Relation[E, T], 0, len(a.circuits))
	for _, c := range a.circuits {
		ranks := c.Ranks()
		k := len(ranks)
		rel := Relation[E, T]{Circuit: a.order.Elems(c)}
		for m, r := range ranks {
			rel.Terms = append(rel.Terms, Monomial[E, T]{
				Elements:    a.order.Elems(c.Without(r)),
				Coefficient: ring.Sign(a.ring, k+1+m),
			})
		}
		out = append(out, rel)
	}
	return out
}

// Evaluate reduces a relation (or any signed sum of monomials) in A(M).
// Every relation returned by Relations evaluates to zero.
func (a *Algebra[E, T]) Evaluate(terms []Monomial[E, T]) (Element[T], error) {
	out := Element[T]{}
	for k, t := range terms {
		s, err := a.order.Set(t.Elements)
		if err != nil {
			return nil, fmt.Errorf("Evaluate: term %d: %w", k, err)
		}
		r, err := a.reduce(s)
		if err != nil {
			return nil, fmt.Errorf("Evaluate: %w", err)
		}
		a.addScaled(out, t.Coefficient, r)
	}
	return out, nil
}

// FormatRelation renders a relation with generator names, e.g.
// "e0*e1 - e0*e2 + e1*e2".
func (a *Algebra[E, T]) FormatRelation(rel Relation[E, T]) string {
	var sb strings.Builder
	for k, t := range rel.Terms {
		a.writeCoefficient(&sb, k, t.Coefficient)
		if len(t.Elements) == 0 {
			sb.WriteByte('1')
		}
		for m, e := range t.Elements {
			if m > 0 {
				sb.WriteByte('*')
			}
			fmt.Fprintf(&sb, "e%v", e)
		}
	}
	return sb.String()
}
