package algebra

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/osalg/matroid"
	"github.com/katalvlaran/osalg/ring"
	"github.com/katalvlaran/osalg/subset"
)

// Algebra is the Orlik–Solomon algebra of a matroid over ring T, with ground
// elements of type E. Build it with New; it is safe for concurrent use.
type Algebra[E comparable, T any] struct {
	ring   ring.Ring[T]
	order    *Ordering[E]
	circuits []subset.Set // ranked, in matroid order
	broken   *BrokenCircuitTable

	basis []subset.Set   // NBC sets, sorted by subset.Set.Less
	index map[string]int // subset key → basis index

	prefix string
	log    *zap.Logger

	reductions *memo[Element[T]]
	products   *memo[Element[T]]
}

// New builds the Orlik–Solomon algebra of m over r.
//
// Implementation:
//   - Stage 1 (Validate): non-nil collaborators, options, ordering.
//   - Stage 2 (Tables): rank every circuit and build the broken-circuit table.
//   - Stage 3 (Basis): ask m for its NBC sets under the ordering and sort them.
//
// Errors: ErrNilRing, ErrNilMatroid, ErrOptionViolation, ErrInvalidOrdering,
// ErrInvalidSubset (a circuit or NBC set names an unknown element), or the
// matroid's own NoBrokenCircuitsSets error.
// Complexity: O(Σ|C| + #NBC · log #NBC) plus the cost of NoBrokenCircuitsSets.
func New[E comparable, T any](r ring.Ring[T], m matroid.Matroid[E], opts ...Option) (*Algebra[E, T], error) {
	if r == nil {
		return nil, fmt.Errorf("New: %w", ErrNilRing)
	}
	if m == nil {
		return nil, fmt.Errorf("New: %w", ErrNilMatroid)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	var ordering []E
	if o.ordering != nil {
		typed, ok := o.ordering.([]E)
		if !ok {
			return nil, fmt.Errorf("New: ordering of type %T for elements of type %T: %w",
				o.ordering, *new(E), ErrOptionViolation)
		}
		ordering = typed
	}

	order, err := NewOrdering(m.Groundset(), ordering)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	circuits := m.Circuits()
	ranked := make([]subset.Set, len(circuits))
	for i, c := range circuits {
		if ranked[i], err = order.Set(c); err != nil {
			return nil, fmt.Errorf("New: circuit #%d: %w", i, err)
		}
	}
	broken := NewBrokenCircuitTable(ranked, o.Logger)

	nbc, err := m.NoBrokenCircuitsSets(order.Elements())
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	basis := make([]subset.Set, len(nbc))
	for i, s := range nbc {
		if basis[i], err = order.Set(s); err != nil {
			return nil, fmt.Errorf("New: NBC set #%d: %w", i, err)
		}
	}
	sort.Slice(basis, func(i, j int) bool { return basis[i].Less(basis[j]) })
	index := make(map[string]int, len(basis))
	for i, s := range basis {
		if _, dup := index[s.Key()]; dup {
			return nil, fmt.Errorf("New: NBC set %v reported twice: %w", order.Elems(s), ErrInvalidSubset)
		}
		index[s.Key()] = i
	}

	a := &Algebra[E, T]{
		ring:       r,
		order:      order,
		circuits:   ranked,
		broken:     broken,
		basis:      basis,
		index:      index,
		prefix:     o.Prefix,
		log:        o.Logger,
		reductions: newMemo[Element[T]](),
		products:   newMemo[Element[T]](),
	}
	a.log.Debug("orlik-solomon algebra ready",
		zap.String("ring", r.Name()),
		zap.Int("groundset", order.Len()),
		zap.Int("circuits", len(circuits)),
		zap.Int("broken_circuits", broken.Len()),
		zap.Int("dimension", len(basis)))

	return a, nil
}

// Ring returns the coefficient ring.
func (a *Algebra[E, T]) Ring() ring.Ring[T] { return a.ring }

// Ordering returns the total order on the ground set.
func (a *Algebra[E, T]) Ordering() *Ordering[E] { return a.order }

// BrokenCircuits returns the broken-circuit table in rank space.
func (a *Algebra[E, T]) BrokenCircuits() *BrokenCircuitTable { return a.broken }

// Dimension returns the rank of A(M) as a free module: the number of NBC sets.
func (a *Algebra[E, T]) Dimension() int { return len(a.basis) }

// Basis returns the NBC sets in basis order, each ascending in the ordering.
func (a *Algebra[E, T]) Basis() [][]E {
	out := make([][]E, len(a.basis))
	for i, s := range a.basis {
		out[i] = a.order.Elems(s)
	}
	return out
}

// BasisSubset returns the NBC set indexing basis element i.
func (a *Algebra[E, T]) BasisSubset(i int) ([]E, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, fmt.Errorf("BasisSubset: %w", err)
	}
	return a.order.Elems(a.basis[i]), nil
}

// BasisIndex returns the index of the basis element e_S, or false when S is
// not an NBC set (or names unknown elements).
func (a *Algebra[E, T]) BasisIndex(elems []E) (int, bool) {
	s, err := a.order.Set(elems)
	if err != nil {
		return 0, false
	}
	i, ok := a.index[s.Key()]
	return i, ok
}

// DegreeOnBasis returns |S| for basis element e_S.
func (a *Algebra[E, T]) DegreeOnBasis(i int) (int, error) {
	if err := a.checkIndex(i); err != nil {
		return 0, fmt.Errorf("DegreeOnBasis: %w", err)
	}
	return a.basis[i].Len(), nil
}

// GradedDimensions returns dim A^d for d = 0 … top degree; the coefficients
// of the Poincaré polynomial. An algebra of dimension zero yields nil.
func (a *Algebra[E, T]) GradedDimensions() []int {
	if len(a.basis) == 0 {
		return nil
	}
	dims := make([]int, a.basis[len(a.basis)-1].Len()+1)
	for _, s := range a.basis {
		dims[s.Len()]++
	}
	return dims
}

// GradedBasis returns the basis indices of degree d in basis order.
func (a *Algebra[E, T]) GradedBasis(d int) []int {
	var out []int
	for i, s := range a.basis {
		if s.Len() == d {
			out = append(out, i)
		}
	}
	return out
}

// One returns the unit e_∅. It is zero when the matroid has a loop.
func (a *Algebra[E, T]) One() Element[T] {
	if i, ok := a.index[""]; ok {
		return Element[T]{i: a.ring.One()}
	}
	return Element[T]{}
}

// Zero returns the zero element.
func (a *Algebra[E, T]) Zero() Element[T] { return Element[T]{} }

// Monomial returns the basis element with index i.
func (a *Algebra[E, T]) Monomial(i int) (Element[T], error) {
	if err := a.checkIndex(i); err != nil {
		return nil, fmt.Errorf("Monomial: %w", err)
	}
	return Element[T]{i: a.ring.One()}, nil
}

// Generator returns e_x reduced to the basis.
func (a *Algebra[E, T]) Generator(x E) (Element[T], error) {
	g, err := a.SubsetImage([]E{x})
	if err != nil {
		return nil, fmt.Errorf("Generator: %w", err)
	}
	return g, nil
}

// AlgebraGenerators maps every ground element x to e_x.
func (a *Algebra[E, T]) AlgebraGenerators() (map[E]Element[T], error) {
	out := make(map[E]Element[T], a.order.Len())
	for _, x := range a.order.elems {
		g, err := a.Generator(x)
		if err != nil {
			return nil, err
		}
		out[x] = g
	}
	return out, nil
}

// Stats reports the memo table sizes and hit counts.
func (a *Algebra[E, T]) Stats() Stats {
	return Stats{Reductions: a.reductions.stats(), Products: a.products.stats()}
}

func (a *Algebra[E, T]) checkIndex(i int) error {
	if i < 0 || i >= len(a.basis) {
		return fmt.Errorf("index %d for dimension %d: %w", i, len(a.basis), ErrOutOfRange)
	}
	return nil
}
