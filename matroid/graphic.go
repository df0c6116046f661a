package matroid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/osalg/core"
	"github.com/katalvlaran/osalg/subset"
)

// Graphic returns the cycle matroid of g. The ground set is the edge IDs of
// g in edge order ("e1", "e2", ...); circuits are the edge sets of simple
// cycles, including loops and pairs of parallel edges. Use Indexed to
// number the elements 0..n-1.
//
// Circuits are sorted by size, then lexicographically by ground-set rank.
//
// Errors: ErrInvalidParameter for a nil graph; neighbor lookup failures are
// wrapped.
// Complexity: proportional to the number of simple paths explored; intended
// for the small graphs that make sense as Orlik–Solomon inputs.
func Graphic(g *core.Graph) (*CircuitMatroid[string], error) {
	if g == nil {
		return nil, fmt.Errorf("Graphic: nil graph: %w", ErrInvalidParameter)
	}

	edges := g.Edges()
	ground := make([]string, len(edges))
	rank := make(map[string]int, len(edges))
	for i, e := range edges {
		ground[i] = e.ID
		rank[e.ID] = i
	}

	w := &cycleWalker{
		g:     g,
		order: make(map[string]int),
		seen:  make(map[string]struct{}),
	}
	verts := g.Vertices()
	for i, v := range verts {
		w.order[v] = i
	}
	for _, e := range edges {
		if e.From == e.To {
			w.record([]string{e.ID})
		}
	}
	for _, v := range verts {
		w.start = v
		w.onPath = map[string]bool{v: true}
		if err := w.visit(v, "", nil); err != nil {
			return nil, fmt.Errorf("Graphic: %w", err)
		}
	}

	found := make([]subset.Set, len(w.cycles))
	for i, c := range w.cycles {
		var s subset.Set
		for _, id := range c {
			s = s.With(rank[id])
		}
		found[i] = s
	}
	sort.Slice(found, func(a, b int) bool { return found[a].Less(found[b]) })

	circuits := make([][]string, len(found))
	for i, s := range found {
		for _, r := range s.Ranks() {
			circuits[i] = append(circuits[i], ground[r])
		}
	}

	return FromCircuits(ground, circuits)
}

// cycleWalker holds the DFS state of the cycle search. Each simple cycle is
// walked from its least vertex, once per direction; seen drops the second.
type cycleWalker struct {
	g      *core.Graph
	order  map[string]int // vertex → position in g.Vertices()
	start  string
	onPath map[string]bool
	seen   map[string]struct{}
	cycles [][]string
}

// visit extends the current path at vertex id; via is the edge used to
// reach id and path the edge IDs walked from start.
func (w *cycleWalker) visit(id, via string, path []string) error {
	incident, err := w.g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("Neighbors(%q): %w", id, err)
	}
	for _, e := range incident {
		if e.ID == via || e.From == e.To {
			continue
		}
		nbr := e.Other(id)
		switch {
		case nbr == w.start:
			w.record(append(append([]string(nil), path...), e.ID))
		case w.onPath[nbr] || w.order[nbr] < w.order[w.start]:
			continue
		default:
			w.onPath[nbr] = true
			if err = w.visit(nbr, e.ID, append(path, e.ID)); err != nil {
				return err
			}
			w.onPath[nbr] = false
		}
	}
	return nil
}

// record stores cycle unless its canonical signature was already seen.
func (w *cycleWalker) record(cycle []string) {
	sig, canon := canonical(cycle)
	if _, exists := w.seen[sig]; exists {
		return
	}
	w.seen[sig] = struct{}{}
	w.cycles = append(w.cycles, canon)
}

// canonical returns the comma-joined signature of an edge cycle and its edges
// in edge order. Rotations and reversals of a closed walk share one edge
// set, so sorting is the minimal form.
func canonical(cycle []string) (string, []string) {
	canon := append([]string(nil), cycle...)
	sort.Slice(canon, func(i, j int) bool { return core.EdgeLess(canon[i], canon[j]) })
	return strings.Join(canon, ","), canon
}
