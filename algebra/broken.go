package algebra

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/osalg/subset"
)

// BrokenCircuit is a circuit with its smallest element removed, together with
// that element (the pivot). Both are in rank space.
type BrokenCircuit struct {
	Set   subset.Set
	Pivot int
}

// BrokenCircuitTable maps broken circuits to pivots. Lookups scan entries in
// the order circuits first produced them. Read-only after construction.
type BrokenCircuitTable struct {
	entries []BrokenCircuit
}

// NewBrokenCircuitTable builds the table from circuits in rank space.
// Two circuits sharing a broken circuit keep the first entry's position and
// the last circuit's pivot; the overwrite is logged at warn level.
// Empty circuits are ignored. A nil logger is allowed.
func NewBrokenCircuitTable(circuits []subset.Set, log *zap.Logger) *BrokenCircuitTable {
	if log == nil {
		log = zap.NewNop()
	}
	t := &BrokenCircuitTable{entries: make([]BrokenCircuit, 0, len(circuits))}
	pos := make(map[string]int, len(circuits))
	for _, c := range circuits {
		pivot, ok := c.Min()
		if !ok {
			continue
		}
		bc := c.Without(pivot)
		if at, seen := pos[bc.Key()]; seen {
			log.Warn("broken circuit shared by several circuits; keeping last pivot",
				zap.Stringer("broken_circuit", bc),
				zap.Int("previous_pivot", t.entries[at].Pivot),
				zap.Int("pivot", pivot))
			t.entries[at].Pivot = pivot
			continue
		}
		pos[bc.Key()] = len(t.entries)
		t.entries = append(t.entries, BrokenCircuit{Set: bc, Pivot: pivot})
	}
	return t
}

// Find returns the first broken circuit contained in s.
func (t *BrokenCircuitTable) Find(s subset.Set) (BrokenCircuit, bool) {
	for _, bc := range t.entries {
		if bc.Set.IsSubsetOf(s) {
			return bc, true
		}
	}
	return BrokenCircuit{}, false
}

// Entries returns a copy of the table in lookup order.
func (t *BrokenCircuitTable) Entries() []BrokenCircuit {
	return append([]BrokenCircuit(nil), t.entries...)
}

// Len returns the number of distinct broken circuits.
func (t *BrokenCircuitTable) Len() int { return len(t.entries) }
