// Package builder assembles deterministic core.Graph fixtures (complete
// graphs, cycles) whose edge numbering is part of the contract: edge IDs
// follow emission order, and the cycle matroid of the graph uses that order
// as its ground-set order.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates the graph,
// resolves the builder configuration and runs the constructors in order.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/osalg/core"
)

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrTooFewVertices indicates that a size parameter is below the
	// constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrConstructFailed indicates a constructor could not be applied.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned;
// no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
