package builder_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/osalg/builder"
	"github.com/katalvlaran/osalg/core"
)

// endpoints lists the edges of g as "u-v" in edge order.
func endpoints(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.From+"-"+e.To)
	}
	return out
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
	assert.Equal(t, []string{"0-1", "0-2", "0-3", "1-2", "1-3", "2-3"}, endpoints(g))

	g, err = builder.BuildGraph(nil, nil, builder.Complete(1))
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	_, err = builder.BuildGraph(nil, nil, builder.Complete(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"A-B", "B-C", "C-D", "D-A"}, endpoints(g))

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuildGraph_Compose(t *testing.T) {
	// K3 plus C3 on the same vertices doubles every edge.
	_, err := builder.BuildGraph(nil, nil, builder.Complete(3), builder.Cycle(3))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	g, err := builder.BuildGraph([]core.GraphOption{core.WithMultiEdges()}, nil,
		builder.Complete(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0-1", "0-2", "1-2", "0-1", "1-2", "2-0"}, endpoints(g))

	_, err = builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWithIDScheme(t *testing.T) {
	name := func(i int) string { return "v" + strconv.Itoa(i+1) }
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(name)}, builder.Complete(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"v1-v2"}, endpoints(g))

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
}
