package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/osalg/algebra"
	"github.com/katalvlaran/osalg/invariant"
	"github.com/katalvlaran/osalg/linalg"
)

// run calls a subcommand handler with its output captured.
func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	logger = zap.NewNop()
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	err := fn(cmd, args)
	return out.String(), err
}

func TestBasisCmd(t *testing.T) {
	writeConfig(t, triangleYAML)
	out, err := run(t, runBasis)
	require.NoError(t, err)
	assert.Equal(t, "ring: QQ\n"+
		"dimension: 6\n"+
		"graded: [1 3 2]\n"+
		"broken circuits: 1\n"+
		"   0  OS{}\n"+
		"   1  OS{a}\n"+
		"   2  OS{b}\n"+
		"   3  OS{c}\n"+
		"   4  OS{a, b}\n"+
		"   5  OS{a, c}\n", out)
}

func TestBasisCmd_K4(t *testing.T) {
	writeConfig(t, `
ring: BN254
graph:
  - [p, q]
  - [p, r]
  - [p, s]
  - [q, r]
  - [q, s]
  - [r, s]
`)
	out, err := run(t, runBasis)
	require.NoError(t, err)
	assert.Contains(t, out, "ring: BN254\n")
	assert.Contains(t, out, "dimension: 24\n")
	assert.Contains(t, out, "graded: [1 6 11 6]\n")
}

func TestReduceCmd(t *testing.T) {
	writeConfig(t, triangleYAML)
	out, err := run(t, runReduce, "c", "b")
	require.NoError(t, err)
	assert.Equal(t, "-OS{a, b} + OS{a, c}\n", out)

	out, err = run(t, runReduce)
	require.NoError(t, err)
	assert.Equal(t, "OS{}\n", out)

	out, err = run(t, runReduce, "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, err = run(t, runReduce, "z")
	assert.ErrorIs(t, err, algebra.ErrInvalidSubset)
}

func TestReduceCmd_RingsAndOptions(t *testing.T) {
	tests := []struct {
		name string
		head string
		want string
	}{
		{"prime field", "ring: GF(7)\n", "6*OS{a, b} + OS{a, c}\n"},
		{"m31", "ring: m31\n", "2147483646*OS{a, b} + OS{a, c}\n"},
		{"integers", "ring: ZZ\n", "-OS{a, b} + OS{a, c}\n"},
		{"prefix", "prefix: X\n", "-X{a, b} + X{a, c}\n"},
		{"ordering", "ordering: [c, b, a]\n", "OS{c, b}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			writeConfig(t, tc.head+triangleYAML)
			out, err := run(t, runReduce, "b", "c")
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestProductCmd(t *testing.T) {
	writeConfig(t, triangleYAML)
	tests := []struct {
		left, right string
		want        string
	}{
		{"c", "b", "OS{a, b} - OS{a, c}\n"},
		{"b", "c", "-OS{a, b} + OS{a, c}\n"},
		{"a,b", "c", "0\n"},
		{"", "b", "OS{b}\n"},
		{"{}", "{}", "OS{}\n"},
		{"a", "a", "0\n"},
	}
	for _, tc := range tests {
		out, err := run(t, runProduct, tc.left, tc.right)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out, "%s · %s", tc.left, tc.right)
	}

	_, err := run(t, runProduct, "a")
	assert.Error(t, err)
	_, err = run(t, runProduct, "a,a", "b")
	assert.ErrorIs(t, err, algebra.ErrInvalidSubset)
}

func TestRelationsCmd(t *testing.T) {
	writeConfig(t, triangleYAML)
	out, err := run(t, runRelations)
	require.NoError(t, err)
	assert.Equal(t, "eb*ec - ea*ec + ea*eb\n", out)

	writeConfig(t, "uniform: {rank: 2, size: 4}\n")
	out, err = run(t, runRelations)
	require.NoError(t, err)
	// {0,2,3} and {1,2,3} share the broken circuit {2,3}; both are listed.
	assert.Equal(t, 4, bytes.Count([]byte(out), []byte("\n")))
}

func TestInvariantCmd(t *testing.T) {
	writeConfig(t, triangleYAML)
	for _, p := range []int{1, 3} {
		parallelism, checkClosed = p, true
		out, err := run(t, runInvariant)
		require.NoError(t, err)
		assert.Equal(t, "dimension: 2\n"+
			"   0  degree 0  OS{}\n"+
			"   1  degree 1  OS{a} + OS{b} + OS{c}\n", out)
	}
	parallelism, checkClosed = 1, false

	writeConfig(t, "ring: ZZ\n"+triangleYAML)
	_, err := run(t, runInvariant)
	assert.ErrorIs(t, err, invariant.ErrNotField)
}

func TestAomotoCmd(t *testing.T) {
	writeConfig(t, triangleYAML)
	out, err := run(t, runAomoto, "-2", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "omega: -2*OS{a} + OS{b} + OS{c}\n"+
		"dimensions: [1 3 2]\n"+
		"betti: [0 1 1]\n", out)

	out, err = run(t, runAomoto, "1", "0", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "betti: [0 0 0]\n")

	_, err = run(t, runAomoto, "1", "2")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = run(t, runAomoto, "1", "x", "2")
	assert.Error(t, err)
	_, err = run(t, runAomoto, "0", "0", "0")
	assert.ErrorIs(t, err, algebra.ErrNotHomogeneous)

	writeConfig(t, "ring: ZZ\n"+triangleYAML)
	_, err = run(t, runAomoto, "-2", "1", "1")
	assert.ErrorIs(t, err, linalg.ErrNotField)
}

func TestNewEngine_Rings(t *testing.T) {
	cfg, err := ParseConfig([]byte(triangleYAML))
	require.NoError(t, err)
	for _, name := range []string{"", "qq", "ZZ", "GF(5)", "BabyBear", "bn254"} {
		cfg.Ring = name
		_, err := newEngine(cfg, zap.NewNop())
		assert.NoError(t, err, name)
	}
	for _, name := range []string{"GF(8)", "GF(x)", "RR"} {
		cfg.Ring = name
		_, err := newEngine(cfg, zap.NewNop())
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}

	cfg.Ring = ""
	cfg.Ordering = []string{"a", "b"}
	_, err = newEngine(cfg, zap.NewNop())
	assert.ErrorIs(t, err, algebra.ErrInvalidOrdering)
}

func TestRootCmd(t *testing.T) {
	path := writeConfig(t, triangleYAML)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--matroid", path, "reduce", "b", "c"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "-OS{a, b} + OS{a, c}\n", out.String())
}

func TestSplitElements(t *testing.T) {
	assert.Nil(t, splitElements(""))
	assert.Nil(t, splitElements(" {} "))
	assert.Equal(t, []string{"a", "b"}, splitElements("a, b"))
}
