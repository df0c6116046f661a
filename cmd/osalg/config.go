package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/osalg/core"
	"github.com/katalvlaran/osalg/invariant"
	"github.com/katalvlaran/osalg/matroid"
)

// ErrInvalidConfig is returned for a matroid description that cannot be used.
var ErrInvalidConfig = errors.New("osalg: invalid matroid description")

// Config is a YAML matroid description. Exactly one of Circuits, Uniform or
// Graph defines the matroid.
//
//	ring: GF(7)
//	groundset: [a, b, c]
//	circuits:
//	  - [a, b, c]
//	group:
//	  - {a: b, b: c, c: a}
type Config struct {
	// Ring selects the coefficients: QQ (default), ZZ, GF(p), M31, BabyBear, BN254.
	Ring string `yaml:"ring"`

	// Prefix labels basis monomials. Default: OS.
	Prefix string `yaml:"prefix"`

	// Groundset lists the elements in their natural order. With Uniform or
	// Graph it relabels elements by position; otherwise it defaults to the
	// circuit elements in order of first appearance. Unlabelled uniform
	// elements are 0..n-1 and unlabelled graph edges are e1..en.
	Groundset []string `yaml:"groundset"`

	Circuits [][]string     `yaml:"circuits"`
	Uniform  *UniformConfig `yaml:"uniform"`
	Graph    [][]string     `yaml:"graph"` // edges as [from, to]

	// Ordering overrides the ground-set order used for broken circuits.
	Ordering []string `yaml:"ordering"`

	// Group lists permutation generators by their non-fixed points.
	Group []map[string]string `yaml:"group"`
}

// UniformConfig describes U(rank, size).
type UniformConfig struct {
	Rank int `yaml:"rank"`
	Size int `yaml:"size"`
}

// LoadConfig reads and validates a description file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a description. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse description: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the structural constraints that do not need the matroid.
func (c *Config) Validate() error {
	sources := 0
	if len(c.Circuits) > 0 {
		sources++
	}
	if c.Uniform != nil {
		sources++
	}
	if len(c.Graph) > 0 {
		sources++
	}
	if sources == 0 && len(c.Groundset) == 0 {
		return fmt.Errorf("%w: one of circuits, uniform or graph is required", ErrInvalidConfig)
	}
	if sources > 1 {
		return fmt.Errorf("%w: circuits, uniform and graph are mutually exclusive", ErrInvalidConfig)
	}
	for i, e := range c.Graph {
		if len(e) != 2 {
			return fmt.Errorf("%w: graph edge #%d has %d endpoints", ErrInvalidConfig, i, len(e))
		}
	}
	if c.Uniform != nil && len(c.Groundset) > 0 && len(c.Groundset) != c.Uniform.Size {
		return fmt.Errorf("%w: groundset has %d labels for U(%d,%d)",
			ErrInvalidConfig, len(c.Groundset), c.Uniform.Rank, c.Uniform.Size)
	}
	if len(c.Graph) > 0 && len(c.Groundset) > 0 && len(c.Groundset) != len(c.Graph) {
		return fmt.Errorf("%w: groundset has %d labels for %d edges",
			ErrInvalidConfig, len(c.Groundset), len(c.Graph))
	}
	return nil
}

// Matroid builds the described matroid over string labels.
func (c *Config) Matroid() (*matroid.CircuitMatroid[string], error) {
	switch {
	case c.Uniform != nil:
		m, err := matroid.Uniform(c.Uniform.Rank, c.Uniform.Size)
		if err != nil {
			return nil, err
		}
		return relabel(m, c.Groundset)
	case len(c.Graph) > 0:
		g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
		for i, e := range c.Graph {
			if _, err := g.AddEdge(e[0], e[1]); err != nil {
				return nil, fmt.Errorf("%w: graph edge #%d: %w", ErrInvalidConfig, i, err)
			}
		}
		m, err := matroid.Graphic(g)
		if err != nil {
			return nil, err
		}
		if len(c.Groundset) == 0 {
			return m, nil
		}
		return relabel(matroid.Indexed(m), c.Groundset)
	}

	ground := c.Groundset
	if len(ground) == 0 {
		seen := make(map[string]bool)
		for _, circ := range c.Circuits {
			for _, e := range circ {
				if !seen[e] {
					seen[e] = true
					ground = append(ground, e)
				}
			}
		}
	}
	return matroid.FromCircuits(ground, c.Circuits)
}

// Permutations returns the group generators.
func (c *Config) Permutations() []invariant.Permutation[string] {
	out := make([]invariant.Permutation[string], len(c.Group))
	for i, g := range c.Group {
		p := make(invariant.Permutation[string], len(g))
		for k, v := range g {
			p[k] = v
		}
		out[i] = p
	}
	return out
}

// relabel renames the elements 0..n-1 of m; without labels the indices are used.
func relabel(m *matroid.CircuitMatroid[int], labels []string) (*matroid.CircuitMatroid[string], error) {
	name := strconv.Itoa
	if len(labels) > 0 {
		name = func(i int) string { return labels[i] }
	}
	return matroid.Relabel(m, name)
}
