package config

import (
	"bytes"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lvlath-labs/pcstfast"
	"github.com/lvlath-labs/pcstfast/graph"
)

// VertexConfig is one input vertex: its prize, in insertion order.
type VertexConfig struct {
	Prize float64 `mapstructure:"prize"`
}

// EdgeConfig is one input edge.
type EdgeConfig struct {
	U    int     `mapstructure:"u"`
	V    int     `mapstructure:"v"`
	Cost float64 `mapstructure:"cost"`
}

// SolverConfig mirrors pcst.Options' fields as config-file keys.
type SolverConfig struct {
	Root        int    `mapstructure:"root"`
	NumClusters int    `mapstructure:"num_clusters"`
	Pruning     string `mapstructure:"pruning"`
	Verbosity   int    `mapstructure:"verbosity"`
}

// Config is the full shape of a pcst CLI configuration file: a graph
// description plus the solver options to run it with.
type Config struct {
	Vertices []VertexConfig `mapstructure:"vertices"`
	Edges    []EdgeConfig   `mapstructure:"edges"`
	Solver   SolverConfig   `mapstructure:"solver"`
}

// Load reads a Config from configPath (YAML, JSON or TOML, by extension).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads a Config of the given configType ("yaml", "json",
// ...) from raw content, useful for tests that avoid touching disk.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("solver.root", -1)
	v.SetDefault("solver.num_clusters", 1)
	v.SetDefault("solver.pruning", "strong")
	v.SetDefault("solver.verbosity", 0)
}

// Validate checks, before a solve is ever attempted, that at least one
// vertex is given, that solver.root is below the vertex count, and that
// solver.pruning names a known policy. The remaining pcst.Options
// constraints (num_clusters >= 1, no negative root other than -1) are
// checked by Solve.
func (c *Config) Validate() error {
	if len(c.Vertices) == 0 {
		return fmt.Errorf("at least one vertex is required")
	}
	if c.Solver.Root >= len(c.Vertices) {
		return fmt.Errorf("solver.root %d is out of range for %d vertices", c.Solver.Root, len(c.Vertices))
	}
	if _, err := pcst.ParsePruning(c.Solver.Pruning); err != nil {
		return fmt.Errorf("solver.pruning: %w", err)
	}

	return nil
}

// BuildGraph assembles a *graph.Graph from the config's vertex and edge
// blocks, in file order.
func (c *Config) BuildGraph() (*graph.Graph, error) {
	g := graph.New()
	for _, vc := range c.Vertices {
		if _, err := g.AddVertex(vc.Prize); err != nil {
			return nil, fmt.Errorf("failed to add vertex: %w", err)
		}
	}
	for i, ec := range c.Edges {
		if _, err := g.AddEdge(ec.U, ec.V, ec.Cost); err != nil {
			return nil, fmt.Errorf("failed to add edge %d: %w", i, err)
		}
	}

	return g, nil
}

// SolverOptions converts the config's solver block into pcst.Options.
func (c *Config) SolverOptions() ([]pcst.Option, error) {
	pruning, err := pcst.ParsePruning(c.Solver.Pruning)
	if err != nil {
		return nil, err
	}

	opts := []pcst.Option{
		pcst.WithPruning(pruning),
		pcst.WithVerbosity(c.Solver.Verbosity),
	}
	if c.Solver.Root >= 0 {
		opts = append(opts, pcst.WithRoot(c.Solver.Root))
	} else {
		opts = append(opts, pcst.WithNumClusters(c.Solver.NumClusters))
	}

	return opts, nil
}

// ResultYAML is the YAML-serializable shape of a pcst.Result, used by the
// CLI's --output yaml mode so scripts can consume a solve's result without
// scraping the human-readable text format.
type ResultYAML struct {
	Vertices []int `yaml:"vertices"`
	Edges    []int `yaml:"edges"`
}

// FormatResultYAML renders r as a YAML document via gopkg.in/yaml.v3, the
// same library Viper uses internally to parse config files, here exercised
// directly for output rather than input.
func FormatResultYAML(r pcst.Result) ([]byte, error) {
	out, err := yaml.Marshal(ResultYAML{Vertices: r.Vertices, Edges: r.Edges})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result as yaml: %w", err)
	}

	return out, nil
}
