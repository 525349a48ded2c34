package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/pcstfast"
	"github.com/lvlath-labs/pcstfast/internal/config"
)

func TestLoadFromReader_DefaultsAndValues(t *testing.T) {
	content := []byte(`
vertices:
  - prize: 0
  - prize: 2
  - prize: 2
edges:
  - u: 0
    v: 1
    cost: 1
  - u: 1
    v: 2
    cost: 1
solver:
  num_clusters: 1
`)
	cfg, err := config.LoadFromReader("yaml", content)
	require.NoError(t, err)

	assert.Len(t, cfg.Vertices, 3)
	assert.Len(t, cfg.Edges, 2)
	assert.Equal(t, -1, cfg.Solver.Root)
	assert.Equal(t, "strong", cfg.Solver.Pruning)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	content := `
vertices:
  - prize: 1
  - prize: 1
edges:
  - u: 0
    v: 1
    cost: 0.5
solver:
  root: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Solver.Root)
}

func TestValidate_RootOutOfRange(t *testing.T) {
	cfg, err := config.LoadFromReader("yaml", []byte(`
vertices:
  - prize: 1
solver:
  root: 5
`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_UnknownPruning(t *testing.T) {
	cfg, err := config.LoadFromReader("yaml", []byte(`
vertices:
  - prize: 1
solver:
  pruning: bogus
`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pruning")
	assert.Nil(t, cfg)
}

func TestValidate_NoVertices(t *testing.T) {
	cfg, err := config.LoadFromReader("yaml", []byte(`edges: []`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestBuildGraphAndSolverOptions(t *testing.T) {
	cfg, err := config.LoadFromReader("yaml", []byte(`
vertices:
  - prize: 0
  - prize: 2
  - prize: 2
edges:
  - u: 0
    v: 1
    cost: 1
  - u: 1
    v: 2
    cost: 1
solver:
  num_clusters: 1
  pruning: none
`))
	require.NoError(t, err)

	g, err := cfg.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 2, g.NumEdges())

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	assert.NotEmpty(t, opts)
}

func TestFormatResultYAML(t *testing.T) {
	doc, err := config.FormatResultYAML(pcst.Result{Vertices: []int{0, 2}, Edges: []int{1}})
	require.NoError(t, err)
	assert.Contains(t, string(doc), "vertices:")
	assert.Contains(t, string(doc), "edges:")
}
