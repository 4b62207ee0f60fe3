package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"ratiocycle/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load("does/not/exist.yaml")
	require.NoError(t, err)
	require.Equal(t, "min", cfg.Problem.Objective)
	require.Equal(t, 8080, cfg.Metrics.Port)
}

func TestLoad_RejectsBadObjective(t *testing.T) {
	t.Setenv("RATIOCYCLE_OBJECTIVE", "sideways")
	_, err := config.Load("does/not/exist.yaml")
	require.Error(t, err)
}

func TestLoadProblem_FillsDefaultsAndBuildsGraph(t *testing.T) {
	g, err := config.LoadProblem("../../testdata/problem.yaml")
	require.NoError(t, err)
	require.Equal(t, 4, g.NumNodes())
	require.Equal(t, 4, g.NumEdges())

	for _, e := range g.Edges("3") {
		require.Equal(t, float64(-7), e.Edge.Attrs.Cost())
		require.Equal(t, float64(1), e.Edge.Attrs.Time())
	}
}

func TestLoadProblem_MissingFile(t *testing.T) {
	_, err := config.LoadProblem("does/not/exist.yaml")
	require.Error(t, err)
}

func TestLoadProblem_RejectsEmptyEdgeList(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/empty.yaml"
	require.NoError(t, os.WriteFile(path, []byte("edges: []\n"), 0o644))

	_, err := config.LoadProblem(path)
	require.Error(t, err)
}
