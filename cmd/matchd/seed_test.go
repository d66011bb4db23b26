package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/builder"
	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/internal/config"
)

func TestSeedGraph(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		g := core.NewGraph()
		require.NoError(t, seedGraph(g, config.Seed{}))
		assert.Zero(t, g.NodeCount())
	})

	t.Run("file", func(t *testing.T) {
		g := core.NewGraph()
		path := filepath.Join("..", "..", "graphfile", "testdata", "square.yaml")
		require.NoError(t, seedGraph(g, config.Seed{File: path}))
		assert.Equal(t, 4, g.NodeCount())
		require.NoError(t, g.CheckInvariants())
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, seedGraph(core.NewGraph(), config.Seed{File: "nope.yaml"}))
	})

	t.Run("random is reproducible", func(t *testing.T) {
		seed := config.Seed{Random: &config.RandomSeed{A: 6, B: 5, P: 0.4, Seed: 11}}
		g1, g2 := core.NewGraph(), core.NewGraph()
		require.NoError(t, seedGraph(g1, seed))
		require.NoError(t, seedGraph(g2, seed))
		assert.Equal(t, 11, g1.NodeCount())
		assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	})

	t.Run("random rejects bad probability", func(t *testing.T) {
		seed := config.Seed{Random: &config.RandomSeed{A: 2, B: 2, P: 2}}
		require.ErrorIs(t, seedGraph(core.NewGraph(), seed), builder.ErrInvalidProbability)
	})
}
