package main

import (
	"fmt"

	"github.com/katalvlaran/bimatch/builder"
	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/graphfile"
	"github.com/katalvlaran/bimatch/internal/config"
)

// seedGraph fills g from the configured graph file or random generator. No seed is a no-op.
func seedGraph(g *core.Graph, seed config.Seed) error {
	switch {
	case seed.File != "":
		doc, err := graphfile.Load(seed.File)
		if err != nil {
			return err
		}
		if err = graphfile.Apply(doc, g); err != nil {
			return fmt.Errorf("seed %s: %w", seed.File, err)
		}
	case seed.Random != nil:
		r := seed.Random
		err := builder.Populate(g,
			[]builder.BuilderOption{builder.WithSeed(r.Seed)},
			builder.RandomBipartite(r.A, r.B, r.P),
		)
		if err != nil {
			return fmt.Errorf("seed random: %w", err)
		}
	}

	return nil
}
