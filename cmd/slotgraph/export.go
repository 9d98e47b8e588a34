package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slotgraph/builder"
	"github.com/katalvlaran/slotgraph/core"
)

// shapeParams holds the flags of `slotgraph export`.
type shapeParams struct {
	shape      string
	n, m       int
	rows, cols int
	p          float64
	seed       int64
	scale      float64
	jitter     float64
}

// constructor maps the --shape flag to a builder.Constructor.
func (s shapeParams) constructor() (builder.Constructor, error) {
	switch strings.ToLower(s.shape) {
	case "path":
		return builder.Path(s.n), nil
	case "cycle":
		return builder.Cycle(s.n), nil
	case "star":
		return builder.Star(s.n), nil
	case "wheel":
		return builder.Wheel(s.n), nil
	case "complete":
		return builder.Complete(s.n), nil
	case "bipartite":
		return builder.CompleteBipartite(s.n, s.m), nil
	case "grid":
		return builder.Grid(s.rows, s.cols), nil
	case "random":
		return builder.RandomSparse(s.n, s.p), nil
	}

	return nil, fmt.Errorf("--shape %q: want path, cycle, star, wheel, complete, bipartite, grid or random", s.shape)
}

func newExportCmd(a *app) *cobra.Command {
	var (
		s                    shapeParams
		nodesPath, edgesPath string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a fixture graph with 2-D layout and write it as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctor, err := s.constructor()
			if err != nil {
				return err
			}
			bopts := []builder.BuilderOption{builder.WithScale(s.scale), builder.WithSeed(s.seed)}
			if s.jitter > 0 {
				bopts = append(bopts, builder.WithJitter(s.jitter))
			}
			g, err := builder.BuildGraph(a.graphOptions(core.WithCoordinates(2)), bopts, ctor)
			if err != nil {
				return err
			}
			a.log.Info("fixture built", "shape", s.shape, "nodes", g.NodeCount(), "edges", g.EdgeCount())

			return a.saveGraph(g, nodesPath, edgesPath)
		},
	}
	f := cmd.Flags()
	f.StringVar(&s.shape, "shape", "path", "path, cycle, star, wheel, complete, bipartite, grid or random")
	f.IntVarP(&s.n, "size", "n", 8, "node count (first side for bipartite)")
	f.IntVar(&s.m, "size2", 4, "second side for bipartite")
	f.IntVar(&s.rows, "rows", 4, "grid rows")
	f.IntVar(&s.cols, "cols", 4, "grid columns")
	f.Float64Var(&s.p, "p", 0.2, "edge probability for random")
	f.Int64Var(&s.seed, "seed", 1, "random seed")
	f.Float64Var(&s.scale, "scale", 1, "layout scale")
	f.Float64Var(&s.jitter, "jitter", 0, "gaussian position jitter")
	f.StringVar(&nodesPath, "nodes", "-", "node CSV output, - for stdout")
	f.StringVar(&edgesPath, "edges", "-", "edge CSV output, - for stdout")

	return cmd
}
