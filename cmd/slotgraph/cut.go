package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dijkstra"
	"github.com/katalvlaran/slotgraph/flow"
)

var flowAlgorithms = map[string]func(*cobra.Command, *core.Graph, core.NodeID, core.NodeID, flow.FlowOptions) (flow.Result, error){
	"dinic": func(cmd *cobra.Command, g *core.Graph, s, t core.NodeID, o flow.FlowOptions) (flow.Result, error) {
		return flow.Dinic(cmd.Context(), g, s, t, o)
	},
	"edmonds-karp": func(cmd *cobra.Command, g *core.Graph, s, t core.NodeID, o flow.FlowOptions) (flow.Result, error) {
		return flow.EdmondsKarp(cmd.Context(), g, s, t, o)
	},
	"ford-fulkerson": func(cmd *cobra.Command, g *core.Graph, s, t core.NodeID, o flow.FlowOptions) (flow.Result, error) {
		return flow.FordFulkerson(cmd.Context(), g, s, t, o)
	},
}

func newCutCmd(a *app) *cobra.Command {
	var (
		nodesPath, edgesPath string
		source, sink         int64
		algorithm            string
		euclidean            bool
	)
	cmd := &cobra.Command{
		Use:   "cut",
		Short: "Compute the maximum flow and minimum edge cut between two CSV node keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, ok := flowAlgorithms[algorithm]
			if !ok {
				return fmt.Errorf("--algorithm %q: want dinic, edmonds-karp or ford-fulkerson", algorithm)
			}
			g, keys, err := a.loadKeyedGraph(nodesPath, edgesPath)
			if err != nil {
				return err
			}
			s, ok := keys[source]
			if !ok {
				return fmt.Errorf("--source %d: %w", source, core.ErrUnknownNode)
			}
			t, ok := keys[sink]
			if !ok {
				return fmt.Errorf("--sink %d: %w", sink, core.ErrUnknownNode)
			}
			opts := flow.DefaultOptions()
			if euclidean {
				opts.Capacity = flow.CapacityFunc(dijkstra.EuclideanWeight(g))
			}
			res, err := run(cmd, g, s, t, opts)
			if err != nil {
				return err
			}

			keyOf := make(map[core.NodeID]int64, len(keys))
			for k, id := range keys {
				keyOf[id] = k
			}
			fmt.Fprintf(a.out, "max flow: %g\ncut: %d edges\n", res.Value, len(res.Cut))
			for _, e := range res.Cut {
				u, v, err := g.Endpoints(e)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "  %d-%d\n", keyOf[u], keyOf[v])
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&nodesPath, "nodes", "", "node CSV file")
	cmd.Flags().StringVar(&edgesPath, "edges", "", "edge CSV file")
	cmd.Flags().Int64Var(&source, "source", 0, "source node key")
	cmd.Flags().Int64Var(&sink, "sink", 0, "sink node key")
	cmd.Flags().StringVar(&algorithm, "algorithm", "dinic", "dinic, edmonds-karp or ford-fulkerson")
	cmd.Flags().BoolVar(&euclidean, "euclidean", false, "use edge length as capacity instead of 1")
	_ = cmd.MarkFlagRequired("nodes")
	_ = cmd.MarkFlagRequired("sink")

	return cmd
}
