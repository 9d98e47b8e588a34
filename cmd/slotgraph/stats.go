package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dfs"
	"github.com/katalvlaran/slotgraph/prim_kruskal"
)

// statsReport is the YAML document printed by `slotgraph stats`.
type statsReport struct {
	Directed       bool `yaml:"directed"`
	Nodes          int  `yaml:"nodes"`
	Edges          int  `yaml:"edges"`
	CoordinateDims int  `yaml:"coordinate_dims"`
	Components     int  `yaml:"components"`
	Acyclic        bool `yaml:"acyclic"`
	NodeCapacity   int  `yaml:"node_capacity"`
	EdgeCapacity   int  `yaml:"edge_capacity"`

	// MSTWeight is set for connected undirected graphs only.
	MSTWeight *float64 `yaml:"mst_weight,omitempty"`
}

func buildReport(g *core.Graph) (statsReport, error) {
	comps, err := dfs.ConnectedComponents(g)
	if err != nil {
		return statsReport{}, err
	}
	cyclic, _, err := dfs.FindCycle(g)
	if err != nil {
		return statsReport{}, err
	}
	st := g.Stats()

	rep := statsReport{
		Directed:       st.Directed,
		Nodes:          st.Nodes,
		Edges:          st.Edges,
		CoordinateDims: st.CoordinateDims,
		Components:     len(comps),
		Acyclic:        !cyclic,
		NodeCapacity:   st.NodeCapacity,
		EdgeCapacity:   st.EdgeCapacity,
	}
	if !st.Directed && len(comps) == 1 {
		_, w, err := prim_kruskal.Compute(g)
		if err != nil {
			return statsReport{}, err
		}
		rep.MSTWeight = &w
	}

	return rep, nil
}

func newStatsCmd(a *app) *cobra.Command {
	var nodesPath, edgesPath string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print size, connectivity and buffer occupancy of a CSV graph as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(nodesPath, edgesPath)
			if err != nil {
				return err
			}
			rep, err := buildReport(g)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(a.out)
			enc.SetIndent(2)
			if err = enc.Encode(rep); err != nil {
				return err
			}

			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&nodesPath, "nodes", "", "node CSV file")
	cmd.Flags().StringVar(&edgesPath, "edges", "", "edge CSV file")
	_ = cmd.MarkFlagRequired("nodes")

	return cmd
}
