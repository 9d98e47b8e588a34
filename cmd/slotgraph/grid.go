package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slotgraph/gridgraph"
)

// readRaster parses whitespace-separated integers, one grid row per line.
// Blank lines are skipped.
func readRaster(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}

	return grid, sc.Err()
}

func newGridCmd(a *app) *cobra.Command {
	var (
		conn, threshold      int
		bridge               []int
		nodesPath, edgesPath string
	)
	cmd := &cobra.Command{
		Use:   "grid RASTER",
		Short: "Find islands in an integer raster and extract its land skeleton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readFile(args[0], readRaster)
			if err != nil {
				return err
			}
			opts := gridgraph.GridOptions{LandThreshold: threshold, Conn: gridgraph.Conn4}
			switch conn {
			case 4:
			case 8:
				opts.Conn = gridgraph.Conn8
			default:
				return fmt.Errorf("--conn %d: want 4 or 8", conn)
			}
			gg, err := gridgraph.NewGridGraph(values, opts)
			if err != nil {
				return err
			}

			comps := gg.ConnectedComponents()
			fmt.Fprintf(a.out, "islands: %d\n", len(comps))
			for i, c := range comps {
				x, y := gg.Coordinate(c[0])
				fmt.Fprintf(a.out, "  %d: %d cells from (%d,%d)\n", i, len(c), x, y)
			}

			if len(bridge) > 0 {
				if len(bridge) != 2 {
					return fmt.Errorf("--bridge wants two island indices, got %d", len(bridge))
				}
				path, cost, err := gg.ExpandIsland(bridge[0], bridge[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "bridge %d-%d: %d conversions over %d cells\n", bridge[0], bridge[1], cost, len(path))
			}

			if nodesPath == "" {
				return nil
			}
			g, _, err := gg.ToGraph(a.graphOptions()...)
			if err != nil {
				return err
			}

			return a.saveGraph(g, nodesPath, edgesPath)
		},
	}
	f := cmd.Flags()
	f.IntVar(&conn, "conn", 4, "connectivity: 4 or 8")
	f.IntVar(&threshold, "threshold", 1, "minimum land value")
	f.IntSliceVar(&bridge, "bridge", nil, "two island indices to join with the fewest conversions")
	f.StringVar(&nodesPath, "skeleton-nodes", "", "write the land skeleton nodes as CSV, - for stdout")
	f.StringVar(&edgesPath, "skeleton-edges", "-", "skeleton edge CSV output, - for stdout")

	return cmd
}
