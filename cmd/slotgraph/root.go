package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/tabular"
)

// app carries state shared by every subcommand.
type app struct {
	out, errOut io.Writer

	logLevel   string
	configPath string

	log *slog.Logger
	cfg core.Config
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "slotgraph",
		Short:         "Inspect and generate arena-backed graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML graph configuration file")

	root.AddCommand(
		newStatsCmd(a),
		newExportCmd(a),
		newGridCmd(a),
		newServeCmd(a),
		newCutCmd(a),
	)

	return root
}

// setup installs the logger and loads the graph configuration.
func (a *app) setup() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
		return fmt.Errorf("--log-level %q: %w", a.logLevel, err)
	}
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: lvl}))

	a.cfg = core.DefaultConfig()
	if a.configPath != "" {
		cfg, err := core.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log.Info("config loaded", "path", a.configPath)
	}

	return nil
}

// graphOptions applies the loaded config and logger, then any overrides.
func (a *app) graphOptions(extra ...core.GraphOption) []core.GraphOption {
	return append([]core.GraphOption{core.WithConfig(a.cfg), core.WithLogger(a.log)}, extra...)
}

// loadGraph imports a graph from node and edge CSV files.
func (a *app) loadGraph(nodesPath, edgesPath string) (*core.Graph, error) {
	g, _, err := a.loadKeyedGraph(nodesPath, edgesPath)

	return g, err
}

// loadKeyedGraph is loadGraph that also returns the CSV key of every node.
func (a *app) loadKeyedGraph(nodesPath, edgesPath string) (*core.Graph, map[int64]core.NodeID, error) {
	nodes, err := readFile(nodesPath, tabular.ReadNodesCSV)
	if err != nil {
		return nil, nil, err
	}
	edges := tabular.EdgeTable{}
	if edgesPath != "" {
		if edges, err = readFile(edgesPath, tabular.ReadEdgesCSV); err != nil {
			return nil, nil, err
		}
	}
	g, keys, err := tabular.Import(nodes, edges, a.graphOptions()...)
	if err != nil {
		return nil, nil, err
	}
	a.log.Info("graph loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, keys, nil
}

// saveGraph writes g as node and edge CSV files; "-" is standard output.
func (a *app) saveGraph(g *core.Graph, nodesPath, edgesPath string) error {
	nodes, edges := tabular.Export(g)
	if err := writeFile(a.out, nodesPath, func(w io.Writer) error { return tabular.WriteNodesCSV(w, nodes) }); err != nil {
		return err
	}

	return writeFile(a.out, edgesPath, func(w io.Writer) error { return tabular.WriteEdgesCSV(w, edges) })
}

func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return v, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

func writeFile(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
