package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slotgraph/core"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestExportThenStats(t *testing.T) {
	dir := t.TempDir()
	nodes, edges := filepath.Join(dir, "n.csv"), filepath.Join(dir, "e.csv")
	_, err := run(t, "export", "--shape", "grid", "--rows", "2", "--cols", "3", "--nodes", nodes, "--edges", edges)
	require.NoError(t, err)

	body, err := os.ReadFile(nodes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "key,x0,x1\n0,0,0\n1,1,0\n"))

	out, err := run(t, "stats", "--nodes", nodes, "--edges", edges)
	require.NoError(t, err)
	var rep statsReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 6, rep.Nodes)
	assert.Equal(t, 7, rep.Edges)
	assert.Equal(t, 2, rep.CoordinateDims)
	assert.Equal(t, 1, rep.Components)
	assert.False(t, rep.Acyclic)
	require.NotNil(t, rep.MSTWeight)
	assert.InDelta(t, 5.0, *rep.MSTWeight, 1e-12)
}

func TestExport_Stdout(t *testing.T) {
	out, err := run(t, "export", "--shape", "path", "-n", "3", "--scale", "2")
	require.NoError(t, err)
	assert.Equal(t, "key,x0,x1\n0,0,0\n1,2,0\n2,4,0\nsource,target\n0,1\n1,2\n", out)

	_, err = run(t, "export", "--shape", "hexagon")
	require.ErrorContains(t, err, "--shape")
	_, err = run(t, "export", "--shape", "cycle", "-n", "2")
	require.Error(t, err)
}

func TestStats_ConfigAndLogLevel(t *testing.T) {
	cfg := writeTemp(t, "g.yaml", "directed: true\n")
	nodes := writeTemp(t, "n.csv", "key\n1\n2\n3\n")
	edges := writeTemp(t, "e.csv", "source,target\n1,2\n2,3\n")

	out, err := run(t, "--config", cfg, "--log-level", "debug", "stats", "--nodes", nodes, "--edges", edges)
	require.NoError(t, err)
	var rep statsReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.Directed)
	assert.True(t, rep.Acyclic)
	assert.Zero(t, rep.CoordinateDims)

	_, err = run(t, "--log-level", "loud", "stats", "--nodes", nodes)
	require.Error(t, err)
	_, err = run(t, "stats", "--nodes", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	_, err = run(t, "stats")
	require.Error(t, err, "--nodes is required")
}

func TestGrid(t *testing.T) {
	raster := writeTemp(t, "r.txt", "1 1 0 0\n\n0 0 0 1\n")

	out, err := run(t, "grid", raster, "--bridge", "0,1")
	require.NoError(t, err)
	assert.Equal(t, "islands: 2\n  0: 2 cells from (0,0)\n  1: 1 cells from (3,1)\nbridge 0-1: 2 conversions over 4 cells\n", out)

	out, err = run(t, "grid", raster, "--conn", "8", "--skeleton-nodes", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "key,x0,x1\n0,0,0\n1,1,0\n2,3,1\nsource,target\n0,1\n")

	_, err = run(t, "grid", raster, "--conn", "6")
	require.ErrorContains(t, err, "--conn")
	_, err = run(t, "grid", raster, "--bridge", "0")
	require.Error(t, err)
	_, err = run(t, "grid", writeTemp(t, "bad.txt", "1 x\n"))
	require.Error(t, err)
}

func TestReadRaster(t *testing.T) {
	grid, err := readRaster(strings.NewReader(" 1  2\n3 4 \n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, grid)
}

func TestMetricsHandler(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNodes(5, nil)
	h, err := metricsHandler("roads", g)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `slotgraph_nodes{graph="roads"} 5`)

	_, err = metricsHandler("x", nil)
	require.Error(t, err)
}

func TestCut(t *testing.T) {
	// Two 3-4-5 triangles joined by the bridge 3-4 of length 6.
	nodes := writeTemp(t, "n.csv", "key,x0,x1\n1,0,0\n2,3,0\n3,3,4\n4,3,10\n5,6,10\n6,6,14\n")
	edges := writeTemp(t, "e.csv", "source,target\n1,2\n2,3\n3,1\n3,4\n4,5\n5,6\n6,4\n")

	for _, algo := range []string{"dinic", "edmonds-karp", "ford-fulkerson"} {
		out, err := run(t, "cut", "--nodes", nodes, "--edges", edges, "--source", "1", "--sink", "6", "--algorithm", algo)
		require.NoError(t, err, algo)
		assert.Equal(t, "max flow: 1\ncut: 1 edges\n  3-4\n", out, algo)
	}

	out, err := run(t, "cut", "--nodes", nodes, "--edges", edges, "--source", "1", "--sink", "6", "--euclidean")
	require.NoError(t, err)
	assert.Equal(t, "max flow: 6\ncut: 1 edges\n  3-4\n", out)

	_, err = run(t, "cut", "--nodes", nodes, "--edges", edges, "--source", "9", "--sink", "6")
	require.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = run(t, "cut", "--nodes", nodes, "--edges", edges, "--sink", "6", "--algorithm", "push-relabel")
	require.ErrorContains(t, err, "--algorithm")
}

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := rateLimit(ok, 0.001, 2)
	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	rec := httptest.NewRecorder()
	rateLimit(ok, 0, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWatchFiles_Reloads(t *testing.T) {
	nodes := writeTemp(t, "n.csv", "key\n1\n")
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- a.watchFiles(ctx, []string{nodes}, 10*time.Millisecond, func() error {
			reloads.Add(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool {
		_ = os.WriteFile(nodes, []byte("key\n1\n2\n"), 0o600)
		return reloads.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
