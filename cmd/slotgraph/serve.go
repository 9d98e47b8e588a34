package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/slotgraph/guard"
	"github.com/katalvlaran/slotgraph/telemetry"
)

const shutdownTimeout = 5 * time.Second

// metricsHandler serves src's occupancy gauges on a private registry.
func metricsHandler(name string, src telemetry.StatsSource) (http.Handler, error) {
	c, err := telemetry.NewCollector(name, src)
	if err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()
	if err = reg.Register(c); err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return mux, nil
}

// rateLimit answers 429 once requests exceed rps with the given burst.
// rps <= 0 disables the limit.
func rateLimit(h http.Handler, rps float64, burst int) http.Handler {
	if rps <= 0 {
		return h
	}
	lim := rate.NewLimiter(rate.Limit(rps), max(burst, 1))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !lim.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func newServeCmd(a *app) *cobra.Command {
	var (
		nodesPath, edgesPath, addr, name string
		watch                            bool
		maxRPS                           float64
		burst                            int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load a CSV graph and expose its occupancy as Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(nodesPath, edgesPath)
			if err != nil {
				return err
			}
			shared, err := guard.New(g)
			if err != nil {
				return err
			}
			h, err := metricsHandler(name, shared)
			if err != nil {
				return err
			}
			h = rateLimit(h, maxRPS, burst)
			if watch {
				paths := []string{nodesPath}
				if edgesPath != "" {
					paths = append(paths, edgesPath)
				}
				reload := func() error {
					next, err := a.loadGraph(nodesPath, edgesPath)
					if err != nil {
						return err
					}
					return shared.Replace(next)
				}
				go func() {
					if err := a.watchFiles(cmd.Context(), paths, reloadDebounce, reload); err != nil {
						a.log.Error("watch stopped", "err", err)
					}
				}()
			}

			srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()
			a.log.Info("serving metrics", "addr", addr, "graph", name)

			select {
			case err = <-errc:
				return err
			case <-cmd.Context().Done():
			}
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err = srv.Shutdown(ctx); err != nil {
				return err
			}
			if err = <-errc; !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&nodesPath, "nodes", "", "node CSV file")
	f.StringVar(&edgesPath, "edges", "", "edge CSV file")
	f.StringVar(&addr, "addr", ":9090", "listen address")
	f.StringVar(&name, "name", "default", "value of the graph label")
	f.BoolVar(&watch, "watch", false, "reload the graph when the CSV files change")
	f.Float64Var(&maxRPS, "max-rps", 0, "limit /metrics requests per second (0: unlimited)")
	f.IntVar(&burst, "burst", 5, "request burst allowed above --max-rps")
	_ = cmd.MarkFlagRequired("nodes")

	return cmd
}
