// Command slotgraph inspects, generates and serves arena-backed graphs stored
// as CSV node/edge tables.
//
//	slotgraph export --shape grid --rows 3 --cols 4 --nodes n.csv --edges e.csv
//	slotgraph stats  --nodes n.csv --edges e.csv
//	slotgraph grid   raster.txt --conn 8 --skeleton-nodes n.csv --skeleton-edges e.csv
//	slotgraph serve  --nodes n.csv --edges e.csv --addr :9090
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
