// Command lvroute loads a GeoJSON road network, builds routing graphs from it
// and cross-validates shortest-path engines against each other.
//
//	lvroute validate roads.geojson --queries 500
//	lvroute stats roads.geojson
//	lvroute dedup roads.geojson -o resolved.geojson
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

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lvroute:", err)
		stop()
		os.Exit(1)
	}
}
