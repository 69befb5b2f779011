// Command carectl is the operator tool for the carecompanion service: it
// runs the intent classifier and time resolver offline, measures geofence
// distances, applies migrations and mints development tokens.
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
		fmt.Fprintln(os.Stderr, "carectl:", err)
		os.Exit(1)
	}
}
