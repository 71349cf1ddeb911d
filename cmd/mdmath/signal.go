package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals cancel the run. On Windows only os.Interrupt is delivered.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// notifyContext returns a context canceled on the first shutdown signal.
// Cancellation kills the running converter's process group, so a
// half-written document never reaches stdout.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
