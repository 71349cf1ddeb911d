package main

// Notes:
// - notifyContext: we test cancellation via stop() and parent propagation.
//   Real signal delivery is not tested since it would interrupt the test binary.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"os"
	"syscall"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("starts not cancelled and stop cancels", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		if ctx.Err() != nil {
			t.Fatalf("ctx.Err() = %v before stop, want nil", ctx.Err())
		}

		stop()
		<-ctx.Done()
	})

	t.Run("listens for interrupt and terminate", func(t *testing.T) {
		t.Parallel()

		if len(shutdownSignals) != 2 || shutdownSignals[0] != os.Interrupt || shutdownSignals[1] != syscall.SIGTERM {
			t.Errorf("shutdownSignals = %v, want [interrupt terminated]", shutdownSignals)
		}
	})

	t.Run("inherits parent cancellation", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()

		select {
		case <-ctx.Done():
		default:
			t.Fatal("context should be cancelled when parent is cancelled")
		}
	})
}
