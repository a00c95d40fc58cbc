package main

// Notes:
// - Real SIGINT/SIGTERM delivery is not exercised: it would interrupt the
//   test binary itself. Cancelling the parent context stands in for it.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNotifyContext - Shutdown reaches in-flight conversions
// ---------------------------------------------------------------------------

func TestNotifyContext_LiveUntilStopped(t *testing.T) {
	t.Parallel()

	ctx, stop := notifyContext(context.Background())
	if err := ctx.Err(); err != nil {
		t.Fatalf("fresh context already done: %v", err)
	}

	stop()
	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Errorf("after stop: Err = %v, want context.Canceled", ctx.Err())
	}
}

func TestNotifyContext_ShutdownSkipsQueuedResumes(t *testing.T) {
	t.Parallel()

	parent, shutdown := context.WithCancel(context.Background())
	ctx, stop := notifyContext(parent)
	defer stop()

	shutdown()

	files := []FileToConvert{{InputPath: "jane.md"}, {InputPath: "john.md"}, {InputPath: "ada.md"}}
	conv := &mockConverter{}
	results := convertBatch(ctx, &mockPool{conv: conv, size: 1}, files, &conversionParams{})

	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: Err = %v, want context.Canceled", r.InputPath, r.Err)
		}
	}
	if conv.calls() != 0 {
		t.Errorf("rendered %d résumés after shutdown, want 0", conv.calls())
	}
}
