package scheduler

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	calls chan struct{}
}

func (f *fakePipeline) RunCycle(ctx context.Context) error {
	select {
	case f.calls <- struct{}{}:
	case <-ctx.Done():
	}
	return nil
}

func TestScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	pipeline := &fakePipeline{calls: make(chan struct{}, 10)}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s := NewScheduler(pipeline, 10*time.Millisecond, time.Second, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-pipeline.calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("cycle %d never ran", i+1)
		}
	}

	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
