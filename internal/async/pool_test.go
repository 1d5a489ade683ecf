package async

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPoolRunsAllTasks(t *testing.T) {
	p := NewPool(testLogger(), WithWorkers(3), WithQueueSize(8))
	var n atomic.Int64
	for i := 0; i < 20; i++ {
		if err := p.Submit(context.Background(), "task", func(context.Context) {
			n.Add(1)
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	p.Shutdown(context.Background())
	if got := n.Load(); got != 20 {
		t.Errorf("ran %d tasks, want 20", got)
	}
}

func TestPoolSubmitAfterShutdown(t *testing.T) {
	p := NewPool(testLogger(), WithWorkers(1))
	p.Shutdown(context.Background())
	if err := p.Submit(context.Background(), "late", func(context.Context) {}); err != ErrShutdown {
		t.Errorf("Submit after shutdown = %v, want ErrShutdown", err)
	}
}

func TestPoolTaskTimeout(t *testing.T) {
	p := NewPool(testLogger(), WithWorkers(1), WithTaskTimeout(10*time.Millisecond))
	var wg sync.WaitGroup
	wg.Add(1)
	var expired atomic.Bool
	if err := p.Submit(context.Background(), "slow", func(ctx context.Context) {
		defer wg.Done()
		select {
		case <-ctx.Done():
			expired.Store(true)
		case <-time.After(5 * time.Second):
		}
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	wg.Wait()
	p.Shutdown(context.Background())
	if !expired.Load() {
		t.Error("task context did not expire")
	}
}

func TestPoolSubmitCancelledWhileFull(t *testing.T) {
	p := NewPool(testLogger(), WithWorkers(1), WithQueueSize(1))
	release := make(chan struct{})
	// occupy the worker and fill the queue
	_ = p.Submit(context.Background(), "block", func(context.Context) { <-release })
	_ = p.Submit(context.Background(), "queued", func(context.Context) {})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Submit(ctx, "overflow", func(context.Context) {})
	if err == nil {
		t.Error("expected context error when queue is full")
	}
	close(release)
	p.Shutdown(context.Background())
}
