// Package async provides a bounded in-process worker pool for running
// independent document extractions concurrently. There is no persistence
// and no retry; a task runs once or is rejected at submit time.
package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrShutdown = errors.New("pool is shut down")

// Task is one unit of work. The context carries the per-task timeout.
type Task func(ctx context.Context)

type job struct {
	name string
	fn   Task
}

type Pool struct {
	jobs    chan job
	wg      sync.WaitGroup
	log     *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
}

type Option func(*options)

type options struct {
	workers   int
	queueSize int
	timeout   time.Duration
}

func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

func WithTaskTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func NewPool(logger *slog.Logger, opts ...Option) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	o := options{workers: 4, queueSize: 64, timeout: 3 * time.Minute}
	for _, opt := range opts {
		opt(&o)
	}
	p := &Pool{
		jobs:    make(chan job, o.queueSize),
		log:     logger,
		timeout: o.timeout,
	}
	for i := 0; i < o.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for j := range p.jobs {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		j.fn(ctx)
		cancel()
		p.log.Debug("async.task.done",
			"worker", id,
			"task", j.name,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Submit queues fn for execution. It blocks while the queue is full and
// fails fast once the pool is shut down or ctx is cancelled.
func (p *Pool) Submit(ctx context.Context, name string, fn Task) error {
	// read lock held across the send so Shutdown cannot close the channel
	// under a blocked producer
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrShutdown
	}

	select {
	case p.jobs <- job{name: name, fn: fn}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting work and waits for in-flight tasks, or returns
// early when ctx expires.
func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		p.log.Warn("async.shutdown.timeout")
	}
}
